package matcher

import (
	"github.com/cloudflare/ahocorasick"
)

// Matcher decides whether a line belongs to the result set.
type Matcher interface {
	// Match reports whether line contains the search term.
	Match(line string) bool
}

// Literal is a case-sensitive substring matcher for a single term. It is not
// safe for concurrent use.
type Literal struct {
	term string
	ac   *ahocorasick.Matcher
}

// NewLiteral builds a matcher for term. An empty term matches nothing; callers
// validate the search configuration before getting here.
func NewLiteral(term string) *Literal {
	l := &Literal{term: term}
	if term != "" {
		l.ac = ahocorasick.NewStringMatcher([]string{term})
	}
	return l
}

// Term returns the literal being searched for.
func (l *Literal) Term() string {
	return l.term
}

// Match reports whether line contains the term.
func (l *Literal) Match(line string) bool {
	if l.ac == nil {
		return false
	}
	return len(l.ac.Match([]byte(line))) > 0
}
