package highlight

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var brackets = Markers{Start: "[", End: "]"}

func TestOccurrences(t *testing.T) {
	tests := []struct {
		name string
		line string
		term string
		want []Span
	}{
		{name: "single", line: "hello world", term: "world", want: []Span{{6, 11}}},
		{name: "repeated", line: "abab", term: "ab", want: []Span{{0, 2}, {2, 4}}},
		{name: "overlapping", line: "aaa", term: "aa", want: []Span{{0, 2}, {1, 3}}},
		{name: "no match", line: "hello", term: "x", want: nil},
		{name: "term longer than line", line: "ab", term: "abc", want: nil},
		{name: "empty term", line: "abc", term: "", want: nil},
		{name: "case sensitive", line: "Beta beta", term: "beta", want: []Span{{5, 9}}},
		{name: "multibyte", line: "héhé", term: "hé", want: []Span{{0, 3}, {3, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Occurrences(tt.line, tt.term))
		})
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name string
		line string
		term string
		want string
	}{
		{name: "middle", line: "say hello there", term: "hello", want: "say [hello] there"},
		{name: "whole line", line: "beta", term: "beta", want: "[beta]"},
		{name: "adjacent", line: "abab", term: "ab", want: "[ab][ab]"},
		{name: "overlapping", line: "aaa", term: "aa", want: "[a[a]a]"},
		{name: "three overlapping", line: "aaaa", term: "aa", want: "[a[a][a]a]"},
		{name: "no match unchanged", line: "nothing here", term: "zzz", want: "nothing here"},
		{name: "keeps whitespace", line: "  x  ", term: "x", want: "  [x]  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.line, tt.term, brackets))
		})
	}
}

func TestHighlightStripRoundTrip(t *testing.T) {
	lines := []string{"aaa", "abcabcab", "x", "prefix term suffix term", "ééé"}
	terms := []string{"aa", "ab", "x", "term", "é"}

	for i, line := range lines {
		got := Highlight(line, terms[i], brackets)
		assert.Equal(t, line, Strip(got, brackets), "line %q", line)
		assert.Equal(t, strings.Count(got, "["), strings.Count(got, "]"))
	}
}

func TestHighlightMarksEveryOccurrence(t *testing.T) {
	got := Highlight("aaa", "aa", brackets)

	assert.Equal(t, 2, strings.Count(got, "["))
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		spans []Span
		want  []Span
	}{
		{name: "empty", spans: nil, want: nil},
		{name: "single", spans: []Span{{0, 2}}, want: []Span{{0, 2}}},
		{name: "overlapping", spans: []Span{{0, 2}, {1, 3}, {2, 4}}, want: []Span{{0, 4}}},
		{name: "touching stay apart", spans: []Span{{0, 2}, {2, 4}}, want: []Span{{0, 2}, {2, 4}}},
		{name: "separate runs", spans: []Span{{0, 2}, {1, 3}, {5, 7}}, want: []Span{{0, 3}, {5, 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.spans))
		})
	}
}

func TestHighlightFlatMarkers(t *testing.T) {
	flat := Markers{Start: "[", End: "]", Flat: true}
	tests := []struct {
		name string
		line string
		term string
		want string
	}{
		{name: "overlapping", line: "aaa", term: "aa", want: "[aaa]"},
		{name: "three overlapping", line: "aaaa", term: "aa", want: "[aaaa]"},
		{name: "adjacent", line: "abab", term: "ab", want: "[ab][ab]"},
		{name: "separate runs", line: "aaa b aa", term: "aa", want: "[aaa] b [aa]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.line, tt.term, flat)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, Strip(got, flat))
		})
	}
}

func TestTerminalMarkersOverlapStayEmphasised(t *testing.T) {
	c := color.New(color.FgRed)
	c.EnableColor()

	m := Terminal(c)
	require.True(t, m.Flat)

	got := Highlight("xaaay", "aa", m)
	assert.Equal(t, "x"+m.Start+"aaa"+m.End+"y", got)
	assert.Equal(t, 1, strings.Count(got, m.End))
}

func TestTerminalMarkers(t *testing.T) {
	c := color.New(color.FgRed)
	c.EnableColor()

	m := Terminal(c)
	require.NotEmpty(t, m.Start)
	require.NotEmpty(t, m.End)
	assert.Contains(t, m.Start, "31")

	got := Highlight("a beta b", "beta", m)
	assert.Equal(t, "a "+m.Start+"beta"+m.End+" b", got)
	assert.Equal(t, "a beta b", Strip(got, m))
}

func TestTerminalMarkersDisabled(t *testing.T) {
	c := color.New(color.FgRed)
	c.DisableColor()

	assert.Equal(t, Plain, Terminal(c))
	assert.Equal(t, "a beta b", Highlight("a beta b", "beta", Terminal(c)))
}
