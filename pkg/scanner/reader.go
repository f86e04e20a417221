package scanner

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

var errBinary = errors.New("binary content")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// lineReader yields decoded lines from a text stream. A UTF-8 BOM is
// dropped and BOM-marked UTF-16 input is transcoded to UTF-8; anything else
// passes through untouched and must be valid UTF-8.
type lineReader struct {
	r   *bufio.Reader
	err error
}

func newLineReader(r io.Reader) *lineReader {
	br := bufio.NewReaderSize(r, 64*1024)
	// Peek errors resurface on the first read.
	head, _ := br.Peek(len(bomUTF8))

	switch {
	case bytes.HasPrefix(head, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
	case bytes.HasPrefix(head, bomUTF16LE):
		_, _ = br.Discard(len(bomUTF16LE))
		return newUTF16LineReader(br, binary.LittleEndian)
	case bytes.HasPrefix(head, bomUTF16BE):
		_, _ = br.Discard(len(bomUTF16BE))
		return newUTF16LineReader(br, binary.BigEndian)
	}
	return &lineReader{r: br}
}

func newUTF16LineReader(r io.Reader, order binary.ByteOrder) *lineReader {
	decoded := transform.NewReader(r, utf16Decoder{order: order})
	return &lineReader{r: bufio.NewReaderSize(decoded, 64*1024)}
}

// next returns the next line without its terminator. It returns io.EOF
// after the last line and errBinary when the line is not text.
func (lr *lineReader) next() (string, error) {
	if lr.err != nil {
		return "", lr.err
	}
	raw, err := lr.r.ReadBytes('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			lr.err = err
			return "", err
		}
		lr.err = io.EOF
		if len(raw) == 0 {
			return "", io.EOF
		}
	}
	raw = bytes.TrimSuffix(raw, []byte("\n"))
	raw = bytes.TrimSuffix(raw, []byte("\r"))
	if !isText(raw) {
		lr.err = errBinary
		return "", errBinary
	}
	return string(raw), nil
}

func isText(b []byte) bool {
	return utf8.Valid(b) && bytes.IndexByte(b, 0) < 0
}

// utf16Decoder transcodes UTF-16 to UTF-8. Unlike a replacing decoder it
// fails with errBinary on an unpaired surrogate or a dangling odd byte.
type utf16Decoder struct {
	transform.NopResetter
	order binary.ByteOrder
}

func (d utf16Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc+2 <= len(src) {
		r := rune(d.order.Uint16(src[nSrc:]))
		size := 2
		if utf16.IsSurrogate(r) {
			if nSrc+4 > len(src) {
				if atEOF {
					return nDst, nSrc, errBinary
				}
				return nDst, nSrc, transform.ErrShortSrc
			}
			r = utf16.DecodeRune(r, rune(d.order.Uint16(src[nSrc+2:])))
			if r == utf8.RuneError {
				return nDst, nSrc, errBinary
			}
			size = 4
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	if nSrc < len(src) {
		if atEOF {
			return nDst, nSrc, errBinary
		}
		return nDst, nSrc, transform.ErrShortSrc
	}
	return nDst, nSrc, nil
}
