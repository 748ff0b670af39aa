package netpbm

import (
	"bufio"
	"io"
)

const commentMarker = '#'

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// tokenizer splits a stream into whitespace delimited tokens, discarding
// comments. Raw reads share the same buffered cursor so binary raster data
// can follow the textual header.
type tokenizer struct {
	r   *bufio.Reader
	buf []byte
}

func newTokenizer(r io.Reader) *tokenizer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &tokenizer{r: br}
}

// skipComment discards everything up to and including the next newline.
func (t *tokenizer) skipComment() error {
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

// next returns the next token. The delimiter that ends the token is
// consumed. io.EOF is returned only if the stream ends before any token
// byte is read.
func (t *tokenizer) next() (string, error) {
	t.buf = t.buf[:0]
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(t.buf) > 0 {
				return string(t.buf), nil
			}
			return "", err
		}

		switch {
		case b == commentMarker:
			if err := t.skipComment(); err != nil && err != io.EOF {
				return "", err
			}
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		case isSpace(b):
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		default:
			t.buf = append(t.buf, b)
		}
	}
}

func (t *tokenizer) readFull(b []byte) error {
	_, err := io.ReadFull(t.r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}
