package netpbm

import (
	"io"
	"strconv"
)

// Header describes a file as declared by its header.
type Header struct {
	Format   Format
	Width    int
	Height   int
	MaxColor int
}

// readField reads a positive integer no greater than limit.
func readField(t *tokenizer, field string, limit int) (int, error) {
	tok, err := t.next()
	switch {
	case err == io.EOF:
		return 0, missing(field)
	case err != nil:
		return 0, unreadable(field, err)
	}

	n, err := strconv.ParseUint(tok, 10, 0)
	if err != nil {
		return 0, invalid(field, tok, err)
	}
	if n == 0 || n > uint64(limit) {
		return 0, invalid(field, tok, nil)
	}
	return int(n), nil
}

func readHeader(t *tokenizer) (Header, error) {
	var h Header

	tag, err := t.next()
	if err != nil && err != io.EOF {
		return h, unreadable("magic", err)
	}
	var ok bool
	if h.Format, ok = parseFormat(tag); !ok {
		return h, &Error{Kind: UnrecognizedFormat, Value: tag}
	}

	if h.Width, err = readField(t, "width", maxPixels); err != nil {
		return h, err
	}
	if h.Height, err = readField(t, "height", maxPixels); err != nil {
		return h, err
	}
	if h.Width > maxPixels/h.Height {
		return h, invalid("dimensions", strconv.Itoa(h.Width)+"x"+strconv.Itoa(h.Height), nil)
	}

	h.MaxColor = 1
	if !h.Format.Monochrome() {
		if h.MaxColor, err = readField(t, "maxColor", maxSample); err != nil {
			return h, err
		}
	}

	return h, nil
}

// DecodeHeader reads only the header from r.
func DecodeHeader(r io.Reader) (Header, error) {
	return readHeader(newTokenizer(r))
}
