package netpbm

import (
	"image"
	"io"
	"strconv"
)

func init() {
	image.RegisterFormat("pbm", magicMonochromeASCII, Decode, DecodeConfig)
	image.RegisterFormat("ppm", magicColorASCII, Decode, DecodeConfig)
	image.RegisterFormat("ppm", magicColorBinary, Decode, DecodeConfig)
}

// Rescale maps sample s from [0, maxColor] onto [0, 255]. Zero always maps
// to zero and maxColor to 255; out of range samples are clamped.
func Rescale(s, maxColor int) uint8 {
	if s <= 0 || maxColor < 1 {
		return 0
	}
	v := (s+1)*256/(maxColor+1) - 1
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	}
	return uint8(v)
}

type decoder struct {
	t      *tokenizer
	header Header
	grid   *Grid
	pixels int

	// One raw pixel
	tmp [bytesPerRaw]byte
}

func (d *decoder) readSample() (uint8, error) {
	tok, err := d.t.next()
	switch {
	case err == io.EOF:
		return 0, unreadable("sample", io.ErrUnexpectedEOF)
	case err != nil:
		return 0, unreadable("sample", err)
	}

	s, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, invalid("sample", tok, err)
	}
	return Rescale(int(s), d.header.MaxColor), nil
}

func (d *decoder) readMonochrome() error {
	for len(d.grid.Pix) < d.pixels {
		v, err := d.readSample()
		if err != nil {
			return err
		}
		d.grid.Pix = append(d.grid.Pix, Gray(v))
	}
	return nil
}

func (d *decoder) readColorASCII() error {
	for len(d.grid.Pix) < d.pixels {
		var rgb [3]uint8
		for c := range rgb {
			v, err := d.readSample()
			if err != nil {
				return err
			}
			rgb[c] = v
		}
		d.grid.Pix = append(d.grid.Pix, Pixel{R: rgb[0], G: rgb[1], B: rgb[2]})
	}
	return nil
}

func (d *decoder) readColorBinary() error {
	m := d.header.MaxColor
	for len(d.grid.Pix) < d.pixels {
		if err := d.t.readFull(d.tmp[:]); err != nil {
			return unreadable("sample", err)
		}
		// Stored as blue, red, green
		d.grid.Pix = append(d.grid.Pix, Pixel{
			R: Rescale(int(d.tmp[1]), m),
			G: Rescale(int(d.tmp[2]), m),
			B: Rescale(int(d.tmp[0]), m),
		})
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.t = newTokenizer(r)

	var err error
	if d.header, err = readHeader(d.t); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	d.pixels = d.header.Width * d.header.Height
	d.grid = &Grid{
		Pix:    make([]Pixel, 0, min(d.pixels, preallocPixels)),
		Width:  d.header.Width,
		Height: d.header.Height,
	}

	switch d.header.Format {
	case MonochromeASCII:
		err = d.readMonochrome()
	case ColorASCII:
		err = d.readColorASCII()
	case ColorBinary:
		err = d.readColorBinary()
	}
	if err != nil {
		d.grid = nil
	}
	return err
}

// DecodeGrid reads an image from r, returning its header and pixels. No grid
// is returned unless every pixel was decoded.
func DecodeGrid(r io.Reader) (Header, *Grid, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return d.header, nil, err
	}
	return d.header, d.grid, nil
}

// Decode reads an image from r and returns it as an image.Image backed by a
// *Grid.
func Decode(r io.Reader) (image.Image, error) {
	_, g, err := DecodeGrid(r)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// DecodeConfig returns the color model and dimensions of an image without
// decoding the raster.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: PixelModel,
		Width:      d.header.Width,
		Height:     d.header.Height,
	}, nil
}
