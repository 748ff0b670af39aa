package netpbm

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = Pixel{0xff, 0, 0}
	green = Pixel{0, 0xff, 0}
	blue  = Pixel{0, 0, 0xff}
	white = Pixel{0xff, 0xff, 0xff}
	black = Pixel{}
)

func TestRescaleExtremes(t *testing.T) {
	for _, m := range []int{1, 2, 3, 7, 15, 100, 255, 256, 1023, 4095, 65535} {
		assert.Equal(t, uint8(0), Rescale(0, m), "maxColor %d", m)
		assert.Equal(t, uint8(0xff), Rescale(m, m), "maxColor %d", m)
	}
}

func TestRescaleMonotonic(t *testing.T) {
	for _, m := range []int{1, 3, 100, 255, 1000, 65535} {
		prev := Rescale(0, m)
		for s := 1; s <= m; s++ {
			v := Rescale(s, m)
			require.GreaterOrEqual(t, v, prev, "maxColor %d sample %d", m, s)
			prev = v
		}
	}
}

func TestRescale(t *testing.T) {
	tables := []struct {
		s, max int
		want   uint8
	}{
		{1, 1, 255},
		{128, 255, 128},
		{127, 255, 127},
		{1, 3, 127},
		{2, 3, 191},
		{1, 65535, 0},
		{32767, 65535, 127},
		{128, 1, 255},  // clamped
		{255, 65, 255}, // clamped
	}

	for _, table := range tables {
		assert.Equal(t, table.want, Rescale(table.s, table.max), "Rescale(%d, %d)", table.s, table.max)
	}
}

func TestDecodeColorASCII(t *testing.T) {
	const input = "P3\n# two by two\n2 2\n255\n255 0 0 0 255 0\n0 0 255 255 255 255\n"

	h, g, err := DecodeGrid(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, Header{Format: ColorASCII, Width: 2, Height: 2, MaxColor: 255}, h)
	assert.Equal(t, []Pixel{red, green}, g.Row(0))
	assert.Equal(t, []Pixel{blue, white}, g.Row(1))
}

func TestDecodeColorASCIIScaled(t *testing.T) {
	const input = "P3 1 1 15 15 0 7"

	_, g, err := DecodeGrid(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, Pixel{0xff, 0, 127}, g.PixelAt(0, 0))
}

func TestDecodeMonochrome(t *testing.T) {
	const input = "P1\n3 2\n0 1 0\n1 1 0\n"

	h, g, err := DecodeGrid(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, Header{Format: MonochromeASCII, Width: 3, Height: 2, MaxColor: 1}, h)
	assert.Equal(t, []Pixel{black, white, black}, g.Row(0))
	assert.Equal(t, []Pixel{white, white, black}, g.Row(1))
}

func TestDecodeMonochromeOutOfRange(t *testing.T) {
	_, g, err := DecodeGrid(strings.NewReader("P1 1 1 128"))
	require.NoError(t, err)
	assert.Equal(t, white, g.PixelAt(0, 0))
}

func TestDecodeColorBinaryChannelOrder(t *testing.T) {
	input := append([]byte("P6\n1 1\n255\n"), 0x10, 0x20, 0x30)

	_, g, err := DecodeGrid(bytes.NewReader(input))
	require.NoError(t, err)

	p := g.PixelAt(0, 0)
	assert.Equal(t, Rescale(0x10, 255), p.B)
	assert.Equal(t, Rescale(0x20, 255), p.R)
	assert.Equal(t, Rescale(0x30, 255), p.G)
	assert.Equal(t, Pixel{R: 0x20, G: 0x30, B: 0x10}, p)
}

func TestDecodeColorBinary(t *testing.T) {
	// Raster bytes include whitespace and '#' which must not be interpreted
	input := append([]byte("P6 2 1 15\n"), '#', ' ', '\n', 0x0f, 0x00, 0x07)

	_, g, err := DecodeGrid(bytes.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, Pixel{R: Rescale(' ', 15), G: Rescale('\n', 15), B: Rescale('#', 15)}, g.PixelAt(0, 0))
	assert.Equal(t, Pixel{R: 0, G: 127, B: 0xff}, g.PixelAt(1, 0))
}

func TestDecodeDimensions(t *testing.T) {
	tables := []struct {
		width, height int
	}{
		{1, 1},
		{3, 1},
		{1, 4},
		{7, 5},
	}

	for _, table := range tables {
		var b strings.Builder
		fmt.Fprintf(&b, "P3\n%d %d\n9\n", table.width, table.height)
		for i := 0; i < table.width*table.height; i++ {
			b.WriteString("9 0 9\n")
		}

		h, g, err := DecodeGrid(strings.NewReader(b.String()))
		require.NoError(t, err)
		assert.Equal(t, table.width, h.Width)
		assert.Equal(t, table.height, h.Height)
		assert.Len(t, g.Pix, table.width*table.height)
		for y := 0; y < g.Height; y++ {
			assert.Len(t, g.Row(y), table.width)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tables := []struct {
		name  string
		input string
		kind  Kind
		err   error
		field string
	}{
		{"empty", "", UnrecognizedFormat, ErrUnrecognizedFormat, ""},
		{"unknown tag", "P9 1 1 255 0 0 0", UnrecognizedFormat, ErrUnrecognizedFormat, ""},
		{"graymap not supported", "P2 1 1 255 0", UnrecognizedFormat, ErrUnrecognizedFormat, ""},
		{"missing width", "P3\n# nothing else\n", MissingField, ErrMissingField, "width"},
		{"missing height", "P3 2", MissingField, ErrMissingField, "height"},
		{"missing max", "P3 2 2", MissingField, ErrMissingField, "maxColor"},
		{"bad width", "P3 two 2 255", InvalidNumeric, ErrInvalidNumeric, "width"},
		{"zero height", "P1 2 0", InvalidNumeric, ErrInvalidNumeric, "height"},
		{"negative width", "P1 -2 2", InvalidNumeric, ErrInvalidNumeric, "width"},
		{"max too large", "P3 1 1 65536 0 0 0", InvalidNumeric, ErrInvalidNumeric, "maxColor"},
		{"bad sample", "P3 1 1 255 0 x 0", InvalidNumeric, ErrInvalidNumeric, "sample"},
		{"negative sample", "P1 1 1 -1", InvalidNumeric, ErrInvalidNumeric, "sample"},
		{"huge sample", "P3 1 1 255 70000 0 0", InvalidNumeric, ErrInvalidNumeric, "sample"},
		{"short ascii", "P3 2 1 255 0 0 0 1 1", UnreadableInput, ErrUnreadableInput, "sample"},
		{"short mono", "P1 2 2 0 1 1", UnreadableInput, ErrUnreadableInput, "sample"},
		{"short binary", "P6 2 1 255\n\x01\x02\x03\x04\x05", UnreadableInput, ErrUnreadableInput, "sample"},
		{"binary no raster", "P6 1 1 255\n", UnreadableInput, ErrUnreadableInput, "sample"},
		{"signed width", "P3 +2 1 255 0 0 0 0 0 0", InvalidNumeric, ErrInvalidNumeric, "width"},
		{"signed max", "P3 1 1 +255 0 0 0", InvalidNumeric, ErrInvalidNumeric, "maxColor"},
		{"width too large", "P6 4294967296 4294967296 255\n", InvalidNumeric, ErrInvalidNumeric, "width"},
		{"height too large", "P6 1 3037000500 255\n", InvalidNumeric, ErrInvalidNumeric, "height"},
		{"too many pixels", "P6 65536 65536 255\n", InvalidNumeric, ErrInvalidNumeric, "dimensions"},
		{"large binary no raster", "P6 16384 16384 255\n", UnreadableInput, ErrUnreadableInput, "sample"},
		{"large ascii no raster", "P1 16384 16384\n0 1", UnreadableInput, ErrUnreadableInput, "sample"},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, g, err := DecodeGrid(strings.NewReader(table.input))
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, table.err), "%v is not %v", err, table.err)
			assert.Equal(t, table.kind, KindOf(err))

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, table.field, e.Field)
		})
	}
}

func TestDecodeLarge(t *testing.T) {
	// More pixels than are allocated up front
	width, height := 1025, 1024
	raster := strings.Repeat("\x10\x20\x30", width*height)

	h, g, err := DecodeGrid(strings.NewReader(fmt.Sprintf("P6 %d %d 255\n", width, height) + raster))
	require.NoError(t, err)
	assert.Equal(t, width, h.Width)
	assert.Equal(t, height, h.Height)
	require.Len(t, g.Pix, width*height)
	assert.Equal(t, Pixel{R: 0x20, G: 0x30, B: 0x10}, g.PixelAt(width-1, height-1))
}

func TestDecodeImage(t *testing.T) {
	m, format, err := image.Decode(strings.NewReader("P3 1 2 255 255 0 0 0 0 255"))
	require.NoError(t, err)
	assert.Equal(t, "ppm", format)
	assert.Equal(t, image.Rect(0, 0, 1, 2), m.Bounds())
	assert.Equal(t, red, m.At(0, 0))
	assert.Equal(t, blue, m.At(0, 1))

	_, format, err = image.Decode(strings.NewReader("P1 1 1 1"))
	require.NoError(t, err)
	assert.Equal(t, "pbm", format)
}

func TestDecodeConfig(t *testing.T) {
	// Raster is never read
	c, err := DecodeConfig(strings.NewReader("P6\n# comment\n640 480\n65535\n"))
	require.NoError(t, err)
	assert.Equal(t, 640, c.Width)
	assert.Equal(t, 480, c.Height)
	assert.Equal(t, PixelModel, c.ColorModel)

	_, err = DecodeConfig(strings.NewReader("P9 1 1"))
	assert.True(t, errors.Is(err, ErrUnrecognizedFormat))
}

func TestDecodeHeader(t *testing.T) {
	h, err := DecodeHeader(strings.NewReader("P1 # w h\n 12 34\n 0 1"))
	require.NoError(t, err)
	assert.Equal(t, Header{Format: MonochromeASCII, Width: 12, Height: 34, MaxColor: 1}, h)
	assert.Equal(t, "P1", h.Format.Magic())
	assert.True(t, h.Format.Monochrome())
}

func TestDecodeConfigTooManyPixels(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("P3 65536 65536 255\n"))
	assert.True(t, errors.Is(err, ErrInvalidNumeric))
}
