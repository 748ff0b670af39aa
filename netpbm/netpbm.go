/*
Package netpbm implements a decoder for the plain and raw portable bitmap
family of image formats.

Three variants are recognized, identified by the first token of the file:

	P1	monochrome, samples written as decimal text
	P3	color, samples written as decimal text in red, green, blue order
	P6	color, samples stored as raw bytes in blue, red, green order

The header is a sequence of whitespace delimited tokens; the tag, the width,
the height and, for every variant except P1, the maximum sample value. A '#'
starts a comment that runs to the end of the line. Every sample is rescaled
from the range [0, maxColor] to an 8-bit channel value.
*/
package netpbm

// Format identifies one of the recognized file variants.
type Format int

const (
	MonochromeASCII Format = iota + 1
	ColorASCII
	ColorBinary
)

const (
	magicMonochromeASCII = "P1"
	magicColorASCII      = "P3"
	magicColorBinary     = "P6"
)

const (
	// Samples and the maximum sample value are bounded below 1<<16
	maxSample   = 1<<16 - 1
	bytesPerRaw = 3

	// Width times height may not exceed this
	maxPixels = 1 << 28
	// Larger grids grow as their samples are read
	preallocPixels = 1 << 20
)

// Extensions lists the file extensions conventionally used by the formats.
var Extensions = []string{".ppm", ".pbm", ".pnm"}

func parseFormat(tag string) (Format, bool) {
	switch tag {
	case magicMonochromeASCII:
		return MonochromeASCII, true
	case magicColorASCII:
		return ColorASCII, true
	case magicColorBinary:
		return ColorBinary, true
	}
	return 0, false
}

// Magic returns the header tag used for the format.
func (f Format) Magic() string {
	switch f {
	case MonochromeASCII:
		return magicMonochromeASCII
	case ColorASCII:
		return magicColorASCII
	case ColorBinary:
		return magicColorBinary
	}
	return ""
}

func (f Format) String() string {
	switch f {
	case MonochromeASCII:
		return "monochrome-ascii"
	case ColorASCII:
		return "color-ascii"
	case ColorBinary:
		return "color-binary"
	}
	return "unknown"
}

// Monochrome reports whether the format carries a single channel.
func (f Format) Monochrome() bool {
	return f == MonochromeASCII
}
