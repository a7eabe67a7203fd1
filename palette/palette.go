// Package palette defines the in-memory representation of an Adobe Color
// Swatch file: an ordered list of color swatches, each tagged with the color
// space its channel values belong to.
//
// The model is shared by the binary codec (palette/format/aco) and the text
// codec (palette/format/csv).
package palette

import "fmt"

// Version is the layout version of a swatch file.
type Version uint16

const (
	// V1 files carry color records only.
	V1 Version = 1
	// V2 files carry color records followed by a name block per record.
	V2 Version = 2
)

// ColorSpace identifies how the channel values of a swatch are to be
// interpreted. The set of identifiers is closed: values outside of it are
// carried opaquely by Swatch.Raw and are never interpreted.
type ColorSpace uint16

const (
	// RGB has three channels, red, green and blue, as full unsigned
	// 16-bit values. Pure red is 65535, 0, 0.
	RGB ColorSpace = 0
	// HSB has three channels, hue, saturation and brightness, as full
	// unsigned 16-bit values.
	HSB ColorSpace = 1
	// CMYK has four channels, cyan, magenta, yellow and black, as full
	// unsigned 16-bit values where 0 means 100% ink.
	CMYK ColorSpace = 2
	// Pantone is the Pantone matching system. Recognized but not
	// supported, its channel layout is unknown.
	Pantone ColorSpace = 3
	// Focoltone is the Focoltone colour system. Recognized but not
	// supported.
	Focoltone ColorSpace = 4
	// Trumatch is the Trumatch color system. Recognized but not
	// supported.
	Trumatch ColorSpace = 5
	// Toyo is the Toyo 88 colorfinder 1050 system. Recognized but not
	// supported.
	Toyo ColorSpace = 6
	// Lab is the CIELAB color space. Recognized but not supported.
	Lab ColorSpace = 7
	// Grayscale has a single channel, the gray value.
	Grayscale ColorSpace = 8
	// HKS is the HKS colors system. Recognized but not supported.
	HKS ColorSpace = 10
)

// Supported reports whether swatches in this color space carry typed channel
// values. Unsupported spaces round-trip through the binary codec untouched
// but cannot be converted to or from text.
func (s ColorSpace) Supported() bool {
	switch s {
	case RGB, HSB, CMYK, Grayscale:
		return true
	}

	return false
}

// Channels returns the number of meaningful channel values for the color
// space, or zero if the space is not supported.
func (s ColorSpace) Channels() int {
	switch s {
	case RGB, HSB:
		return 3
	case CMYK:
		return 4
	case Grayscale:
		return 1
	}

	return 0
}

func (s ColorSpace) String() string {
	switch s {
	case RGB:
		return "RGB"
	case HSB:
		return "HSB"
	case CMYK:
		return "CMYK"
	case Pantone:
		return "Pantone matching system"
	case Focoltone:
		return "Focoltone colour system"
	case Trumatch:
		return "Trumatch color"
	case Toyo:
		return "Toyo 88 colorfinder 1050"
	case Lab:
		return "Lab"
	case Grayscale:
		return "Grayscale"
	case HKS:
		return "HKS colors"
	}

	return fmt.Sprintf("color space %d", uint16(s))
}

// Swatch is a single color record of a swatch file.
type Swatch struct {
	// Name is the color name. V1 files carry no names, so swatches
	// decoded from them have an empty Name.
	Name string
	// Space is the color space the channel values belong to.
	Space ColorSpace
	// Values holds the meaningful channel values, Space.Channels() of
	// them, in channel order. It is nil when Space is not supported.
	Values []uint16
	// Raw holds the verbatim channel bytes of a record whose color space
	// is not supported. It is exactly 8 bytes long and is written back
	// untouched on encode. It is nil when Space is supported.
	Raw []byte
}

func (s *Swatch) String() string {
	if !s.Space.Supported() {
		return fmt.Sprintf("%q %s %X", s.Name, s.Space, s.Raw)
	}

	return fmt.Sprintf("%q %s %04X", s.Name, s.Space, s.Values)
}

// Palette is the decoded content of a swatch file, one Swatch per record in
// file order.
type Palette struct {
	// Version is the layout version the palette was decoded from. It is
	// informational: the binary encoder always writes the V2 layout.
	Version Version
	// Swatches holds the color records in file order. Order is
	// significant and is preserved exactly across a decode and encode.
	Swatches []*Swatch
}

// Add creates a new Swatch with the given name and channel values and
// appends it to the palette.
func (p *Palette) Add(name string, space ColorSpace, values ...uint16) *Swatch {
	s := &Swatch{
		Name:   name,
		Space:  space,
		Values: values,
	}

	p.Swatches = append(p.Swatches, s)
	return s
}
