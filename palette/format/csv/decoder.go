package csv

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kdybicz/adobe-color-swatch/palette"
	"github.com/kdybicz/adobe-color-swatch/utils/trace"
)

// A Decoder reads a palette table from an input stream.
type Decoder struct {
	s *bufio.Scanner
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{s: bufio.NewScanner(r)}
}

// Decode reads the whole table from the input stream and stores it in the
// value pointed to by p. Palettes read from text carry names, so p is
// tagged with the version 2 layout.
func (d *Decoder) Decode(p *palette.Palette) error {
	if !d.s.Scan() {
		if err := d.s.Err(); err != nil {
			return err
		}

		return fmt.Errorf("%w: empty input", ErrInvalidHeader)
	}

	if d.s.Text() != Header {
		return fmt.Errorf("%w: %q", ErrInvalidHeader, d.s.Text())
	}

	p.Version = palette.V2
	p.Swatches = nil

	for row := 1; d.s.Scan(); row++ {
		sw, err := parseRow(d.s.Text())
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}

		trace.Codec.Printf("csv: < row %d %s", row, sw)
		p.Swatches = append(p.Swatches, sw)
	}

	return d.s.Err()
}

func parseRow(row string) (*palette.Swatch, error) {
	fields := strings.Split(row, ",")
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: %d columns", ErrMalformedRow, len(fields))
	}

	id, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: space id %q", ErrMalformedRow, fields[1])
	}

	space := palette.ColorSpace(id)
	if !space.Supported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedColorSpace, space)
	}

	values, err := parseColor(space, fields[2])
	if err != nil {
		return nil, err
	}

	return &palette.Swatch{
		Name:   fields[0],
		Space:  space,
		Values: values,
	}, nil
}

// parseColor converts a hex color field into channel values. Both 8 and 16
// bits per channel are accepted; 8-bit channels are scaled up to the 16-bit
// range the binary format uses.
func parseColor(space palette.ColorSpace, field string) ([]uint16, error) {
	digits := strings.TrimPrefix(field, "#")

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: color %q", ErrMalformedRow, field)
	}

	channels := space.Channels()
	values := make([]uint16, channels)

	switch len(raw) {
	case channels:
		for i, b := range raw {
			// Scaling by 257 maps 0x00..0xFF onto 0x0000..0xFFFF.
			values[i] = uint16(b) * 257
		}
	case 2 * channels:
		for i := range values {
			values[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
		}
	default:
		return nil, fmt.Errorf("%w: %d hex digits, %s takes %d or %d",
			ErrChannelLengthMismatch, len(digits), space, 2*channels, 4*channels)
	}

	return values, nil
}
