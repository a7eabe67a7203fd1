package csv

import (
	"fmt"
	"io"
	"strings"

	"github.com/kdybicz/adobe-color-swatch/palette"
	"github.com/kdybicz/adobe-color-swatch/utils/trace"
)

// An Encoder writes a palette table to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the palette to the output stream, the header line first and
// one row per swatch, in palette order.
func (e *Encoder) Encode(p *palette.Palette) error {
	if _, err := fmt.Fprintln(e.w, Header); err != nil {
		return err
	}

	for i, sw := range p.Swatches {
		if err := e.encodeRow(i, sw); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) encodeRow(idx int, sw *palette.Swatch) error {
	if !sw.Space.Supported() {
		return fmt.Errorf("%w: record %d is %s", ErrUnsupportedColorSpace, idx, sw.Space)
	}

	if len(sw.Values) != sw.Space.Channels() {
		return fmt.Errorf("%w: record %d has %d channel values, %s requires %d",
			ErrChannelLengthMismatch, idx, len(sw.Values), sw.Space, sw.Space.Channels())
	}

	if strings.ContainsAny(sw.Name, ",\r\n") {
		return fmt.Errorf("%w: %q needs escaping", ErrMalformedName, sw.Name)
	}

	trace.Codec.Printf("csv: > row %d %s", idx, sw)

	var color strings.Builder
	for _, v := range sw.Values {
		fmt.Fprintf(&color, "%04X", v)
	}

	_, err := fmt.Fprintf(e.w, "%s,%d,%s\n", sw.Name, uint16(sw.Space), color.String())
	return err
}
