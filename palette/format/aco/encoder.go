package aco

import (
	"fmt"
	"io"
	"math"
	"unicode/utf16"

	"github.com/kdybicz/adobe-color-swatch/palette"
	"github.com/kdybicz/adobe-color-swatch/utils/binary"
	"github.com/kdybicz/adobe-color-swatch/utils/trace"
)

// An Encoder writes swatch records to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the palette to the output stream in the version 2 layout,
// regardless of p.Version: all record blocks first, then the name section.
// Decoders aware only of version 1 read the record blocks and stop before
// the name section, so every encoded file serves both.
//
// Channel slots beyond what the color space uses are always written as
// zero. The output is a canonical serialization, not a byte-exact copy of
// whatever padding was present when the palette was decoded.
func (e *Encoder) Encode(p *palette.Palette) error {
	if len(p.Swatches) > math.MaxUint16 {
		return fmt.Errorf("%w: %d", ErrTooManyRecords, len(p.Swatches))
	}

	count := uint16(len(p.Swatches))

	trace.Codec.Printf("aco: > version %d, %d records", palette.V2, count)

	if err := binary.Write(e.w, uint16(palette.V2), count); err != nil {
		return err
	}

	for i, sw := range p.Swatches {
		if err := e.encodeRecord(i, sw); err != nil {
			return err
		}
	}

	if err := binary.Write(e.w, uint16(palette.V2), count); err != nil {
		return err
	}

	for i, sw := range p.Swatches {
		if err := e.encodeName(i, sw); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) encodeRecord(idx int, sw *palette.Swatch) error {
	trace.Codec.Printf("aco: > record %d %s", idx, sw)

	if err := binary.WriteUint16(e.w, uint16(sw.Space)); err != nil {
		return err
	}

	if !sw.Space.Supported() {
		if len(sw.Raw) != channelBytes {
			return fmt.Errorf("%w: record %d carries %d raw channel bytes, want %d",
				ErrChannelCountMismatch, idx, len(sw.Raw), channelBytes)
		}

		return binary.Write(e.w, sw.Raw)
	}

	if len(sw.Values) != sw.Space.Channels() {
		return fmt.Errorf("%w: record %d has %d channel values, %s requires %d",
			ErrChannelCountMismatch, idx, len(sw.Values), sw.Space, sw.Space.Channels())
	}

	var block [channelSlots]uint16
	copy(block[:], sw.Values)

	return binary.Write(e.w, block)
}

func (e *Encoder) encodeName(idx int, sw *palette.Swatch) error {
	units := utf16.Encode([]rune(sw.Name))
	if len(units) > maxNameUnits {
		return fmt.Errorf("%w: record %d name takes %d UTF-16 code units",
			ErrNameTooLong, idx, len(units))
	}

	blockLen := nameBlockOverhead + 2*uint32(len(units))
	if err := binary.Write(e.w, blockLen, uint32(len(units)), units); err != nil {
		return err
	}

	return binary.WriteUint16(e.w, 0)
}
