package aco

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/kdybicz/adobe-color-swatch/palette"
	"github.com/kdybicz/adobe-color-swatch/utils/binary"
	"github.com/kdybicz/adobe-color-swatch/utils/trace"
)

// UTF-16 surrogate range bounds, as defined by RFC 2781.
const (
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000
)

// A Decoder reads swatch records from an input stream.
type Decoder struct {
	r io.Reader

	// StrictTerminator makes Decode fail with ErrMissingTerminator when
	// a name block does not end with a 2-byte null terminator. Files in
	// the wild omit the terminator, so by default it is tolerated.
	StrictTerminator bool
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads a whole swatch file from the input stream and stores it in
// the value pointed to by p. The input is consumed in a single linear pass:
// version 1 files end after their record blocks, and any bytes that follow
// them are left unread.
func (d *Decoder) Decode(p *palette.Palette) error {
	version, count, err := d.readHeader()
	if err != nil {
		return err
	}

	trace.Codec.Printf("aco: < version %d, %d records", version, count)

	p.Version = version
	p.Swatches = make([]*palette.Swatch, 0, count)

	for i := 0; i < int(count); i++ {
		sw, err := d.readRecord(i)
		if err != nil {
			return err
		}

		p.Swatches = append(p.Swatches, sw)
	}

	if version == palette.V1 {
		return nil
	}

	return d.readNames(p, count)
}

func (d *Decoder) readHeader() (palette.Version, uint16, error) {
	version, err := binary.ReadUint16(d.r)
	if err != nil {
		return 0, 0, truncated("header", err)
	}

	v := palette.Version(version)
	if v != palette.V1 && v != palette.V2 {
		return 0, 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	count, err := binary.ReadUint16(d.r)
	if err != nil {
		return 0, 0, truncated("header", err)
	}

	return v, count, nil
}

func (d *Decoder) readRecord(idx int) (*palette.Swatch, error) {
	space, err := binary.ReadUint16(d.r)
	if err != nil {
		return nil, truncated(fmt.Sprintf("record %d", idx), err)
	}

	var block [channelBytes]byte
	if _, err := io.ReadFull(d.r, block[:]); err != nil {
		return nil, truncated(fmt.Sprintf("record %d", idx), err)
	}

	sw := &palette.Swatch{Space: palette.ColorSpace(space)}
	if n := sw.Space.Channels(); n > 0 {
		sw.Values = make([]uint16, n)
		for i := range sw.Values {
			sw.Values[i] = uint16(block[2*i])<<8 | uint16(block[2*i+1])
		}
	} else {
		// The channel layout of unsupported color spaces is unknown,
		// so their bytes are carried verbatim instead of being
		// interpreted.
		sw.Raw = append([]byte(nil), block[:]...)
	}

	trace.Codec.Printf("aco: < record %d %s", idx, sw)
	return sw, nil
}

// readNames reads the second file section, pairing every name block with the
// record at the same position.
func (d *Decoder) readNames(p *palette.Palette, count uint16) error {
	version, err := binary.ReadUint16(d.r)
	if err != nil {
		return truncated("name section header", err)
	}

	if palette.Version(version) != palette.V2 {
		return fmt.Errorf("%w: %d in name section", ErrUnsupportedVersion, version)
	}

	nameCount, err := binary.ReadUint16(d.r)
	if err != nil {
		return truncated("name section header", err)
	}

	if nameCount != count {
		return fmt.Errorf("%w: %d records, %d names", ErrInconsistentCount, count, nameCount)
	}

	for i, sw := range p.Swatches {
		name, err := d.readName(i)
		if err != nil {
			return err
		}

		sw.Name = name
	}

	return nil
}

func (d *Decoder) readName(idx int) (string, error) {
	blockLen, err := binary.ReadUint32(d.r)
	if err != nil {
		return "", truncated(fmt.Sprintf("name block %d", idx), err)
	}

	if blockLen < nameLenSize {
		return "", fmt.Errorf("%w: block %d is %d bytes long", ErrInvalidNameBlock, idx, blockLen)
	}

	units, err := binary.ReadUint32(d.r)
	if err != nil {
		return "", truncated(fmt.Sprintf("name block %d", idx), err)
	}

	rest := uint64(blockLen) - nameLenSize
	if uint64(units)*2 > rest {
		return "", fmt.Errorf("%w: block %d declares %d code units in %d bytes",
			ErrInvalidNameBlock, idx, units, rest)
	}

	raw := make([]byte, 2*int(units))
	if _, err := io.ReadFull(d.r, raw); err != nil {
		return "", truncated(fmt.Sprintf("name block %d", idx), err)
	}

	name, err := decodeUTF16(raw)
	if err != nil {
		return "", fmt.Errorf("name block %d: %w", idx, err)
	}

	// Whatever remains of the block is the null terminator, which some
	// producers omit, possibly followed by trailing bytes the block
	// length lets us skip over.
	rest -= 2 * uint64(units)
	if d.StrictTerminator {
		if rest != terminatorSize {
			return "", fmt.Errorf("%w: name block %d", ErrMissingTerminator, idx)
		}

		term, err := binary.ReadUint16(d.r)
		if err != nil {
			return "", truncated(fmt.Sprintf("name block %d", idx), err)
		}

		if term != 0 {
			return "", fmt.Errorf("%w: name block %d ends with %#04x", ErrMissingTerminator, idx, term)
		}
	} else if rest > 0 {
		if _, err := io.CopyN(io.Discard, d.r, int64(rest)); err != nil {
			return "", truncated(fmt.Sprintf("name block %d", idx), err)
		}
	}

	trace.Codec.Printf("aco: < name %d %q", idx, name)
	return name, nil
}

// decodeUTF16 converts big-endian UTF-16 bytes into a string. Unlike
// utf16.Decode alone it fails on unpaired surrogates instead of replacing
// them with U+FFFD, so that malformed names are reported rather than
// silently rewritten.
func decodeUTF16(b []byte) (string, error) {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}

	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case surr1 <= u && u < surr2:
			// High surrogate, must be followed by a low one.
			if i+1 == len(units) || units[i+1] < surr2 || units[i+1] >= surr3 {
				return "", fmt.Errorf("%w: unpaired surrogate %#04x", ErrInvalidText, u)
			}

			i++
		case surr2 <= u && u < surr3:
			return "", fmt.Errorf("%w: unpaired surrogate %#04x", ErrInvalidText, u)
		}
	}

	return string(utf16.Decode(units)), nil
}

// truncated maps end-of-input errors to ErrTruncated, keeping the section
// that was being read. Other errors are returned as-is.
func truncated(section string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", ErrTruncated, section)
	}

	return err
}
