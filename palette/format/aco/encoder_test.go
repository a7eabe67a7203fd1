package aco

import (
	"bytes"
	"math"

	"github.com/kdybicz/adobe-color-swatch/palette"
)

func (s *AcoSuite) TestEncode() {
	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(twoColorPalette())
	s.NoError(err)

	s.Equal(twoColorFile(), buf.Bytes())
}

func (s *AcoSuite) TestEncodeRGBRecordLayout() {
	p := &palette.Palette{}
	p.Add("", palette.RGB, 0x1122, 0x3344, 0x5566)

	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(p)
	s.NoError(err)

	data := buf.Bytes()
	s.Equal([]byte{0x00, 0x00}, data[4:6], "space id")
	s.Equal([]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}, data[6:12], "channel values")
	s.Equal([]byte{0x00, 0x00}, data[12:14], "zero padding")
}

func (s *AcoSuite) TestEncodeEmptyPalette() {
	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(&palette.Palette{})
	s.NoError(err)

	s.Equal([]byte{0x00, 0x02, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00}, buf.Bytes())
}

func (s *AcoSuite) TestEncodeEmptyName() {
	p := &palette.Palette{}
	p.Add("", palette.Grayscale, 0x1D4C)

	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(p)
	s.NoError(err)

	// An empty name still gets a block: length fields plus terminator.
	s.Equal([]byte{
		0x00, 0x00, 0x00, 0x06,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00,
	}, buf.Bytes()[18:])
}

func (s *AcoSuite) TestEncodeRoundTrip() {
	p := &palette.Palette{Version: palette.V2}
	p.Add("pure red", palette.RGB, 0xFFFF, 0x0000, 0x0000)
	p.Add("", palette.HSB, 0x0000, 0xFFFF, 0xFFFF)
	p.Add("pure cyan", palette.CMYK, 0x0000, 0xFFFF, 0xFFFF, 0xFFFF)
	p.Add("zażółć 🎨", palette.Grayscale, 0x2710)

	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(p)
	s.NoError(err)

	out := &palette.Palette{}
	err = NewDecoder(buf).Decode(out)
	s.NoError(err)

	s.Equal(p, out)
}

func (s *AcoSuite) TestEncodeRoundTripUpgradesVersion() {
	p := &palette.Palette{Version: palette.V1}
	p.Add("", palette.Grayscale, 0x1D4C)

	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(p)
	s.NoError(err)

	out := &palette.Palette{}
	err = NewDecoder(buf).Decode(out)
	s.NoError(err)

	s.Equal(palette.V2, out.Version)
}

func (s *AcoSuite) TestEncodeOpaqueRoundTrip() {
	p := &palette.Palette{Version: palette.V2}
	p.Swatches = []*palette.Swatch{{
		Name:  "spot ink",
		Space: palette.HKS,
		Raw:   []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
	}}

	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(p)
	s.NoError(err)

	out := &palette.Palette{}
	err = NewDecoder(buf).Decode(out)
	s.NoError(err)

	s.Equal(p, out)
}

func (s *AcoSuite) TestEncodeCanonicalizesPadding() {
	// An RGB record block with a non-zero fourth channel slot.
	data := []byte{
		0x00, 0x01,
		0x00, 0x01,
		0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0xBE, 0xEF,
	}

	p := &palette.Palette{}
	err := NewDecoder(bytes.NewReader(data)).Decode(p)
	s.NoError(err)

	buf := bytes.NewBuffer(nil)
	err = NewEncoder(buf).Encode(p)
	s.NoError(err)

	s.Equal([]byte{0x00, 0x00}, buf.Bytes()[12:14], "padding is rewritten as zero")
}

func (s *AcoSuite) TestEncodeChannelCountMismatch() {
	fixtures := map[string]*palette.Swatch{
		"too few values":      {Space: palette.RGB, Values: []uint16{0xFFFF, 0x0000}},
		"too many values":     {Space: palette.RGB, Values: []uint16{1, 2, 3, 4}},
		"no values":           {Space: palette.Grayscale},
		"short opaque record": {Space: palette.Pantone, Raw: []byte{0x01, 0x02}},
		"no opaque bytes":     {Space: palette.HKS},
	}

	for desc, sw := range fixtures {
		p := &palette.Palette{Swatches: []*palette.Swatch{sw}}
		err := NewEncoder(bytes.NewBuffer(nil)).Encode(p)
		s.ErrorIs(err, ErrChannelCountMismatch, desc)
	}
}

func (s *AcoSuite) TestEncodeTooManyRecords() {
	sw := &palette.Swatch{Space: palette.Grayscale, Values: []uint16{0}}
	p := &palette.Palette{Swatches: make([]*palette.Swatch, math.MaxUint16+1)}
	for i := range p.Swatches {
		p.Swatches[i] = sw
	}

	err := NewEncoder(bytes.NewBuffer(nil)).Encode(p)
	s.ErrorIs(err, ErrTooManyRecords)
}
