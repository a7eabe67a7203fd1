package csv

import (
	"bytes"

	"github.com/kdybicz/adobe-color-swatch/palette"
)

func (s *CsvSuite) TestEncode() {
	p := &palette.Palette{}
	p.Add("pure red", palette.RGB, 0xFFFF, 0x0000, 0x0000)
	p.Add("75% Gray", palette.Grayscale, 0x1D4C)

	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(p)
	s.NoError(err)

	s.Equal("name,space_id,color\n"+
		"pure red,0,FFFF00000000\n"+
		"75% Gray,8,1D4C\n", buf.String())
}

func (s *CsvSuite) TestEncodeEmptyPalette() {
	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(&palette.Palette{})
	s.NoError(err)

	s.Equal("name,space_id,color\n", buf.String())
}

func (s *CsvSuite) TestEncodeReproducesDecodedRow() {
	input := "name,space_id,color\n75% Gray,8,1D4C\n"

	p, err := s.decode(input)
	s.NoError(err)

	buf := bytes.NewBuffer(nil)
	err = NewEncoder(buf).Encode(p)
	s.NoError(err)

	s.Equal(input, buf.String())
}

func (s *CsvSuite) TestEncodeNormalizesHexCase() {
	p, err := s.decode("name,space_id,color\ngray,8,1d4c\n")
	s.NoError(err)

	buf := bytes.NewBuffer(nil)
	err = NewEncoder(buf).Encode(p)
	s.NoError(err)

	s.Equal("name,space_id,color\ngray,8,1D4C\n", buf.String())
}

func (s *CsvSuite) TestEncodeRoundTrip() {
	p := &palette.Palette{Version: palette.V2}
	p.Add("pure red", palette.RGB, 0xFFFF, 0x0000, 0x0000)
	p.Add("", palette.HSB, 0x0000, 0xFFFF, 0xFFFF)
	p.Add("pure cyan", palette.CMYK, 0x0000, 0xFFFF, 0xFFFF, 0xFFFF)
	p.Add("zażółć", palette.Grayscale, 0x2710)

	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(p)
	s.NoError(err)

	out := &palette.Palette{}
	err = NewDecoder(buf).Decode(out)
	s.NoError(err)

	s.Equal(p, out)
}

func (s *CsvSuite) TestEncodeUnsupportedColorSpace() {
	p := &palette.Palette{}
	p.Swatches = []*palette.Swatch{{
		Name:  "spot ink",
		Space: palette.Pantone,
		Raw:   []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}}

	err := NewEncoder(bytes.NewBuffer(nil)).Encode(p)
	s.ErrorIs(err, ErrUnsupportedColorSpace)
}

func (s *CsvSuite) TestEncodeChannelLengthMismatch() {
	p := &palette.Palette{}
	p.Add("red", palette.RGB, 0xFFFF, 0x0000)

	err := NewEncoder(bytes.NewBuffer(nil)).Encode(p)
	s.ErrorIs(err, ErrChannelLengthMismatch)
}

func (s *CsvSuite) TestEncodeMalformedName() {
	fixtures := []string{
		"red, but darker",
		"line\nbreak",
		"carriage\rreturn",
	}

	for _, name := range fixtures {
		p := &palette.Palette{}
		p.Add(name, palette.Grayscale, 0x1D4C)

		err := NewEncoder(bytes.NewBuffer(nil)).Encode(p)
		s.ErrorIs(err, ErrMalformedName, "name %q", name)
	}
}
