package swatch

import (
	"bytes"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/kdybicz/adobe-color-swatch/palette"
	"github.com/kdybicz/adobe-color-swatch/palette/format/aco"
	"github.com/kdybicz/adobe-color-swatch/palette/format/csv"
	"github.com/kdybicz/adobe-color-swatch/utils/ioutil"
	"github.com/kdybicz/adobe-color-swatch/utils/trace"
)

// Extract reads the swatch file at acoPath and writes its colors to csvPath
// as a table. The output file is written only after the whole input has been
// decoded and converted, so a malformed input never leaves a partial table
// behind.
func Extract(fs billy.Filesystem, acoPath, csvPath string) (err error) {
	trace.General.Printf("swatch: extracting %q to %q", acoPath, csvPath)

	f, err := fs.Open(acoPath)
	if err != nil {
		return err
	}

	defer ioutil.CheckClose(f, &err)

	p := &palette.Palette{}
	if err := aco.NewDecoder(f).Decode(p); err != nil {
		return err
	}

	buf := bytes.NewBuffer(nil)
	if err := csv.NewEncoder(buf).Encode(p); err != nil {
		return err
	}

	return util.WriteFile(fs, csvPath, buf.Bytes(), 0o644)
}

// Generate reads the table at csvPath and writes its colors to acoPath as a
// swatch file, in the version 2 layout. As with Extract, nothing is written
// until the whole input has been converted.
func Generate(fs billy.Filesystem, csvPath, acoPath string) (err error) {
	trace.General.Printf("swatch: generating %q from %q", acoPath, csvPath)

	f, err := fs.Open(csvPath)
	if err != nil {
		return err
	}

	defer ioutil.CheckClose(f, &err)

	p := &palette.Palette{}
	if err := csv.NewDecoder(f).Decode(p); err != nil {
		return err
	}

	buf := bytes.NewBuffer(nil)
	if err := aco.NewEncoder(buf).Encode(p); err != nil {
		return err
	}

	return util.WriteFile(fs, acoPath, buf.Bytes(), 0o644)
}

// PlainExtract is like Extract but operates on the host filesystem.
func PlainExtract(acoPath, csvPath string) error {
	return Extract(osfs.New("/"), acoPath, csvPath)
}

// PlainGenerate is like Generate but operates on the host filesystem.
func PlainGenerate(csvPath, acoPath string) error {
	return Generate(osfs.New("/"), csvPath, acoPath)
}
