// Package csv implements reading and writing swatch palettes as rows of
// comma-separated values.
//
// The table has a fixed header and one row per swatch:
//
//	name,space_id,color
//	75% Gray,8,1D4C
//
// The color column is the hex encoding of the meaningful channel values,
// written uppercase with 16 bits per channel and no separators. On read,
// colors with 8 bits per channel are accepted as well and are scaled up,
// and a leading '#' is tolerated. Fields support no quoting or escaping,
// so names containing commas or line breaks cannot be represented.
//
// Only swatches in a supported color space can cross the text boundary.
// The channel layout of the other color spaces is unknown, so a row
// declaring one cannot be turned back into channel data.
package csv

import "errors"

// Header is the first line of every palette table.
const Header = "name,space_id,color"

var (
	// ErrInvalidHeader is returned by Decode when the input does not
	// start with Header.
	ErrInvalidHeader = errors.New("invalid table header")
	// ErrMalformedRow is returned by Decode when a row does not have
	// exactly three columns, its space id is not a number, or its color
	// is not an even number of hex digits.
	ErrMalformedRow = errors.New("malformed row")
	// ErrChannelLengthMismatch is returned by Decode when the hex digit
	// count of a color does not match the channel width of the declared
	// color space, and by Encode when the channel values of a swatch do
	// not match what its color space requires.
	ErrChannelLengthMismatch = errors.New("channel length mismatch")
	// ErrUnsupportedColorSpace is returned by Decode and Encode for
	// swatches whose color space carries no typed channel values.
	ErrUnsupportedColorSpace = errors.New("unsupported color space")
	// ErrMalformedName is returned by Encode when a name cannot be
	// written without quoting, which the table does not support.
	ErrMalformedName = errors.New("malformed name")
)
