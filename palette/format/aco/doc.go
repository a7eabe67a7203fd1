// Package aco implements encoding and decoding of Adobe Color Swatch
// (.aco) files.
//
// Swatch files have the format:
//   - A 2-byte version tag (= 1 or 2).
//   - A 2-byte record count.
//   - One record block per record: a 2-byte color space identifier
//     followed by 8 bytes of channel data, four unsigned 16-bit values
//     of which the color space determines how many are meaningful.
//   - In version 2 files, a second header (a 2-byte version tag = 2 and
//     a 2-byte record count that must match the first), followed by one
//     name block per record: a 4-byte block length counting the bytes
//     remaining in the block, a 4-byte name length in UTF-16 code units,
//     the name as big-endian UTF-16 text, and a 2-byte null terminator.
//
// All numbers are unsigned big-endian. Version 1 files stop after the
// record blocks and carry no names. Version 2 name blocks are paired
// positionally with the record blocks of the first section.
package aco
