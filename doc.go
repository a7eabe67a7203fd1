// A converter between Adobe Color Swatch (.aco) files and comma-separated
// value tables, usable as a library and through the cli/swatch command.
//
// The binary codec lives in palette/format/aco, the table codec in
// palette/format/csv, and both share the model defined in palette. This
// package ties them together with file-level operations.
package swatch
