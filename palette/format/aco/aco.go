package aco

import (
	"errors"
	"math"
)

const (
	// channelSlots is the number of 16-bit channel slots present in every
	// record block, regardless of how many of them the color space uses.
	channelSlots = 4
	// channelBytes is the size of the raw channel data of a record block.
	channelBytes = channelSlots * 2
	// nameLenSize is the size of the name length field of a name block.
	nameLenSize = 4
	// terminatorSize is the size of the null terminator ending a name
	// block.
	terminatorSize = 2
	// nameBlockOverhead is the number of block bytes not taken by the
	// name itself. The block length field counts the bytes that follow
	// it: the name length field, the name and the terminator.
	nameBlockOverhead = nameLenSize + terminatorSize
	// maxNameUnits is the largest UTF-16 code unit count whose name block
	// still fits the 4-byte block length field.
	maxNameUnits = (math.MaxUint32 - nameBlockOverhead) / 2
)

var (
	// ErrUnsupportedVersion is returned by Decode when a header declares
	// a version other than 1 or 2.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrInconsistentCount is returned by Decode when the record counts
	// of the two file sections disagree.
	ErrInconsistentCount = errors.New("inconsistent record count")
	// ErrTruncated is returned by Decode when the input ends before the
	// structure it declares.
	ErrTruncated = errors.New("truncated swatch file")
	// ErrInvalidNameBlock is returned by Decode when a name block
	// declares a name longer than the block that carries it.
	ErrInvalidNameBlock = errors.New("invalid name block")
	// ErrMissingTerminator is returned by Decode when a name block does
	// not end with a null terminator and the decoder is strict.
	ErrMissingTerminator = errors.New("missing name terminator")
	// ErrInvalidText is returned by Decode when a name contains an
	// unpaired UTF-16 surrogate.
	ErrInvalidText = errors.New("invalid UTF-16 text")

	// ErrChannelCountMismatch is returned by Encode when the channel
	// values of a swatch do not match what its color space requires.
	ErrChannelCountMismatch = errors.New("channel count mismatch")
	// ErrNameTooLong is returned by Encode when the UTF-16 form of a name
	// does not fit the 4-byte block length field.
	ErrNameTooLong = errors.New("name too long")
	// ErrTooManyRecords is returned by Encode when a palette holds more
	// records than the 2-byte record count can carry.
	ErrTooManyRecords = errors.New("too many records")
)
