package id3

// Sizes fixed by the ID3v2 wire format.
const (
	tagHeaderSize   = 10
	tagFooterSize   = 10
	frameHeaderSize = 10
)

var (
	tagMagic    = [3]byte{'I', 'D', '3'}
	footerMagic = [3]byte{'3', 'D', 'I'}
)

// Header flag bits (byte 5 of the tag header).
const (
	headerFlagUnsynchronisation byte = 0x80
	headerFlagExtendedHeader    byte = 0x40
	headerFlagExperimental      byte = 0x20
	headerFlagFooterPresent     byte = 0x10
)

// Frame flag bits (second byte of the 2-byte frame flags field).
const (
	frameFlagCompressed uint16 = 0x0080
	frameFlagEncrypted  uint16 = 0x0040
	frameFlagGrouped    uint16 = 0x0020
)
