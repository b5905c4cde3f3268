package id3

import "bytes"

// EncodingDescriptor is the resolved meaning of a frame's encoding byte
// (plus, for the unicode-with-BOM case, the BOM bytes that follow it):
// which Codepage to use, what BOM bytes (if any) precede the content, and
// whether the content is stored in double-byte code units.
type EncodingDescriptor struct {
	Codepage     Codepage
	BOM          []byte
	DoubleByte   bool
	EncodingByte byte
}

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// unicodeBOMCandidates lists the descriptors tried, in order, when an
// encoding byte of 0x01 says "unicode, BOM tells you which". The last entry
// has an empty BOM and matches unconditionally, so it must stay last.
var unicodeBOMCandidates = []EncodingDescriptor{
	{Codepage: CodepageUTF16LE, BOM: bomUTF16LE, DoubleByte: true, EncodingByte: 0x01},
	{Codepage: CodepageUTF16BE, BOM: bomUTF16BE, DoubleByte: true, EncodingByte: 0x01},
	{Codepage: CodepageUTF8, BOM: bomUTF8, DoubleByte: false, EncodingByte: 0x01},
	{Codepage: CodepageUTF8, BOM: nil, DoubleByte: false, EncodingByte: 0x01},
}

// resolveEncoding resolves an encoding byte (nil meaning "not present",
// which defaults to 0x01) and the bytes that follow it to a concrete
// EncodingDescriptor. For the 0x01 case, content is consulted for a BOM
// prefix; the first candidate whose BOM is a prefix of content wins.
func resolveEncoding(encodingByte *byte, content []byte) (EncodingDescriptor, error) {
	b := byte(0x01)
	if encodingByte != nil {
		b = *encodingByte
	}

	switch b {
	case 0x00:
		return EncodingDescriptor{Codepage: CodepageISO88591, EncodingByte: 0x00}, nil
	case 0x01:
		for _, cand := range unicodeBOMCandidates {
			if bytes.HasPrefix(content, cand.BOM) {
				return cand, nil
			}
		}
		// unreachable: the last candidate's empty BOM always matches.
		return unicodeBOMCandidates[len(unicodeBOMCandidates)-1], nil
	case 0x02:
		return EncodingDescriptor{Codepage: CodepageUTF16BE, DoubleByte: true, EncodingByte: 0x02}, nil
	case 0x03:
		return EncodingDescriptor{Codepage: CodepageUTF8, EncodingByte: 0x03}, nil
	default:
		return EncodingDescriptor{}, newFormatError(UnknownEncodingByte, "byte value out of range")
	}
}
