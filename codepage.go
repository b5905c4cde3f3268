package id3

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Codepage identifies one of the byte<->string conversions ID3v2 frame
// payloads can carry. It intentionally does not correspond 1:1 to the
// encoding byte in a frame payload — that mapping, including BOM detection,
// lives in EncodingTable.
type Codepage int

const (
	CodepageISO88591 Codepage = iota
	CodepageUTF8
	CodepageUTF16LE
	CodepageUTF16BE
)

func (c Codepage) String() string {
	switch c {
	case CodepageISO88591:
		return "ISO-8859-1"
	case CodepageUTF8:
		return "UTF-8"
	case CodepageUTF16LE:
		return "UTF-16LE"
	case CodepageUTF16BE:
		return "UTF-16BE"
	default:
		return "unknown codepage"
	}
}

var (
	iso88591Decoder = charmap.ISO8859_1.NewDecoder()
	iso88591Encoder = charmap.ISO8859_1.NewEncoder()
	utf16leDecoder  = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	utf16leEncoder  = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
)

// decodeCodepage decodes raw bytes (with any BOM already stripped by the
// caller) into a Go string. ISO-8859-1 and UTF-16LE go through x/text;
// UTF-8 is decoded directly since Go strings already are UTF-8; UTF-16BE is
// handled by byte-swapping into UTF-16LE order first, per the historical
// behavior this package's write-up calls out explicitly rather than
// dispatching straight to a big-endian decoder.
func decodeCodepage(b []byte, cp Codepage) (string, error) {
	switch cp {
	case CodepageISO88591:
		out, _, err := transform.Bytes(iso88591Decoder, b)
		if err != nil {
			return "", errors.Wrap(err, "decode ISO-8859-1")
		}
		return string(out), nil
	case CodepageUTF8:
		return string(b), nil
	case CodepageUTF16LE:
		out, _, err := transform.Bytes(utf16leDecoder, b)
		if err != nil {
			return "", errors.Wrap(err, "decode UTF-16LE")
		}
		return string(out), nil
	case CodepageUTF16BE:
		return decodeCodepage(swapByteOrder16(b), CodepageUTF16LE)
	default:
		return "", newFormatError(UnknownEncodingByte, cp.String())
	}
}

// encodeCodepage encodes a Go string into raw bytes without emitting a BOM.
// Only ISO-8859-1, UTF-8, and UTF-16LE are valid encode targets; callers
// that need BOM bytes or a terminator prepend/append them separately.
func encodeCodepage(s string, cp Codepage) ([]byte, error) {
	switch cp {
	case CodepageISO88591:
		out, _, err := transform.Bytes(iso88591Encoder, []byte(s))
		if err != nil {
			return nil, errors.Wrap(err, "encode ISO-8859-1")
		}
		return out, nil
	case CodepageUTF8:
		return []byte(s), nil
	case CodepageUTF16LE:
		out, _, err := transform.Bytes(utf16leEncoder, []byte(s))
		if err != nil {
			return nil, errors.Wrap(err, "encode UTF-16LE")
		}
		return out, nil
	default:
		return nil, newFormatError(UnknownEncodingByte, cp.String())
	}
}

// swapByteOrder16 swaps each pair of bytes in place on a copy of b, turning
// a big-endian UTF-16 byte stream into little-endian order. A trailing odd
// byte, which would indicate malformed input, is left untouched.
func swapByteOrder16(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	for i := 0; i+1 < len(out); i += 2 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}
