package id3

import (
	"bytes"

	"github.com/pkg/errors"
)

// Comment is the decoded form of a COMM frame payload.
type Comment struct {
	Language    string
	Description string
	Text        string
}

// Popularity is the decoded form of a POPM frame payload.
type Popularity struct {
	Email     string
	Rating    byte
	PlayCount uint64
}

// Picture is the decoded form of an APIC frame payload.
type Picture struct {
	MIME        string
	PictureType byte
	Description string
	Data        []byte
}

// Decoder decodes and encodes the structured content of text, comment,
// popularimeter, and picture frame payloads for one ID3v2 major version.
// Its methods take/return raw payload bytes without the outer 10-byte
// frame header.
type Decoder struct {
	Major byte
}

// NewDecoder returns a Decoder configured for the given major version (3
// or 4). The caller is responsible for having already rejected any other
// major version.
func NewDecoder(major byte) *Decoder {
	return &Decoder{Major: major}
}

// defaultEncoding is the encoding this Decoder's major version uses when
// synthesizing new frame payloads: UTF-16LE with a BOM for v2.3, UTF-8
// without a BOM for v2.4.
func (d *Decoder) defaultEncoding() EncodingDescriptor {
	if d.Major == 3 {
		return EncodingDescriptor{Codepage: CodepageUTF16LE, BOM: bomUTF16LE, DoubleByte: true, EncodingByte: 0x01}
	}
	return EncodingDescriptor{Codepage: CodepageUTF8, EncodingByte: 0x03}
}

// DecodeString decodes a text-frame payload: byte 0 is the encoding byte,
// the rest is the content (BOM included when the encoding byte is 0x01).
func (d *Decoder) DecodeString(payload []byte) (string, error) {
	if len(payload) < 1 {
		return "", newArgumentError("payload", "text frame payload is empty")
	}
	encByte := payload[0]
	content := payload[1:]

	desc, err := resolveEncoding(&encByte, content)
	if err != nil {
		return "", err
	}
	if len(content) < len(desc.BOM) {
		return "", newFormatError(UnterminatedString, "text frame shorter than its own BOM")
	}
	content = content[len(desc.BOM):]

	s, err := decodeCodepage(content, desc.Codepage)
	if err != nil {
		return "", errors.Wrap(err, "decode string frame")
	}
	return s, nil
}

// EncodeString encodes s using this Decoder's default encoding, producing
// [encoding_byte][BOM bytes][encoded content].
func (d *Decoder) EncodeString(s string) []byte {
	desc := d.defaultEncoding()
	enc, _ := encodeCodepage(s, desc.Codepage)
	return concatBytes([]byte{desc.EncodingByte}, desc.BOM, enc)
}

// padLanguage pads or truncates lang to exactly 3 ASCII bytes, padding with
// spaces, matching the round-trip example in the spec where "en" becomes
// "en " after an encode/decode cycle.
func padLanguage(lang string) []byte {
	b := make([]byte, 3)
	for i := range b {
		b[i] = ' '
	}
	copy(b, []byte(lang))
	if len(lang) > 3 {
		copy(b, []byte(lang)[:3])
	}
	return b
}

// DecodeComment decodes a COMM frame payload: encoding byte, 3-byte
// language, then a null-terminated short description followed by the long
// text, both in the frame's encoding, both independently BOM-prefixed when
// the encoding calls for a BOM.
func (d *Decoder) DecodeComment(payload []byte) (Comment, error) {
	if len(payload) < 4 {
		return Comment{}, newArgumentError("payload", "comment payload shorter than language field")
	}
	encByte := payload[0]
	language := string(payload[1:4])
	rest := payload[4:]

	desc, err := resolveEncoding(&encByte, rest)
	if err != nil {
		return Comment{}, err
	}
	bomLen := len(desc.BOM)
	if len(rest) < bomLen {
		return Comment{}, newFormatError(UnterminatedString, "comment shorter than its own BOM")
	}
	shortContent := rest[bomLen:]

	termWidth := 1
	if desc.DoubleByte {
		termWidth = 2
	}
	nullPos, err := scanNullTerminator(shortContent, desc.DoubleByte)
	if err != nil {
		return Comment{}, errors.Wrap(err, "comment short description")
	}
	shortBytes := shortContent[:nullPos]
	afterShort := shortContent[nullPos+termWidth:]

	longContent := afterShort
	if len(longContent) >= bomLen {
		longContent = longContent[bomLen:]
	} else {
		longContent = nil
	}

	short, err := decodeCodepage(shortBytes, desc.Codepage)
	if err != nil {
		return Comment{}, errors.Wrap(err, "decode comment short description")
	}
	long, err := decodeCodepage(longContent, desc.Codepage)
	if err != nil {
		return Comment{}, errors.Wrap(err, "decode comment text")
	}

	return Comment{Language: language, Description: short, Text: long}, nil
}

// EncodeComment encodes c using this Decoder's default encoding. The BOM
// (if any) is repeated in front of both the short description and the
// long text, since each is independently null-terminated/delimited.
func (d *Decoder) EncodeComment(c Comment) []byte {
	desc := d.defaultEncoding()
	terminator := []byte{0}
	if desc.DoubleByte {
		terminator = []byte{0, 0}
	}

	shortEnc, _ := encodeCodepage(c.Description, desc.Codepage)
	longEnc, _ := encodeCodepage(c.Text, desc.Codepage)

	return concatBytes(
		[]byte{desc.EncodingByte},
		padLanguage(c.Language),
		desc.BOM, shortEnc, terminator,
		desc.BOM, longEnc,
	)
}

// DecodePopularity decodes a POPM frame payload: a null-terminated ASCII
// email, one rating byte, then a big-endian play count occupying whatever
// bytes remain.
func (d *Decoder) DecodePopularity(payload []byte) (Popularity, error) {
	nullPos := bytes.IndexByte(payload, 0)
	if nullPos < 0 {
		return Popularity{}, newFormatError(UnterminatedString, "popularity email")
	}
	email := string(payload[:nullPos])
	rest := payload[nullPos+1:]
	if len(rest) < 1 {
		return Popularity{}, newArgumentError("payload", "popularity payload missing rating byte")
	}
	rating := rest[0]

	var playCount uint64
	for _, b := range rest[1:] {
		playCount = playCount<<8 | uint64(b)
	}

	return Popularity{Email: email, Rating: rating, PlayCount: playCount}, nil
}

// DecodePicture decodes an APIC frame payload: encoding byte, a
// null-terminated ISO-8859-1 MIME type, one picture-type byte, a
// null-terminated description in the frame's encoding, then the raw
// picture bytes.
func (d *Decoder) DecodePicture(payload []byte) (Picture, error) {
	if len(payload) < 1 {
		return Picture{}, newArgumentError("payload", "picture payload is empty")
	}
	encByte := payload[0]
	rest := payload[1:]

	mimeNullPos := bytes.IndexByte(rest, 0)
	if mimeNullPos < 0 {
		return Picture{}, newFormatError(UnterminatedString, "picture mime type")
	}
	mime, err := decodeCodepage(rest[:mimeNullPos], CodepageISO88591)
	if err != nil {
		return Picture{}, errors.Wrap(err, "decode picture mime type")
	}

	afterMime := rest[mimeNullPos+1:]
	if len(afterMime) < 1 {
		return Picture{}, newArgumentError("payload", "picture payload missing picture-type byte")
	}
	pictureType := afterMime[0]
	descContent := afterMime[1:]

	desc, err := resolveEncoding(&encByte, descContent)
	if err != nil {
		return Picture{}, err
	}
	bomLen := len(desc.BOM)
	if len(descContent) < bomLen {
		return Picture{}, newFormatError(UnterminatedString, "picture description shorter than its own BOM")
	}
	descAfterBOM := descContent[bomLen:]

	termWidth := 1
	if desc.DoubleByte {
		termWidth = 2
	}
	nullPos, err := scanNullTerminator(descAfterBOM, desc.DoubleByte)
	if err != nil {
		return Picture{}, errors.Wrap(err, "picture description")
	}
	description, err := decodeCodepage(descAfterBOM[:nullPos], desc.Codepage)
	if err != nil {
		return Picture{}, errors.Wrap(err, "decode picture description")
	}
	data := descAfterBOM[nullPos+termWidth:]
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	return Picture{MIME: mime, PictureType: pictureType, Description: description, Data: dataCopy}, nil
}

// EncodePicture encodes p using this Decoder's default encoding for the
// description field; MIME type is always ISO-8859-1 per the wire format.
func (d *Decoder) EncodePicture(p Picture) []byte {
	desc := d.defaultEncoding()
	mimeEnc, _ := encodeCodepage(p.MIME, CodepageISO88591)
	descEnc, _ := encodeCodepage(p.Description, desc.Codepage)
	terminator := []byte{0}
	if desc.DoubleByte {
		terminator = []byte{0, 0}
	}

	return concatBytes(
		[]byte{desc.EncodingByte},
		mimeEnc, []byte{0},
		[]byte{p.PictureType},
		desc.BOM, descEnc, terminator,
		p.Data,
	)
}

// scanNullTerminator finds the position of the null terminator in content.
// For single-byte encodings this is the first zero byte. For double-byte
// encodings, only an aligned (even-offset) pair of zero bytes counts; a
// lone zero byte at an odd offset is not a terminator, and the scan
// advances past it one byte at a time rather than skipping two, so it
// can't step over a genuine aligned terminator that follows immediately.
func scanNullTerminator(content []byte, doubleByte bool) (int, error) {
	if !doubleByte {
		pos := bytes.IndexByte(content, 0)
		if pos < 0 {
			return 0, newFormatError(UnterminatedString, "no null terminator found")
		}
		return pos, nil
	}

	for i := 0; i+1 < len(content); i++ {
		if i%2 == 0 && content[i] == 0 && content[i+1] == 0 {
			return i, nil
		}
	}
	return 0, newFormatError(UnterminatedString, "no aligned double-byte null terminator found")
}
