package id3

import "testing"

func TestResolveEncodingExplicitBytes(t *testing.T) {
	iso := byte(0x00)
	desc, err := resolveEncoding(&iso, nil)
	if err != nil || desc.Codepage != CodepageISO88591 {
		t.Fatalf("0x00: got %+v, err %v", desc, err)
	}

	be := byte(0x02)
	desc, err = resolveEncoding(&be, nil)
	if err != nil || desc.Codepage != CodepageUTF16BE || !desc.DoubleByte {
		t.Fatalf("0x02: got %+v, err %v", desc, err)
	}

	u8 := byte(0x03)
	desc, err = resolveEncoding(&u8, nil)
	if err != nil || desc.Codepage != CodepageUTF8 {
		t.Fatalf("0x03: got %+v, err %v", desc, err)
	}

	unknown := byte(0x7F)
	if _, err := resolveEncoding(&unknown, nil); err == nil {
		t.Fatal("expected an error for an unknown encoding byte")
	}
}

func TestResolveEncodingBOMDetection(t *testing.T) {
	cases := []struct {
		name    string
		content []byte
		want    Codepage
	}{
		{"utf16le bom", []byte{0xFF, 0xFE, 'a', 0}, CodepageUTF16LE},
		{"utf16be bom", []byte{0xFE, 0xFF, 0, 'a'}, CodepageUTF16BE},
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, 'a'}, CodepageUTF8},
		{"no bom falls back to utf8", []byte("plain"), CodepageUTF8},
	}

	for _, c := range cases {
		desc, err := resolveEncoding(nil, c.content)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if desc.Codepage != c.want {
			t.Errorf("%s: got %v, want %v", c.name, desc.Codepage, c.want)
		}
	}
}

func TestResolveEncodingDefaultsToUnicode(t *testing.T) {
	desc, err := resolveEncoding(nil, []byte("plain"))
	if err != nil {
		t.Fatal(err)
	}
	if desc.EncodingByte != 0x01 {
		t.Errorf("expected default encoding byte 0x01, got %#x", desc.EncodingByte)
	}
}
