package id3

import "testing"

func TestCodepageISO88591RoundTrip(t *testing.T) {
	s := "Ein etwas kürzerer Text mit wenigen Umlauten: äöüß"
	enc, err := encodeCodepage(s, CodepageISO88591)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := decodeCodepage(enc, CodepageISO88591)
	if err != nil {
		t.Fatal(err)
	}
	if dec != s {
		t.Errorf("round trip mismatch: got %q, want %q", dec, s)
	}
}

func TestCodepageUTF16LERoundTrip(t *testing.T) {
	s := "Just a test: äüö 日本語"
	enc, err := encodeCodepage(s, CodepageUTF16LE)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := decodeCodepage(enc, CodepageUTF16LE)
	if err != nil {
		t.Fatal(err)
	}
	if dec != s {
		t.Errorf("round trip mismatch: got %q, want %q", dec, s)
	}
}

func TestCodepageUTF16BEDecode(t *testing.T) {
	// "AB" as big-endian UTF-16: 0x0041 0x0042.
	in := []byte{0x00, 0x41, 0x00, 0x42}
	dec, err := decodeCodepage(in, CodepageUTF16BE)
	if err != nil {
		t.Fatal(err)
	}
	if dec != "AB" {
		t.Errorf("got %q, want %q", dec, "AB")
	}
}

func TestCodepageUTF8PassThrough(t *testing.T) {
	s := "plain utf-8 text"
	enc, err := encodeCodepage(s, CodepageUTF8)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := decodeCodepage(enc, CodepageUTF8)
	if err != nil {
		t.Fatal(err)
	}
	if dec != s {
		t.Errorf("got %q, want %q", dec, s)
	}
}

func TestCodepageUnknownEncodeTarget(t *testing.T) {
	if _, err := encodeCodepage("x", CodepageUTF16BE); err == nil {
		t.Fatal("expected an error encoding to UTF-16BE, got nil")
	}
}
