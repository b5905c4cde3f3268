package id3

import "testing"

func TestFrameFlagsDefaults(t *testing.T) {
	var f FrameFlags
	if !f.PreserveTagAlteration() || !f.PreserveFileAlteration() {
		t.Error("a zero FrameFlags should preserve on both tag and file alteration")
	}
	if f.ReadOnly() || f.Compressed() || f.Encrypted() || f.Grouped() {
		t.Error("a zero FrameFlags should have none of the status bits set")
	}
}

func TestFrameFlagsBits(t *testing.T) {
	f := FrameFlags(0x4000 | 0x1000 | 0x0040)
	if f.PreserveTagAlteration() {
		t.Error("expected PreserveTagAlteration to be false when 0x4000 is set")
	}
	if !f.PreserveFileAlteration() {
		t.Error("0x2000 was not set, PreserveFileAlteration should stay true")
	}
	if !f.ReadOnly() {
		t.Error("expected ReadOnly to be true")
	}
	if !f.Encrypted() {
		t.Error("expected Encrypted to be true")
	}
	if f.Compressed() || f.Grouped() {
		t.Error("compressed/grouped bits were not set")
	}
}

func TestFrameWriteSerializesHeaderAndPayload(t *testing.T) {
	f := &Frame{ID: "TALB", Offset: frameHeaderSize + tagHeaderSize, Flags: 0, payload: []byte("Album Name")}

	buf := make([]byte, 64)
	bf := NewMemoryByteFile(buf)

	if err := f.Write(bf); err != nil {
		t.Fatal(err)
	}

	header, err := bf.ReadSlice(tagHeaderSize, frameHeaderSize)
	if err != nil {
		t.Fatal(err)
	}
	if string(header[0:4]) != "TALB" {
		t.Errorf("got frame id %q", header[0:4])
	}
	size := int(header[4])<<24 | int(header[5])<<16 | int(header[6])<<8 | int(header[7])
	if size != len("Album Name") {
		t.Errorf("got size %d, want %d", size, len("Album Name"))
	}
	if header[8] != 0 || header[9] != 0 {
		t.Errorf("expected zero flags, got %x %x", header[8], header[9])
	}

	payload, err := bf.ReadSlice(tagHeaderSize+frameHeaderSize, len("Album Name"))
	if err != nil {
		t.Fatal(err)
	}
	if string(payload) != "Album Name" {
		t.Errorf("got payload %q", payload)
	}
}

func TestFrameWriteRejectsShortID(t *testing.T) {
	f := &Frame{ID: "AB", Offset: tagHeaderSize + frameHeaderSize, payload: []byte("x")}
	bf := NewMemoryByteFile(make([]byte, 32))

	if err := f.Write(bf); err == nil {
		t.Fatal("expected an error writing a frame with a malformed id")
	}
}

func TestFramePayloadIsACopy(t *testing.T) {
	f := allocateFrame("TIT2", []byte("Title"))
	p := f.Payload()
	p[0] = 'X'
	if f.Payload()[0] != 'T' {
		t.Error("mutating the slice returned by Payload must not affect the frame")
	}
}

func TestFrameSetPayloadUpdatesSize(t *testing.T) {
	f := allocateFrame("TIT2", []byte("Title"))
	if f.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", f.Size())
	}
	f.SetPayload([]byte("A Much Longer Title"))
	if f.Size() != len("A Much Longer Title") {
		t.Errorf("Size() = %d, want %d", f.Size(), len("A Much Longer Title"))
	}
}
