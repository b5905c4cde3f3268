package id3

import "encoding/binary"

// FrameID is an opaque 4-byte ASCII frame identifier. The package does not
// enumerate known ids; any value that decodes to 4 printable ASCII bytes is
// accepted.
type FrameID string

// FrameFlags is the two-byte frame flags field, exposed for informational
// purposes only — this package neither generates nor interprets compressed,
// encrypted, or grouped frames (see Non-goals).
type FrameFlags uint16

func (f FrameFlags) PreserveTagAlteration() bool  { return f&0x4000 == 0 }
func (f FrameFlags) PreserveFileAlteration() bool { return f&0x2000 == 0 }
func (f FrameFlags) ReadOnly() bool               { return f&0x1000 != 0 }
func (f FrameFlags) Compressed() bool             { return uint16(f)&frameFlagCompressed != 0 }
func (f FrameFlags) Encrypted() bool              { return uint16(f)&frameFlagEncrypted != 0 }
func (f FrameFlags) Grouped() bool                { return uint16(f)&frameFlagGrouped != 0 }

// Frame is the in-memory record for one ID3v2 frame: its identifier, the
// absolute byte offset of its payload within the source file, its flags,
// and the raw payload bytes. The offset invariant — offset equals
// header-size plus the sum of (frame-header-size + payload-size) for all
// prior frames — is maintained by TagData.realignFrames, not by Frame
// itself.
type Frame struct {
	ID      FrameID
	Offset  int64
	Flags   FrameFlags
	payload []byte
}

// allocateFrame creates a Frame with the given payload at offset 0; the
// caller (TagData.allocateFrame) is responsible for realigning it into the
// frame list.
func allocateFrame(id FrameID, payload []byte) *Frame {
	buf := make([]byte, len(payload))
	copy(buf, payload)
	return &Frame{ID: id, Offset: 0, payload: buf}
}

// Size returns the payload size in bytes.
func (f *Frame) Size() int { return len(f.payload) }

// Payload returns a copy of the frame's payload bytes.
func (f *Frame) Payload() []byte {
	out := make([]byte, len(f.payload))
	copy(out, f.payload)
	return out
}

// SetPayload replaces the frame's payload. The frame's size becomes
// len(b); the caller is responsible for realigning subsequent frames.
func (f *Frame) SetPayload(b []byte) {
	buf := make([]byte, len(b))
	copy(buf, b)
	f.payload = buf
}

// Write positions bf's cursor to offset-frameHeaderSize and emits the
// frame's 10-byte header followed by its payload.
func (f *Frame) Write(bf ByteFile) error {
	if len(f.ID) != 4 {
		return newArgumentError("frame.ID", "frame identifier must be 4 bytes")
	}

	header := make([]byte, frameHeaderSize)
	copy(header[0:4], []byte(f.ID))
	binary.BigEndian.PutUint32(header[4:8], uint32(len(f.payload)))
	binary.BigEndian.PutUint16(header[8:10], uint16(f.Flags))

	if _, err := bf.Seek(f.Offset-frameHeaderSize, SeekFromStart); err != nil {
		return err
	}
	if _, err := bf.Write(header); err != nil {
		return err
	}
	if _, err := bf.Write(f.payload); err != nil {
		return err
	}
	return nil
}
