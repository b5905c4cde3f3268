package id3

// Version is an ID3v2 major.minor version pair. ReadTag only accepts major
// versions 3 and 4 (any other major is an UnsupportedVersion error) and
// reports the minor version back unchanged.
type Version struct {
	Major byte
	Minor byte
}

// paddingRegion describes the run of zero bytes between the last frame and
// the footer (or audio, if there is no footer).
type paddingRegion struct {
	Offset int64
	Size   int
}

// TagData is the in-memory, mutable representation of one file's ID3v2 tag:
// its version, header flags, ordered frame list, padding, and the offset
// where audio data begins. All mutation happens through its methods;
// nothing is written back to source until Save or WriteTo is called.
type TagData struct {
	source ByteFile
	path   string

	Version     Version
	HeaderFlags byte

	frames  []*Frame
	padding paddingRegion

	// tagEnd is the absolute offset of the first byte after the tag
	// (after the footer, if present), recomputed as frames are mutated.
	// It is where audio data will begin once the tag is next saved.
	tagEnd int64

	// sourceAudioStart is where audio data actually begins in the file
	// source was opened against, fixed at load time. It never changes as
	// tagEnd grows or shrinks with edits — it is the only offset a
	// pre-save read of the original audio bytes may use.
	sourceAudioStart int64

	hasFooter bool
	dirty     bool
	rewrite   bool

	decoder *Decoder
}

// NoHeader returns an empty TagData not yet associated with any frames,
// suitable for a file that has no ID3v2 tag at all. Its audio region is
// the entire file, starting at offset 0. tagEnd starts at tagHeaderSize,
// not 0, so it stays consistent with padding.Offset — realignFrames grows
// tagEnd by how far padding.Size goes negative, which only produces the
// right answer if tag_end = padding.offset + padding.size holds before
// the first frame is ever added.
func NoHeader(major, minor byte) *TagData {
	return &TagData{
		Version:          Version{Major: major, Minor: minor},
		tagEnd:           tagHeaderSize,
		sourceAudioStart: 0,
		padding:          paddingRegion{Offset: tagHeaderSize, Size: 0},
		decoder:          NewDecoder(major),
		rewrite:          true,
	}
}

// Decoder returns the Decoder bound to this tag's major version, for
// callers that want to decode/encode frame payloads directly.
func (t *TagData) Decoder() *Decoder { return t.decoder }

// Close releases the source file ReadTag opened, if any. Call it when
// done with a TagData obtained from ReadTag.
func (t *TagData) Close() error {
	if t.source == nil {
		return nil
	}
	err := t.source.Close()
	t.source = nil
	return err
}

// GetFrame returns the first frame with the given id, or nil if there is
// none.
func (t *TagData) GetFrame(id FrameID) *Frame {
	for _, f := range t.frames {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// GetFrames returns every frame with the given id, in tag order. The
// returned slice is owned by the caller.
func (t *TagData) GetFrames(id FrameID) []*Frame {
	var out []*Frame
	for _, f := range t.frames {
		if f.ID == id {
			out = append(out, f)
		}
	}
	return out
}

// AllFrames returns every frame in the tag, in tag order. The returned
// slice is owned by the caller.
func (t *TagData) AllFrames() []*Frame {
	out := make([]*Frame, len(t.frames))
	copy(out, t.frames)
	return out
}

// GetFrameBuffer returns the payload of the first frame with the given id,
// or nil if there is none.
func (t *TagData) GetFrameBuffer(id FrameID) []byte {
	f := t.GetFrame(id)
	if f == nil {
		return nil
	}
	return f.Payload()
}

// GetFrameBuffers returns the payloads of every frame with the given id.
func (t *TagData) GetFrameBuffers(id FrameID) [][]byte {
	var out [][]byte
	for _, f := range t.frames {
		if f.ID == id {
			out = append(out, f.Payload())
		}
	}
	return out
}

// SetFrameBuffer delegates to reallocateFrame, as spec'd: create the frame
// if absent, leave the tag untouched if the payload is unchanged, otherwise
// replace it and realign.
func (t *TagData) SetFrameBuffer(id FrameID, payload []byte) {
	t.reallocateFrame(id, payload)
}

// reallocateFrame is the mutation path SetFrameBuffer funnels through.
// AddFrame bypasses it and calls allocateFrame directly, so that it always
// appends.
func (t *TagData) reallocateFrame(id FrameID, payload []byte) *Frame {
	f := t.GetFrame(id)
	if f == nil {
		return t.allocateFrame(id, payload)
	}
	if bytesEqual(f.Payload(), payload) {
		return f
	}
	oldSize := f.Size()
	f.SetPayload(payload)
	if f.Size() != oldSize {
		t.realignFrames()
	}
	t.dirty = true
	return f
}

// AddFrame appends a new frame with the given id and payload, even if one
// with that id already exists — used for multi-valued frame types such as
// COMM and APIC, where SetFrameBuffer's replace-first-match semantics would
// be wrong.
func (t *TagData) AddFrame(id FrameID, payload []byte) *Frame {
	return t.allocateFrame(id, payload)
}

// RemoveFrame removes every frame with the given id, then realigns if any
// were removed. It returns how many frames were removed.
func (t *TagData) RemoveFrame(id FrameID) int {
	n := 0
	out := t.frames[:0]
	for _, f := range t.frames {
		if f.ID == id {
			n++
			continue
		}
		out = append(out, f)
	}
	t.frames = out
	if n > 0 {
		t.realignFrames()
		t.dirty = true
	}
	return n
}

// allocateFrame creates a new frame with payload bytes, appends it to the
// frame list, and realigns.
func (t *TagData) allocateFrame(id FrameID, payload []byte) *Frame {
	f := allocateFrame(id, payload)
	t.frames = append(t.frames, f)
	t.realignFrames()
	t.dirty = true
	return f
}

// realignFrames walks the frame list in order, assigning each frame's
// offset and advancing a running cursor by header-size plus payload size.
// It then reconciles the padding region against however far the cursor
// moved relative to where padding previously started: padding.offset moves
// by the same delta the frame content grew or shrank by, and padding.size
// shrinks by that delta. If that would make padding.size negative, the tag
// is grown to fit and a full rewrite is forced, since the new frame content
// now reaches past the original audio start.
func (t *TagData) realignFrames() {
	cursor := int64(tagHeaderSize)
	for _, f := range t.frames {
		cursor += frameHeaderSize
		f.Offset = cursor
		cursor += int64(f.Size())
	}

	delta := cursor - t.padding.Offset
	t.padding.Offset += delta
	t.padding.Size -= int(delta)

	if t.padding.Size < 0 {
		t.tagEnd += int64(-t.padding.Size)
		t.padding.Size = 0
		t.rewrite = true
		Logging.Printf("id3: padding exhausted, tag grown to %d bytes, forcing full rewrite", t.tagEnd)
	}

	t.dirty = true
}

// checkFooter applies the footer-vs-padding rule: a footer is only kept
// when doing so doesn't require eating into padding that's already there.
// Calling it repeatedly with no intervening mutation is a no-op.
func (t *TagData) checkFooter() {
	if t.hasFooter && t.padding.Size > 0 {
		t.padding.Size += tagFooterSize
		t.hasFooter = false
		t.HeaderFlags &^= headerFlagFooterPresent
		Logging.Println("id3: footer dropped in favor of padding")
	}
}

// GetContentSize returns tag_end minus the header size and, if a footer is
// present, the footer size — i.e. the synsafe size field's value.
func (t *TagData) GetContentSize() int64 {
	size := t.tagEnd - int64(tagHeaderSize)
	if t.hasFooter {
		size -= int64(tagFooterSize)
	}
	return size
}

// GetAudioStart returns the absolute offset where audio data begins in the
// file as last read or saved: the first byte after the tag (and its footer,
// if any), or 0 for a file that had no tag. Unsaved edits do not move it.
func (t *TagData) GetAudioStart() int64 { return t.sourceAudioStart }

// writeTagHeader serializes the 10-byte "ID3" header: magic, major, minor,
// flags, and the synsafe content size.
func (t *TagData) writeTagHeader() []byte {
	size := synsafeEncodeInt(int(t.GetContentSize()))
	header := make([]byte, tagHeaderSize)
	copy(header[0:3], tagMagic[:])
	header[3] = t.Version.Major
	header[4] = t.Version.Minor
	header[5] = t.HeaderFlags
	copy(header[6:10], size[:])
	return header
}

// writeTagFooter serializes the 10-byte "3DI" footer, the mirror image of
// the header. Callers must only emit this when hasFooter still holds after
// checkFooter.
func (t *TagData) writeTagFooter() []byte {
	size := synsafeEncodeInt(int(t.GetContentSize()))
	footer := make([]byte, tagFooterSize)
	copy(footer[0:3], footerMagic[:])
	footer[3] = t.Version.Major
	footer[4] = t.Version.Minor
	footer[5] = t.HeaderFlags
	copy(footer[6:10], size[:])
	return footer
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
