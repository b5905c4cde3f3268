package id3

import "io"

// Save writes the tag back to the file it was read from. It is a no-op
// (no I/O at all) when the tag is unmodified and already has a source
// path. Tags synthesized by NoHeader still write via their path, if one
// was set by ReadTag.
func (t *TagData) Save() error {
	if t.path == "" {
		return newStateError("tag has no associated path; use WriteTo")
	}
	return t.WriteTo(t.path)
}

// WriteTo writes the tag, followed by the audio bytes, to destination. If
// destination is the same path the tag was read from and nothing has
// changed, this does no I/O at all. A destination other than that path
// always gets a full rewrite. For the same path it either updates the
// existing file in place (header/frames/padding/footer only, audio bytes
// left untouched) or performs a full rewrite, depending on whether the
// frame content still fits within the original tag_end.
func (t *TagData) WriteTo(destination string) error {
	sameFile := destination == t.path && t.path != ""

	if sameFile && !t.dirty {
		return nil
	}

	needAudioRelocation := !sameFile || t.rewrite

	var audio []byte
	if needAudioRelocation {
		var err error
		audio, err = t.GetAudioBytes()
		if err != nil {
			return err
		}
	}

	mode := ModeInPlaceUpdate
	if !sameFile || t.rewrite {
		mode = ModeTruncatingWrite
	}

	dest, err := OpenByteFile(destination, mode)
	if err != nil {
		return err
	}
	defer dest.Close()

	t.checkFooter()

	if _, err := dest.Write(t.writeTagHeader()); err != nil {
		return err
	}

	for _, f := range t.frames {
		if err := f.Write(dest); err != nil {
			return err
		}
	}
	if _, err := dest.Seek(t.padding.Offset, SeekFromStart); err != nil {
		return err
	}
	if t.padding.Size > 0 {
		if _, err := dest.Write(make([]byte, t.padding.Size)); err != nil {
			return err
		}
	}

	if t.hasFooter {
		if _, err := dest.Write(t.writeTagFooter()); err != nil {
			return err
		}
	}

	if needAudioRelocation {
		if _, err := dest.Write(audio); err != nil {
			return err
		}
	}

	if sameFile {
		t.dirty = false
		t.rewrite = false
		t.sourceAudioStart = t.tagEnd
	}
	return nil
}

// GetAudioBytes reads this tag's audio region into memory: everything
// from sourceAudioStart to end of file, as the file physically is right
// now. WriteTo calls this before any write when relocating audio, since
// sourceAudioStart — unlike tagEnd, which tracks where audio will begin
// once saved — is fixed to where audio actually sits in the file today;
// an in-place write at the new, grown tagEnd would otherwise overwrite
// audio bytes it hasn't read yet.
func (t *TagData) GetAudioBytes() ([]byte, error) {
	if t.source == nil {
		if t.path == "" {
			return nil, nil
		}
		bf, err := OpenByteFile(t.path, ModeRead)
		if err != nil {
			return nil, err
		}
		defer bf.Close()
		return readAllFrom(bf, t.sourceAudioStart)
	}
	return readAllFrom(t.source, t.sourceAudioStart)
}

// readAllFrom reads every byte at and after offset from bf in fixed 64 KiB
// chunks, stopping at the first short read, since ByteFile has no "read to
// EOF" primitive of its own.
func readAllFrom(bf ByteFile, offset int64) ([]byte, error) {
	const chunk = 64 * 1024
	var out []byte
	buf := make([]byte, chunk)
	pos := offset
	for {
		n, err := bf.Read(buf, pos, chunk)
		if n > 0 {
			out = append(out, buf[:n]...)
			pos += int64(n)
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		if n < chunk {
			break
		}
	}
	return out, nil
}
