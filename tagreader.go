package id3

// ReadTag opens path read-only and parses its ID3v2 tag, if any. A file
// with no "ID3" magic at offset 0 is not an error: it yields an empty
// TagData whose audio region is the entire file.
func ReadTag(path string) (*TagData, error) {
	bf, err := OpenByteFile(path, ModeRead)
	if err != nil {
		return nil, err
	}

	tag, err := readTagFrom(bf, path)
	if err != nil {
		bf.Close()
		return nil, err
	}
	return tag, nil
}

func readTagFrom(bf ByteFile, path string) (*TagData, error) {
	header, err := bf.ReadSlice(0, tagHeaderSize)
	if err != nil {
		// A file shorter than 10 bytes has no tag and no frames; treat it
		// the same as a missing "ID3" magic.
		bf.Close()
		return noHeaderOverFile(path)
	}

	if string(header[0:3]) != string(tagMagic[:]) {
		bf.Close()
		return noHeaderOverFile(path)
	}

	major := header[3]
	minor := header[4]
	flags := header[5]

	var sizeBytes [4]byte
	copy(sizeBytes[:], header[6:10])
	contentSize := synsafeDecodeInt(sizeBytes)
	// contentEnd bounds the frame/padding scan; it never includes the
	// footer, which is never itself padding or frame data and whose
	// magic byte ('3') would otherwise be misread as the start of a
	// frame id.
	contentEnd := int64(tagHeaderSize) + int64(contentSize)
	tagEnd := contentEnd

	hasFooter := false
	if major == 4 && flags&headerFlagFooterPresent != 0 {
		tagEnd += tagFooterSize
		hasFooter = true
	}

	if major != 3 && major != 4 {
		return nil, newFormatError(UnsupportedVersion, "major version must be 3 or 4")
	}
	if flags&headerFlagExtendedHeader != 0 {
		return nil, newFormatError(UnsupportedFeature, "extended header is not supported")
	}

	var frames []*Frame
	var padding paddingRegion
	cursor := int64(tagHeaderSize)

	for cursor < contentEnd {
		peek, err := bf.ReadSlice(cursor, 1)
		if err != nil {
			return nil, err
		}
		if peek[0] == 0 {
			padding = paddingRegion{Offset: cursor, Size: int(contentEnd - cursor)}
			cursor = contentEnd
			break
		}

		rest, err := bf.ReadSlice(cursor+1, frameHeaderSize-1)
		if err != nil {
			return nil, err
		}
		id := FrameID(append(peek, rest[0:3]...))
		size := int(beUint32(rest[3:7]))
		flagBytes := rest[7:9]
		frameFlags := FrameFlags(beUint16(flagBytes))

		payloadOffset := cursor + frameHeaderSize
		payload, err := bf.ReadSlice(payloadOffset, size)
		if err != nil {
			return nil, err
		}

		frames = append(frames, &Frame{ID: id, Offset: payloadOffset, Flags: frameFlags, payload: payload})
		cursor = payloadOffset + int64(size)
	}

	if padding.Size == 0 && padding.Offset == 0 {
		padding = paddingRegion{Offset: cursor, Size: int(contentEnd - cursor)}
	}

	tag := &TagData{
		source:           bf,
		path:             path,
		Version:          Version{Major: major, Minor: minor},
		HeaderFlags:      flags,
		frames:           frames,
		padding:          padding,
		tagEnd:           tagEnd,
		sourceAudioStart: tagEnd,
		hasFooter:        hasFooter,
		decoder:          NewDecoder(major),
	}
	return tag, nil
}

// noHeaderOverFile builds an empty TagData whose audio region spans the
// entire file at path, for files that have no ID3v2 tag. The file itself
// is not kept open by the returned TagData; a later Save/WriteTo opens it
// fresh as needed.
func noHeaderOverFile(path string) (*TagData, error) {
	tag := NoHeader(3, 0)
	tag.path = path
	return tag, nil
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func beUint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
