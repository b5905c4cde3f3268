package id3

import (
	"strconv"
	"strings"
	"time"
)

// TimeFormat is the layout TDRC recording-time values are parsed against,
// matching the teacher's own frame-time convention.
const TimeFormat = "2006-01-02T15:04:05"

// textFrameSeparator joins multi-valued text frames, per the ID3v2.4
// convention of a single NUL byte between values. Earlier major versions
// used "/"; this package standardizes on NUL for values it writes, and
// splits on either when reading.
const textFrameSeparator = "\x00"

// Album returns the TALB frame's text, or "" if absent.
func (t *TagData) Album() string { return t.textFrame("TALB") }

// SetAlbum sets the TALB frame.
func (t *TagData) SetAlbum(album string) { t.setTextFrame("TALB", album) }

// Title returns the TIT2 frame's text, or "" if absent.
func (t *TagData) Title() string { return t.textFrame("TIT2") }

// SetTitle sets the TIT2 frame.
func (t *TagData) SetTitle(title string) { t.setTextFrame("TIT2", title) }

// Artists returns the TPE1 frame split on "/" or NUL into individual
// artist names.
func (t *TagData) Artists() []string { return t.textFrameSlice("TPE1") }

// SetArtists sets the TPE1 frame to artists joined by NUL.
func (t *TagData) SetArtists(artists []string) { t.setTextFrameSlice("TPE1", artists) }

// BPM returns the TBPM frame parsed as an integer, or 0 if absent or not
// numeric.
func (t *TagData) BPM() int {
	n, _ := strconv.Atoi(t.textFrame("TBPM"))
	return n
}

// SetBPM sets the TBPM frame to bpm's decimal representation.
func (t *TagData) SetBPM(bpm int) { t.setTextFrame("TBPM", strconv.Itoa(bpm)) }

// RecordingTime returns the TDRC frame parsed against TimeFormat. The zero
// time is returned if the frame is absent or doesn't parse.
func (t *TagData) RecordingTime() time.Time {
	s := t.textFrame("TDRC")
	if s == "" {
		return time.Time{}
	}
	tm, err := time.Parse(TimeFormat, s)
	if err != nil {
		return time.Time{}
	}
	return tm
}

// SetRecordingTime sets the TDRC frame to rt formatted against TimeFormat.
func (t *TagData) SetRecordingTime(rt time.Time) {
	t.setTextFrame("TDRC", rt.Format(TimeFormat))
}

// UserTextFrame returns the value of the TXXX frame whose description
// matches, or "" if none does.
func (t *TagData) UserTextFrame(description string) string {
	for _, f := range t.GetFrames("TXXX") {
		s, err := t.decoder.DecodeString(f.Payload())
		if err != nil {
			continue
		}
		desc, value, ok := splitUserText(s)
		if ok && desc == description {
			return value
		}
	}
	return ""
}

// SetUserTextFrame sets the TXXX frame with the given description to
// value, replacing an existing one with the same description if present.
func (t *TagData) SetUserTextFrame(description, value string) {
	encoded := description + textFrameSeparator + value
	for _, f := range t.GetFrames("TXXX") {
		s, err := t.decoder.DecodeString(f.Payload())
		if err != nil {
			continue
		}
		desc, _, ok := splitUserText(s)
		if ok && desc == description {
			f.SetPayload(t.decoder.EncodeString(encoded))
			t.realignFrames()
			t.dirty = true
			return
		}
	}
	t.AddFrame("TXXX", t.decoder.EncodeString(encoded))
}

func splitUserText(s string) (description, value string, ok bool) {
	idx := strings.IndexByte(s, 0)
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}

// GetComment returns the first COMM frame whose language matches, decoded,
// and reports whether one was found.
func (t *TagData) GetComment(language string) (Comment, bool) {
	for _, f := range t.GetFrames("COMM") {
		c, err := t.decoder.DecodeComment(f.Payload())
		if err != nil {
			continue
		}
		if strings.TrimRight(c.Language, " ") == strings.TrimRight(language, " ") {
			return c, true
		}
	}
	return Comment{}, false
}

// SetComment replaces the COMM frame for c.Language with c, or adds one if
// none exists yet for that language.
func (t *TagData) SetComment(c Comment) {
	for _, f := range t.GetFrames("COMM") {
		existing, err := t.decoder.DecodeComment(f.Payload())
		if err != nil {
			continue
		}
		if strings.TrimRight(existing.Language, " ") == strings.TrimRight(c.Language, " ") {
			f.SetPayload(t.decoder.EncodeComment(c))
			t.realignFrames()
			t.dirty = true
			return
		}
	}
	t.AddFrame("COMM", t.decoder.EncodeComment(c))
}

// GetPictures returns every APIC frame, decoded.
func (t *TagData) GetPictures() []Picture {
	frames := t.GetFrames("APIC")
	out := make([]Picture, 0, len(frames))
	for _, f := range frames {
		p, err := t.decoder.DecodePicture(f.Payload())
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AddPicture appends a new APIC frame encoding p.
func (t *TagData) AddPicture(p Picture) {
	t.AddFrame("APIC", t.decoder.EncodePicture(p))
}

func (t *TagData) textFrame(id FrameID) string {
	f := t.GetFrame(id)
	if f == nil {
		return ""
	}
	s, err := t.decoder.DecodeString(f.Payload())
	if err != nil {
		return ""
	}
	return s
}

func (t *TagData) setTextFrame(id FrameID, value string) {
	t.SetFrameBuffer(id, t.decoder.EncodeString(value))
}

func (t *TagData) textFrameSlice(id FrameID) []string {
	s := t.textFrame(id)
	if s == "" {
		return nil
	}
	sep := "/"
	if strings.Contains(s, textFrameSeparator) {
		sep = textFrameSeparator
	}
	return strings.Split(s, sep)
}

func (t *TagData) setTextFrameSlice(id FrameID, values []string) {
	t.setTextFrame(id, strings.Join(values, textFrameSeparator))
}
