/*
Package id3 reads and writes ID3v2.3 and ID3v2.4 tags.

Reading a tag

	tag, err := id3.ReadTag("song.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer tag.Close()

	fmt.Println(tag.Title())

A file with no ID3v2 tag is not an error: ReadTag returns an empty TagData
whose audio region spans the whole file, ready to have frames added to it.

Writing a tag

Saving prefers updating the file in place over a full rewrite, only
falling back to rewriting the whole file when the new frame content no
longer fits in the space the original tag occupied:

	tag.SetArtists([]string{"Carbon Based Lifeforms"})
	tag.SetAlbum("Hydroponic Garden")
	if err := tag.Save(); err != nil {
		log.Fatal(err)
	}

Accessing frames

TagData exposes typed getters/setters for a handful of common frames
(Title, Album, Artists, BPM, RecordingTime, user text frames, comments,
pictures) as a thin layer over the generic GetFrame/GetFrameBuffer/
SetFrameBuffer operations, which work with any frame id and raw payload
bytes. Decoder, bound to a tag's major version, turns those raw payload
bytes into structured Comment/Picture/Popularity values and back.
*/
package id3
