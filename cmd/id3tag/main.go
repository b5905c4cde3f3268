// Command id3tag edits a handful of common frames on an MP3 file in place.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	id3 "github.com/lsoleyl/id3tag"
	"github.com/wader/ydls/writelogger"
)

func main() {
	var (
		verbose = flag.Bool("v", false, "enable diagnostic logging")
		title   = flag.String("title", "", "set the title (TIT2) frame")
		artist  = flag.String("artist", "", "set the artist (TPE1) frame")
		album   = flag.String("album", "", "set the album (TALB) frame")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: id3tag [-v] [-title T] [-artist A] [-album AL] file.mp3")
		os.Exit(2)
	}
	path := flag.Arg(0)

	id3.Logging = id3.LogFlag(*verbose)

	tag, err := id3.ReadTag(path)
	if err != nil {
		log.Fatal(err)
	}
	defer tag.Close()

	// Changed-field lines are routed through a WriteLogger, the same way
	// id3print routes its frame dump, so a -v run that touches several
	// fields reads as one coherent, prefixed block rather than bare
	// fmt.Println calls.
	wl := writelogger.New(log.New(os.Stdout, "", 0), path+"> ")

	if *title != "" {
		tag.SetTitle(*title)
		fmt.Fprintf(wl, "set TIT2 = %q\n", *title)
	}
	if *artist != "" {
		tag.SetArtists([]string{*artist})
		fmt.Fprintf(wl, "set TPE1 = %q\n", *artist)
	}
	if *album != "" {
		tag.SetAlbum(*album)
		fmt.Fprintf(wl, "set TALB = %q\n", *album)
	}

	if err := tag.Save(); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(wl, "saved")
}
