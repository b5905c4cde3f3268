// Command id3print dumps the frames of one or more MP3 files' ID3v2 tags.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	id3 "github.com/lsoleyl/id3tag"
	"github.com/wader/ydls/writelogger"
)

func printFile(name string) {
	fmt.Println(name)

	tag, err := id3.ReadTag(name)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer tag.Close()

	// Each file's frame dump goes through its own WriteLogger so that
	// every line lands prefixed with the file it came from, the same way
	// a subprocess's stderr would.
	wl := writelogger.New(log.New(os.Stdout, "", 0), name+"> ")

	for _, f := range tag.AllFrames() {
		if f.ID == "TXXX" {
			s, err := tag.Decoder().DecodeString(f.Payload())
			if err != nil {
				continue
			}
			fmt.Fprintf(wl, "TXXX: %s\n", s)
			continue
		}
		if f.ID == "COMM" {
			c, err := tag.Decoder().DecodeComment(f.Payload())
			if err != nil {
				continue
			}
			fmt.Fprintf(wl, "COMM[%s]: %s / %s\n", c.Language, c.Description, c.Text)
			continue
		}
		if f.ID == "APIC" {
			p, err := tag.Decoder().DecodePicture(f.Payload())
			if err != nil {
				continue
			}
			fmt.Fprintf(wl, "APIC: %s (%d bytes)\n", p.MIME, len(p.Data))
			continue
		}

		s, err := tag.Decoder().DecodeString(f.Payload())
		if err != nil {
			fmt.Fprintf(wl, "%s: <%d raw bytes>\n", f.ID, f.Size())
			continue
		}
		fmt.Fprintf(wl, "%s: %s\n", f.ID, s)
	}
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("usage: id3print file.mp3 [file2.mp3 ...]")
	}
	for _, name := range flag.Args() {
		printFile(name)
		fmt.Println()
	}
}
