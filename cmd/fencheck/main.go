// Command fencheck validates a file of FEN records, one per line, and prints
// a summary of each accepted position.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"chess-movegen/movegen"
)

func main() {
	keepGoing := flag.Bool("k", false, "Report every malformed record instead of stopping at the first")
	quiet := flag.Bool("q", false, "Only report errors")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("fencheck: ")

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	if !*keepGoing {
		boards, err := movegen.ReadFENs(in)
		if !*quiet {
			for _, b := range boards {
				summarize(os.Stdout, b)
			}
		}
		if err != nil {
			log.Print(err)
			os.Exit(1)
		}
		return
	}

	bad, err := checkAll(in, os.Stdout, *quiet)
	if err != nil {
		log.Fatal(err)
	}
	if bad > 0 {
		log.Printf("%d malformed record(s)", bad)
		os.Exit(1)
	}
}

// checkAll parses every non-blank line and logs each failure with its line
// number. It returns the number of malformed records.
func checkAll(in io.Reader, out io.Writer, quiet bool) (int, error) {
	sc := bufio.NewScanner(in)
	bad, line := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		b, err := movegen.ParseFEN(text)
		if errors.Is(err, movegen.ErrInvalidFEN) {
			bad++
			log.Printf("line %d: %v", line, err)
			continue
		} else if err != nil {
			return bad, err
		}
		if !quiet {
			summarize(out, b)
		}
	}
	return bad, sc.Err()
}

func summarize(w io.Writer, b *movegen.Board) {
	white, black := b.Count(movegen.White), b.Count(movegen.Black)
	fmt.Fprintf(w, "%s  pieces=%d/%d moves=%d\n",
		b.ToFEN(), white.Total, black.Total, len(movegen.GenerateMoves(b)))
}
