package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-movegen/crosscheck"
	"chess-movegen/movegen"
)

func main() {
	fen := flag.String("fen", movegen.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	check := flag.Bool("crosscheck", false, "Compare root moves and node counts with the reference generators")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("perft: ")

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := movegen.ParseFEN(*fen)
	if err != nil {
		log.Printf("ParseFEN error: %v", err)
		os.Exit(2)
	}

	if *check {
		if err := crossCheck(*fen, *depth); err != nil {
			log.Print(err)
			os.Exit(1)
		}
	}

	// Optional divide output
	if *divide {
		div := movegen.PerftDivide(board, *depth)
		byName := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			byName[m.String()] = n
			sum += n
		}
		// Sort moves for stable output
		names := maps.Keys(byName)
		slices.Sort(names)
		for _, name := range names {
			fmt.Printf("%s: %d\n", name, byName[name])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Printf("creating cpuprofile: %v", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Printf("start cpu profile: %v", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += movegen.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Printf("creating memprofile: %v", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Printf("write heap profile: %v", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// crossCheck prints both reference comparisons for the root position and the
// reference legal node count, and fails when a reference move is missing.
func crossCheck(fen string, depth int) error {
	pseudo, err := crosscheck.PseudoLegal(fen)
	if err != nil {
		return err
	}
	fmt.Printf("pseudo-legal vs goosemg:   %s\n", pseudo)
	legal, err := crosscheck.Legal(fen)
	if err != nil {
		return err
	}
	fmt.Printf("legal subset vs dragontooth: %s\n", legal)
	ref, err := crosscheck.ReferencePerft(fen, depth)
	if err != nil {
		return err
	}
	fmt.Printf("reference legal perft(%d): %d\n", depth, ref)
	if !pseudo.Exact() || !legal.OK() {
		return fmt.Errorf("cross-check failed for %q", fen)
	}
	return nil
}
