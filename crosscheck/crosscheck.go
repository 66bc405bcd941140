// Package crosscheck compares movegen against independent move generators.
//
// Two references are used:
//   - GooseEngineMG's goosemg, whose pseudo-legal generator follows the same
//     rules as movegen, so the move sets must be identical;
//   - dragontoothmg, a legal-only generator, whose moves must all appear in
//     movegen's pseudo-legal set.
//
// Castling is skipped on both sides because movegen does not generate it.
package crosscheck

import (
	"fmt"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-movegen/movegen"
)

// Report is the outcome of a comparison. Moves are UCI strings, sorted.
type Report struct {
	FEN       string
	Ours      int      // moves produced by movegen
	Reference int      // moves produced by the reference (castling excluded)
	Missing   []string // reference moves movegen did not produce
	Extra     []string // movegen moves the reference did not produce
}

// OK reports whether movegen produced every reference move.
func (r Report) OK() bool { return len(r.Missing) == 0 }

// Exact reports whether both sides produced the same set.
func (r Report) Exact() bool { return len(r.Missing) == 0 && len(r.Extra) == 0 }

func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ours=%d reference=%d", r.Ours, r.Reference)
	if len(r.Missing) > 0 {
		fmt.Fprintf(&sb, " missing=[%s]", strings.Join(r.Missing, " "))
	}
	if len(r.Extra) > 0 {
		fmt.Fprintf(&sb, " extra=[%s]", strings.Join(r.Extra, " "))
	}
	return sb.String()
}

// PseudoLegal compares the pseudo-legal moves of the position with goosemg.
func PseudoLegal(fen string) (Report, error) {
	ours, err := ourMoves(fen)
	if err != nil {
		return Report{}, err
	}
	ref, err := goosemg.ParseFEN(fen)
	if err != nil {
		return Report{}, fmt.Errorf("goosemg rejected %q: %w", fen, err)
	}
	var refMoves []string
	for _, m := range ref.GeneratePseudoMoves() {
		if m.Flags() == goosemg.FlagCastle {
			continue
		}
		refMoves = append(refMoves, m.String())
	}
	return diff(fen, ours, refMoves), nil
}

// Legal checks that every legal move found by dragontoothmg is among the
// pseudo-legal moves of movegen. Extra lists moves that are only
// pseudo-legal (they leave the mover's king attacked).
func Legal(fen string) (Report, error) {
	ours, err := ourMoves(fen)
	if err != nil {
		return Report{}, err
	}
	board, _ := movegen.ParseFEN(fen)
	ref := dragontoothmg.ParseFen(fen)
	legal := ref.GenerateLegalMoves()
	var refMoves []string
	for i := range legal {
		s := legal[i].String()
		if isCastling(board, s) {
			continue
		}
		refMoves = append(refMoves, s)
	}
	return diff(fen, ours, refMoves), nil
}

// ReferencePerft returns goosemg's legal perft count for the position.
func ReferencePerft(fen string, depth int) (uint64, error) {
	ref, err := goosemg.ParseFEN(fen)
	if err != nil {
		return 0, fmt.Errorf("goosemg rejected %q: %w", fen, err)
	}
	return goosemg.Perft(ref, depth), nil
}

func ourMoves(fen string) ([]string, error) {
	b, err := movegen.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	moves := movegen.GenerateMoves(b)
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out, nil
}

// isCastling spots a king moving two files in a UCI string.
func isCastling(b *movegen.Board, uci string) bool {
	if len(uci) < 4 {
		return false
	}
	from, err := movegen.SquareFromString(uci[0:2])
	if err != nil {
		return false
	}
	to, err := movegen.SquareFromString(uci[2:4])
	if err != nil {
		return false
	}
	d := from.Column() - to.Column()
	return b.Get(from).Kind() == movegen.King && (d == 2 || d == -2)
}

func toSet(moves []string) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m] = true
	}
	return set
}

func diff(fen string, ours, ref []string) Report {
	ourSet, refSet := toSet(ours), toSet(ref)
	r := Report{FEN: fen, Ours: len(ours), Reference: len(ref)}
	for _, m := range maps.Keys(refSet) {
		if !ourSet[m] {
			r.Missing = append(r.Missing, m)
		}
	}
	for _, m := range maps.Keys(ourSet) {
		if !refSet[m] {
			r.Extra = append(r.Extra, m)
		}
	}
	slices.Sort(r.Missing)
	slices.Sort(r.Extra)
	return r
}
