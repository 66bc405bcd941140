package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"chess-movegen/crosscheck"
	"chess-movegen/movegen"
	"chess-movegen/pretty"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("movegen: ")
	if err := shellLoop(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// state records what the session needs to report repetitions.
type state struct {
	Hash   uint64
	Rule50 int
}

// session is one game in the shell: the board plus a full move history. The
// board itself keeps only one level of undo; the history stack lives here.
type session struct {
	board   *movegen.Board
	stack   []movegen.MoveState
	history []state
	noColor bool
}

func newSession(b *movegen.Board) *session {
	s := &session{}
	s.reset(b)
	return s
}

func (s *session) reset(b *movegen.Board) {
	s.board = b
	s.stack = s.stack[:0]
	s.history = append(s.history[:0], state{Hash: b.Hash(), Rule50: b.HalfmoveClock()})
}

// push plays m and records it for undo.
func (s *session) push(m movegen.PieceMove) error {
	st, err := s.board.MakeMove(m)
	if err != nil {
		return err
	}
	s.stack = append(s.stack, st)
	s.history = append(s.history, state{Hash: s.board.Hash(), Rule50: s.board.HalfmoveClock()})
	return nil
}

// pop undoes the most recent push. It reports false when nothing is left.
func (s *session) pop() bool {
	n := len(s.stack)
	if n == 0 {
		return false
	}
	s.board.UnmakeMove(s.stack[n-1])
	s.stack = s.stack[:n-1]
	s.history = s.history[:len(s.history)-1]
	return true
}

// repetitions counts earlier occurrences of the current position since the
// last capture or pawn move.
func (s *session) repetitions() int {
	curr := s.history[len(s.history)-1]
	start := len(s.history) - 1 - curr.Rule50
	if start < 0 {
		start = 0
	}
	count := 0
	for i := start; i < len(s.history)-1; i++ {
		if s.history[i].Hash == curr.Hash {
			count++
		}
	}
	return count
}

func shellLoop(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	s := newSession(movegen.StartingBoard())
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		if strings.ToLower(tokens[0]) == "quit" {
			return nil
		}
		s.handle(out, tokens)
	}
	return scanner.Err()
}

func (s *session) handle(out io.Writer, tokens []string) {
	args := tokens[1:]
	switch strings.ToLower(tokens[0]) {
	case "position":
		s.position(out, args)
	case "fen":
		fmt.Fprintln(out, s.board.ToFEN())
	case "d":
		if err := pretty.Board(out, s.board, pretty.Options{NoColor: s.noColor}); err != nil {
			log.Print(err)
		}
	case "moves":
		moves := movegen.GenerateMoves(s.board)
		if err := pretty.Moves(out, moves, s.noColor); err != nil {
			log.Print(err)
		}
		fmt.Fprintf(out, "%d moves\n", len(moves))
	case "square":
		s.square(out, args)
	case "move":
		for _, a := range args {
			m, err := s.board.ParseMove(a)
			if err == nil {
				err = s.push(m)
			}
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				return
			}
		}
	case "undo":
		if !s.pop() {
			fmt.Fprintln(out, "error: nothing to undo")
		}
	case "status":
		fmt.Fprintf(out, "side=%s hash=%016x halfmove=%d fullmove=%d repetitions=%d\n",
			s.board.SideToMove(), s.board.Hash(), s.board.HalfmoveClock(), s.board.FullmoveNumber(), s.repetitions())
	case "perft":
		depth := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				fmt.Fprintf(out, "error: invalid depth %q\n", args[0])
				return
			}
			depth = n
		}
		fmt.Fprintf(out, "perft(%d) = %d\n", depth, movegen.Perft(s.board, depth))
	case "compare":
		fen := s.board.ToFEN()
		pseudo, err := crosscheck.PseudoLegal(fen)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return
		}
		legal, err := crosscheck.Legal(fen)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "goosemg: %s\ndragontoothmg: %s\n", pseudo, legal)
	case "color":
		s.noColor = len(args) > 0 && strings.ToLower(args[0]) == "off"
	default:
		fmt.Fprintf(out, "error: unknown command %q\n", tokens[0])
	}
}

// position handles "position startpos|fen <fields> [moves m1 m2 ...]".
func (s *session) position(out io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(out, "error: malformed position command")
		return
	}
	var board *movegen.Board
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		board = movegen.StartingBoard()
	case "fen":
		end := len(rest)
		for i, a := range rest {
			if strings.ToLower(a) == "moves" {
				end = i
				break
			}
		}
		b, err := movegen.ParseFEN(strings.Join(rest[:end], " "))
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return
		}
		board = b
		rest = rest[end:]
	default:
		fmt.Fprintln(out, "error: invalid position subcommand")
		return
	}
	s.reset(board)
	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return
	}
	for _, a := range rest[1:] {
		m, err := s.board.ParseMove(a)
		if err == nil {
			err = s.push(m)
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return
		}
	}
}

// square lists the moves of the piece on one square and shows them on the board.
func (s *session) square(out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "error: usage: square <e2>")
		return
	}
	sq, err := movegen.SquareFromString(args[0])
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	pm := movegen.GeneratePieceMoves(s.board, sq)
	fmt.Fprintln(out, pretty.Square(s.board, sq))
	if err := pretty.Moves(out, pm.Moves, s.noColor); err != nil {
		log.Print(err)
		return
	}
	if err := pretty.Board(out, s.board, pretty.Options{Highlight: pm.Destinations(), NoColor: s.noColor}); err != nil {
		log.Print(err)
	}
}
