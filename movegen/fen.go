package movegen

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castling flags in FEN order together with the king and rook they require
var fenCastling = [...]struct {
	ch    byte
	right CastlingRights
	king  Square
	rook  Square
	color Color
}{
	{'K', CastlingWhiteK, Square{0, 4}, Square{0, 7}, White},
	{'Q', CastlingWhiteQ, Square{0, 4}, Square{0, 0}, White},
	{'k', CastlingBlackK, Square{7, 4}, Square{7, 7}, Black},
	{'q', CastlingBlackQ, Square{7, 4}, Square{7, 0}, Black},
}

// ParseFEN parses a FEN record and returns the position it describes.
//
// The record needs at least the placement, side, castling and en-passant
// fields; the half-move clock and full-move number default to 0 and 1.
// A non-empty en-passant field is turned into the opponent's double pawn
// advance as the board's last move. All failures wrap ErrInvalidFEN.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fenErrorf("not enough fields (%d)", len(fields))
	}
	if len(fields) > 6 {
		return nil, fenErrorf("too many fields (%d)", len(fields))
	}

	board := NewBoard()

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != BoardDim {
		return nil, fenErrorf("incorrect number of ranks (%d)", len(ranks))
	}
	for i, rankStr := range ranks {
		// ranks are listed from rank 8 down to rank 1
		if err := board.readRank(rankStr, BoardDim-1-i); err != nil {
			return nil, err
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		board.sideToMove = White
	case "b":
		board.sideToMove = Black
	default:
		return nil, fenErrorf("side to move must be 'w' or 'b', got %q", fields[1])
	}

	// 3. Castling rights
	cr, err := board.readCastling(fields[2])
	if err != nil {
		return nil, err
	}
	board.castlingRights = cr

	// 4. En passant target square
	if fields[3] != "-" {
		if err := board.readEnPassant(fields[3]); err != nil {
			return nil, err
		}
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fenErrorf("halfmove clock %q is not a non-negative number", fields[4])
		}
		board.halfmoveClock = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fenErrorf("fullmove number %q is not a positive number", fields[5])
		}
		board.fullmoveNumber = n
	}

	return board, nil
}

// MustParseFEN is like ParseFEN but panics on invalid input.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// readRank fills one row from a placement field rank. The pieces plus the
// empty-square runs must cover exactly eight columns.
func (b *Board) readRank(rankStr string, r int) error {
	if rankStr == "" {
		return fenErrorf("empty description for rank %d", r+1)
	}
	col := 0
	for i := 0; i < len(rankStr); i++ {
		ch := rankStr[i]
		if ch >= '1' && ch <= '8' {
			col += int(ch - '0')
			if col > BoardDim {
				return fenErrorf("rank %d describes more than 8 columns", r+1)
			}
			continue
		}
		p, ok := pieceFromLetter(ch)
		if !ok {
			return fenErrorf("unrecognized character %q in rank %d", ch, r+1)
		}
		if col >= BoardDim {
			return fenErrorf("rank %d describes more than 8 columns", r+1)
		}
		b.set(r, col, p)
		col++
	}
	if col != BoardDim {
		return fenErrorf("rank %d describes %d columns, want 8", r+1, col)
	}
	return nil
}

func (b *Board) readCastling(field string) (CastlingRights, error) {
	if field == "-" {
		return NoCastling, nil
	}
	var cr CastlingRights
	for i := 0; i < len(field); i++ {
		found := false
		for _, fc := range fenCastling {
			if fc.ch != field[i] {
				continue
			}
			if cr&fc.right != 0 {
				return 0, fenErrorf("castling right %q repeated", fc.ch)
			}
			if b.Get(fc.king) != MakePiece(King, fc.color) || b.Get(fc.rook) != MakePiece(Rook, fc.color) {
				return 0, fenErrorf("castling right %q without king on %s and rook on %s", fc.ch, fc.king, fc.rook)
			}
			cr |= fc.right
			found = true
		}
		if !found {
			return 0, fenErrorf("invalid castling rights character %q", field[i])
		}
	}
	return cr, nil
}

// readEnPassant reconstructs the double pawn advance that produced the
// en-passant target. Must run after the side to move is known.
func (b *Board) readEnPassant(field string) error {
	target, err := SquareFromString(field)
	if err != nil || field[0] < 'a' {
		return fenErrorf("invalid en passant square %q", field)
	}
	us := b.sideToMove
	them := us.Opposite()
	if target.Row() != enPassantRow(us) {
		return fenErrorf("en passant square %s impossible with %s to move", target, us)
	}
	// the pawn that just advanced stands in front of the target (from its own
	// point of view) and has left its start square
	landed, _ := target.Offset(them.forward(), 0)
	origin, _ := target.Offset(-them.forward(), 0)
	pawn := MakePiece(Pawn, them)
	if b.Get(landed) != pawn {
		return fenErrorf("en passant square %s without a %s pawn on %s", target, them, landed)
	}
	if !b.IsEmpty(target) || !b.IsEmpty(origin) {
		return fenErrorf("en passant square %s: %s and %s must be empty", target, target, origin)
	}
	b.SetLastMove(NewMove(origin, landed, pawn, NoPiece))
	return nil
}

// ToFEN produces the FEN record of the position. The en-passant field is
// derived from the last move.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for r := BoardDim - 1; r >= 0; r-- {
		empty := 0
		for c := 0; c < BoardDim; c++ {
			p := b.get(r, c)
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if b.sideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if b.castlingRights == NoCastling {
		sb.WriteByte('-')
	} else {
		for _, fc := range fenCastling {
			if b.castlingRights&fc.right != 0 {
				sb.WriteByte(fc.ch)
			}
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	if ep, ok := b.enPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	// 5. Halfmove clock and 6. fullmove number
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}

// ReadFENs loads one position per line from r, skipping blank lines. The
// first malformed record stops the read; its error carries the line number.
func ReadFENs(r io.Reader) ([]*Board, error) {
	var boards []*Board
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		b, err := ParseFEN(text)
		if err != nil {
			return boards, fmt.Errorf("line %d: %w", line, err)
		}
		boards = append(boards, b)
	}
	if err := sc.Err(); err != nil {
		return boards, fmt.Errorf("reading FEN records: %w", err)
	}
	return boards, nil
}
