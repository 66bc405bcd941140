package movegen

import "fmt"

// Kind is a colorless piece type.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	// KindCount is the number of kinds including NoKind.
	KindCount = int(iota)
)

// Color is the side that owns a piece. An empty square has NoColor.
type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

// Opposite returns the other side. NoColor stays NoColor.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// forward is the row delta of a pawn advance for the side.
func (c Color) forward() int {
	if c == Black {
		return -1
	}
	return 1
}

// PieceCode combines a Kind and a Color in 4 bits:
//   - code & 7 is the kind
//   - code & 8 != 0 marks Black
//
// The zero value is an empty square.
type PieceCode uint8

const pieceColorBit = 8

const (
	NoPiece     PieceCode = 0
	WhitePawn   PieceCode = PieceCode(Pawn)
	WhiteKnight PieceCode = PieceCode(Knight)
	WhiteBishop PieceCode = PieceCode(Bishop)
	WhiteRook   PieceCode = PieceCode(Rook)
	WhiteQueen  PieceCode = PieceCode(Queen)
	WhiteKing   PieceCode = PieceCode(King)
	BlackPawn   PieceCode = PieceCode(Pawn) | pieceColorBit
	BlackKnight PieceCode = PieceCode(Knight) | pieceColorBit
	BlackBishop PieceCode = PieceCode(Bishop) | pieceColorBit
	BlackRook   PieceCode = PieceCode(Rook) | pieceColorBit
	BlackQueen  PieceCode = PieceCode(Queen) | pieceColorBit
	BlackKing   PieceCode = PieceCode(King) | pieceColorBit
)

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [4]Kind{Knight, Bishop, Rook, Queen}

// MakePiece combines kind and color. Passing exactly one of NoKind/NoColor
// violates the empty-square invariant and panics.
func MakePiece(kind Kind, color Color) PieceCode {
	if (kind == NoKind) != (color == NoColor) {
		panic(preconditionf("MakePiece(%d, %v): kind and color must both be set or both be none", kind, color))
	}
	if int(kind) >= KindCount {
		panic(preconditionf("MakePiece: unknown kind %d", kind))
	}
	if color == Black {
		return PieceCode(kind) | pieceColorBit
	}
	return PieceCode(kind)
}

// Kind returns the colorless kind of the piece.
func (p PieceCode) Kind() Kind { return Kind(p & 7) }

// Color returns the owner of the piece, NoColor for an empty square.
func (p PieceCode) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	if p&pieceColorBit != 0 {
		return Black
	}
	return White
}

// IsEmpty reports whether the code denotes an empty square.
func (p PieceCode) IsEmpty() bool { return p == NoPiece }

// Valid reports whether a raw code decodes to a legal piece or an empty square.
func (p PieceCode) Valid() bool {
	if p > 15 {
		return false
	}
	k := p.Kind()
	if k == NoKind {
		return p == NoPiece
	}
	return int(k) < KindCount
}

var (
	kindShortNames = [...]string{"N", "P", "KN", "B", "R", "Q", "KI"}
	kindLongNames  = [...]string{"NONE", "PAWN", "KNIGHT", "BISHOP", "ROOK", "QUEEN", "KING"}
	kindLetters    = [...]byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}
	kindValues     = [...]int{0, 1, 3, 3, 5, 9, int(^uint16(0))}
)

func (k Kind) String() string {
	if int(k) < len(kindLongNames) {
		return kindLongNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ShortName returns the abbreviated kind name (N, P, KN, B, R, Q, KI).
func (k Kind) ShortName() string {
	if int(k) < len(kindShortNames) {
		return kindShortNames[k]
	}
	return "?"
}

// Value is the conventional material value; the king is given the maximum.
func (k Kind) Value() int {
	if int(k) < len(kindValues) {
		return kindValues[k]
	}
	return 0
}

// Letter returns the FEN character of the piece ('.' for an empty square).
func (p PieceCode) Letter() byte {
	k := p.Kind()
	if int(k) >= len(kindLetters) {
		return '?'
	}
	ch := kindLetters[k]
	if p.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func (p PieceCode) String() string { return string(p.Letter()) }

// pieceFromLetter converts a FEN character into a piece.
func pieceFromLetter(ch byte) (PieceCode, bool) {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if kindLetters[k] == ch {
			return MakePiece(k, color), true
		}
	}
	return NoPiece, false
}
