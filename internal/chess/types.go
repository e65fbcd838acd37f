// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour advances by.
// Row 0 is the eighth rank, so White moves towards lower rows.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind is the colourless type of a piece.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// PromotionKinds lists the promotion choices in generation order.
var PromotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece, or one of the Empty and Off sentinels.
// The kind lives in the upper bits and the colour in the lowest bit.
type Piece uint8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

const (
	Empty Piece = 0 // Empty square
	Off   Piece = 1 // Off the board
)

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == NoKind {
		return Empty
	}
	return Piece(uint8(kind)<<PieceShift | uint8(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece type. Empty and Off report NoKind.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Colour extracts the colour of a real piece. The result is meaningless
// for Empty and Off; use Belongs when the square may be vacant.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Belongs reports whether p is a real piece of the given colour.
func (p Piece) Belongs(c Colour) bool {
	return p.Kind() != NoKind && p.Colour() == c
}

// IsSlider reports whether the piece moves along rays.
func (p Piece) IsSlider() bool {
	switch p.Kind() {
	case Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// IsDiagonalAttacker reports whether the piece attacks along diagonals.
func (p Piece) IsDiagonalAttacker() bool {
	k := p.Kind()
	return k == Bishop || k == Queen
}

// IsStraightAttacker reports whether the piece attacks along ranks and files.
func (p Piece) IsStraightAttacker() bool {
	k := p.Kind()
	return k == Rook || k == Queen
}

// String returns a two letter code such as "WP" or "BK", "--" for Empty.
func (p Piece) String() string {
	switch p {
	case Empty:
		return "--"
	case Off:
		return "##"
	}
	side := byte('B')
	if p.Colour() == White {
		side = 'W'
	}
	return string([]byte{side, p.Kind().Letter()})
}

// CastleSide identifies one of the four castling options.
type CastleSide uint8

const (
	WhiteKingside CastleSide = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
	NumCastleSides
)

// Colour returns the colour that owns this castling option.
func (s CastleSide) Colour() Colour {
	if s == WhiteKingside || s == WhiteQueenside {
		return White
	}
	return Black
}

// Kingside reports whether this is a short castle.
func (s CastleSide) Kingside() bool {
	return s == WhiteKingside || s == BlackKingside
}

// String returns the conventional castle notation.
func (s CastleSide) String() string {
	if s.Kingside() {
		return "0-0"
	}
	return "0-0-0"
}

// CastleSideFor returns the castling option of colour on the given wing.
func CastleSideFor(colour Colour, kingside bool) CastleSide {
	switch {
	case colour == White && kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// CastlingRights holds the four independent castling permissions.
type CastlingRights [NumCastleSides]bool

// AllCastlingRights returns rights with every option still available.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Has reports whether the option is still available.
func (r CastlingRights) Has(side CastleSide) bool {
	return r[side]
}

// Clear removes a castling option.
func (r *CastlingRights) Clear(side CastleSide) {
	r[side] = false
}

// ClearColour removes both options of a colour.
func (r *CastlingRights) ClearColour(colour Colour) {
	r.Clear(CastleSideFor(colour, true))
	r.Clear(CastleSideFor(colour, false))
}

// String renders the rights as "KQkq", or "-" when none remain.
func (r CastlingRights) String() string {
	letters := [NumCastleSides]byte{'K', 'Q', 'k', 'q'}
	var out []byte
	for side := CastleSide(0); side < NumCastleSides; side++ {
		if r[side] {
			out = append(out, letters[side])
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}
