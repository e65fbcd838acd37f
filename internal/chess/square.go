package chess

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Square is a (row, col) board coordinate. Row 0 is the eighth rank and
// col 0 is the a-file.
type Square struct {
	Row int8
	Col int8
}

// NoSquare is the off-board sentinel.
var NoSquare = Square{Row: -1, Col: -1}

// NewSquare returns the square at row, col, or false when out of range.
func NewSquare(row, col int) (Square, bool) {
	if !InRange(row, col) {
		return NoSquare, false
	}
	return Square{Row: int8(row), Col: int8(col)}, true
}

// Sq builds a square from coordinates known to be valid, such as constants.
// It panics on an off-board coordinate.
func Sq(row, col int) Square {
	sq, ok := NewSquare(row, col)
	if !ok {
		panic("chess: square out of range")
	}
	return sq
}

// InRange reports whether row and col lie on the board.
func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return InRange(int(s.Row), int(s.Col))
}

// Offset returns the square shifted by the given deltas, or false if that
// leaves the board. Coordinates never wrap.
func (s Square) Offset(dRow, dCol int) (Square, bool) {
	if !s.Valid() {
		return NoSquare, false
	}
	return NewSquare(int(s.Row)+dRow, int(s.Col)+dCol)
}

// Index returns the 0..63 row-major index of a valid square.
func (s Square) Index() int {
	return int(s.Row)*BoardSize + int(s.Col)
}

// IsLight reports whether the square is a light square (h1 and a8 are light).
func (s Square) IsLight() bool {
	return (int(s.Row)+int(s.Col))%2 == 0
}

// File returns the file letter 'a'..'h'.
func (s Square) File() byte {
	return 'a' + byte(s.Col)
}

// Rank returns the rank digit '1'..'8'.
func (s Square) Rank() byte {
	return '1' + byte(BoardSize-1-int(s.Row))
}

// String returns the algebraic square name, e.g. "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts an algebraic name such as "e4" to a square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return NewSquare(BoardSize-1-int(rank-'1'), int(file-'a'))
}

// HomeRow returns the back-rank row of a colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnStartRow returns the row from which a pawn may advance two squares.
func PawnStartRow(colour Colour) int {
	return HomeRow(colour) + colour.Forward()
}

// PromotionRow returns the row on which a pawn of the colour promotes.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}
