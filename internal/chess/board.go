package chess

// Board is the 8×8 piece placement. It is a plain value: assigning a Board
// copies it.
type Board struct {
	// Squares[row][col]; row 0 is the eighth rank.
	Squares [BoardSize][BoardSize]Piece
}

// initialBackRank is the piece order along both back ranks.
var initialBackRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard starting placement.
func InitialBoard() Board {
	var b Board
	for col := 0; col < BoardSize; col++ {
		b.Squares[HomeRow(White)][col] = W(initialBackRank[col])
		b.Squares[PawnStartRow(White)][col] = W(Pawn)
		b.Squares[PawnStartRow(Black)][col] = B(Pawn)
		b.Squares[HomeRow(Black)][col] = B(initialBackRank[col])
	}
	return b
}

// Get returns the piece at row, col, or Off for coordinates outside the board.
func (b *Board) Get(row, col int) Piece {
	if !InRange(row, col) {
		return Off
	}
	return b.Squares[row][col]
}

// At returns the piece on a square, or Off for an invalid square.
func (b *Board) At(sq Square) Piece {
	return b.Get(int(sq.Row), int(sq.Col))
}

// Set places a piece on a square. Invalid squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	b.Squares[sq.Row][sq.Col] = piece
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Empty)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Find returns every square holding the given piece in row-major order.
func (b *Board) Find(piece Piece) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				squares = append(squares, Square{Row: int8(row), Col: int8(col)})
			}
		}
	}
	return squares
}

// FindKing returns the square of the colour's king, or false if it is missing.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakePiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Square{Row: int8(row), Col: int8(col)}, true
			}
		}
	}
	return NoSquare, false
}

// Count returns how many times the piece occurs on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				n++
			}
		}
	}
	return n
}
