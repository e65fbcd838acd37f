package engine

import (
	"github.com/lgbarn/thoth-go/internal/chess"
)

// castleGeometry holds the fixed squares of one castling side.
type castleGeometry struct {
	king   chess.Square // King home square
	kingTo chess.Square // King destination
	rook   chess.Square // Rook home square
	rookTo chess.Square // Rook destination
}

// castleGeometries is indexed by chess.CastleSide.
var castleGeometries = [chess.NumCastleSides]castleGeometry{
	chess.WhiteKingside:  {king: chess.Sq(7, 4), kingTo: chess.Sq(7, 6), rook: chess.Sq(7, 7), rookTo: chess.Sq(7, 5)},
	chess.WhiteQueenside: {king: chess.Sq(7, 4), kingTo: chess.Sq(7, 2), rook: chess.Sq(7, 0), rookTo: chess.Sq(7, 3)},
	chess.BlackKingside:  {king: chess.Sq(0, 4), kingTo: chess.Sq(0, 6), rook: chess.Sq(0, 7), rookTo: chess.Sq(0, 5)},
	chess.BlackQueenside: {king: chess.Sq(0, 4), kingTo: chess.Sq(0, 2), rook: chess.Sq(0, 0), rookTo: chess.Sq(0, 3)},
}

// castleMoves appends the castles available to us. Rights must be held,
// the squares between king and rook empty, and the king may not start on,
// pass through, or land on an attacked square.
func (g *GameState) castleMoves(moves []Move, us chess.Colour) []Move {
	board := &g.board
	them := us.Opposite()
	for _, kingside := range [2]bool{true, false} {
		side := chess.CastleSideFor(us, kingside)
		if !g.castling.Has(side) {
			continue
		}
		geo := castleGeometries[side]
		if !isPathClear(board, geo.king, geo.rook) {
			continue
		}
		// The king crosses the rook's destination square on its way.
		if IsAttacked(board, geo.king, them) ||
			IsAttacked(board, geo.rookTo, them) ||
			IsAttacked(board, geo.kingTo, them) {
			continue
		}
		moves = append(moves, CastleMove{Side: side})
	}
	return moves
}

// applyCastle moves king and rook to their castled squares.
func (g *GameState) applyCastle(side chess.CastleSide) {
	geo := castleGeometries[side]
	colour := side.Colour()
	g.put(geo.king, chess.Empty)
	g.put(geo.rook, chess.Empty)
	g.put(geo.kingTo, chess.MakePiece(colour, chess.King))
	g.put(geo.rookTo, chess.MakePiece(colour, chess.Rook))
	g.kings[colour] = geo.kingTo
}

// unapplyCastle puts king and rook back on their home squares.
func (g *GameState) unapplyCastle(side chess.CastleSide) {
	geo := castleGeometries[side]
	colour := side.Colour()
	g.board.Clear(geo.kingTo)
	g.board.Clear(geo.rookTo)
	g.board.Set(geo.king, chess.MakePiece(colour, chess.King))
	g.board.Set(geo.rook, chess.MakePiece(colour, chess.Rook))
}

// updateCastlingRightsForRook clears the right tied to a rook home square
// when a rook of that colour leaves it or is captured on it.
func (g *GameState) updateCastlingRightsForRook(colour chess.Colour, sq chess.Square) {
	for _, kingside := range [2]bool{true, false} {
		side := chess.CastleSideFor(colour, kingside)
		if castleGeometries[side].rook == sq {
			g.castling.Clear(side)
		}
	}
}
