// Package hashing provides Zobrist position signatures and the node-count
// tables built on them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/thoth-go/internal/chess"
)

// zobristSeed fixes the key tables so signatures are reproducible across runs.
const zobristSeed = 0x7407

const numPieceCodes = 1 << (chess.PieceShift + 3)

// keys holds the random numbers combined into a signature. It is filled once
// at package initialisation and never written afterwards.
var keys struct {
	pieces    [numPieceCodes][chess.BoardSize * chess.BoardSize]uint64
	side      uint64
	castling  [chess.NumCastleSides]uint64
	enPassant [chess.BoardSize]uint64
}

func init() {
	rnd := rand.New(rand.NewSource(zobristSeed))
	for p := range keys.pieces {
		for sq := range keys.pieces[p] {
			keys.pieces[p][sq] = rnd.Uint64()
		}
	}
	keys.side = rnd.Uint64()
	for i := range keys.castling {
		keys.castling[i] = rnd.Uint64()
	}
	for f := range keys.enPassant {
		keys.enPassant[f] = rnd.Uint64()
	}
}

// PieceKey returns the key for a piece standing on a square.
// Empty squares and invalid squares contribute nothing.
func PieceKey(piece chess.Piece, sq chess.Square) uint64 {
	if piece.Kind() == chess.NoKind || !sq.Valid() {
		return 0
	}
	return keys.pieces[piece][sq.Index()]
}

// SideKey is folded into the signature when Black is to move.
func SideKey() uint64 {
	return keys.side
}

// CastlingKey returns the key for one held castling right.
func CastlingKey(side chess.CastleSide) uint64 {
	return keys.castling[side]
}

// CastlingRightsKey combines the keys of every held right.
func CastlingRightsKey(rights chess.CastlingRights) uint64 {
	var key uint64
	for side := chess.CastleSide(0); side < chess.NumCastleSides; side++ {
		if rights.Has(side) {
			key ^= keys.castling[side]
		}
	}
	return key
}

// EnPassantKey returns the key for an en passant capture on the given file.
func EnPassantKey(file int) uint64 {
	if file < 0 || file >= chess.BoardSize {
		return 0
	}
	return keys.enPassant[file]
}

// BoardKey hashes the piece placement only.
func BoardKey(b *chess.Board) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Squares[row][col]
			if p != chess.Empty {
				key ^= keys.pieces[p][row*chess.BoardSize+col]
			}
		}
	}
	return key
}

// PositionKey hashes placement, side to move and castling rights. The en
// passant component is left to the caller because whether it counts depends
// on capture availability.
func PositionKey(b *chess.Board, toMove chess.Colour, rights chess.CastlingRights) uint64 {
	key := BoardKey(b) ^ CastlingRightsKey(rights)
	if toMove == chess.Black {
		key ^= keys.side
	}
	return key
}
