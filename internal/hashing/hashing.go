// Package hashing computes Zobrist keys for positions and counts how often
// each key occurs.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const squares = chess.BoardSize * chess.BoardSize

var (
	pieceKeys  [2][chess.King + 1][squares]uint64
	sideKey    uint64
	castleKeys [4]uint64
	epFileKeys [chess.BoardSize]uint64
)

// The key tables come from a fixed seed so keys are stable between runs.
func init() {
	rng := rand.New(rand.NewSource(0x2545F4914F6CDD1D))
	for colour := range pieceKeys {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := 0; sq < squares; sq++ {
				pieceKeys[colour][pt][sq] = rng.Uint64()
			}
		}
	}
	sideKey = rng.Uint64()
	for i := range castleKeys {
		castleKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

// Key returns the Zobrist key of the position in state. Two states share a
// key when they agree on placement, side to move, castling rights and en
// passant target; move clocks are ignored.
func Key(state *chess.GameState) uint64 {
	key := BoardKey(state.Board)
	if state.ToMove == chess.Black {
		key ^= sideKey
	}

	rights := state.CastlingRights()
	for i, ok := range [4]bool{rights.WhiteKingside, rights.WhiteQueenside, rights.BlackKingside, rights.BlackQueenside} {
		if ok {
			key ^= castleKeys[i]
		}
	}

	if ep, ok := state.EnPassantTarget(); ok {
		key ^= epFileKeys[ep.Col]
	}
	return key
}

// BoardKey hashes piece placement only.
func BoardKey(board *chess.Board) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			key ^= pieceKeys[p.Colour][p.Type][row*chess.BoardSize+col]
		}
	}
	return key
}
