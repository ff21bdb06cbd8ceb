package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFieldCount is the number of space-separated fields in a position string.
const fenFieldCount = 6

// EncodePosition converts a game state to a FEN string. Castling rights come
// from the pieces' moved flags; the en passant target and both clocks are
// derived from the move history on top of the state's start metadata.
func EncodePosition(state *chess.GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, state.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, state.ToMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, state.CastlingRights())
	sb.WriteByte(' ')
	ep, _ := state.EnPassantTarget()
	sb.WriteString(ep.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(state.HalfmoveClock()), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(state.FullmoveNumber()), 10))

	return sb.String()
}

// BoardToFEN encodes a bare board with no history: no en passant target,
// halfmove clock 0 and fullmove number 1.
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	return EncodePosition(chess.NewGameFrom(board, toMove, chess.NoSquare, 0, 1))
}

// DecodePosition creates a game state from a FEN string. The history of the
// new state is empty; the en passant target and clocks are kept as its start
// metadata. Each field is validated and a failure is reported as a
// *errors.PositionError naming the field.
func DecodePosition(fen string) (*chess.GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFieldCount {
		return nil, &errors.PositionError{
			Field:  errors.FieldCount,
			Value:  fen,
			Reason: "expected " + strconv.Itoa(fenFieldCount) + " fields, got " + strconv.Itoa(len(parts)),
		}
	}

	board, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}
	toMove, err := parseSideToMove(parts[1])
	if err != nil {
		return nil, err
	}
	rights, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	ep, err := parseEnPassant(parts[3])
	if err != nil {
		return nil, err
	}
	halfmove, err := parseCounter(errors.FieldHalfmove, parts[4], 0)
	if err != nil {
		return nil, err
	}
	fullmove, err := parseCounter(errors.FieldFullmove, parts[5], 1)
	if err != nil {
		return nil, err
	}

	markMovedPieces(board, rights)
	return chess.NewGameFrom(board, toMove, ep, halfmove, fullmove), nil
}

// NewBoardFromFEN decodes a FEN string and returns only its board.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	state, err := DecodePosition(fen)
	if err != nil {
		return nil, err
	}
	return state.Board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) (*chess.Board, error) {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return nil, &errors.PositionError{
			Field:  errors.FieldPlacement,
			Value:  positions,
			Reason: "expected 8 ranks, got " + strconv.Itoa(len(ranks)),
		}
	}

	board := chess.NewBoard()
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				pieceType := chess.PieceTypeFromLetter(c)
				if pieceType == chess.Empty {
					return nil, &errors.PositionError{
						Field:  errors.FieldPlacement,
						Value:  rank,
						Reason: "invalid piece character " + strconv.QuoteRune(rune(c)),
					}
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				if col < chess.BoardSize {
					board.Set(chess.Sq(row, col), chess.NewPiece(colour, pieceType))
				}
				col++
			}
			if col > chess.BoardSize {
				break
			}
		}
		if col != chess.BoardSize {
			return nil, &errors.PositionError{
				Field:  errors.FieldPlacement,
				Value:  rank,
				Reason: "rank describes " + strconv.Itoa(col) + " squares, want 8",
			}
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(side string) (chess.Colour, error) {
	switch side {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, &errors.PositionError{
		Field:  errors.FieldSideToMove,
		Value:  side,
		Reason: "want w or b",
	}
}

// parseCastlingRights parses the castling availability field. Letters must
// come from KQkq, each at most once, or the field is a lone "-".
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if field == "-" {
		return rights, nil
	}
	if field == "" {
		return rights, &errors.PositionError{Field: errors.FieldCastling, Reason: "empty field"}
	}

	seen := make(map[byte]bool, 4)
	for i := 0; i < len(field); i++ {
		c := field[i]
		if seen[c] {
			return rights, &errors.PositionError{
				Field:  errors.FieldCastling,
				Value:  field,
				Reason: "duplicate " + strconv.QuoteRune(rune(c)),
			}
		}
		seen[c] = true

		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, &errors.PositionError{
				Field:  errors.FieldCastling,
				Value:  field,
				Reason: "invalid character " + strconv.QuoteRune(rune(c)),
			}
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(field string) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return chess.NoSquare, &errors.PositionError{
			Field:  errors.FieldEnPassant,
			Value:  field,
			Reason: "want a square or -",
		}
	}
	return sq, nil
}

// parseCounter parses a clock field: decimal digits only, at least min.
func parseCounter(field errors.PositionField, value string, min uint64) (uint, error) {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, &errors.PositionError{Field: field, Value: value, Reason: "not a non-negative integer"}
		}
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, &errors.PositionError{Field: field, Value: value, Reason: "not a non-negative integer"}
	}
	if n < min {
		return 0, &errors.PositionError{
			Field:  field,
			Value:  value,
			Reason: "must be at least " + strconv.FormatUint(min, 10),
		}
	}
	return uint(n), nil
}

// markMovedPieces sets the moved flags that a position string implies.
// A king or rook keeps its unmoved status only when a castling right needs
// it; a pawn is unmoved only on its starting rank. Rights naming a missing
// king or rook are dropped.
func markMovedPieces(board *chess.Board, rights chess.CastlingRights) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		row := chess.HomeRow(colour)
		kingside := rights.Kingside(colour)
		queenside := rights.Queenside(colour)

		for _, sq := range board.Occupied(colour) {
			piece := board.Get(sq)
			unmoved := true
			switch piece.Type {
			case chess.Pawn:
				unmoved = sq.Row == chess.PawnRow(colour)
			case chess.King:
				unmoved = sq == chess.Sq(row, chess.KingCol) && (kingside || queenside)
			case chess.Rook:
				unmoved = (kingside && sq == chess.Sq(row, chess.KingsideRookCol)) ||
					(queenside && sq == chess.Sq(row, chess.QueensideRookCol))
			}
			if !unmoved {
				board.Set(sq, piece.Moved())
			}
		}
	}
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if rights.BlackKingside {
		sb.WriteByte('k')
	}
	if rights.BlackQueenside {
		sb.WriteByte('q')
	}
}
