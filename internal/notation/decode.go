// Package notation reads and writes moves in standard algebraic notation.
// Parsing resolves a token against a position's legal moves; rendering
// chooses the minimal disambiguation and derives the capture, promotion and
// check markers from the position the move produces.
package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CastleSide identifies a castling token.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// Suffix is the trailing check marker of a token.
type Suffix int

const (
	NoSuffix Suffix = iota
	CheckSuffix
	MateSuffix
)

// String returns the marker text.
func (s Suffix) String() string {
	switch s {
	case CheckSuffix:
		return "+"
	case MateSuffix:
		return "#"
	}
	return ""
}

// Token is a move token split into its grammatical parts. It says nothing
// about legality; see Parse.
type Token struct {
	Text      string
	Castle    CastleSide
	Piece     chess.PieceType // Pawn when no piece letter is given
	FromCol   int             // Disambiguating file, -1 if absent
	FromRow   int             // Disambiguating rank, -1 if absent
	Capture   bool
	To        chess.Square
	Promotion chess.PieceType // Empty if absent
	Suffix    Suffix
}

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return chess.IsFile(c)
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return chess.IsRank(c)
}

// isPiece returns the piece type for an uppercase piece letter. Pawns have
// no letter.
func isPiece(c byte) chess.PieceType {
	switch c {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'B':
		return chess.Bishop
	case 'N':
		return chess.Knight
	}
	return chess.Empty
}

// isPromotionPiece returns the promotion piece for c, Empty if none.
// Lowercase letters are accepted only after '='.
func isPromotionPiece(c byte, afterEquals bool) chess.PieceType {
	switch c {
	case 'Q', 'R', 'B', 'N':
		return isPiece(c)
	case 'q', 'r', 'b', 'n':
		if afterEquals {
			return chess.PieceTypeFromLetter(c)
		}
	}
	return chess.Empty
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// DecodeMove splits a move token into its parts. Tokens outside the
// grammar fail with ErrMalformedNotation.
func DecodeMove(text string) (Token, error) {
	tok := Token{Text: text, FromCol: -1, FromRow: -1, To: chess.NoSquare, Promotion: chess.Empty}
	move := strings.TrimSpace(text)
	if move == "" {
		return tok, malformed(text, "empty move")
	}

	// Check suffix
	switch move[len(move)-1] {
	case '+':
		tok.Suffix = CheckSuffix
		move = move[:len(move)-1]
	case '#':
		tok.Suffix = MateSuffix
		move = move[:len(move)-1]
	}
	if move == "" || isCheck(move[len(move)-1]) {
		return tok, malformed(text, "bad check suffix")
	}

	if isCastlingChar(move[0]) {
		return decodeCastle(tok, move)
	}

	pos := 0
	currentChar := func() byte {
		if pos >= len(move) {
			return 0
		}
		return move[pos]
	}
	advance := func() {
		if pos < len(move) {
			pos++
		}
	}

	tok.Piece = chess.Pawn
	if piece := isPiece(currentChar()); piece != chess.Empty {
		tok.Piece = piece
		advance()
	}

	// Coordinates and the capture marker run up to the promotion part.
	start := pos
scan:
	for {
		c := currentChar()
		switch {
		case isCol(c), isRank(c), c == 'x':
			advance()
		default:
			break scan
		}
	}
	coords := move[start:pos]

	if n := strings.Count(coords, "x"); n > 0 {
		// A single marker, directly before the destination.
		if n > 1 || strings.IndexByte(coords, 'x') != len(coords)-3 {
			return tok, malformed(text, "misplaced capture marker")
		}
		tok.Capture = true
		coords = strings.Replace(coords, "x", "", 1)
	}

	// The destination is the final file and rank, in that order.
	if len(coords) < 2 || !isCol(coords[len(coords)-2]) || !isRank(coords[len(coords)-1]) {
		return tok, malformed(text, "no destination square")
	}
	tok.To = chess.Square{
		Row: chess.RowFromRank(coords[len(coords)-1]),
		Col: chess.ColFromFile(coords[len(coords)-2]),
	}

	// What remains before the destination is the disambiguation.
	disambig := coords[:len(coords)-2]
	switch {
	case disambig == "":
	case len(disambig) == 1 && isCol(disambig[0]):
		tok.FromCol = chess.ColFromFile(disambig[0])
	case len(disambig) == 1 && isRank(disambig[0]):
		tok.FromRow = chess.RowFromRank(disambig[0])
	case len(disambig) == 2 && isCol(disambig[0]) && isRank(disambig[1]):
		tok.FromCol = chess.ColFromFile(disambig[0])
		tok.FromRow = chess.RowFromRank(disambig[1])
	default:
		return tok, malformed(text, "bad disambiguation")
	}

	// Look for promotions
	if currentChar() != 0 {
		afterEquals := false
		if currentChar() == '=' {
			afterEquals = true
			advance()
		}
		tok.Promotion = isPromotionPiece(currentChar(), afterEquals)
		if tok.Promotion == chess.Empty {
			return tok, malformed(text, "unexpected trailing text")
		}
		advance()
		if tok.Piece != chess.Pawn {
			return tok, malformed(text, "only pawns promote")
		}
	}

	if currentChar() != 0 {
		return tok, malformed(text, "unexpected trailing text")
	}
	return tok, nil
}

// decodeCastle accepts O-O and O-O-O and their digit-zero spellings.
func decodeCastle(tok Token, move string) (Token, error) {
	tok.Piece = chess.King
	switch move {
	case "O-O", "0-0":
		tok.Castle = Kingside
	case "O-O-O", "0-0-0":
		tok.Castle = Queenside
	default:
		return tok, malformed(tok.Text, "bad castling token")
	}
	return tok, nil
}

func malformed(text, reason string) error {
	return &errors.NotationError{
		Err:   errors.Wrap(errors.ErrMalformedNotation, reason),
		Token: text,
	}
}
