// Package errors provides sentinel errors and error types for the chess rules core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoPieceAtSource indicates a move was requested from an empty square.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates notation matching more than one source piece.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrMalformedNotation indicates a token outside the move grammar.
	ErrMalformedNotation = errors.New("malformed move notation")

	// ErrCheckSuffixMismatch indicates a '+' or '#' suffix that disagrees
	// with the position the move produces.
	ErrCheckSuffixMismatch = errors.New("check suffix mismatch")

	// ErrMalformedPosition indicates an invalid position string.
	ErrMalformedPosition = errors.New("malformed position")

	// ErrKingNotFound indicates an attack query for a colour with no king.
	ErrKingNotFound = errors.New("king not found")

	// ErrNoLegalMoves indicates there is nothing to choose a move from.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown session id.
	ErrGameNotFound = errors.New("game not found")

	// ErrSessionLimit indicates the host cannot open another session.
	ErrSessionLimit = errors.New("session limit reached")
)

// PositionField identifies one of the six fields of a position string.
type PositionField int

const (
	FieldPlacement PositionField = iota
	FieldSideToMove
	FieldCastling
	FieldEnPassant
	FieldHalfmove
	FieldFullmove
	// FieldCount is used when the string does not have six fields.
	FieldCount
)

// String returns the field name.
func (f PositionField) String() string {
	switch f {
	case FieldPlacement:
		return "piece placement"
	case FieldSideToMove:
		return "side to move"
	case FieldCastling:
		return "castling rights"
	case FieldEnPassant:
		return "en passant target"
	case FieldHalfmove:
		return "halfmove clock"
	case FieldFullmove:
		return "fullmove number"
	case FieldCount:
		return "field count"
	}
	return "unknown field"
}

// PositionError reports which field of a position string failed to decode.
// It always unwraps to ErrMalformedPosition.
type PositionError struct {
	Field  PositionField // The field that failed
	Value  string        // The offending text (if applicable)
	Reason string        // What was wrong with it
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	parts := []string{e.Field.String()}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrMalformedPosition, strings.Join(parts, ": "))
}

// Unwrap returns ErrMalformedPosition.
func (e *PositionError) Unwrap() error {
	return ErrMalformedPosition
}

// NotationError wraps errors with the notation token that caused them.
type NotationError struct {
	Err   error  // The underlying error
	Token string // The move text as supplied
	Ply   int    // Ply number where the token was played (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *NotationError) Error() string {
	var parts []string
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	parts = append(parts, fmt.Sprintf("move %q", e.Token))

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the NotationError wrapper.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with the squares of a coordinate move.
type MoveError struct {
	Err  error
	From string
	To   string
}

// Error returns a formatted error message.
func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s-%s: %v", e.From, e.To, e.Err)
	}
	return fmt.Sprintf("%s-%s", e.From, e.To)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Kind returns a short stable name for the sentinel err wraps, suitable
// for machine-readable responses. Unknown errors map to "internal".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoPieceAtSource):
		return "no_piece_at_source"
	case errors.Is(err, ErrIllegalMove):
		return "illegal_move"
	case errors.Is(err, ErrAmbiguousMove):
		return "ambiguous_move"
	case errors.Is(err, ErrMalformedNotation):
		return "malformed_notation"
	case errors.Is(err, ErrCheckSuffixMismatch):
		return "check_suffix_mismatch"
	case errors.Is(err, ErrMalformedPosition):
		return "malformed_position"
	case errors.Is(err, ErrKingNotFound):
		return "king_not_found"
	case errors.Is(err, ErrNoLegalMoves):
		return "no_legal_moves"
	case errors.Is(err, ErrInvalidConfig):
		return "invalid_config"
	case errors.Is(err, ErrGameNotFound):
		return "game_not_found"
	case errors.Is(err, ErrSessionLimit):
		return "session_limit"
	}
	return "internal"
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
