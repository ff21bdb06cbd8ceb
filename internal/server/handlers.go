package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fallback"
)

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

type suggestRequest struct {
	Move       string   `json:"move"`
	Candidates []string `json:"candidates"`
	Tier       string   `json:"tier"`
}

type moveResponse struct {
	Snapshot
	Move string `json:"move"`
}

type suggestResponse struct {
	Snapshot
	Move       string `json:"move"`
	Fallback   bool   `json:"fallback"`
	Reason     string `json:"reason,omitempty"`
	ReasonKind string `json:"reasonKind,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, err)
		}
	}

	session, err := s.games.CreateGame(req.FEN)
	if err != nil {
		return s.fail(c, err)
	}
	s.logf(2, "game %s created\n", session.ID)

	snap, err := s.games.Snapshot(session.ID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

func (s *Server) getGame(c *fiber.Ctx) error {
	snap, err := s.games.Snapshot(c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(snap)
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.games.DeleteGame(c.Params("id")); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) makeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	snap, played, err := s.games.MakeMove(c.Params("id"), req.Move)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(moveResponse{Snapshot: snap, Move: played})
}

func (s *Server) suggest(c *fiber.Ctx) error {
	var req suggestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	resp, err := s.playSuggestion(c.Params("id"), req)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(resp)
}

// playSuggestion is shared by the REST and websocket paths.
func (s *Server) playSuggestion(gameID string, req suggestRequest) (suggestResponse, error) {
	tier := s.games.selector.Tier()
	if req.Tier != "" {
		parsed, err := fallback.ParseTier(req.Tier)
		if err != nil {
			return suggestResponse{}, err
		}
		tier = parsed
	}

	candidates := req.Candidates
	if req.Move != "" || len(candidates) == 0 {
		candidates = append([]string{req.Move}, candidates...)
	}

	snap, res, err := s.games.Suggest(gameID, candidates, tier)
	if err != nil {
		return suggestResponse{}, err
	}
	if res.Fallback {
		s.logf(1, "game %s: substituted %s (%s)\n", gameID, res.Text, res.Reason)
	}

	resp := suggestResponse{Snapshot: snap, Move: res.Text, Fallback: res.Fallback}
	if res.Reason != nil {
		resp.Reason = res.Reason.Error()
		resp.ReasonKind = errors.Kind(res.Reason)
	}
	return resp, nil
}

func (s *Server) undo(c *fiber.Ctx) error {
	snap, err := s.games.Undo(c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(snap)
}

// fail writes a domain error with its kind.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		s.logf(1, "%s %s: %v\n", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(errorResponse{Error: err.Error(), Kind: errors.Kind(err)})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error(), Kind: "bad_request"})
}

// statusFor maps an error kind to an HTTP status.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrSessionLimit):
		return fiber.StatusServiceUnavailable
	case stderrors.Is(err, errors.ErrNoLegalMoves):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrInvalidConfig):
		return fiber.StatusBadRequest
	case errors.Kind(err) != "internal":
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// errorHandler renders errors returned from handlers and middleware.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		return c.Status(fe.Code).JSON(errorResponse{Error: fe.Message, Kind: "request"})
	}
	return s.fail(c, err)
}
