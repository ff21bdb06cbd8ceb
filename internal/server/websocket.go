package server

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MessageType represents the different kinds of messages the socket handles
type MessageType string

const (
	MessageTypeMove    MessageType = "move"
	MessageTypeSuggest MessageType = "suggest"
	MessageTypeUndo    MessageType = "undo"
	MessageTypeState   MessageType = "state"
	MessageTypeError   MessageType = "error"
)

// Message is one websocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// handleConnection serves one socket bound to a game. It sends the current
// state first and answers every request with a state or error message.
func (s *Server) handleConnection(c *websocket.Conn) {
	gameID := c.Params("id")

	snap, err := s.games.Snapshot(gameID)
	if err != nil {
		s.writeMessage(c, errorMessage(errors.Kind(err), err))
		c.Close()
		return
	}
	s.writeMessage(c, stateMessage(snap))

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			s.logf(2, "game %s: read error: %v\n", gameID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.writeMessage(c, errorMessage("bad_request", err))
			continue
		}
		s.writeMessage(c, s.handleMessage(gameID, msg))
	}
}

// handleMessage answers one request.
func (s *Server) handleMessage(gameID string, msg Message) Message {
	switch msg.Type {
	case MessageTypeMove:
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return errorMessage("bad_request", err)
		}
		snap, played, err := s.games.MakeMove(gameID, req.Move)
		if err != nil {
			return errorMessage(errors.Kind(err), err)
		}
		return stateMessage(moveResponse{Snapshot: snap, Move: played})

	case MessageTypeSuggest:
		var req suggestRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return errorMessage("bad_request", err)
		}
		resp, err := s.playSuggestion(gameID, req)
		if err != nil {
			return errorMessage(errors.Kind(err), err)
		}
		return stateMessage(resp)

	case MessageTypeUndo:
		snap, err := s.games.Undo(gameID)
		if err != nil {
			return errorMessage(errors.Kind(err), err)
		}
		return stateMessage(snap)

	case MessageTypeState:
		snap, err := s.games.Snapshot(gameID)
		if err != nil {
			return errorMessage(errors.Kind(err), err)
		}
		return stateMessage(snap)
	}
	return errorMessage("bad_request", fmt.Errorf("unknown message type: %s", msg.Type))
}

func (s *Server) writeMessage(c *websocket.Conn, msg Message) {
	if err := c.WriteJSON(msg); err != nil {
		s.logf(2, "write error: %v\n", err)
	}
}

func stateMessage(v interface{}) Message {
	payload, err := json.Marshal(v)
	if err != nil {
		return errorMessage("internal", err)
	}
	return Message{Type: MessageTypeState, Payload: payload}
}

func errorMessage(kind string, err error) Message {
	payload, _ := json.Marshal(errorResponse{Error: err.Error(), Kind: kind})
	return Message{Type: MessageTypeError, Payload: payload}
}
