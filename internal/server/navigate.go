package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/fennecviewer/chess"
	"github.com/fennecviewer/chess/internal/httpresponse"
)

type CursorState struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	FEN   string `json:"fen"`
	Error string `json:"error,omitempty"`
}

func cursorState(h *chess.History, c *chess.Cursor) CursorState {
	return CursorState{
		Index: c.Index(),
		Label: c.Label(),
		FEN:   chess.EncodeFEN(c.Position(), h.TurnAt(c.Index())),
	}
}

// HandleNavigate walks a replay over a websocket. Each text message is one
// of next, prev, last, reset or "seek N"; the reply is the cursor state.
// Every connection has its own cursor.
func (s *Server) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, ok := s.game(id)
	if !ok {
		httpresponse.WriteError(w, http.StatusNotFound, "replay not found")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorw("upgrade error", "error", err)
		return
	}
	defer conn.Close()

	h := g.History()
	cur := g.Cursor()
	if err := conn.WriteJSON(cursorState(h, cur)); err != nil {
		return
	}
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Errorw("read error", "id", id, "error", err)
			}
			return
		}
		navErr := navigate(cur, string(msg))
		state := cursorState(h, cur)
		if navErr != nil {
			state.Error = navErr.Error()
		}
		if err := conn.WriteJSON(state); err != nil {
			s.log.Errorw("write error", "id", id, "error", err)
			return
		}
	}
}

func navigate(c *chess.Cursor, command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return errors.New("empty command")
	}
	switch fields[0] {
	case "next":
		c.Next()
	case "prev":
		c.Prev()
	case "last":
		c.Last()
	case "reset":
		c.Reset()
	case "seek":
		if len(fields) != 2 {
			return errors.New("usage: seek N")
		}
		i, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("invalid index %q", fields[1])
		}
		if !c.Seek(i) {
			return fmt.Errorf("index %d out of range", i)
		}
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
