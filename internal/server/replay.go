package server

import (
	"errors"
	"fmt"
	"image/color"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fennecviewer/chess"
	"github.com/fennecviewer/chess/image"
	"github.com/fennecviewer/chess/internal/httpresponse"
)

const maxPGNSize = 1 << 20

var lastMoveColor = color.RGBA{205, 210, 106, 255}

type ReplayResponse struct {
	ID        string         `json:"id"`
	Info      chess.GameInfo `json:"info"`
	Tags      chess.TagPairs `json:"tags"`
	Start     string         `json:"start"`
	Positions []string       `json:"positions"`
	UCI       []string       `json:"uci"`
	Tokens    []string       `json:"tokens"`
	Completed bool           `json:"completed"`
	Error     string         `json:"error,omitempty"`
}

func newReplayResponse(id string, g *chess.Game) ReplayResponse {
	h := g.History()
	positions := make([]string, h.Len())
	for i := range positions {
		positions[i] = chess.EncodeFEN(h.At(i), h.TurnAt(i))
	}
	resp := ReplayResponse{
		ID:        id,
		Info:      g.Info(),
		Tags:      g.TagPairs(),
		Start:     chess.EncodeFEN(h.Initial(), h.StartTurn()),
		Positions: positions,
		UCI:       h.UCI(),
		Tokens:    h.Tokens(),
		Completed: h.Completed(),
	}
	if err := h.Err(); err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// HandleNewReplay replays the PGN in the request body and stores the game.
func (s *Server) HandleNewReplay(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	opt, err := chess.PGN(http.MaxBytesReader(w, r.Body, maxPGNSize))
	if err != nil {
		s.log.Errorw("rejected PGN", "error", err)
		httpresponse.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	g := chess.NewGame(opt, chess.WithGameLogger(s.log.Desugar()))
	id := uuid.NewString()
	s.store(id, g)

	s.log.Infow("replay created", "id", id, "plies", g.History().Len(), "completed", g.History().Completed())
	httpresponse.WriteResponseWithStatus(w, http.StatusCreated, newReplayResponse(id, g))
}

// HandleGetReplay returns a stored replay.
func (s *Server) HandleGetReplay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, ok := s.game(id)
	if !ok {
		httpresponse.WriteError(w, http.StatusNotFound, "replay not found")
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, newReplayResponse(id, g))
}

// HandleSVG renders one snapshot of a replay. The query parameter ply
// selects the snapshot (-1 for the initial position, default the last one),
// theme selects the theme and flip=1 shows the board from black's side.
func (s *Server) HandleSVG(w http.ResponseWriter, r *http.Request) {
	g, ok := s.game(chi.URLParam(r, "id"))
	if !ok {
		httpresponse.WriteError(w, http.StatusNotFound, "replay not found")
		return
	}
	h := g.History()

	ply, err := plyParam(r, h)
	if err != nil {
		httpresponse.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := r.URL.Query().Get("theme")
	if name == "" {
		name = s.render.Theme
	}
	theme, err := image.ThemeByName(name)
	if err != nil {
		httpresponse.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := []image.Option{image.WithTheme(theme), image.SquareSize(s.render.SquareSize)}
	if ply >= 0 {
		m := h.Moves()[ply]
		opts = append(opts, image.MarkSquares(lastMoveColor, m.From, m.To))
	}
	if r.URL.Query().Get("flip") == "1" {
		opts = append(opts, image.Perspective(chess.Black))
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := image.SVG(w, h.At(ply), opts...); err != nil {
		s.log.Errorw("svg render failed", "error", err)
	}
}

// HandleThemes lists the available theme names.
func (s *Server) HandleThemes(w http.ResponseWriter, r *http.Request) {
	themes := image.Themes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name()
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, names)
}

// plyParam reads the ply query parameter, defaulting to the last move.
func plyParam(r *http.Request, h *chess.History) (int, error) {
	v := r.URL.Query().Get("ply")
	if v == "" {
		return h.Len() - 1, nil
	}
	ply, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid ply %q", v)
	}
	if ply < -1 || ply >= h.Len() {
		return 0, errors.New("ply out of range")
	}
	return ply, nil
}
