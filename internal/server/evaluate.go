package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fennecviewer/chess/internal/httpresponse"
	"github.com/fennecviewer/chess/uci"
)

type EvaluationResponse struct {
	Ply           int     `json:"ply"`
	Score         string  `json:"score"`
	WinPercentage float64 `json:"win_percentage"`
	BestMove      string  `json:"bestmove"`
	Ponder        string  `json:"ponder,omitempty"`
}

// HandleEvaluate asks the engine about one snapshot of a replay, selected
// like in HandleSVG. Requests are served one at a time.
func (s *Server) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		httpresponse.WriteError(w, http.StatusServiceUnavailable, "no engine configured")
		return
	}
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

	pos := uci.Position{FEN: g.StartFEN(), Moves: h.UCI()[:ply+1]}
	s.engineMu.Lock()
	ev, err := s.engine.Evaluate(r.Context(), pos, s.limits)
	s.engineMu.Unlock()
	if err != nil {
		s.log.Errorw("evaluation failed", "position", pos.Command(), "error", err)
		httpresponse.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, EvaluationResponse{
		Ply:           ply,
		Score:         ev.Score.String(),
		WinPercentage: ev.Score.WinPercentage(),
		BestMove:      ev.BestMove,
		Ponder:        ev.Ponder,
	})
}
