package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/fennecviewer/chess"
	"github.com/fennecviewer/chess/internal/config"
	"github.com/fennecviewer/chess/uci"
)

// Evaluator searches a position. *uci.Session satisfies it.
type Evaluator interface {
	Evaluate(ctx context.Context, pos uci.Position, limits uci.Limits) (uci.Evaluation, error)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server exposes replayed games over HTTP. Games live in memory only.
type Server struct {
	log    *zap.SugaredLogger
	render config.RenderConfig
	limits uci.Limits

	engine   Evaluator // nil when no engine is configured
	engineMu sync.Mutex

	gamesMu sync.RWMutex
	games   map[string]*chess.Game
}

// New returns a server. engine may be nil, in which case evaluation
// requests are refused.
func New(cfg config.Config, log *zap.SugaredLogger, engine Evaluator) *Server {
	return &Server{
		log:    log,
		render: cfg.Render,
		limits: uci.Limits{Depth: cfg.Engine.Depth, MoveTime: cfg.Engine.MoveTime},
		engine: engine,
		games:  make(map[string]*chess.Game),
	}
}

// Router returns the HTTP handler of the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/themes", s.HandleThemes)
	r.Route("/replay", func(r chi.Router) {
		r.Post("/", s.HandleNewReplay)
		r.Get("/{id}", s.HandleGetReplay)
		r.Get("/{id}/svg", s.HandleSVG)
		r.Get("/{id}/ws", s.HandleNavigate)
		r.Post("/{id}/eval", s.HandleEvaluate)
	})
	return r
}

func (s *Server) game(id string) (*chess.Game, bool) {
	s.gamesMu.RLock()
	defer s.gamesMu.RUnlock()
	g, ok := s.games[id]
	return g, ok
}

func (s *Server) store(id string, g *chess.Game) {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()
	s.games[id] = g
}
