package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fennecviewer/chess"
	"github.com/fennecviewer/chess/image"
	"github.com/fennecviewer/chess/internal/config"
	"github.com/fennecviewer/chess/internal/logger"
	"github.com/fennecviewer/chess/internal/server"
	"github.com/fennecviewer/chess/uci"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "configuration file (yaml, json or toml)")
	fen := flag.String("fen", "", "start from this FEN instead of the PGN's")
	printUCI := flag.Bool("uci", false, "print the replayed moves in coordinate notation")
	svgPath := flag.String("svg", "", "write the selected snapshot as SVG to this file")
	ply := flag.Int("ply", -2, "snapshot index for -svg and -eval (-1 = initial, default last)")
	theme := flag.String("theme", "", "board theme for -svg")
	eval := flag.Bool("eval", false, "evaluate the selected snapshot with the configured engine")
	serve := flag.Bool("serve", false, "start the HTTP server")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: fennec [flags] [game.pgn]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *serve {
		return runServer(ctx, cfg, log)
	}

	game, err := loadGame(flag.Arg(0), *fen, log)
	if err != nil {
		return err
	}
	h := game.History()
	if *ply == -2 {
		*ply = h.Len() - 1
	}
	if *ply < -1 || *ply >= h.Len() {
		return fmt.Errorf("ply %d out of range [-1, %d]", *ply, h.Len()-1)
	}

	printSummary(os.Stdout, game)
	if *printUCI {
		fmt.Println(strings.Join(h.UCI(), " "))
	}
	if *svgPath != "" {
		name := *theme
		if name == "" {
			name = cfg.Render.Theme
		}
		if err := writeSVG(*svgPath, h.At(*ply), name, cfg.Render.SquareSize); err != nil {
			return err
		}
	}
	if *eval {
		return evaluate(ctx, cfg.Engine, game, *ply, log)
	}
	return nil
}

func loadGame(path, fen string, log *zap.Logger) (*chess.Game, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	opt, err := chess.PGN(r)
	if err != nil {
		return nil, err
	}
	opts := []func(*chess.Game){opt, chess.WithGameLogger(log)}
	if fen != "" {
		fenOpt, err := chess.FEN(fen)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fenOpt)
	}
	return chess.NewGame(opts...), nil
}

func printSummary(w io.Writer, g *chess.Game) {
	info := g.Info()
	h := g.History()
	fmt.Fprintf(w, "%s (%s) vs %s (%s), %s, %s\n",
		info.White, info.WhiteElo, info.Black, info.BlackElo, info.Event, info.Date)
	fmt.Fprintf(w, "replayed %d plies", h.Len())
	if err := h.Err(); err != nil {
		fmt.Fprintf(w, ", stopped at %v", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, h.Last().Draw())
}

func writeSVG(path string, pos chess.Position, themeName string, squareSize int) error {
	theme, err := image.ThemeByName(themeName)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := image.SVG(f, pos, image.WithTheme(theme), image.SquareSize(squareSize)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func evaluate(ctx context.Context, cfg config.EngineConfig, g *chess.Game, ply int, log *zap.Logger) error {
	session, err := startEngine(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer session.Close()

	pos := uci.Position{FEN: g.StartFEN(), Moves: g.History().UCI()[:ply+1]}
	ev, err := session.Evaluate(ctx, pos, uci.Limits{Depth: cfg.Depth, MoveTime: cfg.MoveTime})
	if err != nil {
		return err
	}
	fmt.Printf("score %s (white wins %.1f%%), best move %s\n", ev.Score, ev.Score.WinPercentage(), ev.BestMove)
	return nil
}

func startEngine(ctx context.Context, cfg config.EngineConfig, log *zap.Logger) (*uci.Session, error) {
	if cfg.Path == "" {
		return nil, errors.New("no engine configured (set engine.path)")
	}
	session, err := uci.StartSession(ctx, cfg.Path)
	if err != nil {
		return nil, err
	}
	session.SetLogger(log)
	hctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := session.Handshake(hctx, uci.Options{Threads: cfg.Threads, Hash: cfg.Hash}); err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("engine handshake: %w", err)
	}
	return session, nil
}

func runServer(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	var engine server.Evaluator
	if cfg.Engine.Path != "" {
		session, err := startEngine(ctx, cfg.Engine, log)
		if err != nil {
			return err
		}
		defer session.Close()
		engine = session
	}

	sugar := log.Sugar()
	srv := &http.Server{Addr: cfg.Server.Addr, Handler: server.New(*cfg, sugar, engine).Router()}
	go func() {
		<-ctx.Done()
		sugar.Info("Received shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	sugar.Infof("Server is running on %s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
