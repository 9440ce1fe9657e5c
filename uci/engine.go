// Package uci drives chess engines that speak the Universal Chess Interface
// protocol. It is used to evaluate positions produced by a replay.
package uci

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrEngineClosed is returned when a command is sent after Close.
var ErrEngineClosed = errors.New("uci: engine is closed")

const quitTimeout = 3 * time.Second

// Engine is the command side of a UCI conversation: lines go to in and the
// replies come back on out. It is backed by a process when started with
// Start.
type Engine struct {
	proc *exec.Cmd
	in   io.Writer
	out  io.Reader
	logs io.Reader

	mu   sync.Mutex
	quit bool
}

// Start launches the engine binary at path from its own directory, so
// engines that look for network files next to the executable find them.
func Start(ctx context.Context, path string, args ...string) (*Engine, error) {
	if path == "" {
		return nil, errors.New("uci: engine path is required")
	}
	proc := exec.CommandContext(ctx, path, args...)
	proc.Dir = filepath.Dir(path)

	e := &Engine{proc: proc}
	var err error
	if e.in, err = proc.StdinPipe(); err != nil {
		return nil, fmt.Errorf("uci: stdin: %w", err)
	}
	if e.out, err = proc.StdoutPipe(); err != nil {
		return nil, fmt.Errorf("uci: stdout: %w", err)
	}
	if e.logs, err = proc.StderrPipe(); err != nil {
		return nil, fmt.Errorf("uci: stderr: %w", err)
	}
	if err := proc.Start(); err != nil {
		return nil, fmt.Errorf("uci: start %s: %w", path, err)
	}
	return e, nil
}

// Reader returns a protocol reader over the engine's replies.
func (e *Engine) Reader() *Reader {
	return NewReader(e.out)
}

// Stderr returns the engine's diagnostic stream, or nil when the engine is
// not a process.
func (e *Engine) Stderr() io.Reader {
	return e.logs
}

// Send writes one command. A trailing newline is added when missing.
func (e *Engine) Send(cmd string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.write(cmd)
}

func (e *Engine) write(cmd string) error {
	if e.quit {
		return ErrEngineClosed
	}
	_, err := fmt.Fprintln(e.in, strings.TrimSuffix(cmd, "\n"))
	return err
}

// Close sends "quit", closes the command stream and waits for the process.
// An engine that is still running after three seconds is killed.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.quit {
		e.mu.Unlock()
		return nil
	}
	_ = e.write("quit")
	e.quit = true
	e.mu.Unlock()

	if c, ok := e.in.(io.Closer); ok {
		_ = c.Close()
	}
	if e.proc == nil {
		return nil
	}

	killed := make(chan struct{})
	timer := time.AfterFunc(quitTimeout, func() {
		_ = e.proc.Process.Kill()
		close(killed)
	})
	err := e.proc.Wait()
	if !timer.Stop() {
		<-killed
		return errors.New("uci: engine did not exit in time")
	}
	return err
}
