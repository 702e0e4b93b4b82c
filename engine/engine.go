package engine

import (
	"log/slog"
	"os"

	"github.com/hupe1980/htygo/codec"
	"github.com/hupe1980/htygo/metadata"
	"github.com/hupe1980/htygo/persistence"
)

// Engine executes queries and mutations against one HTY file path.
//
// The path is re-opened and its trailer re-parsed on every operation, so an
// Engine holds no file handles and no cached state between calls.
type Engine struct {
	path   string
	codec  codec.Codec
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCodec sets the codec used to decode and encode the trailer.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(e *Engine) {
		if c == nil {
			c = codec.Default
		}
		e.codec = c
	}
}

// WithLogger sets the structured logger. If nil is passed, logging is
// disabled.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		e.logger = l
	}
}

// New creates an Engine for the given path. The file is not touched until
// the first operation.
func New(path string, optFns ...Option) *Engine {
	e := &Engine{
		path:   path,
		codec:  codec.Default,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(e)
	}
	return e
}

// Path returns the file path this engine operates on.
func (e *Engine) Path() string {
	return e.path
}

// Metadata opens the file and parses its trailer. The result is a fresh
// value owned by the caller.
func (e *Engine) Metadata() (*metadata.Metadata, error) {
	f, m, _, err := e.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return m, nil
}

// open is the shared read-path entry: open, size, parse trailer, build the
// locator. On success the caller owns f and must close it.
func (e *Engine) open() (*os.File, *metadata.Metadata, *metadata.Locator, error) {
	f, size, err := persistence.OpenFile(e.path)
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := persistence.ReadTrailer(f, size, e.codec)
	if err != nil {
		_ = f.Close()
		return nil, nil, nil, err
	}
	return f, m, metadata.NewLocator(m), nil
}
