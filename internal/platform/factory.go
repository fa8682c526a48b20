// Package platform wires the storage adapter and the domain service
// into a usable session.
package platform

import (
	"context"
	"errors"

	"github.com/inktally/inktally/pkg/adapters/fs"
	"github.com/inktally/inktally/pkg/core"
)

// New opens the data file at path and returns a ready Service.
//
// Load problems are surfaced to the user but are not fatal: per the
// session model, a missing or corrupt data file leaves the store empty
// and the session continues. Only setup failures (unusable path,
// MustExist violated) abort.
func New(path string, opts ...Option) (*core.Service, error) {
	store, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(store,
		core.WithParams(o.params),
		core.WithLogger(o.logger),
		core.WithClock(o.clock),
	), nil
}

// Init prepares the storage adapter and loads it from disk.
func Init(path string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		fsStore := fs.NewStore(fs.Config{
			Path:      path,
			AutoInit:  o.autoInit,
			MustExist: o.mustExist,
			Logger:    o.logger,
		})
		if err := fsStore.Initialize(context.Background()); err != nil {
			return nil, err
		}
		store = fsStore
	}

	if err := store.Load(context.Background()); err != nil {
		var parseErr *core.ParseError
		switch {
		case errors.Is(err, core.ErrDataFileMissing):
			o.logger.Warn("data file missing, starting empty", "path", path)
		case errors.As(err, &parseErr):
			o.logger.Error("data file malformed, starting empty",
				"path", parseErr.Path, "line", parseErr.Line, "reason", parseErr.Reason)
		default:
			return nil, err
		}
	}

	return store, nil
}
