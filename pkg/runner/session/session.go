// Package session opens a schedule for one command invocation.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tableflip.dev/dday/pkg/schedule"
	"tableflip.dev/dday/pkg/store"
	"tableflip.dev/dday/pkg/timeutil"
)

// Session is a loaded schedule and the settings it was opened with.
type Session struct {
	Store       *schedule.Store
	Persistence store.Persistence
	Config      store.Config
	Today       time.Time
}

// Open loads the configured backend into a fresh Store. A failed load is
// only logged: the session starts empty rather than refusing to run.
func Open(ctx context.Context, cfg store.Config, today time.Time) (*Session, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	if today.IsZero() {
		today = timeutil.Today(time.Now())
	}
	s := &Session{
		Store:       schedule.New(p),
		Persistence: p,
		Config:      cfg,
		Today:       today,
	}
	if err := Tolerate(s.Store.Load(ctx)); err != nil {
		_ = p.Close()
		return nil, err
	}
	slog.Debug("session opened", "backend", cfg.Backend(), "path", p.Path(), "exams", s.Store.Len())
	return s, nil
}

// Items is the listing the session's owner sees.
func (s *Session) Items() []schedule.Item {
	return s.Store.ListFor(s.Today, s.Config.Owner())
}

func (s *Session) Close() error {
	return s.Persistence.Close()
}

// Tolerate logs persistence failures and swallows them; any other error is
// returned unchanged.
func Tolerate(err error) error {
	var perr *schedule.PersistenceError
	if errors.As(err, &perr) {
		slog.Warn("exam data "+perr.Op+" failed; continuing", "error", perr.Err)
		return nil
	}
	return err
}
