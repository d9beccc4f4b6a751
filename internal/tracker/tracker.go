// Package tracker accumulates reading time on personal library entries.
// While a session runs, every interval adds one minute to the entry and
// saves the library.
package tracker

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"
)

const DefaultInterval = time.Minute

var ErrNoSession = errors.New("no active reading session")

// TimeRecorder adds reading minutes to a user's entry.
type TimeRecorder interface {
	AddTime(username, title string, minutes int) error
}

// Run ticks every interval, recording one minute per tick, until ctx is
// cancelled or recording fails. It returns the minutes recorded.
func Run(ctx context.Context, rec TimeRecorder, username, title string, interval time.Duration) (int, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	minutes := 0
	for {
		select {
		case <-ctx.Done():
			return minutes, nil
		case <-ticker.C:
			if err := rec.AddTime(username, title, 1); err != nil {
				return minutes, err
			}
			minutes++
		}
	}
}

// SessionInfo describes a reading session.
type SessionInfo struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Started  time.Time `json:"started_at"`
	Minutes  int       `json:"minutes"`
}

type session struct {
	mu     sync.Mutex
	info   SessionInfo
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *session) snapshot() SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// Tracker runs at most one reading session per user in the background.
type Tracker struct {
	base     context.Context
	rec      TimeRecorder
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// New returns a Tracker whose sessions end when ctx is cancelled.
func New(ctx context.Context, rec TimeRecorder, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Tracker{
		base:     ctx,
		rec:      rec,
		interval: interval,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Start begins a session on title, replacing any session the user already
// has. The entry must exist in the user's library.
func (t *Tracker) Start(username, title string) (SessionInfo, error) {
	if err := t.rec.AddTime(username, title, 0); err != nil {
		return SessionInfo{}, err
	}

	ctx, cancel := context.WithCancel(t.base)
	s := &session{
		info:   SessionInfo{Username: username, Title: title, Started: t.now()},
		cancel: cancel,
		done:   make(chan struct{}),
	}

	t.mu.Lock()
	prev := t.sessions[username]
	t.sessions[username] = s
	t.mu.Unlock()

	if prev != nil {
		prev.cancel()
		<-prev.done
	}

	go t.run(ctx, s)
	log.Printf("tracker: session started user=%s title=%q", username, title)
	return s.snapshot(), nil
}

func (t *Tracker) run(ctx context.Context, s *session) {
	defer close(s.done)

	rec := recorderFunc(func(username, title string, minutes int) error {
		if err := t.rec.AddTime(username, title, minutes); err != nil {
			return err
		}
		s.mu.Lock()
		s.info.Minutes += minutes
		s.mu.Unlock()
		return nil
	})

	info := s.snapshot()
	if _, err := Run(ctx, rec, info.Username, info.Title, t.interval); err != nil {
		log.Printf("tracker: session ended user=%s title=%q err=%v", info.Username, info.Title, err)
		t.mu.Lock()
		if t.sessions[info.Username] == s {
			delete(t.sessions, info.Username)
		}
		t.mu.Unlock()
	}
}

// Stop ends the user's session and returns what it recorded.
func (t *Tracker) Stop(username string) (SessionInfo, error) {
	t.mu.Lock()
	s, ok := t.sessions[username]
	delete(t.sessions, username)
	t.mu.Unlock()

	if !ok {
		return SessionInfo{}, ErrNoSession
	}
	s.cancel()
	<-s.done

	info := s.snapshot()
	log.Printf("tracker: session stopped user=%s title=%q minutes=%d", username, info.Title, info.Minutes)
	return info, nil
}

func (t *Tracker) Active(username string) (SessionInfo, error) {
	t.mu.Lock()
	s, ok := t.sessions[username]
	t.mu.Unlock()

	if !ok {
		return SessionInfo{}, ErrNoSession
	}
	return s.snapshot(), nil
}

// StopAll ends every session, for shutdown and logout paths.
func (t *Tracker) StopAll() {
	t.mu.Lock()
	sessions := t.sessions
	t.sessions = make(map[string]*session)
	t.mu.Unlock()

	for _, s := range sessions {
		s.cancel()
		<-s.done
	}
}

type recorderFunc func(username, title string, minutes int) error

func (f recorderFunc) AddTime(username, title string, minutes int) error {
	return f(username, title, minutes)
}

func sameTitle(a, b string) bool {
	return strings.EqualFold(a, b)
}
