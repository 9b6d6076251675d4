// Package session opens field-group files without revealing them in the
// editor's file explorer, and puts the explorer setting back afterwards.
package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/agentic-research/acfkit/internal/catalog"
)

// AutoRevealKey is the editor setting suppressed while files are opened quietly.
const AutoRevealKey = "explorer.autoReveal"

// DefaultRestoreDelay is how long the session waits after the last field-group
// activity before restoring auto-reveal.
const DefaultRestoreDelay = 2 * time.Second

// ErrClosed is returned by operations on a closed Session.
var ErrClosed = errors.New("session closed")

// Store reads and writes editor settings.
type Store interface {
	// Get returns the value of key and whether it is set.
	Get(key string) (any, bool, error)
	// Set stores value under key, or removes key when present is false.
	Set(key string, value any, present bool) error
}

// Opener shows a file in the editor.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Session tracks the files it opened and the auto-reveal value to restore.
type Session struct {
	store  Store
	opener Opener
	delay  time.Duration

	mu        sync.Mutex
	opened    map[string]bool
	active    string
	saved     any
	present   bool
	haveSaved bool
	timer     *time.Timer
	closed    bool
}

// New returns a Session. A delay of zero selects DefaultRestoreDelay.
func New(store Store, opener Opener, delay time.Duration) *Session {
	if delay <= 0 {
		delay = DefaultRestoreDelay
	}
	return &Session{store: store, opener: opener, delay: delay, opened: make(map[string]bool)}
}

// OpenQuiet opens path with auto-reveal disabled and schedules the restore.
// When the open fails the setting is restored at once and only path is
// untracked.
func (s *Session) OpenQuiet(ctx context.Context, path string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.opened[path] = true
	s.disableLocked()
	s.mu.Unlock()

	err := s.opener.Open(ctx, path)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		delete(s.opened, path)
		s.restoreSettingLocked()
		return err
	}
	s.active = path
	s.scheduleLocked()
	return nil
}

// ActiveEditorChanged records that path is now the active document.
func (s *Session) ActiveEditorChanged(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.active = path
	switch {
	case catalog.IsFieldGroupPath(path) && s.opened[path]:
		s.disableLocked()
		s.scheduleLocked()
	case !catalog.IsFieldGroupPath(path):
		s.scheduleLocked()
	}
}

// DocumentClosed stops tracking path.
func (s *Session) DocumentClosed(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	delete(s.opened, path)
	if s.active == path {
		s.active = ""
	}
	if len(s.opened) == 0 {
		s.scheduleLocked()
	}
}

// Tracked reports whether path was opened quietly and is still open.
func (s *Session) Tracked(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened[path]
}

// Close cancels any pending restore and restores auto-reveal now. Calling it
// again does nothing.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.restoreLocked()
	s.active = ""
}

func (s *Session) disableLocked() {
	if !s.haveSaved {
		v, ok, err := s.store.Get(AutoRevealKey)
		if err != nil {
			log.Printf("session: read %s: %v", AutoRevealKey, err)
			return
		}
		s.saved, s.present, s.haveSaved = v, ok, true
	}
	if err := s.store.Set(AutoRevealKey, false, true); err != nil {
		log.Printf("session: disable %s: %v", AutoRevealKey, err)
	}
}

func (s *Session) restoreLocked() {
	s.restoreSettingLocked()
	clear(s.opened)
}

func (s *Session) restoreSettingLocked() {
	if s.haveSaved {
		if err := s.store.Set(AutoRevealKey, s.saved, s.present); err != nil {
			log.Printf("session: restore %s: %v", AutoRevealKey, err)
		}
		s.saved, s.present, s.haveSaved = nil, false, false
	}
}

func (s *Session) scheduleLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.timer != t {
			return
		}
		s.timer = nil
		if catalog.IsFieldGroupPath(s.active) && s.opened[s.active] {
			return
		}
		s.restoreLocked()
	})
	s.timer = t
}
