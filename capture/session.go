package capture

import (
	"context"
	"fmt"
	"sync"

	"github.com/gogpu/photobooth"
)

// Session collects the shots of one collage. It is complete once it holds
// as many shots as its layout mode needs.
type Session struct {
	mu    sync.Mutex
	mode  photobooth.LayoutMode
	shots []DataURL
}

// NewSession starts an empty session for mode.
func NewSession(mode photobooth.LayoutMode) *Session {
	return &Session{mode: mode}
}

// Mode returns the layout mode of the session.
func (s *Session) Mode() photobooth.LayoutMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches the layout mode. Shots beyond the new mode's count are
// dropped.
func (s *Session) SetMode(mode photobooth.LayoutMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	if n := mode.PhotoCount(); len(s.shots) > n {
		s.shots = s.shots[:n]
	}
}

// Add appends a shot. It returns ErrSessionFull once the session is ready.
func (s *Session) Add(shot DataURL) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.shots) >= s.mode.PhotoCount() {
		return ErrSessionFull
	}
	s.shots = append(s.shots, shot)
	return nil
}

// Ready reports whether the session holds every shot its mode needs.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shots) == s.mode.PhotoCount()
}

// Remaining returns the number of shots still missing.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode.PhotoCount() - len(s.shots)
}

// Shots returns a copy of the collected shots in capture order.
func (s *Session) Shots() []DataURL {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DataURL(nil), s.shots...)
}

// Sources returns the shots as compositor sources.
func (s *Session) Sources() []photobooth.Source {
	shots := s.Shots()
	sources := make([]photobooth.Source, len(shots))
	for i, shot := range shots {
		sources[i] = shot
	}
	return sources
}

// Retake discards every shot.
func (s *Session) Retake() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shots = nil
}

// Fill shoots with b until the session is ready.
func (s *Session) Fill(ctx context.Context, b *Booth) error {
	for !s.Ready() {
		shot, err := b.Shoot(ctx)
		if err != nil {
			return err
		}
		if err := s.Add(shot); err != nil {
			return err
		}
		photobooth.Logger().Info("capture: shot added", "remaining", s.Remaining(), "mode", s.Mode().String())
	}
	return nil
}

// String implements fmt.Stringer.
func (s *Session) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("Session(%s, %d/%d)", s.mode, len(s.shots), s.mode.PhotoCount())
}
