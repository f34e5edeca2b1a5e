// session.go
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/arc-language/pkgflags/pkg/core"
)

// ErrBusy is returned when an event arrives while another is being applied
var ErrBusy = errors.New("reconciliation already in progress")

// State of a Session
type State int

const (
	// Idle waits for the next event
	Idle State = iota
	// Toggling applies an event to the configuration
	Toggling
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Toggling:
		return "toggling"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session owns the checked package set of one build configuration and
// applies events to it. It is not safe for concurrent use.
type Session struct {
	reconciler *Reconciler
	cfg        core.Configuration
	active     core.PackageSet
	state      State
}

// NewSession starts a session for cfg with the checked set found in its
// package storage. A configuration visited for the first time starts empty.
func NewSession(r *Reconciler, cfg core.Configuration) *Session {
	return &Session{
		reconciler: r,
		cfg:        cfg,
		active:     LoadActive(cfg),
		state:      Idle,
	}
}

// LoadActive returns the names whose stored attribute is "true"
func LoadActive(storage core.PackageStorage) core.PackageSet {
	set := core.NewPackageSet()
	for _, name := range storage.Names() {
		if v, ok := storage.Attribute(name); ok && v == Checked {
			set.Add(name)
		}
	}
	return set
}

// Configuration returns the configuration the session manages
func (s *Session) Configuration() core.Configuration {
	return s.cfg
}

// Active returns a copy of the current checked set
func (s *Session) Active() core.PackageSet {
	return s.active.Clone()
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Handle applies ev and adopts the resulting checked set
func (s *Session) Handle(ctx context.Context, ev Event) (*Result, error) {
	if s.state != Idle {
		return nil, ErrBusy
	}
	s.state = Toggling
	defer func() { s.state = Idle }()

	added, removed := ev.Changes(s.active)
	res, err := s.reconciler.Reconcile(ctx, s.cfg, s.active, added, removed)
	if err != nil {
		return nil, fmt.Errorf("reconciling %s: %w", s.cfg.Name(), err)
	}

	s.active = res.Active
	return res, nil
}
