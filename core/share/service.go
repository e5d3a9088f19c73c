// ABOUTME: Share service builds share links and tracks one confirmation per share control
// ABOUTME: Controls are identified by UUIDs and forgotten once their confirmation clears

package share

import (
	"context"
	"sync"
	"time"

	"opportunities-portal-api/core/domain"
	coreerrors "opportunities-portal-api/core/errors"
	"opportunities-portal-api/core/interfaces"

	"github.com/google/uuid"
)

// Request asks for one share of item via target
type Request struct {
	// ControlID identifies the share control; empty allocates a new one
	ControlID string

	Target domain.ShareTarget
	Item   domain.NewsItem
}

// Result is a built share link plus the control's new confirmation
type Result struct {
	ControlID    string
	Link         domain.ShareLink
	Confirmation domain.Confirmation
}

// Service handles share operations
type Service struct {
	deps  interfaces.Dependencies
	delay time.Duration

	mu       sync.Mutex
	controls map[string]*Confirmer
}

// NewService creates a share service; delay <= 0 uses DefaultConfirmationDelay
func NewService(deps interfaces.Dependencies, delay time.Duration) *Service {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	if deps.Metrics == nil {
		deps.Metrics = interfaces.NopMetrics{}
	}
	if delay <= 0 {
		delay = DefaultConfirmationDelay
	}
	return &Service{
		deps:     deps,
		delay:    delay,
		controls: make(map[string]*Confirmer),
	}
}

// Share builds the link and sets the control's confirmation to the target label
func (s *Service) Share(ctx context.Context, req Request) (*Result, error) {
	controlID := req.ControlID
	if controlID == "" {
		controlID = uuid.NewString()
	} else if _, err := uuid.Parse(controlID); err != nil {
		return nil, &coreerrors.ValidationError{Field: "controlId", Message: "invalid control ID format"}
	}

	link, err := BuildLink(req.Target, req.Item)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	confirmer, ok := s.controls[controlID]
	if !ok {
		confirmer = s.newConfirmer(controlID)
		s.controls[controlID] = confirmer
	}
	conf := confirmer.Confirm(req.Target.Label())
	s.mu.Unlock()

	s.deps.Metrics.ShareBuilt(string(req.Target))
	s.deps.Logger.Info("Share link built", map[string]interface{}{
		"target":     string(req.Target),
		"control_id": controlID,
	})

	return &Result{ControlID: controlID, Link: link, Confirmation: conf}, nil
}

// Confirmation returns the live confirmation of a control.
// Unknown or cleared controls yield a NotFoundError.
func (s *Service) Confirmation(ctx context.Context, controlID string) (domain.Confirmation, error) {
	if controlID == "" {
		return domain.Confirmation{}, &coreerrors.ValidationError{Field: "controlId", Message: "control ID cannot be empty"}
	}
	if _, err := uuid.Parse(controlID); err != nil {
		return domain.Confirmation{}, &coreerrors.ValidationError{Field: "controlId", Message: "invalid control ID format"}
	}

	s.mu.Lock()
	confirmer, ok := s.controls[controlID]
	s.mu.Unlock()
	if ok {
		if conf, live := confirmer.Current(); live {
			return conf, nil
		}
	}

	return domain.Confirmation{}, &coreerrors.NotFoundError{Resource: "confirmation", ID: controlID}
}

// Active returns how many controls hold a live confirmation
func (s *Service) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.controls)
}

// Close stops every pending timer
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.controls {
		c.Stop()
		delete(s.controls, id)
	}
}

func (s *Service) newConfirmer(controlID string) *Confirmer {
	c := NewConfirmer(s.delay)
	c.onClear = func() { s.forget(controlID, c) }
	return c
}

// forget drops a control whose confirmation cleared, unless it was confirmed again meanwhile
func (s *Service) forget(controlID string, c *Confirmer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.controls[controlID] != c {
		return
	}
	if _, live := c.Current(); live {
		return
	}
	delete(s.controls, controlID)
}
