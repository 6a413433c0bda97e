package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry holds the panels of all connected clients, keyed by session id.
type Registry struct {
	mu     sync.RWMutex
	panels map[string]*Panel
	opts   []Option
}

// NewRegistry returns a registry creating panels with opts.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		panels: make(map[string]*Panel),
		opts:   opts,
	}
}

// Create opens a new panel and returns its session id.
func (r *Registry) Create() (string, *Panel) {
	id := uuid.NewString()
	p := NewPanel(r.opts...)

	r.mu.Lock()
	r.panels[id] = p
	r.mu.Unlock()
	return id, p
}

func (r *Registry) Get(id string) (*Panel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.panels[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	p.touch()
	return p, nil
}

// Delete removes the session and closes its panel, ending its streams.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	p, ok := r.panels[id]
	if ok {
		delete(r.panels, id)
	}
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	p.Close()
	return nil
}

// Expire deletes the sessions nobody streams that have been idle for maxIdle, and returns how many went.
func (r *Registry) Expire(maxIdle time.Duration) int {
	r.mu.Lock()
	var expired []*Panel
	for id, p := range r.panels {
		if p.idle(maxIdle) {
			delete(r.panels, id)
			expired = append(expired, p)
		}
	}
	r.mu.Unlock()

	for _, p := range expired {
		p.Close()
	}
	return len(expired)
}

// Sweep expires idle sessions every interval until ctx is done.
func (r *Registry) Sweep(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Expire(maxIdle)
		}
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.panels)
}
