package conversation

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
)

type (
	// ParticipantFinder resolves a directory entry to a conversation participant.
	ParticipantFinder interface {
		FindParticipant(ctx context.Context, id string) (Participant, error)
	}

	Service struct {
		finder   ParticipantFinder
		registry *Registry
	}
)

func NewService(finder ParticipantFinder, registry *Registry) *Service {
	return &Service{finder: finder, registry: registry}
}

// OpenSession creates an idle panel for a new client.
func (svc *Service) OpenSession() (string, Snapshot) {
	id, p := svc.registry.Create()
	return id, p.Snapshot()
}

func (svc *Service) CloseSession(sessionID string) error {
	return svc.registry.Delete(sessionID)
}

func (svc *Service) Snapshot(sessionID string) (Snapshot, error) {
	p, err := svc.registry.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return p.Snapshot(), nil
}

func (svc *Service) OpenChat(ctx context.Context, sessionID string, ci ChatInput) (Snapshot, error) {
	p, err := svc.registry.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	with, err := svc.participant(ctx, ci.ParticipantID)
	if err != nil {
		return Snapshot{}, err
	}
	p.OpenChat(with)
	return p.Snapshot(), nil
}

func (svc *Service) StartCall(ctx context.Context, sessionID string, ci CallInput) (Snapshot, error) {
	p, err := svc.registry.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	mode := Mode(core.CleanString(ci.Mode, true /* lower */))
	if !mode.Valid() {
		return Snapshot{}, core.NewValidationError(ErrInvalidMode, core.FieldError{Field: "mode", Error: callModeText})
	}
	with, err := svc.participant(ctx, ci.ParticipantID)
	if err != nil {
		return Snapshot{}, err
	}
	if err := p.StartCall(with, mode); err != nil {
		return Snapshot{}, err
	}
	return p.Snapshot(), nil
}

func (svc *Service) CloseChat(sessionID string) (Snapshot, error) {
	p, err := svc.registry.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	p.CloseChat()
	return p.Snapshot(), nil
}

func (svc *Service) EndCall(sessionID string) (Snapshot, error) {
	p, err := svc.registry.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	p.EndCall()
	return p.Snapshot(), nil
}

// SendMessage sends mi.Text to the open chat. Blank text is ignored.
func (svc *Service) SendMessage(sessionID string, mi MessageInput) (Snapshot, error) {
	p, err := svc.registry.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	p.SendMessage(mi.Text)
	return p.Snapshot(), nil
}

func (svc *Service) ToggleMute(sessionID string) (Snapshot, error) {
	p, err := svc.registry.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	p.ToggleMute()
	return p.Snapshot(), nil
}

func (svc *Service) ToggleCamera(sessionID string) (Snapshot, error) {
	p, err := svc.registry.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	p.ToggleCamera()
	return p.Snapshot(), nil
}

// Subscribe streams the snapshots of a session to fn until the returned func is called.
func (svc *Service) Subscribe(sessionID string, fn Listener) (func(), error) {
	p, err := svc.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return p.Subscribe(fn), nil
}

// Done returns a channel closed when the session is closed or expires.
func (svc *Service) Done(sessionID string) (<-chan struct{}, error) {
	p, err := svc.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return p.Done(), nil
}

func (svc *Service) participant(ctx context.Context, id string) (Participant, error) {
	id = core.CleanString(id)
	if id == "" {
		return Participant{}, ErrParticipantNotFound
	}
	with, err := svc.finder.FindParticipant(ctx, id)
	if err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			return Participant{}, err
		}
		return Participant{}, errors.Wrap(err, "finding participant")
	}
	return with, nil
}
