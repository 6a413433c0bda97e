// Package conversation models the chat / call panel attached to a directory entry.
package conversation

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrParticipantNotFound = errors.New("participant not found")
	ErrSessionNotFound     = errors.New("conversation not found")
	ErrInvalidMode         = errors.New("invalid call mode")
)

// Mode is the kind of call.
type Mode string

const (
	ModeAudio Mode = "audio"
	ModeVideo Mode = "video"
)

// Modes lists the supported call modes.
var Modes = []Mode{ModeAudio, ModeVideo}

func (m Mode) Valid() bool {
	for _, mode := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Origin tells who authored a message.
type Origin string

const (
	OriginSelf        Origin = "self"
	OriginCounterpart Origin = "counterpart"
)

// Participant is the counterpart of a conversation.
type Participant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Headline string `json:"headline"`
	IsOnline bool   `json:"is_online"`
}

// Message is one entry of a conversation log.
type Message struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	Text          string    `json:"text"`
	Origin        Origin    `json:"origin"`
	SentAt        time.Time `json:"sent_at"`
}

// Kind names a panel state.
type Kind string

const (
	KindIdle      Kind = "idle"
	KindMessaging Kind = "messaging"
	KindCalling   Kind = "calling"
)

// State is one of Idle, Messaging or Calling.
type State interface {
	Kind() Kind
	isState()
}

// Idle is the panel with no open chat or call.
type Idle struct{}

// Messaging is an open chat with a participant.
type Messaging struct {
	With Participant
}

// Calling is an ongoing call with a participant.
type Calling struct {
	With Participant
	Mode Mode
}

func (Idle) Kind() Kind      { return KindIdle }
func (Messaging) Kind() Kind { return KindMessaging }
func (Calling) Kind() Kind   { return KindCalling }

func (Idle) isState()      {}
func (Messaging) isState() {}
func (Calling) isState()   {}

// Controls are the local call switches.
type Controls struct {
	Muted     bool `json:"muted"`
	CameraOff bool `json:"camera_off"`
}

// Snapshot is the serializable view of a panel.
type Snapshot struct {
	State       Kind         `json:"state"`
	Participant *Participant `json:"participant,omitempty"`
	Mode        Mode         `json:"mode,omitempty"`
	Controls    Controls     `json:"controls"`
	Draft       string       `json:"draft"`
	Messages    []Message    `json:"messages"`
}

// participantOf returns the participant of an active state.
func participantOf(s State) (Participant, bool) {
	switch st := s.(type) {
	case Messaging:
		return st.With, true
	case Calling:
		return st.With, true
	default:
		return Participant{}, false
	}
}
