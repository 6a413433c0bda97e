package conversation

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/portal/core"
)

// Line is one entry of a starter transcript.
type Line struct {
	Origin Origin
	Text   string
}

type (
	Option func(*Panel)

	// Listener receives the panel snapshot after every change.
	Listener func(Snapshot)
)

// WithTranscript seeds each conversation log, on first open, with lines.
func WithTranscript(lines []Line) Option {
	return func(p *Panel) {
		p.transcript = append([]Line(nil), lines...)
	}
}

// WithClock overrides the message timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Panel) { p.now = now }
}

// WithIDs overrides the message id source.
func WithIDs(newID func() string) Option {
	return func(p *Panel) { p.newID = newID }
}

// Panel is the conversation state machine of one client.
// Message logs are kept per participant and only grow.
type Panel struct {
	mu       sync.Mutex
	state    State
	controls Controls
	draft    string
	logs     map[string][]Message

	transcript []Line
	now        func() time.Time
	newID      func() string

	version    uint64
	lastActive time.Time
	done       chan struct{}
	closeOnce  sync.Once

	// publishMu orders deliveries; published is the last version handed to listeners.
	publishMu sync.Mutex
	published uint64

	listenerMu sync.Mutex
	listeners  map[int]Listener
	nextID     int
}

// update is a snapshot stamped with the panel version it was taken at.
type update struct {
	version uint64
	snap    Snapshot
}

func NewPanel(opts ...Option) *Panel {
	p := &Panel{
		state:      Idle{},
		logs:       make(map[string][]Message),
		now:        time.Now,
		newID:      uuid.NewString,
		listeners:  make(map[int]Listener),
		lastActive: time.Now(),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OpenChat switches to messaging with. Any open chat or call is replaced.
func (p *Panel) OpenChat(with Participant) {
	p.mu.Lock()
	p.ensureLog(with.ID)
	p.state = Messaging{With: with}
	u := p.commit()
	p.mu.Unlock()
	p.publish(u)
}

// StartCall switches to calling with. Any open chat or call is replaced.
func (p *Panel) StartCall(with Participant, mode Mode) error {
	if !mode.Valid() {
		return core.NewValidationError(ErrInvalidMode, core.FieldError{Field: "mode", Error: callModeText})
	}
	p.mu.Lock()
	p.ensureLog(with.ID)
	p.state = Calling{With: with, Mode: mode}
	u := p.commit()
	p.mu.Unlock()
	p.publish(u)
	return nil
}

// CloseChat returns to Idle if a chat is open.
func (p *Panel) CloseChat() bool {
	return p.leave(KindMessaging)
}

// EndCall returns to Idle if a call is ongoing.
func (p *Panel) EndCall() bool {
	return p.leave(KindCalling)
}

func (p *Panel) leave(from Kind) bool {
	p.mu.Lock()
	if p.state.Kind() != from {
		p.mu.Unlock()
		return false
	}
	p.state = Idle{}
	u := p.commit()
	p.mu.Unlock()
	p.publish(u)
	return true
}

// SetDraft replaces the input buffer.
func (p *Panel) SetDraft(text string) {
	p.mu.Lock()
	p.draft = text
	u := p.commit()
	p.mu.Unlock()
	p.publish(u)
}

// Send appends the draft to the open chat and clears it.
// Blank drafts, or a panel not messaging, leave everything unchanged.
func (p *Panel) Send() (Message, bool) {
	p.mu.Lock()
	msg, ok := p.send()
	var u update
	if ok {
		u = p.commit()
	}
	p.mu.Unlock()
	if ok {
		p.publish(u)
	}
	return msg, ok
}

// SendMessage sends text in place of the draft. The draft is kept when nothing is sent.
func (p *Panel) SendMessage(text string) (Message, bool) {
	p.mu.Lock()
	draft := p.draft
	p.draft = text
	msg, ok := p.send()
	var u update
	if ok {
		u = p.commit()
	} else {
		p.draft = draft
	}
	p.mu.Unlock()
	if ok {
		p.publish(u)
	}
	return msg, ok
}

func (p *Panel) send() (Message, bool) {
	st, ok := p.state.(Messaging)
	if !ok {
		return Message{}, false
	}
	text := strings.TrimSpace(p.draft)
	if text == "" {
		return Message{}, false
	}
	msg := p.message(st.With.ID, OriginSelf, text)
	p.logs[st.With.ID] = append(p.logs[st.With.ID], msg)
	p.draft = ""
	return msg, true
}

// ToggleMute flips the mute switch and returns its new value.
func (p *Panel) ToggleMute() bool {
	p.mu.Lock()
	p.controls.Muted = !p.controls.Muted
	muted := p.controls.Muted
	u := p.commit()
	p.mu.Unlock()
	p.publish(u)
	return muted
}

// ToggleCamera flips the camera switch and returns true when the camera is now off.
func (p *Panel) ToggleCamera() bool {
	p.mu.Lock()
	p.controls.CameraOff = !p.controls.CameraOff
	off := p.controls.CameraOff
	u := p.commit()
	p.mu.Unlock()
	p.publish(u)
	return off
}

func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Panel) Controls() Controls {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.controls
}

// Messages returns a copy of the log kept with participantID.
func (p *Panel) Messages(participantID string) []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.messages(participantID)
}

func (p *Panel) messages(participantID string) []Message {
	log := p.logs[participantID]
	msgs := make([]Message, len(log))
	copy(msgs, log)
	return msgs
}

func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

func (p *Panel) snapshot() Snapshot {
	snap := Snapshot{
		State:    p.state.Kind(),
		Controls: p.controls,
		Draft:    p.draft,
		Messages: []Message{},
	}
	if with, ok := participantOf(p.state); ok {
		snap.Participant = &with
		snap.Messages = p.messages(with.ID)
	}
	if st, ok := p.state.(Calling); ok {
		snap.Mode = st.Mode
	}
	return snap
}

// ensureLog seeds the log of participantID with the starter transcript once.
func (p *Panel) ensureLog(participantID string) {
	if _, ok := p.logs[participantID]; ok {
		return
	}
	log := make([]Message, 0, len(p.transcript))
	for _, line := range p.transcript {
		log = append(log, p.message(participantID, line.Origin, line.Text))
	}
	p.logs[participantID] = log
}

func (p *Panel) message(participantID string, origin Origin, text string) Message {
	return Message{
		ID:            p.newID(),
		ParticipantID: participantID,
		Text:          text,
		Origin:        origin,
		SentAt:        p.now(),
	}
}

// Subscribe registers fn to receive a snapshot after every change.
// It returns a function that removes the listener.
// Listeners are called one change at a time, in order, and must not change the panel.
func (p *Panel) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	p.listenerMu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.listenerMu.Unlock()
	return func() {
		p.listenerMu.Lock()
		delete(p.listeners, id)
		p.listenerMu.Unlock()
		p.touch()
	}
}

// commit stamps the current state as a new version. Callers hold p.mu.
func (p *Panel) commit() update {
	p.version++
	p.lastActive = time.Now()
	return update{version: p.version, snap: p.snapshot()}
}

// publish hands u to the listeners unless a newer version was already handed over.
func (p *Panel) publish(u update) {
	p.publishMu.Lock()
	defer p.publishMu.Unlock()
	if u.version <= p.published {
		return
	}
	p.published = u.version

	p.listenerMu.Lock()
	fns := make([]Listener, 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.listenerMu.Unlock()
	for _, fn := range fns {
		fn(u.snap)
	}
}

func (p *Panel) touch() {
	p.mu.Lock()
	p.lastActive = time.Now()
	p.mu.Unlock()
}

// idle reports whether nobody listens to the panel and it has not changed for d.
func (p *Panel) idle(d time.Duration) bool {
	p.listenerMu.Lock()
	watched := len(p.listeners) > 0
	p.listenerMu.Unlock()
	if watched {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return time.Since(p.lastActive) >= d
}

// Close ends the panel: listeners are dropped and Done is closed.
func (p *Panel) Close() {
	p.closeOnce.Do(func() {
		p.listenerMu.Lock()
		p.listeners = make(map[int]Listener)
		p.listenerMu.Unlock()
		close(p.done)
	})
}

// Done is closed once the panel is closed.
func (p *Panel) Done() <-chan struct{} {
	return p.done
}
