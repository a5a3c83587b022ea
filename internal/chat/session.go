// Package chat is the UI-independent core of a chat window: the bound
// username, the window's private transcript, the simulated acknowledgment
// sequence and keyword search.
//
// A Session never starts timers itself. Submit and Apply return Ack values
// describing what should happen after a delay; the front-end turns each one
// into a timer that posts the Ack back to the loop owning the Session, which
// then calls Apply. That keeps every mutation on one goroutine.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/google/uuid"
)

// Delays are the waits of the acknowledgment sequence: Delivered after the
// message is sent, Read after Delivered.
type Delays struct {
	Delivered time.Duration
	Read      time.Duration
}

var DefaultDelays = Delays{
	Delivered: 1000 * time.Millisecond,
	Read:      1500 * time.Millisecond,
}

// Ack is a pending acknowledgment for MessageID in window WindowID, due
// After the previous step.
type Ack struct {
	WindowID  string
	MessageID string
	Kind      Kind
	After     time.Duration
}

type Session struct {
	id         string
	userName   string
	transcript Transcript
	delays     Delays
	timeFormat string
	now        func() time.Time
	newID      func() string
	logger     logging.Logger
}

type Option func(*Session)

func WithDelays(d Delays) Option {
	return func(s *Session) { s.delays = d }
}

func WithTimeFormat(layout string) Option {
	return func(s *Session) { s.timeFormat = layout }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession opens a window bound to userName.
func NewSession(userName string, opts ...Option) *Session {
	s := &Session{
		userName:   userName,
		delays:     DefaultDelays,
		timeFormat: timestampLayout,
		now:        time.Now,
		newID:      uuid.NewString,
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.id = s.newID()
	s.logger = s.logger.With("window", s.id, "user", userName)
	return s
}

func (s *Session) ID() string       { return s.id }
func (s *Session) UserName() string { return s.userName }
func (s *Session) Len() int         { return s.transcript.Len() }

// Entries returns a copy of the transcript.
func (s *Session) Entries() []Entry { return s.transcript.Entries() }

// Lines returns the transcript text in order.
func (s *Session) Lines() []string { return s.transcript.Lines() }

// Submit appends "<user>: <text> [<time>] ✔ Sent" for a non-blank text and
// returns the Delivered acknowledgment to schedule. Blank input is a no-op
// and reports ok=false.
func (s *Session) Submit(text string) (Entry, Ack, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, Ack{}, false
	}

	at := s.now()
	e := Entry{
		ID:   s.newID(),
		Kind: KindSent,
		Text: fmt.Sprintf("%s: %s [%s] %s", s.userName, text, at.Format(s.timeFormat), sentMarker),
		At:   at,
	}
	s.transcript.Append(e)
	s.logger.Debug(context.Background(), "message sent", "message", e.ID)

	return e, Ack{
		WindowID:  s.id,
		MessageID: e.ID,
		Kind:      KindDelivered,
		After:     s.delays.Delivered,
	}, true
}

// Apply records a due acknowledgment. A Delivered ack yields the Read ack
// that follows it; a Read ack ends the sequence. Acks addressed to another
// window, or of an unknown kind, are ignored and report ok=false.
func (s *Session) Apply(a Ack) (Entry, *Ack, bool) {
	if a.WindowID != s.id {
		return Entry{}, nil, false
	}

	var text string
	switch a.Kind {
	case KindDelivered:
		text = deliveredLine
	case KindRead:
		text = readLine
	default:
		return Entry{}, nil, false
	}

	e := Entry{
		ID:   s.newID(),
		Kind: a.Kind,
		Ref:  a.MessageID,
		Text: text,
		At:   s.now(),
	}
	s.transcript.Append(e)
	s.logger.Debug(context.Background(), "ack applied", "message", a.MessageID, "kind", a.Kind.String())

	if a.Kind == KindDelivered {
		return e, &Ack{
			WindowID:  s.id,
			MessageID: a.MessageID,
			Kind:      KindRead,
			After:     s.delays.Read,
		}, true
	}
	return e, nil, true
}

// Search returns every entry whose text contains keyword, ignoring case, in
// transcript order. Status lines are searched too. A blank keyword yields
// common.ErrEmptyKeyword and no hit yields a wrapped common.ErrNoMessagesFound.
func (s *Session) Search(keyword string) ([]Entry, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, common.ErrEmptyKeyword
	}

	needle := strings.ToLower(keyword)
	var found []Entry
	for _, e := range s.transcript.entries {
		if strings.Contains(strings.ToLower(e.Text), needle) {
			found = append(found, e)
		}
	}

	s.logger.Debug(context.Background(), "search", "matches", len(found))

	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrNoMessagesFound, keyword)
	}
	return found, nil
}

// FormatResults renders search hits the way the results view shows them.
func FormatResults(found []Entry) string {
	var b strings.Builder
	b.WriteString("Search Results:\n")
	for _, e := range found {
		b.WriteString(e.Text)
		b.WriteString("\n")
	}
	return b.String()
}
