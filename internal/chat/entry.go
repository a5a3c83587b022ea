package chat

import "time"

// Kind tells a user-authored line apart from the synthetic status lines.
type Kind int

const (
	KindSent Kind = iota
	KindDelivered
	KindRead
)

func (k Kind) String() string {
	switch k {
	case KindSent:
		return "sent"
	case KindDelivered:
		return "delivered"
	case KindRead:
		return "read"
	}
	return "unknown"
}

const (
	sentMarker      = "✔ Sent"
	deliveredLine   = "    ✔ Delivered"
	readLine        = "    ✔✔ Read"
	timestampLayout = "15:04"
)

// Entry is one transcript line. Status entries carry the ID of the message
// they acknowledge in Ref.
type Entry struct {
	ID   string
	Kind Kind
	Ref  string
	Text string
	At   time.Time
}

// Transcript is an append-only, ordered list of entries. It is not safe for
// concurrent use; the owning UI loop is its only writer.
type Transcript struct {
	entries []Entry
}

func (t *Transcript) Append(e Entry) {
	t.entries = append(t.entries, e)
}

func (t *Transcript) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in order.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lines returns the display text of every entry in order.
func (t *Transcript) Lines() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Text
	}
	return out
}
