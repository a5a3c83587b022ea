package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/gophchat/internal/chat"
	"github.com/dmitrijs2005/gophchat/internal/users"
)

// Messages for tea updates
type (
	// registeredMsg is the form's result: registration succeeded for User.
	registeredMsg struct{ user *users.User }

	// registrationFailedMsg carries a validation or directory error back
	// to the form.
	registrationFailedMsg struct{ err error }

	// cancelledMsg closes the form without side effects.
	cancelledMsg struct{}

	// ackMsg is a due acknowledgment, routed by window ID.
	ackMsg struct{ ack chat.Ack }
)

// scheduleAck posts ack back to the program loop once its delay elapses.
func scheduleAck(ack chat.Ack) tea.Cmd {
	return tea.Tick(ack.After, func(time.Time) tea.Msg {
		return ackMsg{ack: ack}
	})
}
