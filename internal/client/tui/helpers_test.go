package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/gophchat/internal/chat"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/users"
	"github.com/stretchr/testify/require"
)

var testDelays = chat.Delays{Delivered: time.Millisecond, Read: time.Millisecond}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	svc := users.NewService(users.NewInMemoryRepository(), logging.Nop())
	return NewModel(context.Background(), Options{
		Registrar: svc,
		NewSession: func(name string) *chat.Session {
			return chat.NewSession(name, chat.WithDelays(testDelays))
		},
		Theme:  LightTheme(),
		Logger: logging.Nop(),
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// exec runs cmd and returns the message it produces.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func fillForm(f *Form, values [fieldCount]string) {
	for i, v := range values {
		f.setFocus(i)
		f.inputs[i].SetValue(v)
	}
}

var validForm = [fieldCount]string{
	"Alice", "Smith", "9001015009087", "0821234567", "alice", "Passw0rd!",
}
