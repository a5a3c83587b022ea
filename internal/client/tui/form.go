package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/users"
	"github.com/dmitrijs2005/gophchat/internal/validation"
)

// Registrar registers a user into the directory.
type Registrar interface {
	Register(ctx context.Context, reg validation.Registration) (*users.User, error)
}

const (
	fieldName = iota
	fieldSurname
	fieldIDNumber
	fieldPhone
	fieldUserName
	fieldPassword
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:     "Name:",
	fieldSurname:  "Surname:",
	fieldIDNumber: fmt.Sprintf("ID Number (%s):", validation.Hints.IDNumber),
	fieldPhone:    fmt.Sprintf("Phone Number (%s):", validation.Hints.Phone),
	fieldUserName: "Username:",
	fieldPassword: fmt.Sprintf("Password (%s):", validation.Hints.Password),
}

// Form is the registration dialog. It never opens a chat window itself:
// submitting yields a registeredMsg or registrationFailedMsg, cancelling a
// cancelledMsg, and the root model decides what happens next.
type Form struct {
	ctx       context.Context
	registrar Registrar
	styles    Styles

	inputs     [fieldCount]textinput.Model
	focus      int
	notice     string
	submitting bool
}

func NewForm(ctx context.Context, registrar Registrar, styles Styles) *Form {
	f := &Form{ctx: ctx, registrar: registrar, styles: styles}

	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "│ "
		ti.CharLimit = 64
		ti.Width = 40
		ti.PromptStyle = styles.Prompt
		f.inputs[i] = ti
	}
	f.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	f.inputs[fieldPassword].EchoCharacter = '•'
	f.inputs[fieldName].Focus()

	return f
}

func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Notice is the blocking message currently shown, if any.
func (f *Form) Notice() string {
	return f.notice
}

func (f *Form) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case registrationFailedMsg:
		f.submitting = false
		f.notice = common.Notice(msg.err)
		return nil

	case tea.KeyMsg:
		if f.notice != "" {
			// any key acknowledges the notice
			f.notice = ""
			return nil
		}
		if f.submitting {
			return nil
		}

		switch msg.String() {
		case "esc":
			return func() tea.Msg { return cancelledMsg{} }
		case "tab", "down":
			return f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f.setFocus(f.focus - 1)
		case "ctrl+s":
			return f.submit()
		case "enter":
			if f.focus == fieldCount-1 {
				return f.submit()
			}
			return f.setFocus(f.focus + 1)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *Form) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// registration reads the raw field values; trimming is left to the service.
func (f *Form) registration() validation.Registration {
	return validation.Registration{
		Name:     f.inputs[fieldName].Value(),
		Surname:  f.inputs[fieldSurname].Value(),
		IDNumber: f.inputs[fieldIDNumber].Value(),
		Phone:    f.inputs[fieldPhone].Value(),
		UserName: f.inputs[fieldUserName].Value(),
		Password: f.inputs[fieldPassword].Value(),
	}
}

func (f *Form) submit() tea.Cmd {
	f.submitting = true
	reg := f.registration()
	ctx, registrar := f.ctx, f.registrar

	return func() tea.Msg {
		u, err := registrar.Register(ctx, reg)
		if err != nil {
			return registrationFailedMsg{err: err}
		}
		return registeredMsg{user: u}
	}
}

func (f *Form) View() string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render("User Registration"))
	b.WriteString("\n")

	for i := range f.inputs {
		b.WriteString(f.styles.Label.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(f.styles.Muted.Render("tab: next field • enter on last field or ctrl+s: OK • esc: cancel"))

	if f.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(f.styles.Dialog.Render(
			f.styles.Error.Render(f.notice) + "\n\n" + f.styles.Muted.Render("press any key"),
		))
	}

	return b.String()
}
