// Package tui is the full-screen front-end: a registration form and any
// number of chat windows driven by one Bubble Tea program.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/dmitrijs2005/gophchat/internal/chat"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/validation"
)

const registeredNotice = "Registration successful!"

type Options struct {
	Registrar  Registrar
	NewSession func(userName string) *chat.Session
	Theme      Theme
	Logger     logging.Logger
}

// Model is the root of the program. It owns every window and routes timed
// acknowledgments to the window they belong to.
type Model struct {
	ctx    context.Context
	opts   Options
	styles Styles
	keys   keyMap
	help   help.Model

	form    *Form
	windows []*Window
	active  int

	showHelp bool
	helpText string

	width, height int
}

func NewModel(ctx context.Context, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.NewSession == nil {
		opts.NewSession = func(name string) *chat.Session { return chat.NewSession(name) }
	}

	styles := NewStyles(opts.Theme)
	m := &Model{
		ctx:    ctx,
		opts:   opts,
		styles: styles,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.form = NewForm(ctx, opts.Registrar, styles)
	m.helpText = renderHelp(opts.Theme)
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Windows returns the open windows in the order they were opened.
func (m *Model) Windows() []*Window {
	return m.windows
}

func (m *Model) Active() *Window {
	if len(m.windows) == 0 {
		return nil
	}
	return m.windows[m.active]
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		for _, w := range m.windows {
			w.SetSize(msg.Width, msg.Height-1)
		}
		return m, nil

	case ackMsg:
		return m, m.routeAck(msg.ack)

	case registeredMsg:
		return m, m.openWindow(msg.user.UserName)

	case registrationFailedMsg:
		if m.form != nil {
			return m, m.form.Update(msg)
		}
		return m, nil

	case cancelledMsg:
		m.form = nil
		if len(m.windows) == 0 {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.form != nil {
		return m, m.form.Update(msg)
	}
	if w := m.Active(); w != nil {
		return m, w.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil
	}

	if m.showHelp {
		if msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return nil
	}

	if m.form != nil {
		return m.form.Update(msg)
	}

	w := m.Active()
	if w == nil {
		return nil
	}

	// window-level bindings are only live while the window is in chat mode
	if w.mode == modeChat {
		switch {
		case key.Matches(msg, m.keys.Register):
			m.form = NewForm(m.ctx, m.opts.Registrar, m.styles)
			return m.form.Init()
		case key.Matches(msg, m.keys.Next):
			m.active = (m.active + 1) % len(m.windows)
			return nil
		case key.Matches(msg, m.keys.Prev):
			m.active = (m.active - 1 + len(m.windows)) % len(m.windows)
			return nil
		case key.Matches(msg, m.keys.Close):
			return m.closeActive()
		}
	}

	return w.Update(msg)
}

func (m *Model) openWindow(userName string) tea.Cmd {
	m.form = nil

	w := NewWindow(m.opts.NewSession(userName), m.styles, m.keys)
	if m.width > 0 {
		w.SetSize(m.width, m.height-1)
	}
	w.ShowSuccess(registeredNotice)

	m.windows = append(m.windows, w)
	m.active = len(m.windows) - 1

	m.opts.Logger.Info(m.ctx, "chat window opened", "window", w.ID(), "user", userName)
	return nil
}

func (m *Model) closeActive() tea.Cmd {
	w := m.windows[m.active]
	m.windows = append(m.windows[:m.active], m.windows[m.active+1:]...)
	m.opts.Logger.Info(m.ctx, "chat window closed", "window", w.ID())

	if len(m.windows) == 0 {
		return tea.Quit
	}
	if m.active >= len(m.windows) {
		m.active = len(m.windows) - 1
	}
	return nil
}

func (m *Model) routeAck(ack chat.Ack) tea.Cmd {
	for _, w := range m.windows {
		if w.ID() == ack.WindowID {
			return w.applyAck(ack)
		}
	}
	m.opts.Logger.Debug(m.ctx, "ack dropped, window closed", "window", ack.WindowID, "kind", ack.Kind.String())
	return nil
}

func (m *Model) View() string {
	if m.showHelp {
		return m.helpText + "\n" + m.help.FullHelpView(m.keys.FullHelp())
	}

	var body string
	switch {
	case m.form != nil:
		body = m.form.View()
	case m.Active() != nil:
		body = m.Active().View()
	}

	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	if len(m.windows) > 1 {
		footer = fmt.Sprintf("window %d/%d • %s", m.active+1, len(m.windows), footer)
	}
	return body + "\n" + m.styles.Footer.Render(footer)
}

func helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# gophchat\n\n")
	b.WriteString("Register a user, then chat. Every message is marked **Sent**, ")
	b.WriteString("then **Delivered** and finally **Read**.\n\n")
	b.WriteString("## Registration rules\n\n")
	fmt.Fprintf(&b, "- ID number: %s\n", validation.Hints.IDNumber)
	fmt.Fprintf(&b, "- Phone number: %s\n", validation.Hints.Phone)
	fmt.Fprintf(&b, "- Password: %s\n\n", validation.Hints.Password)
	b.WriteString("## Search\n\n")
	b.WriteString("`ctrl+f` searches the current window, ignoring case.\n")
	return b.String()
}

func renderHelp(theme Theme) string {
	md := helpMarkdown()

	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return out
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(
		NewModel(ctx, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
