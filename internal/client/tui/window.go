package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/gophchat/internal/chat"
	"github.com/dmitrijs2005/gophchat/internal/common"
)

type windowMode int

const (
	modeChat windowMode = iota
	modeSearchPrompt
	modeResults
	modeNotice
)

// Window is one chat window: a Session plus the widgets that show it.
type Window struct {
	session *chat.Session
	styles  Styles
	keys    keyMap

	transcript  viewport.Model
	results     viewport.Model
	input       textinput.Model
	searchInput textinput.Model

	mode     windowMode
	notice   string
	noticeOK bool
	// mode to return to once the notice is dismissed
	afterNotice windowMode

	width, height int
}

func NewWindow(session *chat.Session, styles Styles, keys keyMap) *Window {
	input := textinput.New()
	input.Placeholder = "Type a message"
	input.Prompt = "> "
	input.PromptStyle = styles.Prompt
	input.CharLimit = 500
	input.Focus()

	search := textinput.New()
	search.Placeholder = "Enter keyword to search"
	search.Prompt = "? "
	search.PromptStyle = styles.Prompt
	search.CharLimit = 100

	w := &Window{
		session:     session,
		styles:      styles,
		keys:        keys,
		transcript:  viewport.New(60, 10),
		results:     viewport.New(60, 10),
		input:       input,
		searchInput: search,
	}
	w.refresh()
	return w
}

func (w *Window) ID() string {
	return w.session.ID()
}

func (w *Window) Title() string {
	return "Chat - " + w.session.UserName()
}

func (w *Window) Session() *chat.Session {
	return w.session
}

// ShowNotice puts a blocking message over the window until a key is pressed.
func (w *Window) ShowNotice(text string) {
	w.showNotice(text, false)
}

// ShowSuccess is ShowNotice for a confirmation.
func (w *Window) ShowSuccess(text string) {
	w.showNotice(text, true)
}

func (w *Window) showNotice(text string, ok bool) {
	w.noticeOK = ok
	if w.mode != modeNotice {
		w.afterNotice = w.mode
	}
	w.mode = modeNotice
	w.notice = text
}

func (w *Window) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	w.width, w.height = width, height

	// header, input line, footer and borders
	h := height - 6
	if h < 3 {
		h = 3
	}
	w.transcript.Width = width - 2
	w.transcript.Height = h
	w.results.Width = width - 2
	w.results.Height = h
	w.input.Width = width - 4
	w.searchInput.Width = width - 4
	w.refresh()
}

func (w *Window) refresh() {
	entries := w.session.Entries()
	rendered := make([]string, len(entries))
	for i, e := range entries {
		if e.Kind == chat.KindSent {
			rendered[i] = w.styles.SentLine.Render(e.Text)
		} else {
			rendered[i] = w.styles.StatusLine.Render(e.Text)
		}
	}
	w.transcript.SetContent(strings.Join(rendered, "\n"))
	w.transcript.GotoBottom()
}

// applyAck records a due acknowledgment and schedules the next one.
func (w *Window) applyAck(ack chat.Ack) tea.Cmd {
	_, next, ok := w.session.Apply(ack)
	if !ok {
		return nil
	}
	w.refresh()
	if next == nil {
		return nil
	}
	return scheduleAck(*next)
}

func (w *Window) Update(msg tea.Msg) tea.Cmd {
	km, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return w.updateFocused(msg)
	}

	switch w.mode {
	case modeNotice:
		w.notice = ""
		w.mode = w.afterNotice
		return nil

	case modeResults:
		if km.Type == tea.KeyEsc || km.Type == tea.KeyEnter {
			w.mode = modeChat
			return w.input.Focus()
		}
		var cmd tea.Cmd
		w.results, cmd = w.results.Update(msg)
		return cmd

	case modeSearchPrompt:
		switch km.Type {
		case tea.KeyEsc:
			w.closeSearch()
			return w.input.Focus()
		case tea.KeyEnter:
			return w.runSearch(w.searchInput.Value())
		}
		var cmd tea.Cmd
		w.searchInput, cmd = w.searchInput.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(km, w.keys.Search):
		w.mode = modeSearchPrompt
		w.searchInput.Reset()
		w.input.Blur()
		return w.searchInput.Focus()

	case key.Matches(km, w.keys.Send):
		_, ack, ok := w.session.Submit(w.input.Value())
		if !ok {
			return nil
		}
		w.input.Reset()
		w.refresh()
		return scheduleAck(ack)

	case km.Type == tea.KeyPgUp, km.Type == tea.KeyPgDown:
		var cmd tea.Cmd
		w.transcript, cmd = w.transcript.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

func (w *Window) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch w.mode {
	case modeSearchPrompt:
		w.searchInput, cmd = w.searchInput.Update(msg)
	case modeChat:
		w.input, cmd = w.input.Update(msg)
	}
	return cmd
}

func (w *Window) closeSearch() {
	w.searchInput.Blur()
	w.searchInput.Reset()
	w.mode = modeChat
}

func (w *Window) runSearch(keyword string) tea.Cmd {
	found, err := w.session.Search(keyword)
	w.closeSearch()

	switch {
	case err == nil:
		w.results.SetContent(chat.FormatResults(found))
		w.results.GotoTop()
		w.mode = modeResults
		return nil
	case errors.Is(err, common.ErrEmptyKeyword):
		return w.input.Focus()
	default:
		w.ShowNotice(common.Notice(err))
		return w.input.Focus()
	}
}

func (w *Window) View() string {
	var b strings.Builder

	b.WriteString(w.styles.Header.Render(w.Title()))
	b.WriteString("\n")

	switch w.mode {
	case modeResults:
		b.WriteString(w.styles.Pane.Render(w.results.View()))
		b.WriteString("\n")
		b.WriteString(w.styles.Muted.Render("esc: back to chat"))
	default:
		b.WriteString(w.styles.Pane.Render(w.transcript.View()))
		b.WriteString("\n")
		if w.mode == modeSearchPrompt {
			b.WriteString(w.searchInput.View())
		} else {
			b.WriteString(w.input.View())
		}
	}

	if w.mode == modeNotice {
		b.WriteString("\n")
		text := w.styles.Label.Render(w.notice)
		if w.noticeOK {
			text = w.styles.Success.Render(w.notice)
		}
		b.WriteString(w.styles.Dialog.Render(text + "\n\n" + w.styles.Muted.Render("press any key")))
	}

	return b.String()
}
