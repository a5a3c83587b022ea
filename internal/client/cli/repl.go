package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/chat"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/validation"
)

// Chat runs the window loop for s. It is the only goroutine touching s:
// input lines and due acknowledgments are both delivered to it over
// channels.
func (a *App) Chat(ctx context.Context, s *chat.Session) error {
	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go a.readLines(lines, readErr, done)

	acks := make(chan chat.Ack)
	var timers []*time.Timer
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	pending := 0
	schedule := func(ack chat.Ack) {
		pending++
		timers = append(timers, time.AfterFunc(ack.After, func() {
			select {
			case acks <- ack:
			case <-done:
			}
		}))
	}

	inputClosed := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-readErr:
			if !errors.Is(err, io.EOF) {
				return err
			}
			inputClosed = true
			readErr = nil
			if pending == 0 {
				return nil
			}

		case line := <-lines:
			if quit := a.handleLine(s, line, schedule); quit {
				if pending > 0 {
					a.logger.Debug(ctx, "dropping pending acks", "window", s.ID(), "count", pending)
				}
				return nil
			}

		case ack := <-acks:
			pending--
			if e, next, ok := s.Apply(ack); ok {
				fmt.Fprintln(a.out, e.Text)
				if next != nil {
					schedule(*next)
				}
			}
			if inputClosed && pending == 0 {
				return nil
			}
		}
	}
}

func (a *App) readLines(lines chan<- string, errs chan<- error, done <-chan struct{}) {
	for {
		line, err := a.reader.ReadString('\n')
		if line != "" {
			select {
			case lines <- strings.TrimRight(line, "\r\n"):
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case errs <- err:
			case <-done:
			}
			return
		}
	}
}

// handleLine runs a command or sends line as a message. It reports whether
// the user asked to quit.
func (a *App) handleLine(s *chat.Session, line string, schedule func(chat.Ack)) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "//"):
		// "//text" sends "/text"
		a.send(s, trimmed[1:], schedule)
		return false
	case !strings.HasPrefix(trimmed, "/"):
		a.send(s, line, schedule)
		return false
	}

	cmd, arg, _ := strings.Cut(trimmed, " ")
	switch cmd {
	case "/search":
		a.search(s, arg)
	case "/help":
		fmt.Fprint(a.out, helpText())
	case "/quit", "/exit":
		fmt.Fprintln(a.out, "Bye!")
		return true
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd, "(start with // to send it as a message)")
	}
	return false
}

func (a *App) send(s *chat.Session, text string, schedule func(chat.Ack)) {
	if e, ack, ok := s.Submit(text); ok {
		fmt.Fprintln(a.out, e.Text)
		schedule(ack)
	}
}

func (a *App) search(s *chat.Session, keyword string) {
	found, err := s.Search(keyword)
	switch {
	case errors.Is(err, common.ErrEmptyKeyword):
	case err != nil:
		fmt.Fprintln(a.out, common.Notice(err))
	default:
		fmt.Fprint(a.out, chat.FormatResults(found))
	}
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	b.WriteString("  /search <keyword>  list messages containing keyword\n")
	b.WriteString("  /help              show this help\n")
	b.WriteString("  /quit, /exit       leave the program\n")
	b.WriteString("  //text             send \"/text\" as a message\n")
	b.WriteString("Anything else is sent as a message.\n")
	b.WriteString("Registration rules:\n")
	fmt.Fprintf(&b, "  ID number: %s\n", validation.Hints.IDNumber)
	fmt.Fprintf(&b, "  Phone number: %s\n", validation.Hints.Phone)
	fmt.Fprintf(&b, "  Password: %s\n", validation.Hints.Password)
	return b.String()
}
