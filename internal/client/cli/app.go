package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophchat/internal/chat"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/users"
	"github.com/dmitrijs2005/gophchat/internal/validation"
	"golang.org/x/term"
)

// Registrar registers a user into the directory.
type Registrar interface {
	Register(ctx context.Context, reg validation.Registration) (*users.User, error)
}

type App struct {
	registrar  Registrar
	newSession func(userName string) *chat.Session
	logger     logging.Logger

	reader *bufio.Reader
	out    io.Writer
	// terminal fd for masked password input, -1 when in is not a terminal
	passwordFd int
}

func NewApp(registrar Registrar, newSession func(string) *chat.Session, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	if newSession == nil {
		newSession = func(name string) *chat.Session { return chat.NewSession(name) }
	}

	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}

	return &App{
		registrar:  registrar,
		newSession: newSession,
		logger:     logger,
		reader:     bufio.NewReader(in),
		out:        out,
		passwordFd: fd,
	}
}

// Run registers a user and then chats until the user quits, input ends or
// ctx is cancelled. Cancelling the registration is not an error.
func (a *App) Run(ctx context.Context) error {
	user, err := a.Register(ctx)
	if errors.Is(err, errCancelled) {
		fmt.Fprintln(a.out, "Bye!")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registration successful!")

	s := a.newSession(user.UserName)
	a.logger.Info(ctx, "chat window opened", "window", s.ID(), "user", user.UserName)
	defer a.logger.Info(ctx, "chat window closed", "window", s.ID())

	fmt.Fprintf(a.out, "Chat - %s (type /help for commands)\n", user.UserName)
	return a.Chat(ctx, s)
}
