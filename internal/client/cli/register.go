package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/users"
	"github.com/dmitrijs2005/gophchat/internal/validation"
)

var errCancelled = errors.New("registration cancelled")

const cancelWord = "cancel"

type formField struct {
	label  string
	secret bool
	value  func(r *validation.Registration) *string
}

var formFields = []formField{
	{label: "Name", value: func(r *validation.Registration) *string { return &r.Name }},
	{label: "Surname", value: func(r *validation.Registration) *string { return &r.Surname }},
	{label: "ID Number (" + validation.Hints.IDNumber + ")", value: func(r *validation.Registration) *string { return &r.IDNumber }},
	{label: "Phone Number (" + validation.Hints.Phone + ")", value: func(r *validation.Registration) *string { return &r.Phone }},
	{label: "Username", value: func(r *validation.Registration) *string { return &r.UserName }},
	{label: "Password (" + validation.Hints.Password + ")", secret: true, value: func(r *validation.Registration) *string { return &r.Password }},
}

// Register prompts for every field and submits the registration, starting
// over with the previous answers as defaults until it is accepted. An empty
// answer keeps the previous value. Typing "cancel" or ending input returns
// errCancelled.
func (a *App) Register(ctx context.Context) (*users.User, error) {
	var reg validation.Registration

	fmt.Fprintf(a.out, "User Registration (type '%s' to quit)\n", cancelWord)

	for {
		for _, f := range formFields {
			answer, err := a.ask(f, *f.value(&reg))
			if errors.Is(err, io.EOF) {
				return nil, errCancelled
			}
			if err != nil {
				return nil, err
			}
			if strings.EqualFold(strings.TrimSpace(answer), cancelWord) {
				return nil, errCancelled
			}
			if answer != "" {
				*f.value(&reg) = answer
			}
		}

		u, err := a.registrar.Register(ctx, reg)
		if err == nil {
			return u, nil
		}
		if !isRejection(err) {
			return nil, err
		}
		fmt.Fprintln(a.out, common.Notice(err))
	}
}

func (a *App) ask(f formField, previous string) (string, error) {
	prompt := f.label
	if previous != "" {
		prompt = fmt.Sprintf("%s [%s]", f.label, previous)
	}

	if f.secret && a.passwordFd >= 0 {
		pw, err := GetPassword(a.passwordFd, prompt, a.out)
		if err != nil {
			return "", err
		}
		defer common.WipeByteArray(pw)
		return string(pw), nil
	}

	if f.secret {
		return GetRawText(a.reader, prompt, a.out)
	}
	return GetSimpleText(a.reader, prompt, a.out)
}

// isRejection reports whether err is a registration the user can correct.
func isRejection(err error) bool {
	for _, target := range []error{
		common.ErrInvalidIDNumber,
		common.ErrInvalidPhoneNumber,
		common.ErrInvalidPassword,
		common.ErrorAlreadyExists,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
