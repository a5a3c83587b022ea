package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/validation"
)

// Service registers users into a directory it does not own; the caller
// creates the Repository and decides its lifetime.
type Service struct {
	repo   Repository
	logger logging.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Register validates reg (ID number, phone, password, in that order) and
// inserts the user. Validation failures and duplicates come back as the
// sentinels from common; the directory is only mutated on success.
func (s *Service) Register(ctx context.Context, reg validation.Registration) (*User, error) {
	reg = reg.Normalize()

	if err := validation.Validate(reg); err != nil {
		s.logger.Info(ctx, "registration rejected", "user", reg.UserName, "reason", err.Error())
		return nil, err
	}

	user := &User{
		Name:      reg.Name,
		Surname:   reg.Surname,
		IDNumber:  reg.IDNumber,
		Phone:     reg.Phone,
		UserName:  reg.UserName,
		Password:  reg.Password,
		CreatedAt: s.now(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Info(ctx, "registration rejected", "user", reg.UserName, "reason", err.Error())
			return nil, err
		}
		s.logger.Error(ctx, "registration failed", "user", reg.UserName, "error", err)
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "registration accepted", "user", created.UserName)
	return created, nil
}
