package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gdcworld/clinic-backoffice/internal/api/metrics"
	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
	"github.com/gdcworld/clinic-backoffice/internal/core/ports"
)

const (
	minPasswordLen = 8
	minNameLen     = 2
)

// AccountService implements the role-scoped account CRUD. It owns all input
// validation; the repository only enforces the unique-email constraint.
type AccountService struct {
	repo   ports.AccountRepository
	roles  ports.RoleService
	idem   ports.IdempotencyStore // nil disables idempotent replay
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, roles ports.RoleService, idem ports.IdempotencyStore, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, roles: roles, idem: idem, logger: logger}
}

func (s *AccountService) Create(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	if s.idem != nil && input.IdempotencyKey != "" {
		if existing, err := s.idem.Lookup(ctx, input.IdempotencyKey); err == nil && existing != nil {
			metrics.IdempotentReplaysTotal.Inc()
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("account_id", existing.ID).Msg("idempotent replay")
			return existing, nil
		}
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	switch {
	case email == "":
		return nil, domain.Validationf("email is required")
	case input.Password == "":
		return nil, domain.Validationf("password is required")
	case input.Role == "":
		return nil, domain.Validationf("role is required")
	case len(input.Password) < minPasswordLen:
		return nil, domain.Validationf("password must be at least %d characters", minPasswordLen)
	case len([]rune(name)) < minNameLen:
		return nil, domain.Validationf("name must be at least %d characters", minNameLen)
	}

	ok, err := s.roles.Contains(ctx, input.Role)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrRoleUnknown
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = "active"
	}

	created, err := s.repo.Create(ctx, &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Name:         name,
		Phone:        input.Phone,
		Status:       status,
		Hospital:     input.Hospital,
		WorkStatus:   input.WorkStatus,
		AdminType:    input.AdminType,
		Ward:         input.Ward,
		License:      input.License,
		Branch:       input.Branch,
		Area:         input.Area,
		Position:     input.Position,
	})
	if err != nil {
		return nil, err
	}

	if s.idem != nil && input.IdempotencyKey != "" {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, created); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to record idempotency key")
		}
	}

	s.logger.Info().Str("account_id", created.ID).Str("role", created.Role).Msg("account created")
	return created, nil
}

func (s *AccountService) Update(ctx context.Context, id string, patch ports.AccountPatch) (*domain.Account, error) {
	if id == "" {
		return nil, domain.Validationf("id is required")
	}

	fields := map[string]any{}

	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if email == "" {
			return nil, domain.Validationf("email cannot be empty")
		}
		fields["email"] = email
	}
	if patch.Role != nil {
		ok, err := s.roles.Contains(ctx, *patch.Role)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrRoleUnknown
		}
		fields["role"] = *patch.Role
	}
	if patch.Password != nil && *patch.Password != "" {
		if len(*patch.Password) < minPasswordLen {
			return nil, domain.Validationf("password must be at least %d characters", minPasswordLen)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = string(hash)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if len([]rune(name)) < minNameLen {
			return nil, domain.Validationf("name must be at least %d characters", minNameLen)
		}
		fields["name"] = name
	}

	for column, value := range map[string]*string{
		"phone":       patch.Phone,
		"status":      patch.Status,
		"hospital":    patch.Hospital,
		"work_status": patch.WorkStatus,
		"admin_type":  patch.AdminType,
		"ward":        patch.Ward,
		"license":     patch.License,
		"branch":      patch.Branch,
		"area":        patch.Area,
		"position":    patch.Position,
	} {
		if value != nil {
			fields[column] = *value
		}
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", id).Int("fields", len(fields)).Msg("account updated")
	return updated, nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Validationf("id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", id).Msg("account deleted")
	return nil
}

func (s *AccountService) List(ctx context.Context, role string) ([]domain.Account, error) {
	return s.repo.List(ctx, role)
}
