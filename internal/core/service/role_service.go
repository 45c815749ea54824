package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gdcworld/clinic-backoffice/internal/api/metrics"
	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
	"github.com/gdcworld/clinic-backoffice/internal/core/ports"
)

const defaultRoleCacheTTL = 5 * time.Minute

// RoleService serves the configurable role set. The roles table is the
// source of truth; domain.FallbackRoles applies only when the table is
// unreachable or empty. The store-backed list is cached with an explicit TTL
// and invalidated on every write.
type RoleService struct {
	repo   ports.RoleRepository
	ttl    time.Duration
	logger zerolog.Logger

	mu      sync.Mutex
	cached  []string
	expires time.Time
}

func NewRoleService(repo ports.RoleRepository, ttl time.Duration, logger zerolog.Logger) *RoleService {
	if ttl <= 0 {
		ttl = defaultRoleCacheTTL
	}
	return &RoleService{repo: repo, ttl: ttl, logger: logger}
}

func (s *RoleService) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Now().Before(s.expires) {
		metrics.RoleCacheTotal.WithLabelValues("hit").Inc()
		return append([]string(nil), s.cached...), nil
	}

	roles, err := s.repo.List(ctx)
	if err != nil {
		metrics.RoleCacheTotal.WithLabelValues("fallback").Inc()
		s.logger.Warn().Err(err).Msg("role store unreachable, serving fallback role set")
		return append([]string(nil), domain.FallbackRoles...), nil
	}
	if len(roles) == 0 {
		metrics.RoleCacheTotal.WithLabelValues("fallback").Inc()
		return append([]string(nil), domain.FallbackRoles...), nil
	}

	metrics.RoleCacheTotal.WithLabelValues("miss").Inc()
	s.cached = append([]string(nil), roles...)
	s.expires = time.Now().Add(s.ttl)
	return roles, nil
}

func (s *RoleService) Contains(ctx context.Context, role string) (bool, error) {
	roles, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

func (s *RoleService) Create(ctx context.Context, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return domain.Validationf("role name is required")
	}
	if err := s.repo.Create(ctx, name); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *RoleService) Delete(ctx context.Context, name string) error {
	if name == domain.RoleAdmin {
		return domain.Validationf("the admin role cannot be removed")
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *RoleService) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.expires = time.Time{}
	s.mu.Unlock()
}
