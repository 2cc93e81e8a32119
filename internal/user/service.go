// Package user is the identity index: who has joined, when, and under
// which name. It answers the name lookups the operator menu uses to pick
// a player.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/InventoryManager_Go/internal/database"
	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/logger"
	"github.com/osse101/InventoryManager_Go/internal/repository"
)

// Service defines the identity operations.
type Service interface {
	// SaveUser records a join. The row is replaced, so last_leave resets to 0.
	SaveUser(ctx context.Context, xuid, name string, joinTS int64) error
	// UpdateLeaveTime is a no-op for an unknown xuid.
	UpdateLeaveTime(ctx context.Context, xuid string, leaveTS int64) error
	// FindUserByName returns the most recently joined user whose name
	// contains pattern, or nil when nobody matches.
	FindUserByName(ctx context.Context, pattern string) (*domain.User, error)
	// SearchUsersByName returns every match, most recent join first.
	SearchUsersByName(ctx context.Context, pattern string) ([]domain.User, error)
	GetUser(ctx context.Context, xuid string) (*domain.User, error)
}

// CacheConfig sizes the lookup cache. Size 0 disables it.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache sizing.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

type service struct {
	repo  repository.User
	cache *userCache
}

// NewService creates a new user service
func NewService(repo repository.User, cacheCfg CacheConfig) Service {
	return &service{
		repo:  repo,
		cache: newUserCache(cacheCfg.Size, cacheCfg.TTL),
	}
}

func (s *service) SaveUser(ctx context.Context, xuid, name string, joinTS int64) error {
	xuid = strings.TrimSpace(xuid)
	if xuid == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingXUID)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingName)
	}
	if joinTS < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeTime)
	}

	err := s.repo.UpsertUser(ctx, domain.User{XUID: xuid, Name: name, LastJoin: joinTS})
	s.cache.Invalidate()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveUser, err)
	}

	logger.FromContext(ctx).Debug(LogMsgUserSaved, "xuid", xuid, "name", name)
	return nil
}

func (s *service) UpdateLeaveTime(ctx context.Context, xuid string, leaveTS int64) error {
	xuid = strings.TrimSpace(xuid)
	if xuid == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingXUID)
	}
	if leaveTS < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeTime)
	}

	touched, err := s.repo.UpdateLeaveTime(ctx, xuid, leaveTS)
	s.cache.Invalidate()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpdateLeave, err)
	}
	if !touched {
		logger.FromContext(ctx).Debug(LogMsgLeaveUnknown, "xuid", xuid)
	}
	return nil
}

func (s *service) GetUser(ctx context.Context, xuid string) (*domain.User, error) {
	xuid = strings.TrimSpace(xuid)
	if xuid == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingXUID)
	}

	key := cacheKeyXUID + xuid
	if u, ok := s.cache.Get(key); ok {
		if u == nil {
			return nil, domain.ErrUserNotFound
		}
		return u, nil
	}

	gen := s.cache.Generation()
	u, err := s.repo.GetUser(ctx, xuid)
	if errors.Is(err, domain.ErrUserNotFound) {
		s.cache.Set(key, gen, nil)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUser, err)
	}
	s.cache.Set(key, gen, u)
	return u, nil
}

func (s *service) FindUserByName(ctx context.Context, pattern string) (*domain.User, error) {
	folded := database.FoldName(pattern)
	key := cacheKeyName + folded
	if u, ok := s.cache.Get(key); ok {
		return u, nil
	}

	gen := s.cache.Generation()
	users, err := s.repo.SearchUsersByName(ctx, folded, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFindUser, err)
	}

	var best *domain.User
	if len(users) > 0 {
		best = &users[0]
	}
	s.cache.Set(key, gen, best)
	return best, nil
}

func (s *service) SearchUsersByName(ctx context.Context, pattern string) ([]domain.User, error) {
	users, err := s.repo.SearchUsersByName(ctx, database.FoldName(pattern), 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSearchUsers, err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
