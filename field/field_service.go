package field

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

type FieldRepository interface {
	List(ctx context.Context) ([]Field, error)
	GetByName(ctx context.Context, name string) (Field, error)
}

// Service serves the field catalog through a short-lived read-through cache.
// The catalog changes rarely and is owned elsewhere, so expiry is the only
// invalidation.
type Service struct {
	repo  FieldRepository
	cache *cache.Cache
}

const listCacheKey = "fields:list"

func NewService(repo FieldRepository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (s *Service) List(ctx context.Context) ([]Field, error) {
	if cached, found := s.cache.Get(listCacheKey); found {
		return cached.([]Field), nil
	}

	fields, err := s.repo.List(ctx)

	if err != nil {
		return nil, err
	}

	s.cache.Set(listCacheKey, fields, cache.DefaultExpiration)

	return fields, nil
}

func (s *Service) GetByName(ctx context.Context, name string) (Field, error) {
	if cached, found := s.cache.Get("fields:" + name); found {
		return cached.(Field), nil
	}

	field, err := s.repo.GetByName(ctx, name)

	if err != nil {
		return Field{}, err
	}

	s.cache.Set("fields:"+name, field, cache.DefaultExpiration)

	return field, nil
}
