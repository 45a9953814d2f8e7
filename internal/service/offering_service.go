package service

import (
	"context"
	"encoding/json"
	"time"

	"gymhub/internal/cache"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

const (
	offeringCacheTTL = 5 * time.Minute
	offeringCacheKey = "services:catalog"
)

// OfferingService exposes the gym's services catalog.
type OfferingService interface {
	List(ctx context.Context) ([]model.ServiceOffering, error)
}

type offeringService struct {
	offerings repository.OfferingRepository
	cache     *cache.Client
}

// NewOfferingService creates a new offering service.
func NewOfferingService(offerings repository.OfferingRepository, cache *cache.Client) OfferingService {
	return &offeringService{offerings: offerings, cache: cache}
}

// List returns the active offerings, read through the cache.
func (s *offeringService) List(ctx context.Context) ([]model.ServiceOffering, error) {
	if data, _ := s.cache.Get(ctx, offeringCacheKey); data != nil {
		var cached []model.ServiceOffering
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	offerings, err := s.offerings.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(offerings); err == nil {
		_ = s.cache.Set(ctx, offeringCacheKey, payload, offeringCacheTTL)
	}
	return offerings, nil
}
