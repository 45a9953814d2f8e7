package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gymhub/internal/cache"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

const (
	classCacheTTL = 5 * time.Minute
	classCacheKey = "classes:all"
)

// ClassService handles gym class operations.
type ClassService interface {
	Create(ctx context.Context, class *model.GymClass) (*model.GymClass, error)
	List(ctx context.Context) ([]model.GymClass, error)
	TrainerSchedule(ctx context.Context, trainerID uint) ([]model.GymClass, error)
}

type classService struct {
	classes repository.ClassRepository
	cache   *cache.Client
}

// NewClassService creates a new class service.
func NewClassService(classes repository.ClassRepository, cache *cache.Client) ClassService {
	return &classService{classes: classes, cache: cache}
}

// Create stores a new class and invalidates the cached listing.
func (s *classService) Create(ctx context.Context, class *model.GymClass) (*model.GymClass, error) {
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}
	_ = s.cache.Delete(ctx, classCacheKey)
	return class, nil
}

// List returns all classes, read through the cache.
func (s *classService) List(ctx context.Context) ([]model.GymClass, error) {
	if data, _ := s.cache.Get(ctx, classCacheKey); data != nil {
		var cached []model.GymClass
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	classes, err := s.classes.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(classes); err == nil {
		_ = s.cache.Set(ctx, classCacheKey, payload, classCacheTTL)
	}
	return classes, nil
}

// TrainerSchedule returns the classes led by the given trainer.
func (s *classService) TrainerSchedule(ctx context.Context, trainerID uint) ([]model.GymClass, error) {
	return s.classes.ListByTrainer(ctx, trainerID)
}
