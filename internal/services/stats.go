package services

import (
	"eventify/internal/logger"
	"eventify/internal/models"
	"eventify/internal/storage"
)

type StatsService struct {
	store storage.Store
	log   *logger.Logger
}

func NewStatsService(store storage.Store, log *logger.Logger) *StatsService {
	return &StatsService{store: store, log: log}
}

func (s *StatsService) Stats() (*models.Stats, error) {
	return s.store.Stats()
}
