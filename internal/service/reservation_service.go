package service

import (
	"context"
	"time"

	"github.com/dpletzke/LightBnB/internal/metrics"
	"github.com/dpletzke/LightBnB/internal/model"
	"github.com/dpletzke/LightBnB/internal/repository"
)

type ReservationService struct {
	repo    repository.ReservationRepository
	metrics *metrics.Metrics
}

func NewReservationService(repo repository.ReservationRepository, m *metrics.Metrics) *ReservationService {
	return &ReservationService{repo: repo, metrics: m}
}

func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]*model.GuestReservation, error) {
	start := time.Now()
	list, err := s.repo.ListForGuest(ctx, guestID, limit)
	s.metrics.ObserveQuery("reservation_list", start, err)
	return list, err
}
