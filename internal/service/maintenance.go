package service

import (
	"context"
	"time"

	"fitness_tracker/internal/repository"
)

type MaintenanceService struct {
	requests repository.AuthorizationRequestRepo
	now      func() time.Time
}

func NewMaintenanceService(requests repository.AuthorizationRequestRepo) *MaintenanceService {
	return &MaintenanceService{requests: requests, now: time.Now}
}

// PurgeExpiredAuthorizationRequests drops login states nobody came back for.
func (s *MaintenanceService) PurgeExpiredAuthorizationRequests(ctx context.Context) (int64, error) {
	return s.requests.DeleteExpired(ctx, s.now())
}
