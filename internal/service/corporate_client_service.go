package service

import (
	"context"

	"hospital-emr-backend/internal/models"
)

type CorporateClientService struct {
	clients CorporateClientStore
}

func NewCorporateClientService(clients CorporateClientStore) *CorporateClientService {
	return &CorporateClientService{clients: clients}
}

func (s *CorporateClientService) ListActive(ctx context.Context, session models.Session) ([]models.CorporateClient, error) {
	return s.clients.ListActive(ctx, session.HospitalID)
}
