package services

import (
	"droidsweep/backend/app/models"
	"droidsweep/backend/app/repo"
)

type AuditService struct{ audits *repo.MobileAuditRepository }

func NewAuditService(r *repo.MobileAuditRepository) *AuditService {
	return &AuditService{audits: r}
}

func (s *AuditService) Ingest(a *models.MobileAudit) error { return s.audits.Upsert(a) }

func (s *AuditService) Find(id string) (*models.MobileAudit, error) {
	return s.audits.FindByID(id)
}

// MarkExecuted returns false when the audit was already executed, so replays
// of the same manifest can be refused.
func (s *AuditService) MarkExecuted(id string) (bool, error) {
	n, err := s.audits.MarkExecuted(id)
	return n > 0, err
}

func (s *AuditService) ListPending() ([]models.MobileAudit, error) {
	return s.audits.ListPending()
}
