package repo

import (
	"droidsweep/backend/app/models"

	"gorm.io/gorm"
)

type MobileAuditRepository struct{ db *gorm.DB }

func NewMobileAuditRepository(db *gorm.DB) *MobileAuditRepository {
	return &MobileAuditRepository{db: db}
}

func (r *MobileAuditRepository) Upsert(a *models.MobileAudit) error {
	var existing models.MobileAudit
	if err := r.db.Where("id = ?", a.ID).First(&existing).Error; err == nil {
		// never resurrect an executed audit
		a.Executed = existing.Executed
		return r.db.Save(a).Error
	}
	return r.db.Create(a).Error
}

func (r *MobileAuditRepository) FindByID(id string) (*models.MobileAudit, error) {
	var a models.MobileAudit
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// MarkExecuted sets the executed flag; returns the number of rows changed so
// the caller can detect a double apply.
func (r *MobileAuditRepository) MarkExecuted(id string) (int64, error) {
	res := r.db.Model(&models.MobileAudit{}).
		Where("id = ? AND executed = ?", id, false).
		Update("executed", true)
	return res.RowsAffected, res.Error
}

func (r *MobileAuditRepository) ListPending() ([]models.MobileAudit, error) {
	var out []models.MobileAudit
	if err := r.db.Where("executed = ?", false).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
