package repository

import (
	"github.com/fazla-cloud/thunder-agency-platform/internal/database"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/utils"
	"gorm.io/gorm"
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *GormProfileRepository) FindByIDs(ids []string) ([]models.Profile, error) {
	profiles := []models.Profile{}
	if len(ids) == 0 {
		return profiles, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *GormProfileRepository) List(filter ProfileFilter, page utils.PaginationParams) ([]models.Profile, int64, error) {
	query := r.db.Model(&models.Profile{})
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	profiles := []models.Profile{}
	listQuery := query.Scopes(database.NewestFirst)
	if page.Bounded() {
		listQuery = listQuery.Scopes(database.Paginate(page))
	}
	if err := listQuery.Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// UpdateFields writes only the named columns, so false and nil values are
// stored as given.
func (r *GormProfileRepository) UpdateFields(id string, fields map[string]any) error {
	return r.db.Model(&models.Profile{}).Where("id = ?", id).Updates(fields).Error
}
