package repository

import (
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OptionRepositories groups the four option tables.
type OptionRepositories struct {
	ContentTypes OptionRepository[models.ContentType]
	Platforms    OptionRepository[models.Platform]
	Durations    OptionRepository[models.Duration]
	Dimensions   OptionRepository[models.Dimension]
}

// NewOptionRepositories creates the option repositories in display order:
// names alphabetically, durations by length, dimensions by label.
func NewOptionRepositories(db *gorm.DB) OptionRepositories {
	return OptionRepositories{
		ContentTypes: NewOptionRepository[models.ContentType](db, "name"),
		Platforms:    NewOptionRepository[models.Platform](db, "name"),
		Durations:    NewOptionRepository[models.Duration](db, "seconds"),
		Dimensions:   NewOptionRepository[models.Dimension](db, "label"),
	}
}

// GormOptionRepository is a GORM implementation of OptionRepository
type GormOptionRepository[T Option] struct {
	db    *gorm.DB
	order string
}

// NewOptionRepository creates an OptionRepository listing rows by order.
func NewOptionRepository[T Option](db *gorm.DB, order string) OptionRepository[T] {
	return &GormOptionRepository[T]{db: db, order: order}
}

func (r *GormOptionRepository[T]) List() ([]T, error) {
	items := []T{}
	if err := r.db.Order(clause.OrderByColumn{Column: clause.Column{Name: r.order}}).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormOptionRepository[T]) FindByID(id string) (*T, error) {
	var item T
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormOptionRepository[T]) Create(item *T) error {
	return r.db.Create(item).Error
}

func (r *GormOptionRepository[T]) Update(item *T) error {
	return r.db.Save(item).Error
}

func (r *GormOptionRepository[T]) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormOptionRepository[T]) Ensure(key map[string]any, item *T) error {
	return r.db.Where(key).FirstOrCreate(item).Error
}
