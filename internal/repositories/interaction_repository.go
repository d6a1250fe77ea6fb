package repositories

import (
	"context"

	"github.com/noshow_platform/internal/models"
	"gorm.io/gorm"
)

// InteractionRepository defines the audit-trail data access layer.
type InteractionRepository interface {
	CreateInteraction(ctx context.Context, interaction *models.Interaction) error
	GetInteractions(ctx context.Context, limit int) ([]models.Interaction, error)
}

// gormInteractionRepository is the GORM implementation of InteractionRepository.
type gormInteractionRepository struct {
	db *gorm.DB
}

// NewGormInteractionRepository creates a new gormInteractionRepository instance.
func NewGormInteractionRepository(db *gorm.DB) InteractionRepository {
	return &gormInteractionRepository{db: db}
}

// CreateInteraction inserts a new audit entry.
func (r *gormInteractionRepository) CreateInteraction(ctx context.Context, interaction *models.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

// GetInteractions returns the most recent audit entries, newest first.
func (r *gormInteractionRepository) GetInteractions(ctx context.Context, limit int) ([]models.Interaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var interactions []models.Interaction
	if err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}
