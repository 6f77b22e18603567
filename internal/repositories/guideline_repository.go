package repositories

import (
	"context"

	"jobmatch_backend/internal/models"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GuidelineRepository interface {
	Create(ctx context.Context, guideline *models.Guideline) error
	Count(ctx context.Context) (int64, error)
	// Nearest returns the k passages closest to embedding by cosine distance.
	Nearest(ctx context.Context, embedding []float32, k int) ([]models.Guideline, error)
}

type GuidelineRepositoryImpl struct {
	db *gorm.DB
}

func NewGuidelineRepository(db *gorm.DB) GuidelineRepository {
	return &GuidelineRepositoryImpl{db: db}
}

func (r *GuidelineRepositoryImpl) Create(ctx context.Context, guideline *models.Guideline) error {
	return r.db.WithContext(ctx).Create(guideline).Error
}

func (r *GuidelineRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Guideline{}).Count(&count).Error
	return count, err
}

func (r *GuidelineRepositoryImpl) Nearest(ctx context.Context, embedding []float32, k int) ([]models.Guideline, error) {
	var guidelines []models.Guideline
	err := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:  "embedding <=> ?",
				Vars: []interface{}{pgvector.NewVector(embedding)},
			},
		}).
		Limit(k).Find(&guidelines).Error
	return guidelines, err
}
