package repositories

import (
	"context"

	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

// BankFilter selects question-bank rows; Level 0 means any level.
type BankFilter struct {
	Topic string
	Level int
}

type AssessmentRepository interface {
	// Per-user assessment instances
	CountByUser(ctx context.Context, userID string) (int64, error)
	FindByUserAndVersion(ctx context.Context, userID, version string) ([]models.UserSkillAssess, error)
	CreateBatch(ctx context.Context, questions []models.UserSkillAssess) error
	UpdateAnswer(ctx context.Context, id, answerGiven string) error

	// Question bank
	FindBank(ctx context.Context, filters []BankFilter) ([]models.SkillQuestion, error)
	CreateBankBatch(ctx context.Context, questions []models.SkillQuestion) error
}

type AssessmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &AssessmentRepositoryImpl{db: db}
}

func (r *AssessmentRepositoryImpl) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserSkillAssess{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *AssessmentRepositoryImpl) FindByUserAndVersion(ctx context.Context, userID, version string) ([]models.UserSkillAssess, error) {
	var questions []models.UserSkillAssess
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND version = ?", userID, version).
		Order("created_at").Find(&questions).Error
	return questions, err
}

func (r *AssessmentRepositoryImpl) CreateBatch(ctx context.Context, questions []models.UserSkillAssess) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&questions).Error
}

func (r *AssessmentRepositoryImpl) UpdateAnswer(ctx context.Context, id, answerGiven string) error {
	return r.db.WithContext(ctx).Model(&models.UserSkillAssess{}).
		Where("id = ?", id).Update("answer_given", answerGiven).Error
}

// Question bank

func (r *AssessmentRepositoryImpl) FindBank(ctx context.Context, filters []BankFilter) ([]models.SkillQuestion, error) {
	query := r.db.WithContext(ctx).Model(&models.SkillQuestion{})

	if len(filters) > 0 {
		cond := r.db.Session(&gorm.Session{NewDB: true})
		for _, f := range filters {
			if f.Level > 0 {
				cond = cond.Or("topic = ? AND level = ?", f.Topic, f.Level)
			} else {
				cond = cond.Or("topic = ?", f.Topic)
			}
		}
		query = query.Where(cond)
	}

	var questions []models.SkillQuestion
	err := query.Order("topic, level").Find(&questions).Error
	return questions, err
}

func (r *AssessmentRepositoryImpl) CreateBankBatch(ctx context.Context, questions []models.SkillQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&questions).Error
}
