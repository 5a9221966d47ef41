package repository

import (
	"context"
	"fmt"

	"github.com/askroom/askroom/pkg/domain"
	"github.com/askroom/askroom/pkg/domain/question"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) question.Repository {
	return &QuestionRepository{
		db: db,
	}
}

func (r *QuestionRepository) Create(ctx context.Context, entity *question.Question) error {
	result := r.db.WithContext(ctx).Create(entity)
	if result.Error != nil {
		return domain.NewPersistenceError("question", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewPersistenceError("question", fmt.Errorf("no row created"))
	}
	return nil
}

func (r *QuestionRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]question.Question, error) {
	var questions []question.Question
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at desc").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("question: %w", err)
	}
	return questions, nil
}
