package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/askroom/askroom/pkg/domain"
	"github.com/askroom/askroom/pkg/domain/room"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) room.Repository {
	return &RoomRepository{
		db: db,
	}
}

func (r *RoomRepository) Get(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var entity room.Room
	result := r.db.WithContext(ctx).First(&entity, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("room", id)
		}
		return nil, fmt.Errorf("room: %w", result.Error)
	}
	return &entity, nil
}

func (r *RoomRepository) Create(ctx context.Context, entity *room.Room) error {
	result := r.db.WithContext(ctx).Create(entity)
	if result.Error != nil {
		return domain.NewPersistenceError("room", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewPersistenceError("room", fmt.Errorf("no row created"))
	}
	return nil
}

func (r *RoomRepository) List(ctx context.Context) ([]room.WithQuestionCount, error) {
	var rooms []room.WithQuestionCount
	err := r.db.WithContext(ctx).Raw(`
SELECT r.id, r.name, r.description, r.created_at, COUNT(q.id) AS question_count
FROM rooms r
LEFT JOIN questions q ON q.room_id = r.id
GROUP BY r.id
ORDER BY r.created_at DESC`).Scan(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("room: %w", err)
	}
	return rooms, nil
}
