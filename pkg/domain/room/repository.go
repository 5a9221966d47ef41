package room

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=room_repository_mock.go --case=underscore --with-expecter

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Room, error)
	Create(ctx context.Context, room *Room) error
	List(ctx context.Context) ([]WithQuestionCount, error)
}
