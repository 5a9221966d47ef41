package question

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=question_repository_mock.go --case=underscore --with-expecter

type Repository interface {
	Create(ctx context.Context, question *Question) error
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]Question, error)
}
