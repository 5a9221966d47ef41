package question

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question is a user question asked within a room. Answer stays nil when no
// transcript chunk was similar enough to ground a generated answer. Rows are
// written once and never mutated afterwards.
type Question struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoomID    uuid.UUID `json:"room_id" gorm:"type:uuid;not null;index"`
	Question  string    `json:"question" gorm:"not null"`
	Answer    *string   `json:"answer" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return q.Validate()
}

func (q *Question) Validate() error {
	if q.RoomID == uuid.Nil {
		return fmt.Errorf("room_id is required")
	}
	if q.Question == "" {
		return fmt.Errorf("question is required")
	}
	return nil
}

func (q *Question) TableName() string {
	return "questions"
}
