package database

import (
	"gorm.io/gorm"
)

func init() {
	RegisterMigration(Migration{
		ID:   "202501010001",
		Name: "enable_pgvector_extension",
		Up: func(db *gorm.DB) error {
			return db.Exec(`CREATE EXTENSION IF NOT EXISTS vector`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP EXTENSION IF EXISTS vector`).Error
		},
	})

	RegisterMigration(Migration{
		ID:   "202501010002",
		Name: "create_rooms_table",
		Up: func(db *gorm.DB) error {
			return db.Exec(`
CREATE TABLE IF NOT EXISTS public.rooms (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name TEXT NOT NULL,
    description TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS public.rooms`).Error
		},
	})

	RegisterMigration(Migration{
		ID:   "202501010003",
		Name: "create_audio_chunks_table",
		Up: func(db *gorm.DB) error {
			return db.Exec(`
CREATE TABLE IF NOT EXISTS public.audio_chunks (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    room_id UUID NOT NULL REFERENCES public.rooms(id),
    transcription TEXT NOT NULL,
    embedding vector(768) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_audio_chunks_room_id ON public.audio_chunks (room_id);`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS public.audio_chunks`).Error
		},
	})

	RegisterMigration(Migration{
		ID:   "202501010004",
		Name: "create_questions_table",
		Up: func(db *gorm.DB) error {
			return db.Exec(`
CREATE TABLE IF NOT EXISTS public.questions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    room_id UUID NOT NULL REFERENCES public.rooms(id),
    question TEXT NOT NULL,
    answer TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_questions_room_id ON public.questions (room_id);`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS public.questions`).Error
		},
	})
}
