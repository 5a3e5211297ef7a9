package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"matchbot/internal/domain/entity"
	"matchbot/internal/domain/port"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// PostgresProfileStore хранилище анкет в PostgreSQL.
type PostgresProfileStore struct {
	db *sql.DB
}

// NewPostgresProfileStore создаёт хранилище поверх открытого соединения.
func NewPostgresProfileStore(db *sql.DB) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

// Open открывает соединение с PostgreSQL по URL подключения.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Exists проверяет наличие анкеты пользователя.
func (s *PostgresProfileStore) Exists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`,
		userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check profile existence: %w", err)
	}
	return exists, nil
}

// Insert сохраняет новую анкету. Уникальность user_id обеспечивает
// ограничение в базе: конфликт вставки превращается в ErrProfileExists.
func (s *PostgresProfileStore) Insert(ctx context.Context, profile *entity.Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (user_id, gender, age, hobby, latitude, longitude, photo_ref, description, registered_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		profile.UserID,
		profile.Gender,
		profile.Age,
		profile.Hobby,
		profile.Location.Latitude,
		profile.Location.Longitude,
		profile.PhotoRef,
		profile.Description,
		profile.RegisteredAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return entity.ErrProfileExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// UpdateDescription обновляет описание существующей анкеты.
func (s *PostgresProfileStore) UpdateDescription(ctx context.Context, userID int64, description string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET description = $1 WHERE user_id = $2`,
		description, userID,
	)
	if err != nil {
		return fmt.Errorf("update description: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return entity.ErrProfileNotFound
	}
	return nil
}

// Get возвращает анкету пользователя.
func (s *PostgresProfileStore) Get(ctx context.Context, userID int64) (*entity.Profile, error) {
	profile := &entity.Profile{}
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, gender, age, hobby, latitude, longitude, photo_ref, description, registered_at
		 FROM users WHERE user_id = $1`,
		userID,
	).Scan(
		&profile.UserID,
		&profile.Gender,
		&profile.Age,
		&profile.Hobby,
		&profile.Location.Latitude,
		&profile.Location.Longitude,
		&profile.PhotoRef,
		&profile.Description,
		&profile.RegisteredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// Проверка реализации интерфейса
var _ port.ProfileStore = (*PostgresProfileStore)(nil)
