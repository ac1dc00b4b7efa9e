package sqlstorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/mkotelnikov/family-calendar/internal/storage"
	log "github.com/sirupsen/logrus"
)

var ErrConnectionFailed = errors.New("failed to connect")

const schema = `CREATE TABLE IF NOT EXISTS events (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	user_name TEXT NOT NULL,
	event_date TEXT NOT NULL,
	event_time TEXT NOT NULL,
	duration INTEGER NOT NULL,
	category TEXT NOT NULL,
	created_at TEXT NOT NULL
)`

type Config struct {
	// DSN wins over the discrete fields when set.
	DSN      string
	Host     string
	Port     int
	Database string
	Username string
	Password string
}

type Storage struct {
	dsn string
	db  *sqlx.DB
}

func New(config Config) *Storage {
	dsn := config.DSN
	if dsn == "" {
		dsn = fmt.Sprintf(
			"sslmode=disable host=%s port=%d dbname=%s user=%s password=%s",
			config.Host, config.Port, config.Database, config.Username, config.Password)
	}
	return &Storage{dsn: dsn}
}

func (s *Storage) Connect(ctx context.Context) error {
	db, err := sqlx.ConnectContext(ctx, "postgres", s.dsn)
	if err != nil {
		log.Errorf("failed to connect: %v", err)
		return ErrConnectionFailed
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		log.Errorf("failed to create events table: %v", err)
		return ErrConnectionFailed
	}
	s.db = db
	return nil
}

func (s *Storage) Close(_ context.Context) error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

func (s *Storage) AddEvent(ctx context.Context, e *storage.Event) error {
	e.CreatedAt = time.Now().Format(time.RFC3339)
	err := s.db.GetContext(
		ctx,
		&e.ID,
		"INSERT INTO events(name, user_name, event_date, event_time, duration, category, created_at) "+
			"VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id",
		e.Name, e.User, e.Date, e.Time, e.Duration, e.Category, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (s *Storage) GetEvent(ctx context.Context, id int64) (storage.Event, error) {
	var e storage.Event
	err := s.db.GetContext(
		ctx,
		&e,
		"SELECT id, name, user_name, event_date, event_time, duration, category, created_at "+
			"FROM events WHERE id=$1",
		id)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Event{}, fmt.Errorf("no event with id %d: %w", id, storage.ErrNotFoundEvent)
	}
	return e, err
}

func (s *Storage) UpdateEvent(ctx context.Context, id int64, e storage.Event) error {
	var found bool
	err := s.db.GetContext(
		ctx,
		&found,
		"UPDATE events SET name=$2, user_name=$3, event_date=$4, event_time=$5, duration=$6, category=$7 "+
			"WHERE id=$1 RETURNING TRUE",
		id, e.Name, e.User, e.Date, e.Time, e.Duration, e.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to update event with id %d: %w", id, storage.ErrNotFoundEvent)
	}
	return err
}

func (s *Storage) RemoveEvent(ctx context.Context, id int64) error {
	var found bool
	err := s.db.GetContext(ctx, &found, "DELETE FROM events WHERE id=$1 RETURNING TRUE", id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to remove event with id %d: %w", id, storage.ErrNotFoundEvent)
	}
	return err
}

func (s *Storage) ListEvents(ctx context.Context) ([]storage.Event, error) {
	events := make([]storage.Event, 0)
	err := s.db.SelectContext(
		ctx,
		&events,
		"SELECT id, name, user_name, event_date, event_time, duration, category, created_at "+
			"FROM events ORDER BY event_date, event_time, id")
	return events, err
}
