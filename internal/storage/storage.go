package storage

import (
	"context"
	"errors"
)

var ErrNotFoundEvent = errors.New("event not found")

type Storage interface {
	Connect(ctx context.Context) error
	Close(ctx context.Context) error
	AddEvent(ctx context.Context, e *Event) error
	GetEvent(ctx context.Context, id int64) (Event, error)
	UpdateEvent(ctx context.Context, id int64, e Event) error
	RemoveEvent(ctx context.Context, id int64) error
	ListEvents(ctx context.Context) ([]Event, error)
}
