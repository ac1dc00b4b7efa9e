package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mkotelnikov/family-calendar/internal/storage"
	log "github.com/sirupsen/logrus"
)

type App struct {
	storage  storage.Storage
	validate *validator.Validate
}

func New(storage storage.Storage) *App {
	return &App{storage: storage, validate: validator.New()}
}

func (a *App) CreateEvent(ctx context.Context, p EventPayload) (storage.Event, error) {
	if err := a.validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return storage.Event{}, ValidationError{Field: strings.ToLower(verrs[0].Field())}
		}
		return storage.Event{}, err
	}

	e := storage.Event{
		Name:     p.Name,
		User:     p.User,
		Date:     p.Date,
		Time:     p.Time,
		Duration: int(p.Duration),
		Category: p.Category,
	}
	if err := a.storage.AddEvent(ctx, &e); err != nil {
		return storage.Event{}, fmt.Errorf("failed to add event: %w", err)
	}
	log.WithField("operation", "create").WithField("id", e.ID).WithField("name", e.Name).
		Info("event created")
	return e, nil
}

func (a *App) ListEvents(ctx context.Context) ([]storage.Event, error) {
	events, err := a.storage.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (a *App) UpdateEvent(ctx context.Context, id int64, p EventPatch) (storage.Event, error) {
	e, err := a.storage.GetEvent(ctx, id)
	if err != nil {
		return storage.Event{}, err
	}

	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.User != nil {
		e.User = *p.User
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Duration != nil {
		e.Duration = int(*p.Duration)
	}
	if p.Category != nil {
		e.Category = *p.Category
	}

	if err := a.storage.UpdateEvent(ctx, id, e); err != nil {
		return storage.Event{}, err
	}
	log.WithField("operation", "update").WithField("id", id).Info("event updated")
	return e, nil
}

func (a *App) DeleteEvent(ctx context.Context, id int64) error {
	if err := a.storage.RemoveEvent(ctx, id); err != nil {
		return err
	}
	log.WithField("operation", "delete").WithField("id", id).Info("event deleted")
	return nil
}
