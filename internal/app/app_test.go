package app_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mkotelnikov/family-calendar/internal/app"
	"github.com/mkotelnikov/family-calendar/internal/storage"
	memorystorage "github.com/mkotelnikov/family-calendar/internal/storage/memory"
	"github.com/stretchr/testify/require"
)

func validPayload() app.EventPayload {
	return app.EventPayload{
		Name:     "Dentist",
		User:     "arnav",
		Date:     "2024-06-01",
		Time:     "09:00",
		Duration: 30,
		Category: "Health",
	}
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("valid payload", func(t *testing.T) {
		calendar := app.New(memorystorage.New())

		e, err := calendar.CreateEvent(ctx, validPayload())
		require.NoError(t, err)
		require.Equal(t, int64(1), e.ID)
		require.NotEmpty(t, e.CreatedAt)
		require.Equal(t, 30, e.Duration)
	})

	t.Run("ids strictly increasing", func(t *testing.T) {
		calendar := app.New(memorystorage.New())

		var prev int64
		for i := 0; i < 10; i++ {
			e, err := calendar.CreateEvent(ctx, validPayload())
			require.NoError(t, err)
			require.Greater(t, e.ID, prev)
			prev = e.ID
		}
	})

	t.Run("missing required field creates nothing", func(t *testing.T) {
		store := memorystorage.New()
		calendar := app.New(store)

		fields := []func(*app.EventPayload){
			func(p *app.EventPayload) { p.Name = "" },
			func(p *app.EventPayload) { p.User = "" },
			func(p *app.EventPayload) { p.Date = "" },
			func(p *app.EventPayload) { p.Time = "" },
			func(p *app.EventPayload) { p.Duration = 0 },
			func(p *app.EventPayload) { p.Category = "" },
		}
		for _, clear := range fields {
			p := validPayload()
			clear(&p)
			_, err := calendar.CreateEvent(ctx, p)
			var verr app.ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Field)
		}

		events, err := store.ListEvents(ctx)
		require.NoError(t, err)
		require.Empty(t, events)
	})

	t.Run("negative duration rejected", func(t *testing.T) {
		calendar := app.New(memorystorage.New())
		p := validPayload()
		p.Duration = -5
		_, err := calendar.CreateEvent(ctx, p)
		var verr app.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "duration", verr.Field)
	})
}

func TestListEvents(t *testing.T) {
	ctx := context.Background()
	calendar := app.New(memorystorage.New())

	days := []string{"2024-06-03", "2024-06-01", "2024-06-02"}
	for _, d := range days {
		p := validPayload()
		p.Date = d
		_, err := calendar.CreateEvent(ctx, p)
		require.NoError(t, err)
	}

	events, err := calendar.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, "2024-06-01", events[0].Date)
	require.Equal(t, "2024-06-02", events[1].Date)
	require.Equal(t, "2024-06-03", events[2].Date)
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("partial payload changes only supplied fields", func(t *testing.T) {
		calendar := app.New(memorystorage.New())
		created, err := calendar.CreateEvent(ctx, validPayload())
		require.NoError(t, err)

		name := "Dentist (moved)"
		duration := app.Minutes(45)
		updated, err := calendar.UpdateEvent(ctx, created.ID, app.EventPatch{Name: &name, Duration: &duration})
		require.NoError(t, err)

		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, name, updated.Name)
		require.Equal(t, 45, updated.Duration)
		require.Equal(t, created.User, updated.User)
		require.Equal(t, created.Date, updated.Date)
		require.Equal(t, created.Time, updated.Time)
		require.Equal(t, created.Category, updated.Category)
		require.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("unknown id", func(t *testing.T) {
		calendar := app.New(memorystorage.New())
		_, err := calendar.UpdateEvent(ctx, 42, app.EventPatch{})
		require.ErrorIs(t, err, storage.ErrNotFoundEvent)
	})
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("delete removes event from list", func(t *testing.T) {
		calendar := app.New(memorystorage.New())
		created, err := calendar.CreateEvent(ctx, validPayload())
		require.NoError(t, err)

		require.NoError(t, calendar.DeleteEvent(ctx, created.ID))

		events, err := calendar.ListEvents(ctx)
		require.NoError(t, err)
		require.Empty(t, events)
	})

	t.Run("unknown id", func(t *testing.T) {
		calendar := app.New(memorystorage.New())
		require.ErrorIs(t, calendar.DeleteEvent(ctx, 42), storage.ErrNotFoundEvent)
	})
}

func TestDurationCoercion(t *testing.T) {
	t.Run("accepts numbers and numeric strings", func(t *testing.T) {
		for _, body := range []string{
			`{"name":"x","user":"u","date":"2024-06-01","time":"09:00","duration":30,"category":"Other"}`,
			`{"name":"x","user":"u","date":"2024-06-01","time":"09:00","duration":"30","category":"Other"}`,
		} {
			var p app.EventPayload
			require.NoError(t, json.Unmarshal([]byte(body), &p))
			require.Equal(t, app.Minutes(30), p.Duration)
		}
	})

	t.Run("rejects non-positive and non-numeric values", func(t *testing.T) {
		for _, body := range []string{
			`{"duration":"abc"}`,
			`{"duration":0}`,
			`{"duration":-5}`,
			`{"duration":30.5}`,
			`{"duration":null}`,
		} {
			var p app.EventPayload
			require.ErrorIs(t, json.Unmarshal([]byte(body), &p), app.ErrInvalidDuration)
		}
	})
}
