package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidDuration = errors.New("duration must be a positive integer")

// ValidationError reports a required event field that is missing or unusable.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid field: %s", e.Field)
}

// Minutes accepts both a JSON number and a numeric string, the way the
// original form submitted durations.
type Minutes int

func (m *Minutes) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return ErrInvalidDuration
	}
	*m = Minutes(n)
	return nil
}

// EventPayload is a full create request. All fields are required.
type EventPayload struct {
	Name     string  `json:"name" validate:"required"`
	User     string  `json:"user" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	Time     string  `json:"time" validate:"required"`
	Duration Minutes `json:"duration" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
}

// EventPatch is a partial update request; nil fields keep their stored value.
type EventPatch struct {
	Name     *string  `json:"name"`
	User     *string  `json:"user"`
	Date     *string  `json:"date"`
	Time     *string  `json:"time"`
	Duration *Minutes `json:"duration"`
	Category *string  `json:"category"`
}
