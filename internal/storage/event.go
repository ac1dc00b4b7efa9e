package storage

// Event is a single calendar entry shared by the family.
// Date and Time keep the wire format (YYYY-MM-DD / HH:MM) so that
// lexicographic order matches chronological order.
type Event struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	User      string `json:"user" db:"user_name"`
	Date      string `json:"date" db:"event_date"`
	Time      string `json:"time" db:"event_time"`
	Duration  int    `json:"duration" db:"duration"`
	Category  string `json:"category" db:"category"`
	CreatedAt string `json:"created_at" db:"created_at"`
}
