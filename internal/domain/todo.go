package domain

import "time"

// Category is the closed classification set for todo items. Listing order
// follows the order of Categories.
type Category string

const (
	CategoryGame   Category = "game"
	CategoryMovie  Category = "movie"
	CategoryAction Category = "action"
)

// Categories in fixed rank order.
var Categories = []Category{CategoryGame, CategoryMovie, CategoryAction}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// Rank returns the category's position in the fixed listing order.
// Unknown categories sort last.
func (c Category) Rank() int {
	for i, known := range Categories {
		if c == known {
			return i
		}
	}
	return len(Categories)
}

// Todo is a single item on a room's shared list.
type Todo struct {
	ID           int64
	RoomCode     string
	UserID       int64
	Category     Category
	Task         string
	ReminderTime *time.Time
	CreatedAt    time.Time
}
