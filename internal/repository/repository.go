package repository

import (
	"time"

	"taskroom/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUserExists(userID int64) error
}

// RoomRepository defines room and membership data operations
type RoomRepository interface {
	// CreateRoomWithOwner persists the room and the owner's membership in
	// one transaction. Returns domain.ErrRoomCodeTaken on a code collision.
	CreateRoomWithOwner(room *domain.Room) error
	// GetRoom returns nil (no error) when the code is unknown.
	GetRoom(code string) (*domain.Room, error)
	// AddMember is idempotent; joining twice is a no-op.
	AddMember(code string, userID int64) error
	// RemoveMember reports whether a membership row was actually deleted.
	RemoveMember(code string, userID int64) (bool, error)
	// ListUserRooms returns the user's rooms, most recently joined first.
	ListUserRooms(userID int64) ([]domain.RoomRef, error)
	ListMembers(code string) ([]int64, error)
}

// TodoRepository defines todo data operations
type TodoRepository interface {
	// InsertTodo checks the author's membership and inserts the row in one
	// transaction. Returns domain.ErrNotAMember when the room does not
	// exist or the author is not currently a member.
	InsertTodo(todo *domain.Todo) (int64, error)
	// ListTodos returns the room's items ordered by category rank then
	// creation time. An unknown room yields an empty list, not an error.
	// A non-nil category restricts the listing.
	ListTodos(roomCode string, category *domain.Category) ([]domain.Todo, error)
	// DeleteTodo reports whether a row with that id existed in that room.
	DeleteTodo(roomCode string, todoID int64) (bool, error)
	// SetReminderTime records the scheduled reminder instant on the row.
	SetReminderTime(todoID int64, at time.Time) error
}
