package domain

import "time"

// Room is a password-protected group identified by a short numeric code.
// Every member sees the same todo list.
type Room struct {
	Code         string
	Name         string
	PasswordHash string
	OwnerID      int64
	CreatedAt    time.Time
}

// Membership links a user to a room.
type Membership struct {
	RoomCode string
	UserID   int64
	JoinedAt time.Time
}

// RoomRef is the short form used in pickers and listings.
type RoomRef struct {
	Code string
	Name string
}
