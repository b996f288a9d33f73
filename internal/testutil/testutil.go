package testutil

import (
	"time"

	"taskroom/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRoom creates a test room
func NewTestRoom(code, name, passwordHash string, ownerID int64) *domain.Room {
	return &domain.Room{
		Code:         code,
		Name:         name,
		PasswordHash: passwordHash,
		OwnerID:      ownerID,
		CreatedAt:    time.Now(),
	}
}

// NewTestTodo creates a test todo
func NewTestTodo(id int64, roomCode string, userID int64, category domain.Category, task string) domain.Todo {
	return domain.Todo{
		ID:        id,
		RoomCode:  roomCode,
		UserID:    userID,
		Category:  category,
		Task:      task,
		CreatedAt: time.Now(),
	}
}
