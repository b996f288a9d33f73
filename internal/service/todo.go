package service

import (
	"fmt"
	"time"

	"taskroom/internal/domain"
	"taskroom/internal/repository"

	"go.uber.org/zap"
)

// Broadcaster delivers a message to every member of a room.
type Broadcaster interface {
	Broadcast(roomCode, text string)
}

// TodoService handles room-scoped todo business logic
type TodoService struct {
	todoRepo repository.TodoRepository
	fanout   Broadcaster
	logger   *zap.Logger
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo repository.TodoRepository, fanout Broadcaster, logger *zap.Logger) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
		fanout:   fanout,
		logger:   logger,
	}
}

// AddTodo persists a todo for a current room member and broadcasts the
// addition. The write is durable before the broadcast starts; a failed
// broadcast never rolls it back.
func (s *TodoService) AddTodo(roomCode string, userID int64, category domain.Category, task string) (int64, error) {
	if task == "" {
		return 0, fmt.Errorf("task cannot be empty")
	}

	id, err := s.todoRepo.InsertTodo(&domain.Todo{
		RoomCode: roomCode,
		UserID:   userID,
		Category: category,
		Task:     task,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Todo added",
		zap.Int64("todo_id", id),
		zap.String("room_code", roomCode),
		zap.Int64("user_id", userID),
		zap.String("category", string(category)),
	)

	s.fanout.Broadcast(roomCode, fmt.Sprintf("📌 New %s todo: %s", category, task))
	return id, nil
}

// ListTodos returns the room's items in category-rank then creation order.
// An unknown room yields an empty list, never an error.
func (s *TodoService) ListTodos(roomCode string, category *domain.Category) ([]domain.Todo, error) {
	return s.todoRepo.ListTodos(roomCode, category)
}

// DeleteTodo removes a todo and broadcasts the deletion. Returns true only
// when a row with that id existed in that room.
func (s *TodoService) DeleteTodo(roomCode string, todoID int64) (bool, error) {
	removed, err := s.todoRepo.DeleteTodo(roomCode, todoID)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}

	s.logger.Info("Todo deleted",
		zap.Int64("todo_id", todoID),
		zap.String("room_code", roomCode),
	)

	s.fanout.Broadcast(roomCode, fmt.Sprintf("🗑 Todo #%d was removed", todoID))
	return true, nil
}

// SetReminderTime records the scheduled reminder instant on the todo row
func (s *TodoService) SetReminderTime(todoID int64, at time.Time) error {
	return s.todoRepo.SetReminderTime(todoID, at)
}
