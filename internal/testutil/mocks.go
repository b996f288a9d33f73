package testutil

import (
	"time"

	"taskroom/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockRoomRepository is a mock for RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) CreateRoomWithOwner(room *domain.Room) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *MockRoomRepository) GetRoom(code string) (*domain.Room, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) AddMember(code string, userID int64) error {
	args := m.Called(code, userID)
	return args.Error(0)
}

func (m *MockRoomRepository) RemoveMember(code string, userID int64) (bool, error) {
	args := m.Called(code, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) ListUserRooms(userID int64) ([]domain.RoomRef, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomRef), args.Error(1)
}

func (m *MockRoomRepository) ListMembers(code string) ([]int64, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockTodoRepository is a mock for TodoRepository
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) InsertTodo(todo *domain.Todo) (int64, error) {
	args := m.Called(todo)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTodoRepository) ListTodos(roomCode string, category *domain.Category) ([]domain.Todo, error) {
	args := m.Called(roomCode, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Todo), args.Error(1)
}

func (m *MockTodoRepository) DeleteTodo(roomCode string, todoID int64) (bool, error) {
	args := m.Called(roomCode, todoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTodoRepository) SetReminderTime(todoID int64, at time.Time) error {
	args := m.Called(todoID, at)
	return args.Error(0)
}

// MockBroadcaster is a mock for service.Broadcaster
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(roomCode, text string) {
	m.Called(roomCode, text)
}

// MockSender is a mock for service.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendMessage(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}
