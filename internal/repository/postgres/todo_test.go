package postgres

import (
	"testing"
	"time"

	"taskroom/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestTodoRepo_InsertTodo(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTodoRepo(db)
	todo := &domain.Todo{
		RoomCode: "1234",
		UserID:   7,
		Category: domain.CategoryAction,
		Task:     "book flights",
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(todo.RoomCode, todo.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO todos").
		WithArgs(todo.RoomCode, todo.UserID, "action", todo.Task).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectCommit()

	id, err := repo.InsertTodo(todo)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_InsertTodo_NotAMember(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTodoRepo(db)
	todo := &domain.Todo{
		RoomCode: "1234",
		UserID:   7,
		Category: domain.CategoryGame,
		Task:     "finish campaign",
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(todo.RoomCode, todo.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	id, err := repo.InsertTodo(todo)

	assert.ErrorIs(t, err, domain.ErrNotAMember)
	assert.Zero(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_ListTodos(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTodoRepo(db)
	now := time.Now()
	reminder := now.Add(time.Hour)

	rows := sqlmock.NewRows([]string{"id", "room_code", "user_id", "category", "task", "reminder_time", "created_at"}).
		AddRow(int64(1), "1234", int64(7), "game", "finish campaign", nil, now).
		AddRow(int64(2), "1234", int64(42), "action", "book flights", reminder, now)

	mock.ExpectQuery("SELECT id, room_code, user_id, category, task, reminder_time, created_at FROM todos").
		WithArgs("1234").
		WillReturnRows(rows)

	todos, err := repo.ListTodos("1234", nil)

	assert.NoError(t, err)
	assert.Len(t, todos, 2)
	assert.Equal(t, domain.CategoryGame, todos[0].Category)
	assert.Nil(t, todos[0].ReminderTime)
	assert.NotNil(t, todos[1].ReminderTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_ListTodos_FilteredByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTodoRepo(db)
	category := domain.CategoryMovie

	rows := sqlmock.NewRows([]string{"id", "room_code", "user_id", "category", "task", "reminder_time", "created_at"}).
		AddRow(int64(3), "1234", int64(7), "movie", "watch dune", nil, time.Now())

	mock.ExpectQuery("SELECT id, room_code, user_id, category, task, reminder_time, created_at FROM todos").
		WithArgs("1234", "movie").
		WillReturnRows(rows)

	todos, err := repo.ListTodos("1234", &category)

	assert.NoError(t, err)
	assert.Len(t, todos, 1)
	assert.Equal(t, domain.CategoryMovie, todos[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_ListTodos_UnknownRoomIsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTodoRepo(db)

	rows := sqlmock.NewRows([]string{"id", "room_code", "user_id", "category", "task", "reminder_time", "created_at"})

	mock.ExpectQuery("SELECT id, room_code, user_id, category, task, reminder_time, created_at FROM todos").
		WithArgs("9999").
		WillReturnRows(rows)

	todos, err := repo.ListTodos("9999", nil)

	assert.NoError(t, err)
	assert.Empty(t, todos)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_DeleteTodo(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{
			name:     "todo existed",
			affected: 1,
			expected: true,
		},
		{
			name:     "todo missing or wrong room",
			affected: 0,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewTodoRepo(db)

			mock.ExpectExec("DELETE FROM todos").
				WithArgs(int64(11), "1234").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			removed, err := repo.DeleteTodo("1234", 11)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, removed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTodoRepo_SetReminderTime(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTodoRepo(db)
	at := time.Now().Add(2 * time.Hour)

	mock.ExpectExec("UPDATE todos").
		WithArgs(int64(11), at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetReminderTime(11, at)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
