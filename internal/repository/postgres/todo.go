package postgres

import (
	"database/sql"
	"time"

	"taskroom/internal/domain"
)

// TodoRepo implements repository.TodoRepository
type TodoRepo struct {
	db *sql.DB
}

// NewTodoRepo creates a new todo repository
func NewTodoRepo(db *sql.DB) *TodoRepo {
	return &TodoRepo{db: db}
}

// InsertTodo checks the author's membership and inserts the row in one
// transaction. The membership check is live: a todo can never be attributed
// to a room the author has already left.
func (r *TodoRepo) InsertTodo(todo *domain.Todo) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var member bool
	err = tx.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM room_members
			WHERE room_code = $1 AND user_id = $2
		)
	`, todo.RoomCode, todo.UserID).Scan(&member)
	if err != nil {
		return 0, err
	}
	if !member {
		return 0, domain.ErrNotAMember
	}

	var id int64
	err = tx.QueryRow(`
		INSERT INTO todos (room_code, user_id, category, task)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, todo.RoomCode, todo.UserID, string(todo.Category), todo.Task).Scan(&id)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListTodos returns the room's items ordered by category rank then creation
// time. An unknown room simply yields no rows.
func (r *TodoRepo) ListTodos(roomCode string, category *domain.Category) ([]domain.Todo, error) {
	query := `
		SELECT id, room_code, user_id, category, task, reminder_time, created_at
		FROM todos
		WHERE room_code = $1
	`
	args := []interface{}{roomCode}

	if category != nil {
		query += ` AND category = $2`
		args = append(args, string(*category))
	}

	query += `
		ORDER BY CASE category
			WHEN 'game' THEN 1
			WHEN 'movie' THEN 2
			WHEN 'action' THEN 3
			ELSE 4
		END, created_at
	`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var t domain.Todo
		var reminder sql.NullTime
		if err := rows.Scan(&t.ID, &t.RoomCode, &t.UserID, &t.Category, &t.Task, &reminder, &t.CreatedAt); err != nil {
			return nil, err
		}
		if reminder.Valid {
			t.ReminderTime = &reminder.Time
		}
		todos = append(todos, t)
	}

	return todos, rows.Err()
}

// DeleteTodo removes the row and reports whether it existed in that room
func (r *TodoRepo) DeleteTodo(roomCode string, todoID int64) (bool, error) {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND room_code = $2
	`
	res, err := r.db.Exec(query, todoID, roomCode)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetReminderTime records the scheduled reminder instant on the row
func (r *TodoRepo) SetReminderTime(todoID int64, at time.Time) error {
	query := `
		UPDATE todos
		SET reminder_time = $2
		WHERE id = $1
	`
	_, err := r.db.Exec(query, todoID, at)
	return err
}
