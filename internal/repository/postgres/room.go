package postgres

import (
	"database/sql"
	"errors"

	"taskroom/internal/domain"

	"github.com/lib/pq"
)

// pq error code for unique constraint violations
const uniqueViolation = "23505"

// RoomRepo implements repository.RoomRepository
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo creates a new room repository
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// CreateRoomWithOwner inserts the room and the owner's membership atomically.
// A code collision surfaces as domain.ErrRoomCodeTaken so the caller can
// retry with a fresh code.
func (r *RoomRepo) CreateRoomWithOwner(room *domain.Room) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO rooms (room_code, room_name, password_hash, owner_id)
		VALUES ($1, $2, $3, $4)
	`, room.Code, room.Name, room.PasswordHash, room.OwnerID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrRoomCodeTaken
		}
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO room_members (room_code, user_id)
		VALUES ($1, $2)
	`, room.Code, room.OwnerID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetRoom returns nil when the code does not exist
func (r *RoomRepo) GetRoom(code string) (*domain.Room, error) {
	var room domain.Room
	query := `
		SELECT room_code, room_name, password_hash, owner_id, created_at
		FROM rooms
		WHERE room_code = $1
	`
	err := r.db.QueryRow(query, code).Scan(
		&room.Code, &room.Name, &room.PasswordHash, &room.OwnerID, &room.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &room, nil
}

// AddMember inserts a membership row; joining twice is a no-op
func (r *RoomRepo) AddMember(code string, userID int64) error {
	query := `
		INSERT INTO room_members (room_code, user_id)
		VALUES ($1, $2)
		ON CONFLICT (room_code, user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, code, userID)
	return err
}

// RemoveMember deletes a membership row and reports whether one existed
func (r *RoomRepo) RemoveMember(code string, userID int64) (bool, error) {
	query := `
		DELETE FROM room_members
		WHERE room_code = $1 AND user_id = $2
	`
	res, err := r.db.Exec(query, code, userID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListUserRooms returns the user's rooms, most recently joined first
func (r *RoomRepo) ListUserRooms(userID int64) ([]domain.RoomRef, error) {
	query := `
		SELECT r.room_code, r.room_name
		FROM room_members m
		JOIN rooms r ON r.room_code = m.room_code
		WHERE m.user_id = $1
		ORDER BY m.joined_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []domain.RoomRef
	for rows.Next() {
		var ref domain.RoomRef
		if err := rows.Scan(&ref.Code, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// ListMembers returns the user ids of everyone currently in the room
func (r *RoomRepo) ListMembers(code string) ([]int64, error) {
	query := `
		SELECT user_id
		FROM room_members
		WHERE room_code = $1
		ORDER BY joined_at
	`

	rows, err := r.db.Query(query, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		members = append(members, id)
	}

	return members, rows.Err()
}
