package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"

	"taskroom/internal/domain"
	"taskroom/internal/repository"

	"go.uber.org/zap"
)

// maxCodeAttempts bounds the collision retry loop during room creation.
const maxCodeAttempts = 50

// RoomService handles room creation, membership and password checks
type RoomService struct {
	roomRepo repository.RoomRepository
	logger   *zap.Logger
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo repository.RoomRepository, logger *zap.Logger) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// HashPassword returns the hex digest used for room passwords. Deterministic
// on purpose: verification re-hashes the input and compares digests.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CreateRoom generates a unique 4-digit code, persists the room and joins
// the owner as its first member, all atomically. Returns the new code.
func (s *RoomService) CreateRoom(name, password string, ownerID int64) (string, error) {
	if name == "" || password == "" {
		return "", fmt.Errorf("room name and password cannot be empty")
	}

	hash := HashPassword(password)

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := fmt.Sprintf("%04d", rand.Intn(10000))

		err := s.roomRepo.CreateRoomWithOwner(&domain.Room{
			Code:         code,
			Name:         name,
			PasswordHash: hash,
			OwnerID:      ownerID,
		})
		if errors.Is(err, domain.ErrRoomCodeTaken) {
			continue
		}
		if err != nil {
			return "", err
		}

		s.logger.Info("Room created",
			zap.String("room_code", code),
			zap.Int64("owner_id", ownerID),
		)
		return code, nil
	}

	return "", fmt.Errorf("could not allocate a unique room code after %d attempts", maxCodeAttempts)
}

// JoinRoom verifies the password and adds the user as a member. Joining a
// room twice is a no-op. Returns the room's display name.
func (s *RoomService) JoinRoom(code, password string, userID int64) (string, error) {
	room, err := s.roomRepo.GetRoom(code)
	if err != nil {
		return "", err
	}
	if room == nil {
		return "", domain.ErrRoomNotFound
	}
	if room.PasswordHash != HashPassword(password) {
		return "", domain.ErrWrongPassword
	}

	if err := s.roomRepo.AddMember(code, userID); err != nil {
		return "", err
	}

	s.logger.Info("User joined room",
		zap.String("room_code", code),
		zap.Int64("user_id", userID),
	)
	return room.Name, nil
}

// LeaveRoom removes the user's membership. Returns the room's display name.
func (s *RoomService) LeaveRoom(code string, userID int64) (string, error) {
	room, err := s.roomRepo.GetRoom(code)
	if err != nil {
		return "", err
	}
	if room == nil {
		return "", domain.ErrRoomNotFound
	}

	removed, err := s.roomRepo.RemoveMember(code, userID)
	if err != nil {
		return "", err
	}
	if !removed {
		return "", domain.ErrNotAMember
	}

	s.logger.Info("User left room",
		zap.String("room_code", code),
		zap.Int64("user_id", userID),
	)
	return room.Name, nil
}

// ListUserRooms returns the user's rooms, most recently joined first
func (s *RoomService) ListUserRooms(userID int64) ([]domain.RoomRef, error) {
	return s.roomRepo.ListUserRooms(userID)
}

// ListMembers returns the user ids of everyone currently in the room
func (s *RoomService) ListMembers(code string) ([]int64, error) {
	return s.roomRepo.ListMembers(code)
}
