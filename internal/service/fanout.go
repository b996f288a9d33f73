package service

import (
	"taskroom/internal/repository"

	"go.uber.org/zap"
)

// Sender is the outbound message sink of the transport.
type Sender interface {
	SendMessage(userID int64, text string) error
}

// Fanout broadcasts a message to every current member of a room.
type Fanout struct {
	roomRepo repository.RoomRepository
	sender   Sender
	logger   *zap.Logger
}

// NewFanout creates a new fanout
func NewFanout(roomRepo repository.RoomRepository, sender Sender, logger *zap.Logger) *Fanout {
	return &Fanout{
		roomRepo: roomRepo,
		sender:   sender,
		logger:   logger,
	}
}

// Broadcast resolves the room's members and delivers asynchronously. A
// failure for one recipient is logged and skipped; it never aborts delivery
// to the rest, and the caller never waits on it.
func (f *Fanout) Broadcast(roomCode, text string) {
	go func() {
		members, err := f.roomRepo.ListMembers(roomCode)
		if err != nil {
			f.logger.Error("Failed to resolve room members for broadcast",
				zap.String("room_code", roomCode),
				zap.Error(err),
			)
			return
		}

		for _, userID := range members {
			if err := f.sender.SendMessage(userID, text); err != nil {
				f.logger.Warn("Failed to deliver broadcast",
					zap.String("room_code", roomCode),
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
			}
		}
	}()
}
