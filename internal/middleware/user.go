package middleware

import (
	"taskroom/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RegisterUser creates the user row lazily on first contact. Registration
// failure is logged but does not block the update: the store-level checks
// still guard every mutation.
func RegisterUser(userRepo repository.UserRepository, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				if err := userRepo.EnsureUserExists(sender.ID); err != nil {
					logger.Error("Failed to ensure user exists",
						zap.Int64("user_id", sender.ID),
						zap.Error(err),
					)
				}
			}
			return next(c)
		}
	}
}
