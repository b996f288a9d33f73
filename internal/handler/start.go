package handler

import (
	"fmt"
	"strings"

	"taskroom/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ClearState(userID)
	return h.reply(c, "Hi! I keep shared todo lists for you and your rooms.\n\n"+msgMainMenu, mainMenuMarkup())
}

// handleCancel aborts any pending flow and shows the main menu
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.reply(c, msgMainMenu, mainMenuMarkup())
}

// handleAddCommand handles "/add <task>" as a shortcut around the menu flow.
// The category defaults to action; room resolution follows the same rules
// as the menu, falling back to the cached room selection when ambiguous.
func (h *Handler) handleAddCommand(c tele.Context) error {
	userID := c.Sender().ID

	task := strings.TrimSpace(c.Message().Payload)
	if task == "" {
		return c.Send("Please provide a task. Usage: /add Buy groceries")
	}

	refs, err := h.rooms.ListUserRooms(userID)
	if err != nil {
		return h.storeFailure(c, userID, err)
	}
	if len(refs) == 0 {
		return c.Send(msgNotInARoom)
	}

	roomCode := ""
	if len(refs) == 1 {
		roomCode = refs[0].Code
	} else {
		cached := h.GetState(userID).RoomCode
		for _, ref := range refs {
			if ref.Code == cached {
				roomCode = cached
				break
			}
		}
	}
	if roomCode == "" {
		return c.Send("You're in several rooms — pick one through the menu first.")
	}

	return h.addTodoAndOfferReminder(c, userID, roomCode, domain.CategoryAction, task)
}

// handleListCommand handles "/list"
func (h *Handler) handleListCommand(c tele.Context) error {
	return h.startRoomOp(c, domain.OpListTodos)
}

// handleDoneCommand handles "/done": it opens the delete picker
func (h *Handler) handleDoneCommand(c tele.Context) error {
	return h.startRoomOp(c, domain.OpDeleteTodo)
}

// handleMyRooms lists the rooms the user belongs to
func (h *Handler) handleMyRooms(c tele.Context) error {
	userID := c.Sender().ID

	refs, err := h.rooms.ListUserRooms(userID)
	if err != nil {
		return h.storeFailure(c, userID, err)
	}
	if len(refs) == 0 {
		return h.reply(c, msgNotInARoom, mainMenuMarkup())
	}

	var b strings.Builder
	b.WriteString("🗂 Your rooms:\n\n")
	for _, ref := range refs {
		fmt.Fprintf(&b, "• %s — code %s\n", ref.Name, ref.Code)
	}
	return h.reply(c, b.String(), mainMenuMarkup())
}
