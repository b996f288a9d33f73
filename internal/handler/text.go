package handler

import (
	"strings"

	"taskroom/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// handleText routes free text by the user's current dialogue state. Input
// that fails validation re-prompts in the same state; it never falls
// through to menu-command interpretation.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Commands are routed separately
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateEnteringTask:
		return h.handleTaskInput(c, text)

	case domain.StateEnteringReminderDate:
		return h.handleDateInput(c, text)

	case domain.StateEnteringReminderTime:
		return h.handleTimeInput(c, text)

	case domain.StateEnteringRoomName:
		return h.handleRoomNameInput(c, text)

	case domain.StateEnteringRoomPassword:
		return h.handleRoomPasswordInput(c, text)

	case domain.StateEnteringRoomCode:
		return h.handleRoomCodeInput(c, text)

	case domain.StateEnteringJoinPassword:
		return h.handleJoinPasswordInput(c, text)

	default:
		// Nothing pending: point at the menu
		return c.Send("Use the menu below, or /add <task> for a quick add.", mainMenuMarkup())
	}
}
