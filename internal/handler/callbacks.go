package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries not bound to a static button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique did not come through
	switch callback.Unique {
	case "add_todo":
		return h.handleAddTodoMenu(c)
	case "list_todos":
		return h.handleMyTodosMenu(c)
	case "delete_todo":
		return h.handleDeleteTodoMenu(c)
	case "create_room":
		return h.handleCreateRoomMenu(c)
	case "join_room":
		return h.handleJoinRoomMenu(c)
	case "leave_room":
		return h.handleLeaveRoomMenu(c)
	case "my_rooms":
		return h.handleMyRooms(c)
	case "rem_set":
		return h.handleSetReminder(c)
	case "rem_skip":
		return h.handleSkipReminder(c)
	case "cancel":
		return h.handleCancel(c)
	}

	// Dynamic buttons carry an action prefix plus an argument
	switch {
	case strings.HasPrefix(data, "cat_"):
		return h.handleCategoryChosen(c, strings.TrimPrefix(data, "cat_"))
	case strings.HasPrefix(data, "room_"):
		return h.handleRoomChosen(c, strings.TrimPrefix(data, "room_"))
	case strings.HasPrefix(data, "del_"):
		return h.handleDeleteChosen(c, strings.TrimPrefix(data, "del_"))
	case strings.HasPrefix(data, "leave_"):
		return h.handleLeaveChosen(c, strings.TrimPrefix(data, "leave_"))
	case data == "date_today":
		return h.handleDateInput(c, "today")
	case data == "date_tomorrow":
		return h.handleDateInput(c, "tomorrow")
	case strings.HasPrefix(data, "time_"):
		return h.handleTimeInput(c, strings.TrimPrefix(data, "time_"))
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
