package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskroom/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAddTodoMenu starts the add flow from the main menu
func (h *Handler) handleAddTodoMenu(c tele.Context) error {
	return h.startRoomOp(c, domain.OpAddTodo)
}

// handleMyTodosMenu starts the listing flow from the main menu
func (h *Handler) handleMyTodosMenu(c tele.Context) error {
	return h.startRoomOp(c, domain.OpListTodos)
}

// handleDeleteTodoMenu starts the delete flow from the main menu
func (h *Handler) handleDeleteTodoMenu(c tele.Context) error {
	return h.startRoomOp(c, domain.OpDeleteTodo)
}

// handleCategoryChosen receives a category pick during the add flow
func (h *Handler) handleCategoryChosen(c tele.Context, raw string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateChoosingCategory || state.RoomCode == "" {
		return h.expiredInteraction(c)
	}

	category, err := domain.ParseCategory(raw)
	if err != nil {
		return h.expiredInteraction(c)
	}

	h.SetState(userID, &domain.StateData{
		State:    domain.StateEnteringTask,
		RoomCode: state.RoomCode,
		Category: category,
	})
	return h.reply(c, "Send me the task text:", cancelMarkup())
}

// handleTaskInput receives the task text and persists the todo
func (h *Handler) handleTaskInput(c tele.Context, task string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if task == "" {
		return c.Send("The task cannot be empty. Try again:", cancelMarkup())
	}

	return h.addTodoAndOfferReminder(c, userID, state.RoomCode, state.Category, task)
}

// addTodoAndOfferReminder persists a todo and moves to the reminder decision
func (h *Handler) addTodoAndOfferReminder(c tele.Context, userID int64, roomCode string, category domain.Category, task string) error {
	id, err := h.todos.AddTodo(roomCode, userID, category, task)
	if errors.Is(err, domain.ErrNotAMember) {
		h.ClearState(userID)
		return h.reply(c, "You're no longer a member of that room.", mainMenuMarkup())
	}
	if err != nil {
		return h.storeFailure(c, userID, err)
	}

	h.SetState(userID, &domain.StateData{
		State:    domain.StateDecidingReminder,
		RoomCode: roomCode,
		Category: category,
		Task:     task,
		TodoID:   id,
	})
	return h.reply(c, fmt.Sprintf("✅ Added: %s\n\nWant a reminder?", task), reminderDecisionMarkup())
}

// handleSetReminder enters the reminder date step
func (h *Handler) handleSetReminder(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateDecidingReminder || state.TodoID == 0 {
		return h.expiredInteraction(c)
	}

	next := *state
	next.State = domain.StateEnteringReminderDate
	h.SetState(userID, &next)
	return h.reply(c, "When? Pick a date or send one as DD.MM.YYYY:", dateMarkup())
}

// handleSkipReminder discards the reminder draft
func (h *Handler) handleSkipReminder(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateDecidingReminder {
		return h.expiredInteraction(c)
	}

	h.ResetState(userID)
	return h.reply(c, "Done!", mainMenuMarkup())
}

// handleDateInput receives the reminder date, from a button or literal text.
// Invalid input re-prompts in place without touching the draft.
func (h *Handler) handleDateInput(c tele.Context, raw string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateEnteringReminderDate || state.TodoID == 0 {
		return h.expiredInteraction(c)
	}

	date, err := domain.ParseReminderDate(raw, h.now())
	if errors.Is(err, domain.ErrPastTime) {
		return h.reply(c, "That date already passed. Pick another:", dateMarkup())
	}
	if err != nil {
		return h.reply(c, "I can't read that date. Use DD.MM.YYYY or the buttons:", dateMarkup())
	}

	next := *state
	next.State = domain.StateEnteringReminderTime
	next.Date = date
	h.SetState(userID, &next)
	return h.reply(c, "What time? Pick a slot, send HH:MM, or something like \"in 2 hours\":", timeMarkup())
}

// handleTimeInput receives the reminder time and arms the one-shot timer.
// A past or malformed time re-prompts in place, keeping the draft todo.
func (h *Handler) handleTimeInput(c tele.Context, raw string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateEnteringReminderTime || state.TodoID == 0 {
		return h.expiredInteraction(c)
	}

	now := h.now()

	var at time.Time
	var err error
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "in ") {
		at, err = domain.ParseReminderTime(raw, now)
	} else {
		at, err = domain.CombineDateTime(state.Date, raw)
	}
	if err != nil {
		return h.reply(c, "I can't read that time. Use HH:MM or \"in 2 hours\":", timeMarkup())
	}
	if !at.After(now) {
		return h.reply(c, "That time already passed. Try another:", timeMarkup())
	}

	if err := h.todos.SetReminderTime(state.TodoID, at); err != nil {
		return h.storeFailure(c, userID, err)
	}

	if _, err := h.scheduler.Schedule(at, domain.Reminder{
		TodoID:   state.TodoID,
		RoomCode: state.RoomCode,
		UserID:   userID,
		Category: state.Category,
		Task:     state.Task,
	}); err != nil {
		if errors.Is(err, domain.ErrPastTime) {
			return h.reply(c, "That time already passed. Try another:", timeMarkup())
		}
		return h.storeFailure(c, userID, err)
	}

	h.logger.Info("Reminder armed",
		zap.Int64("user_id", userID),
		zap.Int64("todo_id", state.TodoID),
		zap.Time("fire_at", at),
	)

	h.ResetState(userID)
	return h.reply(c, fmt.Sprintf("⏰ Reminder set for %s.", at.Format("02.01.2006 15:04")), mainMenuMarkup())
}

// handleDeleteChosen deletes the picked todo
func (h *Handler) handleDeleteChosen(c tele.Context, raw string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.RoomCode == "" {
		return h.expiredInteraction(c)
	}

	todoID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return h.expiredInteraction(c)
	}

	removed, err := h.todos.DeleteTodo(state.RoomCode, todoID)
	if err != nil {
		return h.storeFailure(c, userID, err)
	}
	if !removed {
		return h.reply(c, "That todo is already gone.", mainMenuMarkup())
	}

	return h.reply(c, "🗑 Deleted.", mainMenuMarkup())
}
