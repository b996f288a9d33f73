package handler

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"taskroom/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RoomStore is the room/membership surface the dialogue engine drives.
type RoomStore interface {
	CreateRoom(name, password string, ownerID int64) (string, error)
	JoinRoom(code, password string, userID int64) (string, error)
	LeaveRoom(code string, userID int64) (string, error)
	ListUserRooms(userID int64) ([]domain.RoomRef, error)
}

// TodoStore is the todo surface the dialogue engine drives.
type TodoStore interface {
	AddTodo(roomCode string, userID int64, category domain.Category, task string) (int64, error)
	ListTodos(roomCode string, category *domain.Category) ([]domain.Todo, error)
	DeleteTodo(roomCode string, todoID int64) (bool, error)
	SetReminderTime(todoID int64, at time.Time) error
}

// ReminderScheduler arms one-shot reminders.
type ReminderScheduler interface {
	Schedule(fireAt time.Time, reminder domain.Reminder) (string, error)
}

// Handler manages all bot interactions
type Handler struct {
	bot       *tele.Bot
	rooms     RoomStore
	todos     TodoStore
	scheduler ReminderScheduler
	logger    *zap.Logger

	// injectable clock, for time-sensitive dialogue tests
	now func() time.Time

	// User dialogue states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	rooms RoomStore,
	todos TodoStore,
	scheduler ReminderScheduler,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		rooms:     rooms,
		todos:     todos,
		scheduler: scheduler,
		logger:    logger,
		now:       time.Now,
		states:    make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/add", h.handleAddCommand)
	h.bot.Handle("/list", h.handleListCommand)
	h.bot.Handle("/done", h.handleDoneCommand)
	h.bot.Handle("/cancel", h.handleCancel)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnAddTodo, h.handleAddTodoMenu)
	h.bot.Handle(&btnMyTodos, h.handleMyTodosMenu)
	h.bot.Handle(&btnDeleteTodo, h.handleDeleteTodoMenu)
	h.bot.Handle(&btnCreateRoom, h.handleCreateRoomMenu)
	h.bot.Handle(&btnJoinRoom, h.handleJoinRoomMenu)
	h.bot.Handle(&btnLeaveRoom, h.handleLeaveRoomMenu)
	h.bot.Handle(&btnMyRooms, h.handleMyRooms)
	h.bot.Handle(&btnSetReminder, h.handleSetReminder)
	h.bot.Handle(&btnSkipReminder, h.handleSkipReminder)
	h.bot.Handle(&btnCancel, h.handleCancel)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current dialogue state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's dialogue state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState returns the user to idle, keeping the cached room selection
// so follow-up operations can reuse it.
func (h *Handler) ResetState(userID int64) {
	roomCode := h.GetState(userID).RoomCode
	h.SetState(userID, &domain.StateData{State: domain.StateIdle, RoomCode: roomCode})
}

// ClearState drops everything, including the cached room selection.
func (h *Handler) ClearState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnAddTodo = tele.Btn{
		Unique: "add_todo",
		Text:   "➕ Add todo",
	}
	btnMyTodos = tele.Btn{
		Unique: "list_todos",
		Text:   "📋 My todos",
	}
	btnDeleteTodo = tele.Btn{
		Unique: "delete_todo",
		Text:   "🗑 Delete todo",
	}
	btnCreateRoom = tele.Btn{
		Unique: "create_room",
		Text:   "🏠 Create room",
	}
	btnJoinRoom = tele.Btn{
		Unique: "join_room",
		Text:   "🔑 Join room",
	}
	btnLeaveRoom = tele.Btn{
		Unique: "leave_room",
		Text:   "🚪 Leave room",
	}
	btnMyRooms = tele.Btn{
		Unique: "my_rooms",
		Text:   "🗂 My rooms",
	}
	btnSetReminder = tele.Btn{
		Unique: "rem_set",
		Text:   "⏰ Set reminder",
	}
	btnSkipReminder = tele.Btn{
		Unique: "rem_skip",
		Text:   "Skip",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
)

const (
	msgStoreFailure = "Something went wrong. Please try again later."
	msgNotInARoom   = "You're not in a room yet. Create or join one first."
	msgExpired      = "That button has expired. Start again from the menu."
	msgMainMenu     = "🏠 Main menu\n\nWhat would you like to do?"
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAddTodo, btnMyTodos),
		menu.Row(btnDeleteTodo),
		menu.Row(btnCreateRoom, btnJoinRoom),
		menu.Row(btnLeaveRoom, btnMyRooms),
	)
	return menu
}

// cancelMarkup returns a keyboard with a lone cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

// categoryMarkup returns the category picker
func categoryMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, c := range domain.Categories {
		rows = append(rows, markup.Row(markup.Data(categoryLabel(c), "cat_"+string(c))))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)
	return markup
}

func categoryLabel(c domain.Category) string {
	switch c {
	case domain.CategoryGame:
		return "🎮 Game"
	case domain.CategoryMovie:
		return "🎬 Movie"
	case domain.CategoryAction:
		return "✅ Action"
	}
	return string(c)
}

// reminderDecisionMarkup offers the set/skip choice after an add
func reminderDecisionMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnSetReminder, btnSkipReminder))
	return markup
}

// dateMarkup returns the reminder date picker
func dateMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("Today", "date_today"),
			markup.Data("Tomorrow", "date_tomorrow"),
		),
		markup.Row(btnCancel),
	)
	return markup
}

// timeMarkup returns the reminder time preset slots
func timeMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	slots := []string{"09:00", "12:00", "15:00", "18:00", "21:00"}
	row := tele.Row{}
	for _, slot := range slots {
		row = append(row, markup.Data(slot, "time_"+slot))
	}
	markup.Inline(markup.Row(row[:3]...), markup.Row(row[3:]...), markup.Row(btnCancel))
	return markup
}

// formatTodoList renders a room's todos for display
func formatTodoList(todos []domain.Todo) string {
	if len(todos) == 0 {
		return "The list is empty."
	}

	var b strings.Builder
	for i, t := range todos {
		fmt.Fprintf(&b, "%d. [%s] %s", i+1, t.Category, t.Task)
		if t.ReminderTime != nil {
			fmt.Fprintf(&b, " ⏰ %s", t.ReminderTime.Format("02.01 15:04"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// storeFailure reports a persistence failure and reverts the dialogue to
// idle; the engine never retries on its own.
func (h *Handler) storeFailure(c tele.Context, userID int64, err error) error {
	h.logger.Error("Store operation failed",
		zap.Int64("user_id", userID),
		zap.Error(err),
	)
	h.ResetState(userID)
	return h.reply(c, msgStoreFailure)
}

// expiredInteraction reports a stale callback without mutating anything.
func (h *Handler) expiredInteraction(c tele.Context) error {
	return h.reply(c, msgExpired)
}

// reply edits the originating message for callbacks and sends a new one for
// plain text, falling back to a fresh send when editing fails.
func (h *Handler) reply(c tele.Context, text string, opts ...interface{}) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}

	if err := c.Edit(text, opts...); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, opts...)
	}
	return c.Respond()
}

// handleEditError handles errors from c.Edit() - if the message is not
// modified, just acknowledge the callback. Otherwise acknowledge and return
// the error so the caller can send a new message.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}
