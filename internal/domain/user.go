package domain

import "time"

// User is a bot user, created lazily on first interaction.
type User struct {
	UserID    int64
	Language  string
	CreatedAt time.Time
}

// DialogueState names the single pending input expectation tracked per user
// between messages.
type DialogueState string

const (
	StateIdle                 DialogueState = "idle"
	StateChoosingCategory     DialogueState = "choosing_category"
	StateEnteringTask         DialogueState = "entering_task"
	StateDecidingReminder     DialogueState = "deciding_reminder"
	StateEnteringReminderDate DialogueState = "entering_reminder_date"
	StateEnteringReminderTime DialogueState = "entering_reminder_time"
	StateEnteringRoomName     DialogueState = "entering_room_name"
	StateEnteringRoomPassword DialogueState = "entering_room_password"
	StateEnteringRoomCode     DialogueState = "entering_room_code"
	StateEnteringJoinPassword DialogueState = "entering_join_password"
	StateSelectingRoom        DialogueState = "selecting_room"
)

// RoomOp is the operation remembered across a room picker.
type RoomOp string

const (
	OpAddTodo    RoomOp = "add"
	OpListTodos  RoomOp = "list"
	OpDeleteTodo RoomOp = "delete"
)

// StateData holds the per-user dialogue state and its scratch fields.
// Only the fields relevant to the current state are meaningful; RoomCode
// doubles as the cached "current room" selection between flows.
type StateData struct {
	State     DialogueState
	PendingOp RoomOp
	RoomCode  string
	RoomName  string
	JoinCode  string
	Category  Category
	Task      string
	TodoID    int64
	Date      time.Time
}
