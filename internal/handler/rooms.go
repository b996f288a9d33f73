package handler

import (
	"errors"
	"fmt"
	"regexp"

	"taskroom/internal/domain"

	tele "gopkg.in/telebot.v3"
)

var roomCodePattern = regexp.MustCompile(`^\d{4}$`)

// startRoomOp launches a room-scoped operation. Zero rooms refuses, a single
// room is auto-selected, several rooms go through a picker that remembers
// the pending operation.
func (h *Handler) startRoomOp(c tele.Context, op domain.RoomOp) error {
	userID := c.Sender().ID

	refs, err := h.rooms.ListUserRooms(userID)
	if err != nil {
		return h.storeFailure(c, userID, err)
	}
	if len(refs) == 0 {
		h.ResetState(userID)
		return h.reply(c, msgNotInARoom, mainMenuMarkup())
	}
	if len(refs) == 1 {
		return h.proceedWithRoom(c, op, refs[0].Code)
	}

	h.SetState(userID, &domain.StateData{
		State:     domain.StateSelectingRoom,
		PendingOp: op,
	})

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, ref := range refs {
		label := fmt.Sprintf("%s (%s)", ref.Name, ref.Code)
		rows = append(rows, markup.Row(markup.Data(label, "room_"+ref.Code)))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)

	return h.reply(c, "Which room?", markup)
}

// handleRoomChosen resumes the remembered operation with the picked room
func (h *Handler) handleRoomChosen(c tele.Context, code string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateSelectingRoom || state.PendingOp == "" {
		return h.expiredInteraction(c)
	}
	return h.proceedWithRoom(c, state.PendingOp, code)
}

// proceedWithRoom dispatches a room-scoped operation once a room is known
func (h *Handler) proceedWithRoom(c tele.Context, op domain.RoomOp, code string) error {
	userID := c.Sender().ID

	switch op {
	case domain.OpAddTodo:
		h.SetState(userID, &domain.StateData{
			State:    domain.StateChoosingCategory,
			RoomCode: code,
		})
		return h.reply(c, "Pick a category:", categoryMarkup())

	case domain.OpListTodos:
		todos, err := h.todos.ListTodos(code, nil)
		if err != nil {
			return h.storeFailure(c, userID, err)
		}
		h.SetState(userID, &domain.StateData{State: domain.StateIdle, RoomCode: code})
		return h.reply(c, "📋 Todos:\n\n"+formatTodoList(todos), mainMenuMarkup())

	case domain.OpDeleteTodo:
		todos, err := h.todos.ListTodos(code, nil)
		if err != nil {
			return h.storeFailure(c, userID, err)
		}
		h.SetState(userID, &domain.StateData{State: domain.StateIdle, RoomCode: code})
		if len(todos) == 0 {
			return h.reply(c, "Nothing to delete here.", mainMenuMarkup())
		}

		markup := &tele.ReplyMarkup{}
		rows := []tele.Row{}
		for _, t := range todos {
			label := fmt.Sprintf("[%s] %s", t.Category, truncate(t.Task, 40))
			rows = append(rows, markup.Row(markup.Data(label, fmt.Sprintf("del_%d", t.ID))))
		}
		rows = append(rows, markup.Row(btnCancel))
		markup.Inline(rows...)
		return h.reply(c, "Pick the todo to delete:", markup)
	}

	return h.expiredInteraction(c)
}

// handleCreateRoomMenu starts the room creation flow
func (h *Handler) handleCreateRoomMenu(c tele.Context) error {
	userID := c.Sender().ID
	h.SetState(userID, &domain.StateData{
		State:    domain.StateEnteringRoomName,
		RoomCode: h.GetState(userID).RoomCode,
	})
	return h.reply(c, "Name your room:", cancelMarkup())
}

// handleJoinRoomMenu starts the room join flow
func (h *Handler) handleJoinRoomMenu(c tele.Context) error {
	userID := c.Sender().ID
	h.SetState(userID, &domain.StateData{
		State:    domain.StateEnteringRoomCode,
		RoomCode: h.GetState(userID).RoomCode,
	})
	return h.reply(c, "Send the 4-digit room code:", cancelMarkup())
}

// handleLeaveRoomMenu presents a direct picker over the user's rooms
func (h *Handler) handleLeaveRoomMenu(c tele.Context) error {
	userID := c.Sender().ID

	refs, err := h.rooms.ListUserRooms(userID)
	if err != nil {
		return h.storeFailure(c, userID, err)
	}
	if len(refs) == 0 {
		return h.reply(c, msgNotInARoom, mainMenuMarkup())
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, ref := range refs {
		label := fmt.Sprintf("%s (%s)", ref.Name, ref.Code)
		rows = append(rows, markup.Row(markup.Data(label, "leave_"+ref.Code)))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)

	return h.reply(c, "Which room do you want to leave?", markup)
}

// handleLeaveChosen removes the membership and drops the cached room
// selection when it pointed at the left room.
func (h *Handler) handleLeaveChosen(c tele.Context, code string) error {
	userID := c.Sender().ID

	name, err := h.rooms.LeaveRoom(code, userID)
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		return h.reply(c, "No room with that code.", mainMenuMarkup())
	case errors.Is(err, domain.ErrNotAMember):
		return h.reply(c, "You're not a member of that room.", mainMenuMarkup())
	case err != nil:
		return h.storeFailure(c, userID, err)
	}

	if h.GetState(userID).RoomCode == code {
		h.ClearState(userID)
	}
	return h.reply(c, fmt.Sprintf("You left \"%s\".", name), mainMenuMarkup())
}

// handleRoomNameInput receives the room name during creation
func (h *Handler) handleRoomNameInput(c tele.Context, name string) error {
	userID := c.Sender().ID

	if name == "" {
		return c.Send("The room needs a name. Try again:", cancelMarkup())
	}

	state := h.GetState(userID)
	h.SetState(userID, &domain.StateData{
		State:    domain.StateEnteringRoomPassword,
		RoomName: name,
		RoomCode: state.RoomCode,
	})
	return c.Send("Set a password for the room:", cancelMarkup())
}

// handleRoomPasswordInput finishes room creation
func (h *Handler) handleRoomPasswordInput(c tele.Context, password string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if password == "" {
		return c.Send("The password cannot be empty. Try again:", cancelMarkup())
	}

	code, err := h.rooms.CreateRoom(state.RoomName, password, userID)
	if err != nil {
		return h.storeFailure(c, userID, err)
	}

	h.SetState(userID, &domain.StateData{State: domain.StateIdle, RoomCode: code})
	return c.Send(
		fmt.Sprintf("🏠 Room \"%s\" created!\n\nCode: %s\nShare the code and password to invite others.", state.RoomName, code),
		mainMenuMarkup(),
	)
}

// handleRoomCodeInput receives the code during the join flow
func (h *Handler) handleRoomCodeInput(c tele.Context, code string) error {
	userID := c.Sender().ID

	if !roomCodePattern.MatchString(code) {
		// re-prompt in place, the flow stays where it is
		return c.Send("A room code is 4 digits, like 1234. Try again:", cancelMarkup())
	}

	state := h.GetState(userID)
	h.SetState(userID, &domain.StateData{
		State:    domain.StateEnteringJoinPassword,
		RoomCode: state.RoomCode,
		JoinCode: code,
	})
	return c.Send("Password?", cancelMarkup())
}

// handleJoinPasswordInput finishes the join flow; success and failure both
// return to idle.
func (h *Handler) handleJoinPasswordInput(c tele.Context, password string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)
	code := state.JoinCode

	name, err := h.rooms.JoinRoom(code, password, userID)
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		h.ResetState(userID)
		return c.Send("No room with that code.", mainMenuMarkup())
	case errors.Is(err, domain.ErrWrongPassword):
		h.ResetState(userID)
		return c.Send("Wrong password.", mainMenuMarkup())
	case err != nil:
		return h.storeFailure(c, userID, err)
	}

	h.SetState(userID, &domain.StateData{State: domain.StateIdle, RoomCode: code})
	return c.Send(fmt.Sprintf("✅ Joined \"%s\"!", name), mainMenuMarkup())
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
