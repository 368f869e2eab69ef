package rooms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/common/clock"
	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/chat"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/room"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/user"
	"github.com/KirkDiggler/lobbyboard/internal/services/conversation"
	"github.com/KirkDiggler/lobbyboard/internal/services/expiration"
	"github.com/KirkDiggler/lobbyboard/internal/services/messaging"
	"github.com/samber/lo"
)

// service implements the Service interface
type service struct {
	roomRepo     room.Repository
	userRepo     user.Repository
	chatRepo     chat.Repository
	conversation conversation.Service
	scheduler    expiration.Scheduler
	notifier     expiration.Notifier
	messages     messaging.Service
	clock        clock.Clock
	lifetime     time.Duration
	rootAdminID  string
}

// New creates a new rooms service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch {
	case cfg.RoomRepo == nil:
		return nil, ErrNilRoomRepo
	case cfg.UserRepo == nil:
		return nil, ErrNilUserRepo
	case cfg.ChatRepo == nil:
		return nil, ErrNilChatRepo
	case cfg.Conversation == nil:
		return nil, ErrNilConversation
	case cfg.Scheduler == nil:
		return nil, ErrNilScheduler
	case cfg.Notifier == nil:
		return nil, ErrNilNotifier
	case cfg.Messages == nil:
		return nil, ErrNilMessages
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	lifetime := cfg.Lifetime
	if lifetime <= 0 {
		lifetime = expiration.DefaultLifetime
	}

	return &service{
		roomRepo:     cfg.RoomRepo,
		userRepo:     cfg.UserRepo,
		chatRepo:     cfg.ChatRepo,
		conversation: cfg.Conversation,
		scheduler:    cfg.Scheduler,
		notifier:     cfg.Notifier,
		messages:     cfg.Messages,
		clock:        clk,
		lifetime:     lifetime,
		rootAdminID:  cfg.RootAdminID,
	}, nil
}

// Execute runs a command
func (s *service) Execute(ctx context.Context, input *ExecuteInput) (*Reply, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	if input.Command.TakesCode() && strings.TrimSpace(input.Code) == "" {
		return s.reply(s.messages.Format(messaging.MessageUsageCode, map[string]any{
			"Command": string(input.Command),
		})), nil
	}

	switch input.Command {
	case CommandStart:
		s.conversation.Reset(input.UserID)
		s.rememberChat(ctx, input.ChatID)
		return s.say(messaging.MessageStart), nil

	case CommandHelp:
		return s.say(messaging.MessageHelp), nil

	case CommandRules:
		return s.say(messaging.MessageRules), nil

	case CommandList:
		return s.listRooms(ctx, input.ChatID)

	case CommandAdd:
		return s.beginAdd(ctx, input)

	case CommandEdit:
		return s.beginWithOwnRoom(ctx, input, conversation.StateAwaitEditTarget)

	case CommandDelete:
		return s.beginWithOwnRoom(ctx, input, conversation.StateAwaitDeleteTarget)

	case CommandUpdate:
		return s.beginWithOwnRoom(ctx, input, conversation.StateAwaitUpdateTarget)

	case CommandCancel:
		s.conversation.Reset(input.UserID)
		return s.say(messaging.MessageCancelled), nil

	case CommandSubscribe, CommandUnsubscribe:
		return s.subscription(ctx, input)

	case CommandLike, CommandDislike:
		return s.rate(ctx, input)

	case CommandAdminHelp, CommandListAdmins, CommandAdminDelete, CommandBroadcast:
		isAdmin, err := s.isAdmin(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			return s.say(messaging.MessageNoRights), nil
		}
		return s.admin(ctx, input)

	case CommandAddAdmin, CommandDelAdmin:
		if s.rootAdminID == "" || input.UserID != s.rootAdminID {
			return s.say(messaging.MessageNoRights), nil
		}
		return s.admin(ctx, input)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, input.Command)
	}
}

// HandleInput feeds free text or a clicked option into the user's dialogue
func (s *service) HandleInput(ctx context.Context, input *HandleInputInput) (*Reply, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	if !s.conversation.Active(input.UserID) {
		if strings.TrimSpace(input.Text) == ListRoomsLabel {
			return s.listRooms(ctx, input.ChatID)
		}
		// Channel chatter outside a dialogue is not for us
		if !input.Direct {
			return nil, nil
		}
	}

	out, err := s.conversation.Transition(ctx, &conversation.TransitionInput{
		UserID: input.UserID,
		Text:   input.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to advance dialogue: %w", err)
	}

	switch out.Effect.Kind {
	case conversation.EffectReprompt:
		return s.reprompt(ctx, out.Session)
	case conversation.EffectAdvance:
		return s.prompt(ctx, out.Session.UserID, out.Session.State)
	case conversation.EffectCommit:
		return s.apply(ctx, out.Effect)
	case conversation.EffectNotFound:
		return s.say(messaging.MessageRoomNotFound), nil
	default:
		return s.say(messaging.MessageCancelled), nil
	}
}

// beginAdd starts the creation dialogue, or asks to replace the room the user already has
func (s *service) beginAdd(ctx context.Context, input *ExecuteInput) (*Reply, error) {
	owned, err := s.ownRooms(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if len(owned) == 0 {
		return s.begin(ctx, input, conversation.StateAwaitCode)
	}

	if err := s.startDialogue(ctx, input, conversation.StateAwaitConfirmDelete); err != nil {
		return nil, err
	}

	return &Reply{
		Text: s.messages.Format(messaging.MessagePromptReplaceRoom, map[string]any{
			"Code": owned[0].Code,
		}),
		Options:  []string{conversation.ConfirmLabel},
		Dialogue: true,
	}, nil
}

// beginWithOwnRoom starts a dialogue that picks one of the user's rooms
func (s *service) beginWithOwnRoom(ctx context.Context, input *ExecuteInput, state conversation.State) (*Reply, error) {
	owned, err := s.ownRooms(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if len(owned) == 0 {
		s.conversation.Reset(input.UserID)
		return s.say(messaging.MessageRoomNotFound), nil
	}

	return s.begin(ctx, input, state)
}

// begin starts a dialogue and asks its first question
func (s *service) begin(ctx context.Context, input *ExecuteInput, state conversation.State) (*Reply, error) {
	if err := s.startDialogue(ctx, input, state); err != nil {
		return nil, err
	}
	return s.prompt(ctx, input.UserID, state)
}

func (s *service) startDialogue(ctx context.Context, input *ExecuteInput, state conversation.State) error {
	err := s.conversation.Start(ctx, &conversation.StartInput{
		UserID: input.UserID,
		ChatID: input.ChatID,
		State:  state,
	})
	if err != nil {
		return fmt.Errorf("failed to start dialogue: %w", err)
	}
	return nil
}

// prompt asks the question of state
func (s *service) prompt(ctx context.Context, userID string, state conversation.State) (*Reply, error) {
	switch state {
	case conversation.StateAwaitCode, conversation.StateAwaitAdminDeleteTarget:
		return s.ask(s.messages.Get(messaging.MessagePromptCode)), nil

	case conversation.StateAwaitHost:
		return s.ask(s.messages.Get(messaging.MessagePromptHost)), nil

	case conversation.StateAwaitMap:
		return s.ask(s.messages.Get(messaging.MessagePromptMap), models.MapLabels()...), nil

	case conversation.StateAwaitGameMode:
		return s.ask(s.messages.Get(messaging.MessagePromptGameMode), models.GameModeLabels()...), nil

	case conversation.StateAwaitEditTarget, conversation.StateAwaitDeleteTarget, conversation.StateAwaitUpdateTarget:
		owned, err := s.ownRooms(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.ask(s.messages.Get(messaging.MessagePromptRoom), roomCodes(owned)...), nil

	case conversation.StateAwaitEditField:
		return s.ask(s.messages.Get(messaging.MessagePromptEditField), conversation.EditFieldLabels...), nil

	case conversation.StateAwaitEditCode:
		return s.ask(s.messages.Format(messaging.MessagePromptEditValue, map[string]any{
			"Field": conversation.EditFieldCodeLabel,
		})), nil

	case conversation.StateAwaitEditHost:
		return s.ask(s.messages.Format(messaging.MessagePromptEditValue, map[string]any{
			"Field": conversation.EditFieldHostLabel,
		})), nil

	case conversation.StateAwaitEditMap:
		return s.ask(s.messages.Get(messaging.MessagePromptEditMap), models.MapLabels()...), nil

	case conversation.StateAwaitEditGameMode:
		return s.ask(s.messages.Get(messaging.MessagePromptEditGameMode), models.GameModeLabels()...), nil

	case conversation.StateAwaitConfirmDelete:
		owned, err := s.ownRooms(ctx, userID)
		if err != nil {
			return nil, err
		}
		code := ""
		if len(owned) > 0 {
			code = owned[0].Code
		}
		return s.ask(s.messages.Format(messaging.MessagePromptReplaceRoom, map[string]any{
			"Code": code,
		}), conversation.ConfirmLabel), nil

	case conversation.StateAwaitAdminGrant:
		return s.ask(s.messages.Get(messaging.MessagePromptAdminGrant)), nil

	case conversation.StateAwaitAdminRevoke:
		return s.ask(s.messages.Get(messaging.MessagePromptAdminRevoke)), nil

	case conversation.StateAwaitBroadcastText:
		return s.ask(s.messages.Get(messaging.MessagePromptBroadcast)), nil

	default:
		return s.say(messaging.MessageIdle), nil
	}
}

// reprompt explains what was wrong and repeats the options of session's state
func (s *service) reprompt(ctx context.Context, session conversation.Session) (*Reply, error) {
	var id messaging.MessageID
	switch session.State {
	case conversation.StateIdle:
		return s.say(messaging.MessageIdle), nil
	case conversation.StateAwaitCode, conversation.StateAwaitEditCode:
		id = messaging.MessageErrorCode
	case conversation.StateAwaitHost, conversation.StateAwaitEditHost:
		id = messaging.MessageErrorHost
	case conversation.StateAwaitAdminGrant, conversation.StateAwaitAdminRevoke:
		id = messaging.MessageErrorUserID
	case conversation.StateAwaitBroadcastText:
		id = messaging.MessageErrorBroadcastEmpty
	default:
		id = messaging.MessageErrorOption
	}

	reply, err := s.prompt(ctx, session.UserID, session.State)
	if err != nil {
		return nil, err
	}
	reply.Text = s.messages.Get(id)

	return reply, nil
}

// apply carries out a finished dialogue
func (s *service) apply(ctx context.Context, effect conversation.Effect) (*Reply, error) {
	c := effect.Commit

	switch c.Kind {
	case conversation.CommitCreate:
		return s.create(ctx, c.Room)

	case conversation.CommitEdit:
		return s.edit(ctx, c.RoomID, c.Change)

	case conversation.CommitDelete:
		if err := s.deleteRoom(ctx, c.RoomID); err != nil {
			if errors.Is(err, room.ErrRoomNotFound) {
				return s.say(messaging.MessageRoomNotFound), nil
			}
			return nil, err
		}
		return s.say(messaging.MessageRoomDeleted), nil

	case conversation.CommitDeleteAll:
		if err := s.deleteOwnedRooms(ctx, c.OwnerID); err != nil {
			return nil, err
		}
		next, err := s.prompt(ctx, c.OwnerID, effect.State)
		if err != nil {
			return nil, err
		}
		next.Text = s.messages.Get(messaging.MessageRoomDeletedAll) + "\n\n" + next.Text
		return next, nil

	case conversation.CommitRenew:
		return s.renew(ctx, c.RoomID)

	case conversation.CommitGrantAdmin, conversation.CommitRevokeAdmin:
		return s.setAdmin(ctx, c.UserID, c.Kind == conversation.CommitGrantAdmin)

	case conversation.CommitAdminDelete:
		return s.adminDelete(ctx, c.Room)

	case conversation.CommitBroadcast:
		return s.broadcast(ctx, c.Text)

	default:
		return nil, fmt.Errorf("unsupported commit %q", c.Kind)
	}
}

// create stores a new room, schedules its removal and tells the owner's subscribers
func (s *service) create(ctx context.Context, r *models.Room) (*Reply, error) {
	owner, err := s.userRepo.GetOrCreateUser(ctx, &user.GetOrCreateUserInput{
		UserID: r.Owner.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load room owner: %w", err)
	}
	r.Owner = *owner

	out, err := s.roomRepo.CreateRoom(ctx, &room.CreateRoomInput{
		Room: r,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	r.ID = out.RoomID

	// The room is stored; a restart would schedule it from its creation time
	if err := s.scheduler.Schedule(ctx, &expiration.ScheduleInput{
		RoomID: r.ID,
		Delay:  s.lifetime,
	}); err != nil {
		slog.Error("Failed to schedule room removal",
			"room_id", r.ID,
			"error", err,
		)
	}

	slog.Info("Room created",
		"room_id", r.ID,
		"user_id", r.Owner.ID,
		"code", r.Code,
	)

	if len(owner.Subscribers) > 0 {
		announcement := s.messages.RoomAnnouncement(r)
		for _, subscriber := range owner.Subscribers {
			s.notify(ctx, subscriber.ChatID, announcement)
		}
	}

	return s.say(messaging.MessageRoomAdded), nil
}

// edit changes one field and restarts the room's lifetime
func (s *service) edit(ctx context.Context, roomID string, change *conversation.FieldChange) (*Reply, error) {
	err := s.roomRepo.UpdateRoomField(ctx, &room.UpdateRoomFieldInput{
		RoomID: roomID,
		Field:  change.Field,
		Value:  change.Value,
	})
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return s.say(messaging.MessageRoomNotFound), nil
	case errors.Is(err, room.ErrInvalidField):
		return s.say(messaging.MessageErrorEdit), nil
	case err != nil:
		return nil, fmt.Errorf("failed to edit room: %w", err)
	}

	if err := s.restartLifetime(ctx, roomID); err != nil {
		return nil, err
	}

	return s.say(messaging.MessageRoomEdited), nil
}

// renew restarts the room's lifetime
func (s *service) renew(ctx context.Context, roomID string) (*Reply, error) {
	r, err := s.roomRepo.GetRoom(ctx, &room.GetRoomInput{
		RoomID: roomID,
	})
	if errors.Is(err, room.ErrRoomNotFound) {
		return s.say(messaging.MessageRoomNotFound), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	if err := s.restartLifetime(ctx, roomID); err != nil {
		return nil, err
	}

	return s.reply(s.messages.Format(messaging.MessageRoomRenewed, map[string]any{
		"Code": r.Code,
	})), nil
}

// restartLifetime persists a fresh creation time and reschedules the removal
func (s *service) restartLifetime(ctx context.Context, roomID string) error {
	err := s.roomRepo.RenewRoom(ctx, &room.RenewRoomInput{
		RoomID:    roomID,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to renew room: %w", err)
	}

	if err := s.scheduler.Reschedule(ctx, &expiration.RescheduleInput{
		RoomID: roomID,
	}); err != nil {
		slog.Error("Failed to reschedule room removal",
			"room_id", roomID,
			"error", err,
		)
	}

	return nil
}

// deleteRoom cancels the pending removal, then removes the room
func (s *service) deleteRoom(ctx context.Context, roomID string) error {
	if err := s.scheduler.Cancel(ctx, &expiration.CancelInput{
		RoomID: roomID,
	}); err != nil {
		return fmt.Errorf("failed to cancel room removal: %w", err)
	}

	if err := s.roomRepo.DeleteRoom(ctx, &room.DeleteRoomInput{
		RoomID: roomID,
	}); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	slog.Info("Room deleted", "room_id", roomID)
	return nil
}

func (s *service) deleteOwnedRooms(ctx context.Context, ownerID string) error {
	owned, err := s.ownRooms(ctx, ownerID)
	if err != nil {
		return err
	}

	for _, r := range owned {
		if err := s.deleteRoom(ctx, r.ID); err != nil && !errors.Is(err, room.ErrRoomNotFound) {
			return err
		}
	}

	return nil
}

func (s *service) setAdmin(ctx context.Context, userID string, isAdmin bool) (*Reply, error) {
	if err := s.userRepo.SetAdmin(ctx, &user.SetAdminInput{
		UserID:  userID,
		IsAdmin: isAdmin,
	}); err != nil {
		return nil, fmt.Errorf("failed to set admin rights: %w", err)
	}

	slog.Info("Admin rights changed",
		"user_id", userID,
		"is_admin", isAdmin,
	)

	id := messaging.MessageAdminRevoked
	if isAdmin {
		id = messaging.MessageAdminGranted
	}

	return s.reply(s.messages.Format(id, map[string]any{
		"UserID": userID,
	})), nil
}

// adminDelete removes any room and tells its owner
func (s *service) adminDelete(ctx context.Context, r *models.Room) (*Reply, error) {
	if err := s.deleteRoom(ctx, r.ID); err != nil {
		if errors.Is(err, room.ErrRoomNotFound) {
			return s.say(messaging.MessageRoomNotFound), nil
		}
		return nil, err
	}

	data := map[string]any{"Code": r.Code}
	if r.Chat.ChatID != "" {
		s.notify(ctx, r.Chat.ChatID, s.messages.Format(messaging.MessageAdminOwnerNotice, data))
	}

	return s.reply(s.messages.Format(messaging.MessageAdminRoomDeleted, data)), nil
}

// broadcast sends text to every known chat
func (s *service) broadcast(ctx context.Context, text string) (*Reply, error) {
	out, err := s.chatRepo.ListChats(ctx, &chat.ListChatsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}

	sent, failed := 0, 0
	for _, c := range out.Chats {
		if s.notify(ctx, c.ChatID, text) {
			sent++
		} else {
			failed++
		}
	}

	slog.Info("Broadcast sent",
		"sent", sent,
		"failed", failed,
	)

	return s.reply(s.messages.Format(messaging.MessageBroadcastSent, map[string]any{
		"Sent":   sent,
		"Failed": failed,
	})), nil
}

// admin runs a command the caller has already been checked for
func (s *service) admin(ctx context.Context, input *ExecuteInput) (*Reply, error) {
	switch input.Command {
	case CommandAdminHelp:
		return s.say(messaging.MessageAdminHelp), nil

	case CommandListAdmins:
		out, err := s.userRepo.ListAdmins(ctx, &user.ListAdminsInput{})
		if err != nil {
			return nil, fmt.Errorf("failed to list admins: %w", err)
		}
		ids := lo.Map(out.Users, func(u *models.User, _ int) string {
			return u.ID
		})
		return s.reply(s.messages.AdminList(ids)), nil

	case CommandAdminDelete:
		return s.begin(ctx, input, conversation.StateAwaitAdminDeleteTarget)

	case CommandBroadcast:
		return s.begin(ctx, input, conversation.StateAwaitBroadcastText)

	case CommandAddAdmin:
		return s.begin(ctx, input, conversation.StateAwaitAdminGrant)

	case CommandDelAdmin:
		return s.begin(ctx, input, conversation.StateAwaitAdminRevoke)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, input.Command)
	}
}

// listRooms renders every room with its owner's rating and remembers the chat
func (s *service) listRooms(ctx context.Context, chatID string) (*Reply, error) {
	s.rememberChat(ctx, chatID)

	out, err := s.roomRepo.ListRooms(ctx, &room.ListRoomsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	owners := make(map[string]*models.User)
	listings := make([]messaging.RoomListing, 0, len(out.Rooms))

	for _, r := range out.Rooms {
		owner, ok := owners[r.Owner.ID]
		if !ok {
			owner, err = s.userRepo.GetUser(ctx, &user.GetUserInput{
				UserID: r.Owner.ID,
			})
			if errors.Is(err, user.ErrUserNotFound) {
				owner, err = &r.Owner, nil
			}
			if err != nil {
				return nil, fmt.Errorf("failed to get room owner: %w", err)
			}
			owners[r.Owner.ID] = owner
		}

		likes, dislikes := owner.Score()
		listings = append(listings, messaging.RoomListing{
			Room:     r,
			Likes:    likes,
			Dislikes: dislikes,
		})
	}

	return s.reply(s.messages.RoomList(listings)), nil
}

// subscription adds or removes the caller's chat from the subscribers of a room's owner
func (s *service) subscription(ctx context.Context, input *ExecuteInput) (*Reply, error) {
	r, err := s.roomByCode(ctx, input.Code)
	if errors.Is(err, ErrRoomNotFound) {
		return s.say(messaging.MessageRoomNotFound), nil
	}
	if err != nil {
		return nil, err
	}

	subscriber := models.Chat{ChatID: input.ChatID}
	data := map[string]any{"Code": r.Code}

	if input.Command == CommandSubscribe {
		out, err := s.userRepo.AddSubscriber(ctx, &user.AddSubscriberInput{
			UserID: r.Owner.ID,
			Chat:   subscriber,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to subscribe: %w", err)
		}
		if !out.Added {
			return s.say(messaging.MessageAlreadySubscribed), nil
		}
		return s.reply(s.messages.Format(messaging.MessageSubscribed, data)), nil
	}

	out, err := s.userRepo.RemoveSubscriber(ctx, &user.RemoveSubscriberInput{
		UserID: r.Owner.ID,
		Chat:   subscriber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unsubscribe: %w", err)
	}
	if !out.Removed {
		return s.say(messaging.MessageNotSubscribed), nil
	}
	return s.reply(s.messages.Format(messaging.MessageUnsubscribed, data)), nil
}

// rate records the caller's opinion of a room's owner
func (s *service) rate(ctx context.Context, input *ExecuteInput) (*Reply, error) {
	r, err := s.roomByCode(ctx, input.Code)
	if errors.Is(err, ErrRoomNotFound) {
		return s.say(messaging.MessageRoomNotFound), nil
	}
	if err != nil {
		return nil, err
	}

	if r.Owner.ID == input.UserID {
		return s.say(messaging.MessageRateSelf), nil
	}

	if err := s.userRepo.RateUser(ctx, &user.RateUserInput{
		UserID:  r.Owner.ID,
		RaterID: input.UserID,
		Liked:   input.Command == CommandLike,
	}); err != nil {
		return nil, fmt.Errorf("failed to rate user: %w", err)
	}

	return s.say(messaging.MessageRated), nil
}

func (s *service) isAdmin(ctx context.Context, userID string) (bool, error) {
	if s.rootAdminID != "" && userID == s.rootAdminID {
		return true, nil
	}

	u, err := s.userRepo.GetUser(ctx, &user.GetUserInput{
		UserID: userID,
	})
	if errors.Is(err, user.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check admin rights: %w", err)
	}

	return u.IsAdmin, nil
}

func (s *service) roomByCode(ctx context.Context, code string) (*models.Room, error) {
	r, err := s.roomRepo.GetRoomByCode(ctx, &room.GetRoomByCodeInput{
		Code: strings.TrimSpace(code),
	})
	if errors.Is(err, room.ErrRoomNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return r, nil
}

func (s *service) ownRooms(ctx context.Context, userID string) ([]*models.Room, error) {
	out, err := s.roomRepo.GetRoomsByOwner(ctx, &room.GetRoomsByOwnerInput{
		OwnerID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get own rooms: %w", err)
	}
	return out.Rooms, nil
}

// rememberChat adds the chat to the broadcast audience; failures only cost a broadcast
func (s *service) rememberChat(ctx context.Context, chatID string) {
	if chatID == "" {
		return
	}

	if err := s.chatRepo.SaveChat(ctx, &chat.SaveChatInput{
		Chat: models.Chat{ChatID: chatID},
	}); err != nil {
		slog.Warn("Failed to remember chat",
			"chat_id", chatID,
			"error", err,
		)
	}
}

// notify sends text and reports whether it was delivered
func (s *service) notify(ctx context.Context, chatID, text string) bool {
	if err := s.notifier.Notify(ctx, &expiration.NotifyInput{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		slog.Warn("Failed to send message",
			"chat_id", chatID,
			"error", err,
		)
		return false
	}
	return true
}

func (s *service) say(id messaging.MessageID) *Reply {
	return s.reply(s.messages.Get(id))
}

func (s *service) reply(text string) *Reply {
	return &Reply{Text: text}
}

// ask builds a dialogue question offering options
func (s *service) ask(text string, options ...string) *Reply {
	if len(options) > MaxOptions {
		options = options[:MaxOptions]
	}
	return &Reply{
		Text:     text,
		Options:  options,
		Dialogue: true,
	}
}

func roomCodes(rooms []*models.Room) []string {
	return lo.Uniq(lo.Map(rooms, func(r *models.Room, _ int) string {
		return r.Code
	}))
}
