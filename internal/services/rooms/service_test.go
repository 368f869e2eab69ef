package rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/chat"
	chatMocks "github.com/KirkDiggler/lobbyboard/internal/repositories/chat/mocks"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/room"
	roomMocks "github.com/KirkDiggler/lobbyboard/internal/repositories/room/mocks"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/user"
	userMocks "github.com/KirkDiggler/lobbyboard/internal/repositories/user/mocks"
	"github.com/KirkDiggler/lobbyboard/internal/services/conversation"
	conversationMocks "github.com/KirkDiggler/lobbyboard/internal/services/conversation/mocks"
	"github.com/KirkDiggler/lobbyboard/internal/services/expiration"
	expirationMocks "github.com/KirkDiggler/lobbyboard/internal/services/expiration/mocks"
	"github.com/KirkDiggler/lobbyboard/internal/services/messaging"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomsServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockRoomRepo     *roomMocks.MockRepository
	mockUserRepo     *userMocks.MockRepository
	mockChatRepo     *chatMocks.MockRepository
	mockConversation *conversationMocks.MockService
	mockScheduler    *expirationMocks.MockScheduler
	mockNotifier     *expirationMocks.MockNotifier
	messages         messaging.Service
	clock            *clockwork.FakeClock
	service          Service
	ctx              context.Context

	testUserID  string
	testChatID  string
	testAdminID string
	testRoom    *models.Room
}

func (s *RoomsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomRepo = roomMocks.NewMockRepository(s.mockCtrl)
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockChatRepo = chatMocks.NewMockRepository(s.mockCtrl)
	s.mockConversation = conversationMocks.NewMockService(s.mockCtrl)
	s.mockScheduler = expirationMocks.NewMockScheduler(s.mockCtrl)
	s.mockNotifier = expirationMocks.NewMockNotifier(s.mockCtrl)
	s.clock = clockwork.NewFakeClockAt(time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	messages, err := messaging.New(&messaging.Config{
		Lifetime:      2 * time.Hour,
		WarningWindow: 5 * time.Minute,
	})
	s.Require().NoError(err)
	s.messages = messages

	s.testUserID = "100"
	s.testChatID = "chat-1"
	s.testAdminID = "1"
	s.testRoom = &models.Room{
		ID:       "room-1",
		Code:     "ABC1234",
		Host:     "Goose",
		Map:      models.MapTheCarnival,
		GameMode: models.GameModeClassic,
		Owner:    models.User{ID: s.testUserID},
		Chat:     models.Chat{ChatID: s.testChatID},
	}

	svc, err := New(&Config{
		RoomRepo:     s.mockRoomRepo,
		UserRepo:     s.mockUserRepo,
		ChatRepo:     s.mockChatRepo,
		Conversation: s.mockConversation,
		Scheduler:    s.mockScheduler,
		Notifier:     s.mockNotifier,
		Messages:     s.messages,
		Clock:        s.clock,
		Lifetime:     2 * time.Hour,
		RootAdminID:  s.testAdminID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RoomsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomsServiceTestSuite))
}

func (s *RoomsServiceTestSuite) execute(cmd Command, code string) *Reply {
	return s.executeAs(s.testUserID, cmd, code)
}

func (s *RoomsServiceTestSuite) executeAs(userID string, cmd Command, code string) *Reply {
	reply, err := s.service.Execute(s.ctx, &ExecuteInput{
		Command: cmd,
		UserID:  userID,
		ChatID:  s.testChatID,
		Code:    code,
	})
	s.Require().NoError(err)
	s.Require().NotNil(reply)
	return reply
}

// expectTransition makes the dialogue answer the next input with effect
func (s *RoomsServiceTestSuite) expectTransition(text string, state conversation.State, effect conversation.Effect) {
	s.mockConversation.EXPECT().Active(s.testUserID).Return(true)
	s.mockConversation.EXPECT().Transition(s.ctx, &conversation.TransitionInput{
		UserID: s.testUserID,
		Text:   text,
	}).Return(&conversation.TransitionOutput{
		Effect:  effect,
		Session: conversation.Session{UserID: s.testUserID, ChatID: s.testChatID, State: state},
	}, nil)
}

func (s *RoomsServiceTestSuite) handle(text string) *Reply {
	reply, err := s.service.HandleInput(s.ctx, &HandleInputInput{
		UserID: s.testUserID,
		ChatID: s.testChatID,
		Text:   text,
	})
	s.Require().NoError(err)
	return reply
}

func (s *RoomsServiceTestSuite) commit(c *conversation.Commit) *Reply {
	s.expectTransition("input", conversation.StateIdle, conversation.Effect{
		Kind:   conversation.EffectCommit,
		State:  conversation.StateIdle,
		Commit: c,
	})
	reply := s.handle("input")
	s.Require().NotNil(reply)
	return reply
}

func (s *RoomsServiceTestSuite) expectOwnRooms(rooms ...*models.Room) {
	s.mockRoomRepo.EXPECT().GetRoomsByOwner(s.ctx, &room.GetRoomsByOwnerInput{OwnerID: s.testUserID}).
		Return(&room.GetRoomsByOwnerOutput{Rooms: rooms}, nil).AnyTimes()
}

func (s *RoomsServiceTestSuite) expectStart(state conversation.State) {
	s.mockConversation.EXPECT().Start(s.ctx, &conversation.StartInput{
		UserID: s.testUserID,
		ChatID: s.testChatID,
		State:  state,
	}).Return(nil)
}

func (s *RoomsServiceTestSuite) TestStart() {
	s.mockConversation.EXPECT().Reset(s.testUserID)
	s.mockChatRepo.EXPECT().SaveChat(s.ctx, &chat.SaveChatInput{Chat: models.Chat{ChatID: s.testChatID}}).Return(nil)

	reply := s.execute(CommandStart, "")

	s.Equal(s.messages.Get(messaging.MessageStart), reply.Text)
	s.False(reply.Dialogue)
}

func (s *RoomsServiceTestSuite) TestStaticTexts() {
	s.Equal(s.messages.Get(messaging.MessageHelp), s.execute(CommandHelp, "").Text)
	s.Equal(s.messages.Get(messaging.MessageRules), s.execute(CommandRules, "").Text)
}

func (s *RoomsServiceTestSuite) TestListShowsOwnerRatings() {
	other := &models.Room{ID: "room-2", Code: "ZZZ9999", Host: "Duck", Owner: models.User{ID: s.testUserID}}
	owner := &models.User{ID: s.testUserID, Rating: []models.Rating{{RaterID: "7", Liked: true}}}

	s.mockChatRepo.EXPECT().SaveChat(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRoomRepo.EXPECT().ListRooms(s.ctx, &room.ListRoomsInput{}).
		Return(&room.ListRoomsOutput{Rooms: []*models.Room{s.testRoom, other}}, nil)
	// Loaded once for both rooms
	s.mockUserRepo.EXPECT().GetUser(s.ctx, &user.GetUserInput{UserID: s.testUserID}).Return(owner, nil)

	reply := s.execute(CommandList, "")

	s.Contains(reply.Text, "`ABC1234`")
	s.Contains(reply.Text, "`ZZZ9999`")
	s.Contains(reply.Text, "👍 1 👎 0")
}

func (s *RoomsServiceTestSuite) TestListFallsBackToStoredOwner() {
	s.testRoom.Owner.Rating = []models.Rating{{RaterID: "7", Liked: false}}

	s.mockChatRepo.EXPECT().SaveChat(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	s.mockRoomRepo.EXPECT().ListRooms(gomock.Any(), gomock.Any()).
		Return(&room.ListRoomsOutput{Rooms: []*models.Room{s.testRoom}}, nil)
	s.mockUserRepo.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(nil, user.ErrUserNotFound)

	reply := s.execute(CommandList, "")

	s.Contains(reply.Text, "👍 0 👎 1")
}

func (s *RoomsServiceTestSuite) TestListButtonOutsideDialogue() {
	s.mockConversation.EXPECT().Active(s.testUserID).Return(false)
	s.mockChatRepo.EXPECT().SaveChat(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRoomRepo.EXPECT().ListRooms(gomock.Any(), gomock.Any()).Return(&room.ListRoomsOutput{}, nil)

	reply := s.handle(ListRoomsLabel)

	s.Require().NotNil(reply)
	s.Equal(s.messages.Get(messaging.MessageRoomsEmpty), reply.Text)
}

func (s *RoomsServiceTestSuite) TestChatterOutsideDialogueIsIgnored() {
	s.mockConversation.EXPECT().Active(s.testUserID).Return(false)

	s.Nil(s.handle("gg everyone"))
}

func (s *RoomsServiceTestSuite) TestClickOutsideDialogueGetsIdleReply() {
	s.mockConversation.EXPECT().Active(s.testUserID).Return(false)
	s.mockConversation.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(&conversation.TransitionOutput{
		Effect:  conversation.Effect{Kind: conversation.EffectReprompt, State: conversation.StateIdle},
		Session: conversation.Session{UserID: s.testUserID, State: conversation.StateIdle},
	}, nil)

	reply, err := s.service.HandleInput(s.ctx, &HandleInputInput{
		UserID: s.testUserID,
		Text:   string(models.MapBlackSwan),
		Direct: true,
	})

	s.Require().NoError(err)
	s.Equal(s.messages.Get(messaging.MessageIdle), reply.Text)
}

func (s *RoomsServiceTestSuite) TestAddStartsCreation() {
	s.expectOwnRooms()
	s.expectStart(conversation.StateAwaitCode)

	reply := s.execute(CommandAdd, "")

	s.Equal(s.messages.Get(messaging.MessagePromptCode), reply.Text)
	s.True(reply.Dialogue)
	s.Empty(reply.Options)
}

func (s *RoomsServiceTestSuite) TestAddWithExistingRoomAsksToReplace() {
	s.expectOwnRooms(s.testRoom)
	s.expectStart(conversation.StateAwaitConfirmDelete)

	reply := s.execute(CommandAdd, "")

	s.Contains(reply.Text, "`ABC1234`")
	s.Equal([]string{conversation.ConfirmLabel}, reply.Options)
	s.True(reply.Dialogue)
}

func (s *RoomsServiceTestSuite) TestOwnRoomCommandsWithoutRooms() {
	for _, cmd := range []Command{CommandEdit, CommandDelete, CommandUpdate} {
		s.Run(string(cmd), func() {
			s.expectOwnRooms()
			s.mockConversation.EXPECT().Reset(s.testUserID)

			reply := s.execute(cmd, "")

			s.Equal(s.messages.Get(messaging.MessageRoomNotFound), reply.Text)
			s.False(reply.Dialogue)
		})
	}
}

func (s *RoomsServiceTestSuite) TestDeleteOffersOwnCodes() {
	second := &models.Room{ID: "room-2", Code: "ZZZ9999", Owner: models.User{ID: s.testUserID}}
	s.expectOwnRooms(s.testRoom, second)
	s.expectStart(conversation.StateAwaitDeleteTarget)

	reply := s.execute(CommandDelete, "")

	s.Equal(s.messages.Get(messaging.MessagePromptRoom), reply.Text)
	s.Equal([]string{"ABC1234", "ZZZ9999"}, reply.Options)
}

func (s *RoomsServiceTestSuite) TestCancel() {
	s.mockConversation.EXPECT().Reset(s.testUserID)

	s.Equal(s.messages.Get(messaging.MessageCancelled), s.execute(CommandCancel, "").Text)
}

func (s *RoomsServiceTestSuite) TestAdvanceOffersOptions() {
	s.expectTransition("Goose", conversation.StateAwaitMap, conversation.Effect{
		Kind:  conversation.EffectAdvance,
		State: conversation.StateAwaitMap,
	})

	reply := s.handle("Goose")

	s.Equal(s.messages.Get(messaging.MessagePromptMap), reply.Text)
	s.Equal(models.MapLabels(), reply.Options)
	s.True(reply.Dialogue)
}

func (s *RoomsServiceTestSuite) TestRepromptExplainsError() {
	tests := []struct {
		state conversation.State
		want  messaging.MessageID
	}{
		{conversation.StateAwaitCode, messaging.MessageErrorCode},
		{conversation.StateAwaitEditHost, messaging.MessageErrorHost},
		{conversation.StateAwaitGameMode, messaging.MessageErrorOption},
		{conversation.StateAwaitAdminGrant, messaging.MessageErrorUserID},
		{conversation.StateAwaitBroadcastText, messaging.MessageErrorBroadcastEmpty},
	}

	for _, tt := range tests {
		s.Run(string(tt.state), func() {
			s.expectTransition("x", tt.state, conversation.Effect{Kind: conversation.EffectReprompt, State: tt.state})

			reply := s.handle("x")

			s.Equal(s.messages.Get(tt.want), reply.Text)
			s.True(reply.Dialogue)
		})
	}
}

func (s *RoomsServiceTestSuite) TestNotFoundAndCancelledEffects() {
	s.expectTransition("ZZZ9999", conversation.StateIdle, conversation.Effect{Kind: conversation.EffectNotFound})
	s.Equal(s.messages.Get(messaging.MessageRoomNotFound), s.handle("ZZZ9999").Text)

	s.expectTransition(conversation.CancelLabel, conversation.StateIdle, conversation.Effect{Kind: conversation.EffectCancelled})
	s.Equal(s.messages.Get(messaging.MessageCancelled), s.handle(conversation.CancelLabel).Text)
}

func (s *RoomsServiceTestSuite) TestTransitionFailure() {
	s.mockConversation.EXPECT().Active(s.testUserID).Return(true)
	s.mockConversation.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	_, err := s.service.HandleInput(s.ctx, &HandleInputInput{UserID: s.testUserID, Text: "ABC1234"})

	s.Error(err)
}

func (s *RoomsServiceTestSuite) TestCommitCreate() {
	draft := &models.Room{
		Code:     "ABC1234",
		Host:     "Goose",
		Map:      models.MapTheCarnival,
		GameMode: models.GameModeClassic,
		Owner:    models.User{ID: s.testUserID},
		Chat:     models.Chat{ChatID: s.testChatID},
	}
	owner := &models.User{
		ID:          s.testUserID,
		Subscribers: []models.Chat{{ChatID: "fan-1"}, {ChatID: "fan-2"}},
	}

	s.mockUserRepo.EXPECT().GetOrCreateUser(s.ctx, &user.GetOrCreateUserInput{UserID: s.testUserID}).Return(owner, nil)
	s.mockRoomRepo.EXPECT().CreateRoom(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *room.CreateRoomInput) (*room.CreateRoomOutput, error) {
			s.Equal(*owner, input.Room.Owner)
			return &room.CreateRoomOutput{RoomID: "room-1"}, nil
		})
	s.mockScheduler.EXPECT().Schedule(s.ctx, &expiration.ScheduleInput{RoomID: "room-1", Delay: 2 * time.Hour}).Return(nil)
	s.mockNotifier.EXPECT().Notify(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *expiration.NotifyInput) error {
			s.Contains(input.Text, "`ABC1234`")
			if input.ChatID == "fan-2" {
				return errors.New("missing access")
			}
			return nil
		}).Times(2)

	reply := s.commit(&conversation.Commit{Kind: conversation.CommitCreate, Room: draft, OwnerID: s.testUserID})

	s.Equal(s.messages.Get(messaging.MessageRoomAdded), reply.Text)
	s.False(reply.Dialogue)
}

func (s *RoomsServiceTestSuite) TestCommitCreateStoreFailure() {
	s.mockUserRepo.EXPECT().GetOrCreateUser(gomock.Any(), gomock.Any()).Return(&models.User{ID: s.testUserID}, nil)
	s.mockRoomRepo.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	s.expectTransition("input", conversation.StateIdle, conversation.Effect{
		Kind:   conversation.EffectCommit,
		Commit: &conversation.Commit{Kind: conversation.CommitCreate, Room: &models.Room{Owner: models.User{ID: s.testUserID}}},
	})

	_, err := s.service.HandleInput(s.ctx, &HandleInputInput{UserID: s.testUserID, Text: "input"})

	s.Error(err)
}

func (s *RoomsServiceTestSuite) TestCommitEditRestartsLifetime() {
	change := &conversation.FieldChange{Field: models.RoomFieldHost, Value: "Duck"}

	gomock.InOrder(
		s.mockRoomRepo.EXPECT().UpdateRoomField(s.ctx, &room.UpdateRoomFieldInput{
			RoomID: "room-1",
			Field:  models.RoomFieldHost,
			Value:  "Duck",
		}).Return(nil),
		s.mockRoomRepo.EXPECT().RenewRoom(s.ctx, &room.RenewRoomInput{
			RoomID:    "room-1",
			CreatedAt: s.clock.Now(),
		}).Return(nil),
		s.mockScheduler.EXPECT().Reschedule(s.ctx, &expiration.RescheduleInput{RoomID: "room-1"}).Return(nil),
	)

	reply := s.commit(&conversation.Commit{Kind: conversation.CommitEdit, RoomID: "room-1", Change: change})

	s.Equal(s.messages.Get(messaging.MessageRoomEdited), reply.Text)
}

func (s *RoomsServiceTestSuite) TestCommitEditRejected() {
	s.mockRoomRepo.EXPECT().UpdateRoomField(gomock.Any(), gomock.Any()).Return(room.ErrInvalidField)

	reply := s.commit(&conversation.Commit{
		Kind:   conversation.CommitEdit,
		RoomID: "room-1",
		Change: &conversation.FieldChange{Field: models.RoomFieldMap, Value: "Moon"},
	})

	s.Equal(s.messages.Get(messaging.MessageErrorEdit), reply.Text)
}

func (s *RoomsServiceTestSuite) TestCommitDeleteCancelsFirst() {
	gomock.InOrder(
		s.mockScheduler.EXPECT().Cancel(s.ctx, &expiration.CancelInput{RoomID: "room-1"}).Return(nil),
		s.mockRoomRepo.EXPECT().DeleteRoom(s.ctx, &room.DeleteRoomInput{RoomID: "room-1"}).Return(nil),
	)

	reply := s.commit(&conversation.Commit{Kind: conversation.CommitDelete, RoomID: "room-1"})

	s.Equal(s.messages.Get(messaging.MessageRoomDeleted), reply.Text)
}

func (s *RoomsServiceTestSuite) TestCommitDeleteAlreadyExpired() {
	s.mockScheduler.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRoomRepo.EXPECT().DeleteRoom(gomock.Any(), gomock.Any()).Return(room.ErrRoomNotFound)

	reply := s.commit(&conversation.Commit{Kind: conversation.CommitDelete, RoomID: "room-1"})

	s.Equal(s.messages.Get(messaging.MessageRoomNotFound), reply.Text)
}

func (s *RoomsServiceTestSuite) TestCommitDeleteAllContinuesCreation() {
	s.mockRoomRepo.EXPECT().GetRoomsByOwner(gomock.Any(), gomock.Any()).
		Return(&room.GetRoomsByOwnerOutput{Rooms: []*models.Room{s.testRoom}}, nil)
	s.mockScheduler.EXPECT().Cancel(gomock.Any(), &expiration.CancelInput{RoomID: "room-1"}).Return(nil)
	s.mockRoomRepo.EXPECT().DeleteRoom(gomock.Any(), &room.DeleteRoomInput{RoomID: "room-1"}).Return(nil)

	s.expectTransition(conversation.ConfirmLabel, conversation.StateAwaitCode, conversation.Effect{
		Kind:   conversation.EffectCommit,
		State:  conversation.StateAwaitCode,
		Commit: &conversation.Commit{Kind: conversation.CommitDeleteAll, OwnerID: s.testUserID},
	})

	reply := s.handle(conversation.ConfirmLabel)

	s.Contains(reply.Text, s.messages.Get(messaging.MessageRoomDeletedAll))
	s.Contains(reply.Text, s.messages.Get(messaging.MessagePromptCode))
	s.True(reply.Dialogue)
}

func (s *RoomsServiceTestSuite) TestCommitRenew() {
	s.mockRoomRepo.EXPECT().GetRoom(s.ctx, &room.GetRoomInput{RoomID: "room-1"}).Return(s.testRoom, nil)
	s.mockRoomRepo.EXPECT().RenewRoom(s.ctx, &room.RenewRoomInput{RoomID: "room-1", CreatedAt: s.clock.Now()}).Return(nil)
	s.mockScheduler.EXPECT().Reschedule(s.ctx, &expiration.RescheduleInput{RoomID: "room-1"}).Return(nil)

	reply := s.commit(&conversation.Commit{Kind: conversation.CommitRenew, RoomID: "room-1"})

	s.Contains(reply.Text, "`ABC1234`")
}

func (s *RoomsServiceTestSuite) TestAdminCommandsNeedRights() {
	s.mockUserRepo.EXPECT().GetUser(gomock.Any(), &user.GetUserInput{UserID: s.testUserID}).
		Return(nil, user.ErrUserNotFound).Times(4)

	for _, cmd := range []Command{CommandAdminHelp, CommandListAdmins, CommandAdminDelete, CommandBroadcast} {
		s.Equal(s.messages.Get(messaging.MessageNoRights), s.execute(cmd, "").Text, cmd)
	}

	// Only the root admin hands out rights, even to other admins
	s.Equal(s.messages.Get(messaging.MessageNoRights), s.execute(CommandAddAdmin, "").Text)
	s.Equal(s.messages.Get(messaging.MessageNoRights), s.execute(CommandDelAdmin, "").Text)
}

func (s *RoomsServiceTestSuite) TestAdminCommands() {
	s.mockUserRepo.EXPECT().GetUser(gomock.Any(), &user.GetUserInput{UserID: s.testUserID}).
		Return(&models.User{ID: s.testUserID, IsAdmin: true}, nil).AnyTimes()

	s.Equal(s.messages.Get(messaging.MessageAdminHelp), s.execute(CommandAdminHelp, "").Text)

	s.mockUserRepo.EXPECT().ListAdmins(gomock.Any(), gomock.Any()).
		Return(&user.ListAdminsOutput{Users: []*models.User{{ID: "100"}, {ID: "200"}}}, nil)
	s.Contains(s.execute(CommandListAdmins, "").Text, "2. `200`")

	s.expectStart(conversation.StateAwaitAdminDeleteTarget)
	s.Equal(s.messages.Get(messaging.MessagePromptCode), s.execute(CommandAdminDelete, "").Text)

	s.expectStart(conversation.StateAwaitBroadcastText)
	s.Equal(s.messages.Get(messaging.MessagePromptBroadcast), s.execute(CommandBroadcast, "").Text)
}

func (s *RoomsServiceTestSuite) TestRootAdminGrantsRights() {
	s.mockConversation.EXPECT().Start(s.ctx, &conversation.StartInput{
		UserID: s.testAdminID,
		ChatID: s.testChatID,
		State:  conversation.StateAwaitAdminGrant,
	}).Return(nil)

	reply := s.executeAs(s.testAdminID, CommandAddAdmin, "")
	s.Equal(s.messages.Get(messaging.MessagePromptAdminGrant), reply.Text)

	s.mockUserRepo.EXPECT().SetAdmin(s.ctx, &user.SetAdminInput{UserID: "555", IsAdmin: true}).Return(nil)
	reply = s.commit(&conversation.Commit{Kind: conversation.CommitGrantAdmin, UserID: "555"})
	s.Contains(reply.Text, "`555`")

	s.mockUserRepo.EXPECT().SetAdmin(s.ctx, &user.SetAdminInput{UserID: "555", IsAdmin: false}).Return(nil)
	reply = s.commit(&conversation.Commit{Kind: conversation.CommitRevokeAdmin, UserID: "555"})
	s.Equal(s.messages.Format(messaging.MessageAdminRevoked, map[string]any{"UserID": "555"}), reply.Text)
}

func (s *RoomsServiceTestSuite) TestCommitAdminDeleteNotifiesOwner() {
	s.mockScheduler.EXPECT().Cancel(gomock.Any(), &expiration.CancelInput{RoomID: "room-1"}).Return(nil)
	s.mockRoomRepo.EXPECT().DeleteRoom(gomock.Any(), &room.DeleteRoomInput{RoomID: "room-1"}).Return(nil)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), &expiration.NotifyInput{
		ChatID: s.testChatID,
		Text:   s.messages.Format(messaging.MessageAdminOwnerNotice, map[string]any{"Code": "ABC1234"}),
	}).Return(nil)

	reply := s.commit(&conversation.Commit{Kind: conversation.CommitAdminDelete, RoomID: "room-1", Room: s.testRoom})

	s.Contains(reply.Text, "`ABC1234`")
}

func (s *RoomsServiceTestSuite) TestCommitBroadcast() {
	s.mockChatRepo.EXPECT().ListChats(gomock.Any(), gomock.Any()).
		Return(&chat.ListChatsOutput{Chats: []models.Chat{{ChatID: "a"}, {ChatID: "b"}}}, nil)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), &expiration.NotifyInput{ChatID: "a", Text: "hello"}).Return(nil)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), &expiration.NotifyInput{ChatID: "b", Text: "hello"}).Return(errors.New("blocked"))

	reply := s.commit(&conversation.Commit{Kind: conversation.CommitBroadcast, Text: "hello"})

	s.Equal("Сообщение отправлено: 1, не доставлено: 1.", reply.Text)
}

func (s *RoomsServiceTestSuite) TestSubscriptions() {
	s.mockRoomRepo.EXPECT().GetRoomByCode(gomock.Any(), &room.GetRoomByCodeInput{Code: "ABC1234"}).
		Return(s.testRoom, nil).AnyTimes()

	subscriber := models.Chat{ChatID: s.testChatID}

	s.mockUserRepo.EXPECT().AddSubscriber(gomock.Any(), &user.AddSubscriberInput{UserID: s.testUserID, Chat: subscriber}).
		Return(&user.AddSubscriberOutput{Added: true}, nil)
	s.Contains(s.execute(CommandSubscribe, " ABC1234 ").Text, "`ABC1234`")

	s.mockUserRepo.EXPECT().AddSubscriber(gomock.Any(), gomock.Any()).Return(&user.AddSubscriberOutput{}, nil)
	s.Equal(s.messages.Get(messaging.MessageAlreadySubscribed), s.execute(CommandSubscribe, "ABC1234").Text)

	s.mockUserRepo.EXPECT().RemoveSubscriber(gomock.Any(), &user.RemoveSubscriberInput{UserID: s.testUserID, Chat: subscriber}).
		Return(&user.RemoveSubscriberOutput{}, nil)
	s.Equal(s.messages.Get(messaging.MessageNotSubscribed), s.execute(CommandUnsubscribe, "ABC1234").Text)
}

func (s *RoomsServiceTestSuite) TestRatings() {
	s.mockRoomRepo.EXPECT().GetRoomByCode(gomock.Any(), gomock.Any()).Return(s.testRoom, nil).AnyTimes()

	s.Equal(s.messages.Get(messaging.MessageRateSelf), s.execute(CommandLike, "ABC1234").Text)

	s.mockUserRepo.EXPECT().RateUser(gomock.Any(), &user.RateUserInput{
		UserID:  s.testUserID,
		RaterID: "200",
		Liked:   false,
	}).Return(nil)
	s.Equal(s.messages.Get(messaging.MessageRated), s.executeAs("200", CommandDislike, "ABC1234").Text)
}

func (s *RoomsServiceTestSuite) TestCodeCommands() {
	s.Contains(s.execute(CommandLike, "").Text, "/like")

	s.mockRoomRepo.EXPECT().GetRoomByCode(gomock.Any(), gomock.Any()).Return(nil, room.ErrRoomNotFound)
	s.Equal(s.messages.Get(messaging.MessageRoomNotFound), s.execute(CommandSubscribe, "ZZZ9999").Text)
}

func (s *RoomsServiceTestSuite) TestUnknownCommand() {
	_, err := s.service.Execute(s.ctx, &ExecuteInput{Command: "dance", UserID: s.testUserID})

	s.ErrorIs(err, ErrUnknownCommand)
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(&Config{})
	assert.ErrorIs(t, err, ErrNilRoomRepo)
}
