package messaging

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service  *service
	testRoom *models.Room
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := New(&Config{
		Language:      "ru",
		Lifetime:      2 * time.Hour,
		WarningWindow: 5 * time.Minute,
	})
	s.Require().NoError(err)
	s.service = svc

	s.testRoom = &models.Room{
		ID:       "room-1",
		Code:     "ABC1234",
		Host:     "Goose",
		Map:      models.MapTheCarnival,
		GameMode: models.GameModeClassic,
	}
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGet() {
	s.Equal("У нас отмена!", s.service.Get(MessageCancelled))
	s.Equal("Введите код комнаты", s.service.Get(MessagePromptCode))
}

func (s *MessagingServiceTestSuite) TestUnknownMessageFallsBackToID() {
	s.Equal("no_such_message", s.service.Get("no_such_message"))
}

func (s *MessagingServiceTestSuite) TestHelpQuotesDurations() {
	help := s.service.Get(MessageHelp)

	s.Contains(help, "2 ч")
	s.Contains(help, "5 мин")
	s.NotContains(help, "<no value>")
}

func (s *MessagingServiceTestSuite) TestFormat() {
	s.Equal("Время жизни комнаты с кодом `ABC1234` было обновлено.",
		s.service.Format(MessageRoomRenewed, map[string]any{"Code": "ABC1234"}))
}

func (s *MessagingServiceTestSuite) TestRoomList() {
	s.Contains(s.service.RoomList(nil), "Нет опубликованных комнат")

	other := &models.Room{Code: "ZZZ9999", Host: "Duck", Map: models.MapBlackSwan, GameMode: models.GameModeDraft}
	list := s.service.RoomList([]RoomListing{
		{Room: s.testRoom, Likes: 3, Dislikes: 1},
		{Room: other},
	})

	s.Contains(list, "Румы, где ты можешь поиграть")
	s.Contains(list, "1. `ABC1234` 👑 Goose")
	s.Contains(list, "🚀 Карнавал · 🎲 Classic · 👍 3 👎 1")
	s.Contains(list, "2. `ZZZ9999` 👑 Duck")
	s.Contains(list, "Приятной игры")
}

func (s *MessagingServiceTestSuite) TestAdminList() {
	s.Equal("Администраторов пока нет.", s.service.AdminList(nil))

	list := s.service.AdminList([]string{"100", "200"})
	s.Contains(list, "1. `100`")
	s.Contains(list, "2. `200`")
}

func (s *MessagingServiceTestSuite) TestExpiryMessages() {
	warning := s.service.ExpiryWarning(s.testRoom, 5*time.Minute)
	s.Contains(warning, "`ABC1234`")
	s.Contains(warning, "через 5 минут")

	notice := s.service.ExpiryNotice(s.testRoom)
	s.Contains(notice, "`ABC1234`")
	s.Contains(notice, "автоматически удалена")
}

func (s *MessagingServiceTestSuite) TestRoomAnnouncement() {
	text := s.service.RoomAnnouncement(s.testRoom)

	s.Contains(text, "`ABC1234` 👑 Goose")
	s.Contains(text, "Карнавал")
}

func TestEnglishCatalog(t *testing.T) {
	svc, err := New(&Config{Language: "en", Lifetime: 90 * time.Minute})
	require.NoError(t, err)

	assert.Equal(t, "Cancelled.", svc.Get(MessageCancelled))
	assert.Contains(t, svc.Get(MessageHelp), "90m")
}

func TestInvalidLanguage(t *testing.T) {
	_, err := New(&Config{Language: "not a tag!"})
	assert.Error(t, err)
}

// Every message ID must exist in every catalog
func TestCatalogsAreComplete(t *testing.T) {
	ids := []MessageID{
		MessageStart, MessageHelp, MessageRules, MessageAdminHelp, MessageCancelled, MessageIdle,
		MessageNoRights, MessageInternalError, MessageUsageCode,
		MessagePromptCode, MessagePromptHost, MessagePromptMap, MessagePromptGameMode, MessagePromptRoom,
		MessagePromptEditField, MessagePromptEditValue, MessagePromptEditMap, MessagePromptEditGameMode,
		MessagePromptReplaceRoom, MessagePromptAdminGrant, MessagePromptAdminRevoke, MessagePromptBroadcast,
		MessageErrorCode, MessageErrorHost, MessageErrorOption, MessageErrorEdit, MessageErrorUserID,
		MessageErrorBroadcastEmpty,
		MessageRoomAdded, MessageRoomEdited, MessageRoomDeleted, MessageRoomDeletedAll, MessageRoomRenewed,
		MessageRoomNotFound, MessageRoomsEmpty, MessageRoomsHeader, MessageRoomsItem, MessageRoomsFooter,
		MessageAdminsHeader, MessageAdminsItem, MessageAdminsEmpty, MessageAdminGranted, MessageAdminRevoked,
		MessageAdminRoomDeleted, MessageAdminOwnerNotice, MessageBroadcastSent,
		MessageSubscribed, MessageAlreadySubscribed, MessageUnsubscribed, MessageNotSubscribed,
		MessageSubscriberNewRoom, MessageRated, MessageRateSelf,
		MessageExpiryWarning, MessageExpiryNotice, MessageDurationHours, MessageDurationMinutes,
	}

	for _, lang := range []string{"ru", "en"} {
		t.Run(lang, func(t *testing.T) {
			raw, err := locales.ReadFile("locales/" + lang + ".toml")
			require.NoError(t, err)

			catalog := map[string]any{}
			require.NoError(t, toml.Unmarshal(raw, &catalog))

			for _, id := range ids {
				assert.Contains(t, catalog, string(id))
			}
			assert.Len(t, catalog, len(ids))
		})
	}
}
