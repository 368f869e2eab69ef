package messaging

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// service implements the Service interface on top of a go-i18n bundle
type service struct {
	localizer *i18n.Localizer

	// base is merged into every template
	base map[string]any
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	lang := cfg.Language
	if lang == "" {
		lang = DefaultLanguage
	}

	if _, err := language.Parse(lang); err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.Russian)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read message catalogs: %w", err)
	}

	for _, file := range files {
		path := "locales/" + file.Name()
		if _, err := bundle.LoadMessageFileFS(locales, path); err != nil {
			return nil, fmt.Errorf("failed to load message catalog %s: %w", path, err)
		}
	}

	s := &service{
		localizer: i18n.NewLocalizer(bundle, lang, DefaultLanguage),
	}

	s.base = map[string]any{
		"Lifetime": s.duration(cfg.Lifetime),
		"Warning":  s.duration(cfg.WarningWindow),
	}

	return s, nil
}

// Get returns a catalog message without template data
func (s *service) Get(id MessageID) string {
	return s.Format(id, nil)
}

// Format renders a catalog message, falling back to the ID when it is missing
func (s *service) Format(id MessageID, data map[string]any) string {
	merged := make(map[string]any, len(s.base)+len(data))
	for k, v := range s.base {
		merged[k] = v
	}
	for k, v := range data {
		merged[k] = v
	}

	text, err := s.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    string(id),
		TemplateData: merged,
	})
	if err != nil {
		slog.Warn("Failed to localize message",
			"message_id", id,
			"error", err,
		)
		return string(id)
	}

	return text
}

// RoomList renders the published rooms
func (s *service) RoomList(listings []RoomListing) string {
	if len(listings) == 0 {
		return s.Get(MessageRoomsEmpty)
	}

	var b strings.Builder
	b.WriteString(s.Get(MessageRoomsHeader))
	b.WriteString("\n\n")

	for i, listing := range listings {
		b.WriteString(s.Format(MessageRoomsItem, map[string]any{
			"Index":    i + 1,
			"Code":     listing.Room.Code,
			"Host":     listing.Room.Host,
			"Map":      string(listing.Room.Map),
			"GameMode": string(listing.Room.GameMode),
			"Likes":    listing.Likes,
			"Dislikes": listing.Dislikes,
		}))
		b.WriteString("\n\n")
	}

	b.WriteString(s.Get(MessageRoomsFooter))
	return b.String()
}

// AdminList renders the admin IDs
func (s *service) AdminList(userIDs []string) string {
	if len(userIDs) == 0 {
		return s.Get(MessageAdminsEmpty)
	}

	lines := make([]string, 0, len(userIDs)+1)
	lines = append(lines, s.Get(MessageAdminsHeader), "")
	for i, userID := range userIDs {
		lines = append(lines, s.Format(MessageAdminsItem, map[string]any{
			"Index":  i + 1,
			"UserID": userID,
		}))
	}

	return strings.Join(lines, "\n")
}

// RoomAnnouncement tells subscribers a room opened
func (s *service) RoomAnnouncement(room *models.Room) string {
	return s.Format(MessageSubscriberNewRoom, map[string]any{
		"Code":     room.Code,
		"Host":     room.Host,
		"Map":      string(room.Map),
		"GameMode": string(room.GameMode),
	})
}

// ExpiryWarning tells the owner the room goes away after remaining
func (s *service) ExpiryWarning(room *models.Room, remaining time.Duration) string {
	return s.Format(MessageExpiryWarning, map[string]any{
		"Code":    room.Code,
		"Minutes": int(remaining.Round(time.Minute).Minutes()),
	})
}

// ExpiryNotice tells the owner the room was removed
func (s *service) ExpiryNotice(room *models.Room) string {
	return s.Format(MessageExpiryNotice, map[string]any{
		"Code": room.Code,
	})
}

// duration renders d in whole hours when it has no minutes, otherwise in minutes
func (s *service) duration(d time.Duration) string {
	if d <= 0 {
		return ""
	}

	if d%time.Hour == 0 {
		return s.format(MessageDurationHours, int(d/time.Hour))
	}
	return s.format(MessageDurationMinutes, int(d.Round(time.Minute)/time.Minute))
}

// format renders a unit message; it runs before base is set so it bypasses Format
func (s *service) format(id MessageID, count int) string {
	text, err := s.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    string(id),
		TemplateData: map[string]any{"Count": count},
	})
	if err != nil {
		return fmt.Sprint(count)
	}
	return text
}
