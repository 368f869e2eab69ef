package models

import (
	"time"

	"github.com/samber/lo"
)

// Map is the game map a room is played on
type Map string

const (
	MapTheCarnival     Map = "Карнавал"
	MapEagletonSprings Map = "Иглтон Спрингс"
	MapBloodhaven      Map = "Кровавая Гавань"
	MapAncientSands    Map = "Древняя Пустыня"
	MapTheBasement     Map = "Подвал"
	MapJungleTemple    Map = "Храм Джунглей"
	MapGoosechapel     Map = "Гусчэпл"
	MapMallardManor    Map = "Усадьба Крякв"
	MapNexusColony     Map = "Колония Нексус"
	MapBlackSwan       Map = "Черный Лебедь"
	MapSSMotherGoose   Map = "К.К. Матушка Гусыня"
	MapOther           Map = "Разные"
)

// Maps lists every valid map in display order
var Maps = []Map{
	MapTheCarnival,
	MapEagletonSprings,
	MapBloodhaven,
	MapAncientSands,
	MapTheBasement,
	MapJungleTemple,
	MapGoosechapel,
	MapMallardManor,
	MapNexusColony,
	MapBlackSwan,
	MapSSMotherGoose,
	MapOther,
}

// ParseMap returns the map whose label matches exactly
func ParseMap(label string) (Map, bool) {
	return lo.Find(Maps, func(m Map) bool {
		return string(m) == label
	})
}

// MapLabels returns the labels of all maps
func MapLabels() []string {
	return lo.Map(Maps, func(m Map, _ int) string {
		return string(m)
	})
}

// GameMode is the ruleset a room is played with
type GameMode string

const (
	GameModeClassic           GameMode = "Classic"
	GameModeDraft             GameMode = "Draft"
	GameModeCorruption        GameMode = "Corruption Mode"
	GameModeGooseHunt         GameMode = "Goose Hunt"
	GameModeDineAndDash       GameMode = "Dine and Dash"
	GameModeTrickOrTreat      GameMode = "Trick or Treat"
	GameModeHangingOut        GameMode = "Hanging Out"
	GameModeTastesLikeChicken GameMode = "Tastes Like Chicken"
	GameModeWowAndLock        GameMode = "Ух и ищи"
	GameModeOther             GameMode = "Разные"
)

// GameModes lists every valid game mode in display order
var GameModes = []GameMode{
	GameModeClassic,
	GameModeDraft,
	GameModeCorruption,
	GameModeGooseHunt,
	GameModeDineAndDash,
	GameModeTrickOrTreat,
	GameModeHangingOut,
	GameModeTastesLikeChicken,
	GameModeWowAndLock,
	GameModeOther,
}

// ParseGameMode returns the game mode whose label matches exactly
func ParseGameMode(label string) (GameMode, bool) {
	return lo.Find(GameModes, func(g GameMode) bool {
		return string(g) == label
	})
}

// GameModeLabels returns the labels of all game modes
func GameModeLabels() []string {
	return lo.Map(GameModes, func(g GameMode, _ int) string {
		return string(g)
	})
}

// RoomField names an editable room field
type RoomField string

const (
	// RoomFieldCode is the join code
	RoomFieldCode RoomField = "code"

	// RoomFieldHost is the host display name
	RoomFieldHost RoomField = "host"

	// RoomFieldMap is the map label
	RoomFieldMap RoomField = "map"

	// RoomFieldGameMode is the game mode label
	RoomFieldGameMode RoomField = "game_mode"
)

// Room is a published game lobby listing
type Room struct {
	// ID is the unique identifier for the room
	ID string `json:"id"`

	// Code is the in-game join code, 7 uppercase alphanumeric characters
	Code string `json:"code"`

	// Host is the display name of the player hosting the lobby
	Host string `json:"host"`

	// Map is the map the lobby plays on
	Map Map `json:"map"`

	// GameMode is the ruleset the lobby plays with
	GameMode GameMode `json:"game_mode"`

	// Owner is the user who published the room
	Owner User `json:"owner"`

	// Chat is where the owner talked to the bot; expiry notices go here
	Chat Chat `json:"chat"`

	// CreatedAt is when the room was published or last renewed
	CreatedAt time.Time `json:"created_at"`
}

// ExpireAt returns when the room is due for removal
func (r *Room) ExpireAt(lifetime time.Duration) time.Time {
	return r.CreatedAt.Add(lifetime)
}
