package yatggen

import "golang.org/x/text/language"

const DefaultBotUsername = "MockBot"

// Telegram id ranges used for generated users and chats.
const (
	minPrivateID = 10000
	maxPrivateID = 99999999
	minGroupID   = -99999999
	maxGroupID   = -222222
)

const (
	maxGeneratedFileSize  = 1 << 20
	maxGeneratedDuration  = 600
	maxForwardedMessageID = 100000
	stickerSide           = 512
	phoneDigits           = 9
)

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
	"Elizabeth", "William", "Linda", "David", "Barbara", "Richard",
	"Susan", "Joseph", "Jessica", "Thomas", "Margaret", "Charles", "Sarah",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller",
	"Wilson", "Moore", "Taylor",
}

var groupNames = []string{
	"Frustrated Vagabonds", "Heir Apparents", "Walky Talky",
	"Flirty Crowns", "My Amigos",
}

var userLanguages = []language.Tag{
	language.English,
	language.BritishEnglish,
	language.Dutch,
	language.German,
	language.Ukrainian,
	language.Spanish,
}

var (
	venueAdjectives = []string{"old", "blue", "quiet", "crooked", "golden", "busy"}
	venueNouns      = []string{"harbour", "mill", "tavern", "library", "market", "bridge"}
	streetNames     = []string{"Main Street", "Station Road", "Canal Side", "Church Lane"}
	stickerEmojis   = []string{"👍", "😀", "🎉", "🤖", "🔥"}
)

var photoSides = []int{90, 320, 800}
