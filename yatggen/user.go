package yatggen

import "github.com/YaCodeDev/GoYaTgMock/yatgtypes"

// UserOptions leaves zero fields to the generator.
type UserOptions struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
	IsBot     bool
}

type UserGenerator struct {
	src *source
}

func NewUserGenerator(opts ...Option) *UserGenerator {
	return New(opts...).Users
}

// GetUser returns a user with random names and id for every field not set in opts.
// The username defaults to first name followed by last name.
func (g *UserGenerator) GetUser(opts UserOptions) *yatgtypes.User {
	user := &yatgtypes.User{
		ID:           opts.ID,
		IsBot:        opts.IsBot,
		FirstName:    opts.FirstName,
		LastName:     opts.LastName,
		Username:     opts.Username,
		LanguageCode: pick(g.src, userLanguages).String(),
	}

	if user.FirstName == "" {
		user.FirstName = pick(g.src, firstNames)
	}

	if user.LastName == "" {
		user.LastName = pick(g.src, lastNames)
	}

	if user.Username == "" {
		user.Username = user.FirstName + user.LastName
	}

	if user.ID == 0 {
		user.ID = g.src.GenID(false)
	}

	return user
}

// NewBotUser returns the identity of the mock bot: id 0, "Mockbot Bot", is_bot set.
func NewBotUser(username string) *yatgtypes.User {
	if username == "" {
		username = DefaultBotUsername
	}

	return &yatgtypes.User{
		ID:        0,
		IsBot:     true,
		FirstName: "Mockbot",
		LastName:  "Bot",
		Username:  username,
	}
}
