package yatggen

import (
	"net/http"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
	"github.com/YaCodeDev/GoYaTgMock/yaupdate"
	"github.com/google/uuid"
)

type InlineQueryOptions struct {
	User             *yatgtypes.User
	Query            string
	Offset           string
	Location         *yatgtypes.Location
	GenerateLocation bool
}

// ChosenInlineResultOptions requires ResultID. InlineMessageID is generated when empty.
type ChosenInlineResultOptions struct {
	ResultID         string
	User             *yatgtypes.User
	Query            string
	Location         *yatgtypes.Location
	GenerateLocation bool
	InlineMessageID  string
}

type InlineQueryGenerator struct {
	src     *source
	users   *UserGenerator
	wrapper *yaupdate.Wrapper
}

func NewInlineQueryGenerator(opts ...Option) *InlineQueryGenerator {
	return New(opts...).InlineQueries
}

// GetInlineQuery returns an update carrying an inline query from a random user unless
// one is given.
func (g *InlineQueryGenerator) GetInlineQuery(opts InlineQueryOptions) *yatgtypes.Update {
	return g.wrapper.InlineQuery(&yatgtypes.InlineQuery{
		ID:       uuid.NewString(),
		From:     g.userOr(opts.User),
		Location: g.locationOr(opts.Location, opts.GenerateLocation),
		Query:    opts.Query,
		Offset:   opts.Offset,
	})
}

// GetChosenInlineResult returns an update carrying the result a user picked.
func (g *InlineQueryGenerator) GetChosenInlineResult(
	opts ChosenInlineResultOptions,
) (*yatgtypes.Update, yaerrors.Error) {
	if opts.ResultID == "" {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadInlineQuery,
			"result_id must be present for chosen_inline_result",
		)
	}

	inlineMessageID := opts.InlineMessageID
	if inlineMessageID == "" {
		inlineMessageID = uuid.NewString()
	}

	return g.wrapper.ChosenInlineResult(&yatgtypes.ChosenInlineResult{
		ResultID:        opts.ResultID,
		From:            g.userOr(opts.User),
		Location:        g.locationOr(opts.Location, opts.GenerateLocation),
		InlineMessageID: inlineMessageID,
		Query:           opts.Query,
	}), nil
}

func (g *InlineQueryGenerator) userOr(user *yatgtypes.User) *yatgtypes.User {
	if user != nil {
		return user
	}

	return g.users.GetUser(UserOptions{})
}

func (g *InlineQueryGenerator) locationOr(loc *yatgtypes.Location, generate bool) *yatgtypes.Location {
	if loc == nil && generate {
		return g.src.location()
	}

	return loc
}
