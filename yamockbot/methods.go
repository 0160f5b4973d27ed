package yamockbot

import (
	"context"
	"time"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yatggen"
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
)

func (b *Mockbot) edit(
	ctx context.Context,
	method string,
	target EditTarget,
	params map[string]any,
	markup any,
	msgOpts yatggen.MessageOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	if err := target.validate(method); err != nil {
		return nil, err
	}

	target.apply(params)

	if err := setReplyMarkup(params, markup); err != nil {
		return nil, err.Wrap(method)
	}

	if err := b.record(ctx, method, params); err != nil {
		return nil, err
	}

	msg, err := b.echo(target.ChatID, 0, msgOpts)
	if err != nil {
		return nil, err.Wrap(method)
	}

	if target.MessageID != 0 {
		msg.MessageID = target.MessageID
	}

	msg.EditDate = time.Now().Unix()

	return msg, nil
}

// EditMessageText echoes the edited message with entities parsed from text.
func (b *Mockbot) EditMessageText(
	ctx context.Context,
	text string,
	opts EditTextOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{"text": text}
	setIf(params, "parse_mode", opts.ParseMode.String())
	setIf(params, "disable_web_page_preview", opts.DisableWebPagePreview)

	return b.edit(ctx, methodEditMessageText, opts.EditTarget, params, opts.ReplyMarkup, yatggen.MessageOptions{
		Text:      text,
		ParseMode: opts.ParseMode,
	})
}

// EditMessageCaption echoes a photo message carrying the new caption.
func (b *Mockbot) EditMessageCaption(
	ctx context.Context,
	opts EditCaptionOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{}
	setIf(params, "caption", opts.Caption)

	return b.edit(ctx, methodEditMessageCaption, opts.EditTarget, params, opts.ReplyMarkup, yatggen.MessageOptions{
		Caption:  opts.Caption,
		Generate: []yatggen.AttachmentKind{yatggen.AttachmentPhoto},
	})
}

func (b *Mockbot) EditMessageReplyMarkup(
	ctx context.Context,
	opts EditReplyMarkupOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	return b.edit(
		ctx,
		methodEditMessageReplyMarkup,
		opts.EditTarget,
		map[string]any{},
		opts.ReplyMarkup,
		yatggen.MessageOptions{},
	)
}

// AnswerInlineQuery records results as their JSON array.
func (b *Mockbot) AnswerInlineQuery(
	ctx context.Context,
	inlineQueryID string,
	results []any,
	opts InlineQueryAnswerOptions,
) yaerrors.Error {
	encoded, err := encodeJSON("results", results)
	if err != nil {
		return err.Wrap(methodAnswerInlineQuery)
	}

	params := map[string]any{
		"inline_query_id": inlineQueryID,
		"results":         encoded,
		"cache_time":      defaultInlineCacheTime,
	}

	if opts.CacheTime != nil {
		params["cache_time"] = *opts.CacheTime
	}

	if opts.NextOffset != nil {
		params["next_offset"] = *opts.NextOffset
	}

	setIf(params, "is_personal", opts.IsPersonal)
	setIf(params, "switch_pm_text", opts.SwitchPMText)
	setIf(params, "switch_pm_parameter", opts.SwitchPMParameter)

	return b.record(ctx, methodAnswerInlineQuery, params)
}

func (b *Mockbot) AnswerCallbackQuery(
	ctx context.Context,
	callbackQueryID string,
	opts CallbackQueryAnswerOptions,
) yaerrors.Error {
	params := map[string]any{"callback_query_id": callbackQueryID}
	setIf(params, "text", opts.Text)
	setIf(params, "show_alert", opts.ShowAlert)
	setIf(params, "url", opts.URL)

	if opts.CacheTime != nil {
		params["cache_time"] = *opts.CacheTime
	}

	return b.record(ctx, methodAnswerCallbackQuery, params)
}

// GetUserProfilePhotos answers with one generated photo.
func (b *Mockbot) GetUserProfilePhotos(
	ctx context.Context,
	userID int64,
	opts ProfilePhotosOptions,
) (*yatgtypes.UserProfilePhotos, yaerrors.Error) {
	limit := opts.Limit
	if limit == 0 {
		limit = defaultProfilePhotoLimit
	}

	params := map[string]any{"user_id": userID, "limit": limit}
	setIf(params, "offset", opts.Offset)

	if err := b.record(ctx, methodGetUserProfilePhotos, params); err != nil {
		return nil, err
	}

	return &yatgtypes.UserProfilePhotos{
		TotalCount: 1,
		Photos:     [][]yatgtypes.PhotoSize{b.gen.Photo()},
	}, nil
}

func (b *Mockbot) GetFile(ctx context.Context, fileID string) (*yatgtypes.File, yaerrors.Error) {
	if err := b.record(ctx, methodGetFile, map[string]any{"file_id": fileID}); err != nil {
		return nil, err
	}

	return &yatgtypes.File{FileID: fileID}, nil
}

func (b *Mockbot) KickChatMember(ctx context.Context, chatID int64, userID int64) yaerrors.Error {
	return b.record(ctx, methodKickChatMember, map[string]any{"chat_id": chatID, "user_id": userID})
}

func (b *Mockbot) UnbanChatMember(ctx context.Context, chatID int64, userID int64) yaerrors.Error {
	return b.record(ctx, methodUnbanChatMember, map[string]any{"chat_id": chatID, "user_id": userID})
}

func (b *Mockbot) LeaveChat(ctx context.Context, chatID int64) yaerrors.Error {
	return b.record(ctx, methodLeaveChat, map[string]any{"chat_id": chatID})
}

// GetChat answers with a generated chat; negative ids are groups.
func (b *Mockbot) GetChat(ctx context.Context, chatID int64) (*yatgtypes.Chat, yaerrors.Error) {
	if err := b.record(ctx, methodGetChat, map[string]any{"chat_id": chatID}); err != nil {
		return nil, err
	}

	chat, err := b.gen.Chats.GetChat(yatggen.ChatOptions{ID: chatID})
	if err != nil {
		return nil, err.Wrap(methodGetChat)
	}

	return chat, nil
}

// GetChatAdministrators answers with a generated creator and the bot itself.
func (b *Mockbot) GetChatAdministrators(ctx context.Context, chatID int64) ([]yatgtypes.ChatMember, yaerrors.Error) {
	if err := b.record(ctx, methodGetChatAdministrators, map[string]any{"chat_id": chatID}); err != nil {
		return nil, err
	}

	return []yatgtypes.ChatMember{
		{User: *b.gen.Users.GetUser(yatggen.UserOptions{}), Status: statusCreator},
		{User: *b.GetMe(), Status: statusAdministrator},
	}, nil
}

func (b *Mockbot) GetChatMember(
	ctx context.Context,
	chatID int64,
	userID int64,
) (*yatgtypes.ChatMember, yaerrors.Error) {
	if err := b.record(ctx, methodGetChatMember, map[string]any{"chat_id": chatID, "user_id": userID}); err != nil {
		return nil, err
	}

	return &yatgtypes.ChatMember{
		User:   *b.gen.Users.GetUser(yatggen.UserOptions{ID: userID}),
		Status: statusMember,
	}, nil
}

// GetChatMembersCount counts the members GetChatAdministrators reports.
func (b *Mockbot) GetChatMembersCount(ctx context.Context, chatID int64) (int, yaerrors.Error) {
	if err := b.record(ctx, methodGetChatMembersCount, map[string]any{"chat_id": chatID}); err != nil {
		return 0, err
	}

	return 2, nil
}

func (b *Mockbot) SetGameScore(
	ctx context.Context,
	userID int64,
	score int,
	opts GameScoreOptions,
) yaerrors.Error {
	params := map[string]any{"user_id": userID, "score": score}
	opts.apply(params)

	if opts.Force != nil {
		params["force"] = *opts.Force
	}

	if opts.DisableEditMessage != nil {
		params["disable_edit_message"] = *opts.DisableEditMessage
	}

	return b.record(ctx, methodSetGameScore, params)
}

// GetGameHighScores answers with the requested user in first place.
func (b *Mockbot) GetGameHighScores(
	ctx context.Context,
	userID int64,
	target EditTarget,
) ([]yatgtypes.GameHighScore, yaerrors.Error) {
	params := map[string]any{"user_id": userID}
	target.apply(params)

	if err := b.record(ctx, methodGetGameHighScores, params); err != nil {
		return nil, err
	}

	return []yatgtypes.GameHighScore{{
		Position: 1,
		User:     *b.gen.Users.GetUser(yatggen.UserOptions{ID: userID}),
	}}, nil
}
