package yamockbot

import (
	"context"
	"time"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yatggen"
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
)

// send records a message-producing call and echoes the message Telegram would
// return: written by the bot into the chat behind chatID.
func (b *Mockbot) send(
	ctx context.Context,
	method string,
	chatID int64,
	params map[string]any,
	send SendOptions,
	msgOpts yatggen.MessageOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	if err := send.apply(params); err != nil {
		return nil, err.Wrap(method)
	}

	if err := b.record(ctx, method, params); err != nil {
		return nil, err
	}

	msg, err := b.echo(chatID, send.ReplyToMessageID, msgOpts)
	if err != nil {
		return nil, err.Wrap(method)
	}

	return msg, nil
}

func (b *Mockbot) echo(
	chatID int64,
	replyToMessageID int,
	msgOpts yatggen.MessageOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	msgOpts.User = b.GetMe()

	if chatID != 0 {
		chat, err := b.gen.Chats.GetChat(yatggen.ChatOptions{ID: chatID})
		if err != nil {
			return nil, err
		}

		msgOpts.Chat = chat
	}

	if replyToMessageID != 0 {
		reply, err := b.gen.Messages.NewMessage(yatggen.MessageOptions{Chat: msgOpts.Chat})
		if err != nil {
			return nil, err
		}

		reply.MessageID = replyToMessageID
		msgOpts.ReplyToMessage = reply
	}

	return b.gen.Messages.NewMessage(msgOpts)
}

// SendMessage sends text, turning markup into entities when ParseMode is set.
// Invalid markup is reported after the call has been recorded.
func (b *Mockbot) SendMessage(
	ctx context.Context,
	chatID int64,
	text string,
	opts TextOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{"chat_id": chatID, "text": text}
	setIf(params, "parse_mode", opts.ParseMode.String())
	setIf(params, "disable_web_page_preview", opts.DisableWebPagePreview)

	return b.send(ctx, methodSendMessage, chatID, params, opts.SendOptions, yatggen.MessageOptions{
		Text:      text,
		ParseMode: opts.ParseMode,
	})
}

// ForwardMessage echoes a message forwarded from the channel fromChatID.
func (b *Mockbot) ForwardMessage(
	ctx context.Context,
	chatID int64,
	fromChatID int64,
	messageID int,
	opts SendOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{}
	setIf(params, "chat_id", chatID)
	setIf(params, "from_chat_id", fromChatID)
	setIf(params, "message_id", messageID)

	msgOpts := yatggen.MessageOptions{ForwardDate: time.Now()}

	if fromChatID != 0 {
		fromChat, err := b.gen.Chats.GetChat(yatggen.ChatOptions{
			ID:   fromChatID,
			Type: yatgtypes.ChatTypeChannel,
		})
		if err != nil {
			return nil, err.Wrap(methodForwardMessage)
		}

		msgOpts.ForwardFromChat = fromChat
		msgOpts.ForwardFromMessageID = messageID
	}

	return b.send(ctx, methodForwardMessage, chatID, params, opts, msgOpts)
}

// SendPhoto echoes a message with generated photo sizes.
func (b *Mockbot) SendPhoto(
	ctx context.Context,
	chatID int64,
	photo string,
	opts CaptionOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{"chat_id": chatID, "photo": photo}
	setIf(params, "caption", opts.Caption)

	return b.send(ctx, methodSendPhoto, chatID, params, opts.SendOptions, yatggen.MessageOptions{
		Caption:  opts.Caption,
		Generate: []yatggen.AttachmentKind{yatggen.AttachmentPhoto},
	})
}

func (b *Mockbot) SendAudio(
	ctx context.Context,
	chatID int64,
	audio string,
	opts AudioOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{"chat_id": chatID, "audio": audio}
	setIf(params, "duration", opts.Duration)
	setIf(params, "performer", opts.Performer)
	setIf(params, "title", opts.Title)
	setIf(params, "caption", opts.Caption)

	return b.send(ctx, methodSendAudio, chatID, params, opts.SendOptions, yatggen.MessageOptions{
		Caption: opts.Caption,
		Audio: &yatgtypes.Audio{
			FileID:    audio,
			Duration:  opts.Duration,
			Performer: opts.Performer,
			Title:     opts.Title,
		},
	})
}

func (b *Mockbot) SendDocument(
	ctx context.Context,
	chatID int64,
	document string,
	opts DocumentOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{"chat_id": chatID, "document": document}
	setIf(params, "filename", opts.FileName)
	setIf(params, "caption", opts.Caption)

	return b.send(ctx, methodSendDocument, chatID, params, opts.SendOptions, yatggen.MessageOptions{
		Caption: opts.Caption,
		Document: &yatgtypes.Document{
			FileID:   document,
			FileName: opts.FileName,
		},
	})
}

func (b *Mockbot) SendSticker(
	ctx context.Context,
	chatID int64,
	sticker string,
	opts SendOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{"chat_id": chatID, "sticker": sticker}

	return b.send(ctx, methodSendSticker, chatID, params, opts, yatggen.MessageOptions{
		Sticker: &yatgtypes.Sticker{FileID: sticker},
	})
}

func (b *Mockbot) SendVideo(
	ctx context.Context,
	chatID int64,
	video string,
	opts MediaOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{"chat_id": chatID, "video": video}
	setIf(params, "duration", opts.Duration)
	setIf(params, "caption", opts.Caption)

	return b.send(ctx, methodSendVideo, chatID, params, opts.SendOptions, yatggen.MessageOptions{
		Caption: opts.Caption,
		Video: &yatgtypes.Video{
			FileID:   video,
			Duration: opts.Duration,
		},
	})
}

func (b *Mockbot) SendVoice(
	ctx context.Context,
	chatID int64,
	voice string,
	opts MediaOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{"chat_id": chatID, "voice": voice}
	setIf(params, "duration", opts.Duration)
	setIf(params, "caption", opts.Caption)

	return b.send(ctx, methodSendVoice, chatID, params, opts.SendOptions, yatggen.MessageOptions{
		Caption: opts.Caption,
		Voice: &yatgtypes.Voice{
			FileID:   voice,
			Duration: opts.Duration,
		},
	})
}

func (b *Mockbot) SendLocation(
	ctx context.Context,
	chatID int64,
	latitude float64,
	longitude float64,
	opts SendOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{
		"chat_id":   chatID,
		"latitude":  latitude,
		"longitude": longitude,
	}

	return b.send(ctx, methodSendLocation, chatID, params, opts, yatggen.MessageOptions{
		Location: &yatgtypes.Location{Latitude: latitude, Longitude: longitude},
	})
}

func (b *Mockbot) SendVenue(
	ctx context.Context,
	chatID int64,
	latitude float64,
	longitude float64,
	title string,
	address string,
	opts VenueOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{
		"chat_id":   chatID,
		"latitude":  latitude,
		"longitude": longitude,
		"title":     title,
		"address":   address,
	}
	setIf(params, "foursquare_id", opts.FoursquareID)

	return b.send(ctx, methodSendVenue, chatID, params, opts.SendOptions, yatggen.MessageOptions{
		Venue: &yatgtypes.Venue{
			Location:     yatgtypes.Location{Latitude: latitude, Longitude: longitude},
			Title:        title,
			Address:      address,
			FoursquareID: opts.FoursquareID,
		},
	})
}

func (b *Mockbot) SendContact(
	ctx context.Context,
	chatID int64,
	phoneNumber string,
	firstName string,
	opts ContactOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{
		"chat_id":      chatID,
		"phone_number": phoneNumber,
		"first_name":   firstName,
	}
	setIf(params, "last_name", opts.LastName)

	return b.send(ctx, methodSendContact, chatID, params, opts.SendOptions, yatggen.MessageOptions{
		Contact: &yatgtypes.Contact{
			PhoneNumber: phoneNumber,
			FirstName:   firstName,
			LastName:    opts.LastName,
		},
	})
}

// SendGame echoes a plain message; games carry no generated payload.
func (b *Mockbot) SendGame(
	ctx context.Context,
	chatID int64,
	gameShortName string,
	opts SendOptions,
) (*yatgtypes.Message, yaerrors.Error) {
	params := map[string]any{"chat_id": chatID, "game_short_name": gameShortName}

	return b.send(ctx, methodSendGame, chatID, params, opts, yatggen.MessageOptions{})
}

// SendChatAction only records the call.
func (b *Mockbot) SendChatAction(ctx context.Context, chatID int64, action string) (bool, yaerrors.Error) {
	if err := b.record(ctx, methodSendChatAction, map[string]any{
		"chat_id": chatID,
		"action":  action,
	}); err != nil {
		return false, err
	}

	return true, nil
}
