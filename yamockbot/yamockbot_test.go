package yamockbot_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/YaCodeDev/GoYaTgMock/config"
	"github.com/YaCodeDev/GoYaTgMock/yaentityparser"
	"github.com/YaCodeDev/GoYaTgMock/yamockbot"
	"github.com/YaCodeDev/GoYaTgMock/yarecorder"
	"github.com/YaCodeDev/GoYaTgMock/yatggen"
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

func lastCall(t *testing.T, bot *yamockbot.Mockbot) yarecorder.SentCall {
	t.Helper()

	calls, err := bot.SentMessages(context.Background())
	require.Nil(t, err)
	require.NotEmpty(t, calls)

	return calls[len(calls)-1]
}

func TestMockbot_Identity(t *testing.T) {
	t.Parallel()

	t.Run("[GetMe] - default username", func(t *testing.T) {
		t.Parallel()

		bot := yamockbot.New()

		expected := &yatgtypes.User{
			ID:        0,
			IsBot:     true,
			FirstName: "Mockbot",
			LastName:  "Bot",
			Username:  "MockBot",
		}

		if diff := cmp.Diff(expected, bot.GetMe()); diff != "" {
			t.Errorf("bot user mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, "@MockBot", bot.Name())
		assert.Equal(t, int64(0), bot.ID())
	})

	t.Run("[GetMe] - custom username", func(t *testing.T) {
		t.Parallel()

		bot := yamockbot.New(yamockbot.WithUsername("ShopBot"))

		assert.Equal(t, "ShopBot", bot.GetMe().Username)
		assert.Equal(t, "ShopBot", bot.Username())
		assert.Equal(t, "@ShopBot", bot.Name())
		assert.Equal(t, "ShopBot", bot.Generator().Messages.Bot().Username)
	})
}

func TestMockbot_SendMessage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("[SendMessage] - records params and echoes message", func(t *testing.T) {
		t.Parallel()

		bot := yamockbot.New(yamockbot.WithSeed(7))

		msg, err := bot.SendMessage(ctx, 42, "*hi* there", yamockbot.TextOptions{
			ParseMode: yaentityparser.Markdown,
		})
		require.Nil(t, err)

		assert.Equal(t, "hi there", msg.Text)
		assert.Equal(t, int64(42), msg.Chat.ID)
		assert.Equal(t, yatgtypes.ChatTypePrivate, msg.Chat.Type)
		assert.Equal(t, bot.GetMe(), msg.From)

		if diff := cmp.Diff([]yatgtypes.MessageEntity{
			{Type: yatgtypes.EntityBold, Offset: 0, Length: 2},
		}, msg.Entities); diff != "" {
			t.Errorf("entities mismatch (-want +got):\n%s", diff)
		}

		call := lastCall(t, bot)

		expected := map[string]any{
			"chat_id":    int64(42),
			"text":       "*hi* there",
			"parse_mode": "Markdown",
		}

		assert.Equal(t, "sendMessage", call.Method)
		assert.Equal(t, expected, call.Params)
	})

	t.Run("[SendMessage] - optional fields are recorded", func(t *testing.T) {
		t.Parallel()

		bot := yamockbot.New()

		markup := &tele.ReplyMarkup{
			InlineKeyboard: [][]tele.InlineButton{{{Text: "ok"}}},
		}

		msg, err := bot.SendMessage(ctx, -100, "pick one", yamockbot.TextOptions{
			SendOptions: yamockbot.SendOptions{
				DisableNotification: true,
				ReplyToMessageID:    17,
				ReplyMarkup:         markup,
			},
			DisableWebPagePreview: true,
		})
		require.Nil(t, err)

		require.NotNil(t, msg.ReplyToMessage)
		assert.Equal(t, 17, msg.ReplyToMessage.MessageID)
		assert.Equal(t, msg.Chat, msg.ReplyToMessage.Chat)
		assert.Equal(t, yatgtypes.ChatTypeGroup, msg.Chat.Type)

		call := lastCall(t, bot)

		assert.Equal(t, 17, call.Params["reply_to_message_id"])
		assert.Equal(t, true, call.Params["disable_notification"])
		assert.Equal(t, true, call.Params["disable_web_page_preview"])
		assert.NotContains(t, call.Params, "parse_mode")

		recorded := call.Param("reply_markup")
		assert.Contains(t, recorded, `"inline_keyboard"`)
		assert.Contains(t, recorded, `"text":"ok"`)
	})

	t.Run("[SendMessage] - reply markup string is kept", func(t *testing.T) {
		t.Parallel()

		bot := yamockbot.New()

		_, err := bot.SendMessage(ctx, 1, "x", yamockbot.TextOptions{
			SendOptions: yamockbot.SendOptions{ReplyMarkup: `{"remove_keyboard":true}`},
		})
		require.Nil(t, err)

		assert.Equal(t, `{"remove_keyboard":true}`, lastCall(t, bot).Param("reply_markup"))
	})

	t.Run("[SendMessage] - bad markup fails after recording", func(t *testing.T) {
		t.Parallel()

		bot := yamockbot.New()

		msg, err := bot.SendMessage(ctx, 1, "bad *_double_* markdown", yamockbot.TextOptions{
			ParseMode: yaentityparser.Markdown,
		})
		assert.Nil(t, msg)
		require.NotNil(t, err)
		assert.ErrorIs(t, err, yaentityparser.ErrNestedMarkup)
		assert.Equal(t, "sendMessage", lastCall(t, bot).Method)
	})
}

func TestMockbot_Media(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bot := yamockbot.New()

	cases := []struct {
		name   string
		send   func() (*yatgtypes.Message, error)
		method string
		check  func(t *testing.T, msg *yatgtypes.Message)
	}{
		{
			name: "photo",
			send: func() (*yatgtypes.Message, error) {
				return unwrap(bot.SendPhoto(ctx, 5, "photo-id", yamockbot.CaptionOptions{Caption: "look"}))
			},
			method: "sendPhoto",
			check: func(t *testing.T, msg *yatgtypes.Message) {
				assert.NotEmpty(t, msg.Photo)
				assert.Equal(t, "look", msg.Caption)
			},
		},
		{
			name: "audio",
			send: func() (*yatgtypes.Message, error) {
				return unwrap(bot.SendAudio(ctx, 5, "audio-id", yamockbot.AudioOptions{
					Duration:  30,
					Performer: "Band",
					Title:     "Song",
				}))
			},
			method: "sendAudio",
			check: func(t *testing.T, msg *yatgtypes.Message) {
				require.NotNil(t, msg.Audio)
				assert.Equal(t, yatgtypes.Audio{
					FileID:    "audio-id",
					Duration:  30,
					Performer: "Band",
					Title:     "Song",
				}, *msg.Audio)
			},
		},
		{
			name: "document",
			send: func() (*yatgtypes.Message, error) {
				return unwrap(bot.SendDocument(ctx, 5, "doc-id", yamockbot.DocumentOptions{FileName: "a.pdf"}))
			},
			method: "sendDocument",
			check: func(t *testing.T, msg *yatgtypes.Message) {
				require.NotNil(t, msg.Document)
				assert.Equal(t, "a.pdf", msg.Document.FileName)
			},
		},
		{
			name: "sticker",
			send: func() (*yatgtypes.Message, error) {
				return unwrap(bot.SendSticker(ctx, 5, "sticker-id", yamockbot.SendOptions{}))
			},
			method: "sendSticker",
			check: func(t *testing.T, msg *yatgtypes.Message) {
				require.NotNil(t, msg.Sticker)
				assert.Equal(t, "sticker-id", msg.Sticker.FileID)
			},
		},
		{
			name: "video",
			send: func() (*yatgtypes.Message, error) {
				return unwrap(bot.SendVideo(ctx, 5, "video-id", yamockbot.MediaOptions{Duration: 12}))
			},
			method: "sendVideo",
			check: func(t *testing.T, msg *yatgtypes.Message) {
				require.NotNil(t, msg.Video)
				assert.Equal(t, 12, msg.Video.Duration)
			},
		},
		{
			name: "voice",
			send: func() (*yatgtypes.Message, error) {
				return unwrap(bot.SendVoice(ctx, 5, "voice-id", yamockbot.MediaOptions{Caption: "listen"}))
			},
			method: "sendVoice",
			check: func(t *testing.T, msg *yatgtypes.Message) {
				require.NotNil(t, msg.Voice)
				assert.Equal(t, "listen", msg.Caption)
			},
		},
		{
			name: "location",
			send: func() (*yatgtypes.Message, error) {
				return unwrap(bot.SendLocation(ctx, 5, 52.37, 4.89, yamockbot.SendOptions{}))
			},
			method: "sendLocation",
			check: func(t *testing.T, msg *yatgtypes.Message) {
				assert.Equal(t, &yatgtypes.Location{Latitude: 52.37, Longitude: 4.89}, msg.Location)
			},
		},
		{
			name: "venue",
			send: func() (*yatgtypes.Message, error) {
				return unwrap(bot.SendVenue(ctx, 5, 1, 2, "Cafe", "Main st", yamockbot.VenueOptions{FoursquareID: "4sq"}))
			},
			method: "sendVenue",
			check: func(t *testing.T, msg *yatgtypes.Message) {
				require.NotNil(t, msg.Venue)
				assert.Equal(t, "Cafe", msg.Venue.Title)
				assert.Equal(t, "4sq", msg.Venue.FoursquareID)
			},
		},
		{
			name: "contact",
			send: func() (*yatgtypes.Message, error) {
				return unwrap(bot.SendContact(ctx, 5, "+100", "Ann", yamockbot.ContactOptions{LastName: "Lee"}))
			},
			method: "sendContact",
			check: func(t *testing.T, msg *yatgtypes.Message) {
				assert.Equal(t, &yatgtypes.Contact{PhoneNumber: "+100", FirstName: "Ann", LastName: "Lee"}, msg.Contact)
			},
		},
		{
			name: "game",
			send: func() (*yatgtypes.Message, error) {
				return unwrap(bot.SendGame(ctx, 5, "tetris", yamockbot.SendOptions{}))
			},
			method: "sendGame",
			check: func(t *testing.T, msg *yatgtypes.Message) {
				assert.Equal(t, int64(5), msg.Chat.ID)
			},
		},
	}

	for _, tc := range cases {
		t.Run("[Send] - "+tc.name, func(t *testing.T) {
			msg, err := tc.send()
			require.NoError(t, err)
			require.NotNil(t, msg)

			assert.Equal(t, tc.method, lastCall(t, bot).Method)
			assert.True(t, msg.From.IsBot)
			tc.check(t, msg)
		})
	}
}

func unwrap[T any](v T, err error) (T, error) {
	return v, err
}

func TestMockbot_ForwardMessage(t *testing.T) {
	t.Parallel()

	bot := yamockbot.New()

	msg, err := bot.ForwardMessage(context.Background(), 7, -1001, 99, yamockbot.SendOptions{})
	require.Nil(t, err)

	require.NotNil(t, msg.ForwardFromChat)
	assert.Equal(t, int64(-1001), msg.ForwardFromChat.ID)
	assert.Equal(t, yatgtypes.ChatTypeChannel, msg.ForwardFromChat.Type)
	assert.Equal(t, 99, msg.ForwardFromMessageID)
	assert.NotZero(t, msg.ForwardDate)

	call := lastCall(t, bot)
	assert.Equal(t, "forwardMessage", call.Method)
	assert.Equal(t, int64(-1001), call.Params["from_chat_id"])
	assert.Equal(t, 99, call.Params["message_id"])
}

func TestMockbot_SendChatAction(t *testing.T) {
	t.Parallel()

	bot := yamockbot.New()

	ok, err := bot.SendChatAction(context.Background(), 3, "typing")
	require.Nil(t, err)
	assert.True(t, ok)

	call := lastCall(t, bot)
	assert.Equal(t, "sendChatAction", call.Method)
	assert.Equal(t, "typing", call.Param("action"))
}

func TestMockbot_Edits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("[Edit] - target is required", func(t *testing.T) {
		t.Parallel()

		bot := yamockbot.New()

		_, err := bot.EditMessageText(ctx, "x", yamockbot.EditTextOptions{
			EditTarget: yamockbot.EditTarget{ChatID: 1},
		})
		require.NotNil(t, err)
		assert.ErrorIs(t, err, yamockbot.ErrBadRequest)

		_, err = bot.EditMessageCaption(ctx, yamockbot.EditCaptionOptions{Caption: "c"})
		require.NotNil(t, err)
		assert.ErrorIs(t, err, yamockbot.ErrBadRequest)

		_, err = bot.EditMessageReplyMarkup(ctx, yamockbot.EditReplyMarkupOptions{
			EditTarget: yamockbot.EditTarget{MessageID: 3},
		})
		require.NotNil(t, err)
		assert.ErrorIs(t, err, yamockbot.ErrBadRequest)

		calls, yaErr := bot.SentMessages(ctx)
		require.Nil(t, yaErr)
		assert.Empty(t, calls)
	})

	t.Run("[EditMessageText] - chat and message id", func(t *testing.T) {
		t.Parallel()

		bot := yamockbot.New()

		msg, err := bot.EditMessageText(ctx, "<b>new</b>", yamockbot.EditTextOptions{
			EditTarget: yamockbot.EditTarget{ChatID: 8, MessageID: 55},
			ParseMode:  yaentityparser.HTML,
		})
		require.Nil(t, err)

		assert.Equal(t, 55, msg.MessageID)
		assert.Equal(t, "new", msg.Text)
		assert.NotZero(t, msg.EditDate)
		assert.Equal(t, int64(8), msg.Chat.ID)

		call := lastCall(t, bot)
		assert.Equal(t, "editMessageText", call.Method)
		assert.Equal(t, "HTML", call.Param("parse_mode"))
		assert.Equal(t, 55, call.Params["message_id"])
	})

	t.Run("[EditMessageCaption] - inline message", func(t *testing.T) {
		t.Parallel()

		bot := yamockbot.New()

		msg, err := bot.EditMessageCaption(ctx, yamockbot.EditCaptionOptions{
			EditTarget: yamockbot.EditTarget{InlineMessageID: "inline-1"},
			Caption:    "fresh",
		})
		require.Nil(t, err)

		assert.Equal(t, "fresh", msg.Caption)
		assert.NotEmpty(t, msg.Photo)

		call := lastCall(t, bot)
		assert.Equal(t, "editMessageCaption", call.Method)
		assert.Equal(t, "inline-1", call.Param("inline_message_id"))
		assert.NotContains(t, call.Params, "chat_id")
	})

	t.Run("[EditMessageReplyMarkup] - markup is recorded", func(t *testing.T) {
		t.Parallel()

		bot := yamockbot.New()

		_, err := bot.EditMessageReplyMarkup(ctx, yamockbot.EditReplyMarkupOptions{
			EditTarget:  yamockbot.EditTarget{ChatID: 2, MessageID: 4},
			ReplyMarkup: &tele.ReplyMarkup{RemoveKeyboard: true},
		})
		require.Nil(t, err)

		call := lastCall(t, bot)
		assert.Equal(t, "editMessageReplyMarkup", call.Method)
		assert.Contains(t, call.Param("reply_markup"), `"remove_keyboard":true`)
	})
}

func TestMockbot_RecordOnlyMethods(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bot := yamockbot.New()

	zero := 0
	offset := ""

	require.Nil(t, bot.AnswerInlineQuery(ctx, "iq-1", []any{map[string]string{"id": "r1"}},
		yamockbot.InlineQueryAnswerOptions{}))
	require.Nil(t, bot.AnswerInlineQuery(ctx, "iq-2", nil,
		yamockbot.InlineQueryAnswerOptions{CacheTime: &zero, NextOffset: &offset, IsPersonal: true}))
	require.Nil(t, bot.AnswerCallbackQuery(ctx, "cb-1", yamockbot.CallbackQueryAnswerOptions{
		Text:      "done",
		ShowAlert: true,
	}))

	photos, err := bot.GetUserProfilePhotos(ctx, 11, yamockbot.ProfilePhotosOptions{})
	require.Nil(t, err)
	assert.Equal(t, 1, photos.TotalCount)
	require.Len(t, photos.Photos, 1)
	assert.NotEmpty(t, photos.Photos[0])

	file, err := bot.GetFile(ctx, "file-1")
	require.Nil(t, err)
	assert.Equal(t, "file-1", file.FileID)

	require.Nil(t, bot.KickChatMember(ctx, -5, 11))
	require.Nil(t, bot.UnbanChatMember(ctx, -5, 11))
	require.Nil(t, bot.LeaveChat(ctx, -5))

	chat, err := bot.GetChat(ctx, -5)
	require.Nil(t, err)
	assert.Equal(t, int64(-5), chat.ID)
	assert.Equal(t, yatgtypes.ChatTypeGroup, chat.Type)

	admins, err := bot.GetChatAdministrators(ctx, -5)
	require.Nil(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, *bot.GetMe(), admins[1].User)

	member, err := bot.GetChatMember(ctx, -5, 11)
	require.Nil(t, err)
	assert.Equal(t, int64(11), member.User.ID)

	count, err := bot.GetChatMembersCount(ctx, -5)
	require.Nil(t, err)
	assert.Equal(t, len(admins), count)

	force := true
	require.Nil(t, bot.SetGameScore(ctx, 11, 500, yamockbot.GameScoreOptions{
		EditTarget: yamockbot.EditTarget{InlineMessageID: "inline-2"},
		Force:      &force,
	}))

	scores, err := bot.GetGameHighScores(ctx, 11, yamockbot.EditTarget{ChatID: -5, MessageID: 1})
	require.Nil(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, int64(11), scores[0].User.ID)

	calls, err := bot.SentMessages(ctx)
	require.Nil(t, err)

	methods := make([]string, 0, len(calls))
	for _, call := range calls {
		methods = append(methods, call.Method)
	}

	assert.Equal(t, []string{
		"answerInlineQuery",
		"answerInlineQuery",
		"answerCallbackQuery",
		"getUserProfilePhotos",
		"getFile",
		"kickChatMember",
		"unbanChatMember",
		"leaveChat",
		"getChat",
		"getChatAdministrators",
		"getChatMember",
		"getChatMembersCount",
		"setGameScore",
		"getGameHighScores",
	}, methods)

	assert.Equal(t, `[{"id":"r1"}]`, calls[0].Param("results"))
	assert.Equal(t, 300, calls[0].Params["cache_time"])
	assert.Equal(t, "null", calls[1].Param("results"))
	assert.Equal(t, 0, calls[1].Params["cache_time"])
	assert.Equal(t, "", calls[1].Params["next_offset"])
	assert.Equal(t, true, calls[1].Params["is_personal"])
	assert.Equal(t, "done", calls[2].Param("text"))
	assert.Equal(t, 100, calls[3].Params["limit"])
	assert.NotContains(t, calls[3].Params, "offset")
	assert.Equal(t, true, calls[12].Params["force"])
	assert.NotContains(t, calls[12].Params, "disable_edit_message")
	assert.Equal(t, "inline-2", calls[12].Param("inline_message_id"))
}

func TestMockbot_Updates(t *testing.T) {
	t.Parallel()

	bot := yamockbot.New()
	gen := bot.Generator()

	first, err := gen.Messages.GetMessage(yatggen.MessageOptions{Text: "one"})
	require.Nil(t, err)

	second := gen.InlineQueries.GetInlineQuery(yatggen.InlineQueryOptions{})

	bot.InsertUpdate(first)
	bot.InsertUpdate(second)

	updates := bot.GetUpdates()
	require.Len(t, updates, 2)
	assert.Same(t, first, updates[0])
	assert.Same(t, second, updates[1])
	assert.Less(t, updates[0].UpdateID, updates[1].UpdateID)

	assert.Empty(t, bot.GetUpdates())
}

func TestMockbot_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bot := yamockbot.New()

	_, err := bot.SendMessage(ctx, 1, "x", yamockbot.TextOptions{})
	require.Nil(t, err)

	require.Nil(t, bot.Reset(ctx))

	calls, err := bot.SentMessages(ctx)
	require.Nil(t, err)
	assert.Empty(t, calls)
}

func TestMockbot_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bot := yamockbot.New()

	const workers = 32

	var wg sync.WaitGroup

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := bot.SendMessage(ctx, int64(i+1), "hello", yamockbot.TextOptions{})
			assert.Nil(t, err)
		}()
	}

	wg.Wait()

	calls, err := bot.SentMessages(ctx)
	require.Nil(t, err)
	assert.Len(t, calls, workers)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	base := func() *config.Config {
		return &config.Config{BotUsername: "CfgBot", Seed: 3}
	}

	t.Run("[Memory] - default recorder", func(t *testing.T) {
		t.Parallel()

		bot, err := yamockbot.NewFromConfig(ctx, base(), nil)
		require.Nil(t, err)

		assert.Equal(t, "@CfgBot", bot.Name())
	})

	t.Run("[SQLite] - calls survive in the database", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		cfg.Recorder = config.RecorderSQLite
		cfg.SQLiteDSN = filepath.Join(t.TempDir(), "calls.db")

		bot, err := yamockbot.NewFromConfig(ctx, cfg, nil)
		require.Nil(t, err)

		_, err = bot.SendMessage(ctx, 9, "persisted", yamockbot.TextOptions{})
		require.Nil(t, err)

		call := lastCall(t, bot)
		assert.Equal(t, "sendMessage", call.Method)
		assert.Equal(t, "persisted", call.Param("text"))
	})

	t.Run("[Redis] - calls go to the configured list", func(t *testing.T) {
		t.Parallel()

		mr, mrErr := miniredis.Run()
		require.NoError(t, mrErr)
		t.Cleanup(mr.Close)

		cfg := base()
		cfg.Recorder = config.RecorderRedis
		cfg.RedisAddr = mr.Addr()
		cfg.RedisKey = "cfg:sent"

		bot, err := yamockbot.NewFromConfig(ctx, cfg, nil)
		require.Nil(t, err)

		_, err = bot.SendMessage(ctx, 9, "shared", yamockbot.TextOptions{})
		require.Nil(t, err)

		assert.Equal(t, "shared", lastCall(t, bot).Param("text"))

		items, mrErr := mr.List("cfg:sent")
		require.NoError(t, mrErr)
		assert.Len(t, items, 1)
	})

	t.Run("[Unknown] - recorder kind is rejected", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		cfg.Recorder = "disk"

		bot, err := yamockbot.NewFromConfig(ctx, cfg, nil)
		assert.Nil(t, bot)
		require.NotNil(t, err)
		assert.ErrorIs(t, err, yamockbot.ErrUnknownRecorder)
	})
}
