package yatgtypes

import (
	"github.com/gotd/td/tg"
	tele "gopkg.in/telebot.v4"
)

// EntityType is the Bot API name of a message entity kind.
type EntityType string

const (
	EntityBold       EntityType = "bold"
	EntityItalic     EntityType = "italic"
	EntityCode       EntityType = "code"
	EntityPre        EntityType = "pre"
	EntityTextLink   EntityType = "text_link"
	EntityMention    EntityType = "mention"
	EntityHashtag    EntityType = "hashtag"
	EntityBotCommand EntityType = "bot_command"
	EntityURL        EntityType = "url"
)

// MessageEntity marks a span of message text. Offset and Length count UTF-16 code
// units. URL is set only for text_link entities.
type MessageEntity struct {
	Type   EntityType `json:"type"`
	Offset int        `json:"offset"`
	Length int        `json:"length"`
	URL    string     `json:"url,omitempty"`
}

// End returns the offset just past the entity.
func (e MessageEntity) End() int {
	return e.Offset + e.Length
}

// ToTG converts the entity to its MTProto counterpart. Unknown types map to
// tg.MessageEntityUnknown so the span is not lost.
func (e MessageEntity) ToTG() tg.MessageEntityClass {
	switch e.Type {
	case EntityBold:
		return &tg.MessageEntityBold{Offset: e.Offset, Length: e.Length}
	case EntityItalic:
		return &tg.MessageEntityItalic{Offset: e.Offset, Length: e.Length}
	case EntityCode:
		return &tg.MessageEntityCode{Offset: e.Offset, Length: e.Length}
	case EntityPre:
		return &tg.MessageEntityPre{Offset: e.Offset, Length: e.Length}
	case EntityTextLink:
		return &tg.MessageEntityTextURL{Offset: e.Offset, Length: e.Length, URL: e.URL}
	case EntityMention:
		return &tg.MessageEntityMention{Offset: e.Offset, Length: e.Length}
	case EntityHashtag:
		return &tg.MessageEntityHashtag{Offset: e.Offset, Length: e.Length}
	case EntityBotCommand:
		return &tg.MessageEntityBotCommand{Offset: e.Offset, Length: e.Length}
	case EntityURL:
		return &tg.MessageEntityURL{Offset: e.Offset, Length: e.Length}
	default:
		return &tg.MessageEntityUnknown{Offset: e.Offset, Length: e.Length}
	}
}

// ToTelebot converts the entity to the telebot Bot API representation.
func (e MessageEntity) ToTelebot() tele.MessageEntity {
	return tele.MessageEntity{
		Type:   tele.EntityType(e.Type),
		Offset: e.Offset,
		Length: e.Length,
		URL:    e.URL,
	}
}

func EntitiesToTG(entities []MessageEntity) []tg.MessageEntityClass {
	res := make([]tg.MessageEntityClass, 0, len(entities))

	for _, e := range entities {
		res = append(res, e.ToTG())
	}

	return res
}

func EntitiesToTelebot(entities []MessageEntity) []tele.MessageEntity {
	res := make([]tele.MessageEntity, 0, len(entities))

	for _, e := range entities {
		res = append(res, e.ToTelebot())
	}

	return res
}
