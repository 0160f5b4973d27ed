package yatggen

import (
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AttachmentKind names a message attachment that the generator can invent.
type AttachmentKind string

const (
	AttachmentPhoto    AttachmentKind = "photo"
	AttachmentAudio    AttachmentKind = "audio"
	AttachmentDocument AttachmentKind = "document"
	AttachmentSticker  AttachmentKind = "sticker"
	AttachmentVideo    AttachmentKind = "video"
	AttachmentVoice    AttachmentKind = "voice"
	AttachmentContact  AttachmentKind = "contact"
	AttachmentLocation AttachmentKind = "location"
	AttachmentVenue    AttachmentKind = "venue"
)

// titled upper-cases the first letter of every word. Casers keep state, so one is
// built per call.
func titled(s string) string {
	return cases.Title(language.English).String(s)
}

func fileID() string {
	return uuid.NewString()
}

func (s *source) fileSize() int {
	return 1 + s.intN(maxGeneratedFileSize)
}

func (s *source) duration() int {
	return 1 + s.intN(maxGeneratedDuration)
}

// photo returns the same picture in increasing sizes, as Telegram does.
func (s *source) photo() []yatgtypes.PhotoSize {
	sizes := make([]yatgtypes.PhotoSize, 0, len(photoSides))

	for _, side := range photoSides {
		sizes = append(sizes, yatgtypes.PhotoSize{
			FileID:   fileID(),
			Width:    side,
			Height:   side,
			FileSize: s.fileSize(),
		})
	}

	return sizes
}

func (s *source) thumb() *yatgtypes.PhotoSize {
	return &yatgtypes.PhotoSize{
		FileID:   fileID(),
		Width:    photoSides[0],
		Height:   photoSides[0],
		FileSize: s.fileSize(),
	}
}

func (s *source) location() *yatgtypes.Location {
	return &yatgtypes.Location{
		Longitude: s.float(-180, 180),
		Latitude:  s.float(-90, 90),
	}
}

func (s *source) venue() *yatgtypes.Venue {
	return &yatgtypes.Venue{
		Location: *s.location(),
		Title:    titled("the " + pick(s, venueAdjectives) + " " + pick(s, venueNouns)),
		Address:  s.digits(2) + " " + pick(s, streetNames),
	}
}

func (s *source) contact(user *yatgtypes.User) *yatgtypes.Contact {
	return &yatgtypes.Contact{
		PhoneNumber: "+31" + s.digits(phoneDigits),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		UserID:      user.ID,
	}
}

// attach fills the field of msg that matches kind with random content.
func (g *MessageGenerator) attach(msg *yatgtypes.Message, kind AttachmentKind) bool {
	s := g.src

	switch kind {
	case AttachmentPhoto:
		msg.Photo = s.photo()
	case AttachmentAudio:
		msg.Audio = &yatgtypes.Audio{
			FileID:    fileID(),
			Duration:  s.duration(),
			Performer: pick(s, firstNames) + " " + pick(s, lastNames),
			Title:     titled(pick(s, venueAdjectives) + " " + pick(s, venueNouns)),
			MimeType:  "audio/mpeg",
			FileSize:  s.fileSize(),
		}
	case AttachmentDocument:
		msg.Document = &yatgtypes.Document{
			FileID:   fileID(),
			Thumb:    s.thumb(),
			FileName: pick(s, venueNouns) + ".pdf",
			MimeType: "application/pdf",
			FileSize: s.fileSize(),
		}
	case AttachmentSticker:
		msg.Sticker = &yatgtypes.Sticker{
			FileID:   fileID(),
			Width:    stickerSide,
			Height:   stickerSide,
			Thumb:    s.thumb(),
			Emoji:    pick(s, stickerEmojis),
			FileSize: s.fileSize(),
		}
	case AttachmentVideo:
		msg.Video = &yatgtypes.Video{
			FileID:   fileID(),
			Width:    photoSides[2],
			Height:   photoSides[1],
			Duration: s.duration(),
			Thumb:    s.thumb(),
			MimeType: "video/mp4",
			FileSize: s.fileSize(),
		}
	case AttachmentVoice:
		msg.Voice = &yatgtypes.Voice{
			FileID:   fileID(),
			Duration: s.duration(),
			MimeType: "audio/ogg",
			FileSize: s.fileSize(),
		}
	case AttachmentContact:
		msg.Contact = s.contact(g.users.GetUser(UserOptions{}))
	case AttachmentLocation:
		msg.Location = s.location()
	case AttachmentVenue:
		msg.Venue = s.venue()
	default:
		return false
	}

	return true
}
