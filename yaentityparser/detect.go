package yaentityparser

import (
	"regexp"

	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
)

// DetectEntities scans plain text for mentions, hashtags, bot commands and urls,
// in that order. It never fails and never looks at markup.
func DetectEntities(plain string) []yatgtypes.MessageEntity {
	counter := &unitCounter{text: plain}

	entities := make([]yatgtypes.MessageEntity, 0)
	entities = appendMatches(entities, counter, plain, mentionRegexp, yatgtypes.EntityMention, nil, true)
	entities = appendMatches(entities, counter, plain, hashtagRegexp, yatgtypes.EntityHashtag, nil, true)
	entities = appendMatches(
		entities,
		counter,
		plain,
		botCommandRegexp,
		yatgtypes.EntityBotCommand,
		precededByWordOrSlash,
		true,
	)
	entities = appendMatches(entities, counter, plain, urlRegexp, yatgtypes.EntityURL, nil, false)

	return entities
}

// appendMatches appends one entity per match of re. A match is dropped when reject
// returns true for its start offset. With bounded set a match is cut back to the
// last word boundary inside it, or dropped when there is none.
func appendMatches(
	entities []yatgtypes.MessageEntity,
	counter *unitCounter,
	plain string,
	re *regexp.Regexp,
	kind yatgtypes.EntityType,
	reject func(s string, start int) bool,
	bounded bool,
) []yatgtypes.MessageEntity {
	for _, loc := range re.FindAllStringIndex(plain, -1) {
		if reject != nil && reject(plain, loc[0]) {
			continue
		}

		if bounded {
			boundary, ok := wordBoundaryEnd(plain, loc[0], loc[1])
			if !ok {
				continue
			}

			loc[1] = boundary
		}

		start := counter.at(loc[0])
		end := counter.at(loc[1])

		entities = append(entities, yatgtypes.MessageEntity{
			Type:   kind,
			Offset: start,
			Length: end - start,
		})
	}

	return entities
}
