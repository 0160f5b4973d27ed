// Package yaentityparser turns Telegram style markup into plain text plus message
// entities, the way the Bot API does when a message is sent with a parse mode.
//
// Two dialects are understood:
//
//	Markdown: *bold* _italic_ `code` ```pre``` [text](url)
//	HTML:     <b>bold</b> <i>italic</i> <code>code</code> <pre>pre</pre> <a href="url">text</a>
//
// Offsets and lengths count UTF-16 code units of the returned plain text. After the
// markup is resolved the plain text is scanned for mentions, hashtags, bot commands
// and bare URLs.
//
// Two different tokens written back to back (for example "*_" or "<b><i>") are
// rejected with ErrNestedMarkup before anything is rewritten. Tokens are then
// collapsed one at a time, leftmost first, and the rewritten text is searched
// again after each one, so no token survives in the result. Unterminated
// delimiters are kept as literal text.
//
// Example usage:
//
//	text, entities, err := yaentityparser.Parse("we have *bold* text", yaentityparser.Markdown)
//	// text == "we have bold text"
//	// entities == []yatgtypes.MessageEntity{{Type: "bold", Offset: 8, Length: 4}}
package yaentityparser

import (
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
)

// EntityParser parses text written in one dialect.
type EntityParser interface {
	Parse(text string) (string, []yatgtypes.MessageEntity, yaerrors.Error)
	Dialect() Dialect
}

type entityParser struct {
	grammar *grammar
}

// NewParser returns a parser for dialect, or ErrUnknownDialect.
func NewParser(dialect Dialect) (EntityParser, yaerrors.Error) {
	if _, err := ParseDialect(string(dialect)); err != nil {
		return nil, err.Wrap("new entity parser")
	}

	return &entityParser{grammar: dialect.grammar()}, nil
}

// NewMarkdownParser returns a parser for the Markdown dialect.
func NewMarkdownParser() EntityParser {
	return &entityParser{grammar: markdownGrammar}
}

// NewHTMLParser returns a parser for the HTML dialect.
func NewHTMLParser() EntityParser {
	return &entityParser{grammar: htmlGrammar}
}

// Parse strips the markup of dialect from text and returns the plain text with its
// entities. The error is nil or wraps ErrMarkup; no partial result is returned.
func Parse(
	text string,
	dialect Dialect,
) (string, []yatgtypes.MessageEntity, yaerrors.Error) {
	parser, err := NewParser(dialect)
	if err != nil {
		return "", nil, err
	}

	return parser.Parse(text)
}

func (p *entityParser) Dialect() Dialect {
	return p.grammar.dialect
}

// Parse implements EntityParser.
//
// Markup entities come first, in the order their tokens are resolved, then mentions,
// hashtags, bot commands and urls.
func (p *entityParser) Parse(text string) (string, []yatgtypes.MessageEntity, yaerrors.Error) {
	if invalid := p.grammar.invalid.FindString(text); invalid != "" {
		return "", nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrNestedMarkup,
			fmt.Sprintf("nested %s is not supported, your text: %s", p.grammar.dialect, invalid),
		)
	}

	plain, entities := p.grammar.rewrite(text)

	return plain, append(entities, DetectEntities(plain)...), nil
}

// span is an entity whose bounds are byte offsets into the text being rewritten.
type span struct {
	entity     yatgtypes.MessageEntity
	start, end int
}

// rewrite collapses the leftmost token of the current text to its body until no
// token is left. Spans recorded earlier are moved every time delimiters disappear,
// so tokens that straddle each other still end up with bounds in the final text.
func (g *grammar) rewrite(text string) (string, []yatgtypes.MessageEntity) {
	var spans []span

	for {
		best, loc := g.nextToken(text)
		if best < 0 {
			break
		}

		r := g.rules[best]
		bodyStart, bodyEnd := loc[2*r.body], loc[2*r.body+1]

		for i := range spans {
			spans[i].start = collapse(spans[i].start, loc[0], bodyStart, bodyEnd, loc[1])
			spans[i].end = collapse(spans[i].end, loc[0], bodyStart, bodyEnd, loc[1])
		}

		if bodyEnd > bodyStart {
			s := span{
				entity: yatgtypes.MessageEntity{Type: r.kind},
				start:  loc[0],
				end:    loc[0] + bodyEnd - bodyStart,
			}

			if r.url > 0 {
				s.entity.URL = text[loc[2*r.url]:loc[2*r.url+1]]
			}

			spans = append(spans, s)
		}

		text = text[:loc[0]] + text[bodyStart:bodyEnd] + text[loc[1]:]
	}

	entities := make([]yatgtypes.MessageEntity, 0, len(spans))

	for _, s := range spans {
		if s.end <= s.start {
			continue
		}

		s.entity.Offset = utf16Len(text[:s.start])
		s.entity.Length = utf16Len(text[s.start:s.end])
		entities = append(entities, s.entity)
	}

	return text, entities
}

// nextToken returns the rule whose match starts first in text and that match, or
// -1. Rule order breaks ties.
func (g *grammar) nextToken(text string) (int, []int) {
	best := -1

	var bestLoc []int

	for i, r := range g.rules {
		loc := r.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		if best < 0 || loc[0] < bestLoc[0] {
			best, bestLoc = i, loc
		}
	}

	return best, bestLoc
}

// collapse maps byte offset p onto the text left after the token [start, end) is
// replaced by its body [bodyStart, bodyEnd). Offsets inside a delimiter snap to
// the nearest body edge.
func collapse(p, start, bodyStart, bodyEnd, end int) int {
	switch {
	case p <= start:
		return p
	case p <= bodyStart:
		return start
	case p <= bodyEnd:
		return p - (bodyStart - start)
	case p <= end:
		return start + bodyEnd - bodyStart
	default:
		return p - (end - start) + (bodyEnd - bodyStart)
	}
}
