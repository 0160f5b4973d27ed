package yaentityparser

import (
	"regexp"
	"strings"

	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
)

// rule matches one token kind. body and url are submatch group numbers; url is 0
// for tokens without a target.
type rule struct {
	kind yatgtypes.EntityType
	re   *regexp.Regexp
	body int
	url  int
}

type edge struct {
	kind    yatgtypes.EntityType
	pattern string
}

type grammar struct {
	dialect Dialect
	invalid *regexp.Regexp
	rules   []rule
}

var (
	markdownGrammar = &grammar{
		dialect: Markdown,
		// Pre and code share the backtick, so they are allowed to touch.
		invalid: invalidAdjacency(
			[]edge{
				{yatgtypes.EntityBold, mdBoldEdge},
				{yatgtypes.EntityItalic, mdItalicEdge},
				{yatgtypes.EntityPre, mdPreEdge},
				{yatgtypes.EntityCode, mdCodeEdge},
				{yatgtypes.EntityTextLink, mdLinkEdge},
			},
			[2]yatgtypes.EntityType{yatgtypes.EntityPre, yatgtypes.EntityCode},
		),
		// Order breaks ties between tokens starting at the same position.
		rules: []rule{
			{kind: yatgtypes.EntityPre, re: regexp.MustCompile(mdPre), body: 1},
			{kind: yatgtypes.EntityBold, re: regexp.MustCompile(mdBold), body: 1},
			{kind: yatgtypes.EntityItalic, re: regexp.MustCompile(mdItalic), body: 1},
			{kind: yatgtypes.EntityCode, re: regexp.MustCompile(mdCode), body: 1},
			{kind: yatgtypes.EntityTextLink, re: regexp.MustCompile(mdLink), body: 1, url: 2},
		},
	}

	htmlGrammar = &grammar{
		dialect: HTML,
		invalid: invalidAdjacency([]edge{
			{yatgtypes.EntityBold, htmlBoldEdge},
			{yatgtypes.EntityItalic, htmlItalicEdge},
			{yatgtypes.EntityPre, htmlPreEdge},
			{yatgtypes.EntityCode, htmlCodeEdge},
			{yatgtypes.EntityTextLink, htmlLinkEdge},
		}),
		rules: []rule{
			{kind: yatgtypes.EntityBold, re: regexp.MustCompile(htmlBold), body: 1},
			{kind: yatgtypes.EntityItalic, re: regexp.MustCompile(htmlItalic), body: 1},
			{kind: yatgtypes.EntityPre, re: regexp.MustCompile(htmlPre), body: 1},
			{kind: yatgtypes.EntityCode, re: regexp.MustCompile(htmlCode), body: 1},
			{kind: yatgtypes.EntityTextLink, re: regexp.MustCompile(htmlLink), body: 2, url: 1},
		},
	}
)

// invalidAdjacency compiles the cross product of edges of different kinds, in both
// orders, into a single alternation.
func invalidAdjacency(edges []edge, allowed ...[2]yatgtypes.EntityType) *regexp.Regexp {
	var pairs []string

	for _, first := range edges {
		for _, second := range edges {
			if first.kind == second.kind || isAllowedPair(first.kind, second.kind, allowed) {
				continue
			}

			pairs = append(pairs, "(?:"+first.pattern+")(?:"+second.pattern+")")
		}
	}

	return regexp.MustCompile(strings.Join(pairs, "|"))
}

func isAllowedPair(a, b yatgtypes.EntityType, allowed [][2]yatgtypes.EntityType) bool {
	for _, pair := range allowed {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}

	return false
}
