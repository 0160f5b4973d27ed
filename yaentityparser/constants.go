package yaentityparser

import "regexp"

const maxOneUTF16CURune = 0xFFFF

// Markdown delimiters. Bodies use `.` so a token never spans a line break.
const (
	mdPre    = "```(.*?)```"
	mdBold   = `\*(.*?)\*`
	mdItalic = `_(.*?)_`
	mdCode   = "`(.*?)`"
	mdLink   = `\[(.*?)\]\(([^)\n]*)\)`
)

const (
	htmlBold   = `<b>(.*?)</b>`
	htmlItalic = `<i>(.*?)</i>`
	htmlPre    = `<pre>(.*?)</pre>`
	htmlCode   = `<code>(.*?)</code>`
	htmlLink   = `<a href=['"]([^'"\n]*)['"]>(.*?)</a>`
)

// Edges are what a token looks like from the outside. Two edges of different
// kinds written back to back make the input invalid.
const (
	mdBoldEdge   = `\*`
	mdItalicEdge = `_`
	mdPreEdge    = "```"
	mdCodeEdge   = "`"
	mdLinkEdge   = `\[.*?\]\([^)\n]*\)`

	htmlBoldEdge   = `</?b>`
	htmlItalicEdge = `</?i>`
	htmlPreEdge    = `</?pre>`
	htmlCodeEdge   = `</?code>`
	htmlLinkEdge   = `<a(?:\s[^>]*)?>|</a>`
)

var (
	// These must end on a word boundary, which is checked with wordBoundaryEnd.
	mentionRegexp    = regexp.MustCompile(`@[a-zA-Z0-9]+`)
	hashtagRegexp    = regexp.MustCompile(`#[a-zA-Z0-9]+`)
	botCommandRegexp = regexp.MustCompile(`/[a-zA-Z0-9_\-]+`)
	urlRegexp        = regexp.MustCompile(
		`(([hHtTpP]{4}[sS]?|[fFtTpP]{3})://)?([\w_-]+(?:(?:\.[\w_-]+)+))([\w.,@?^=%&:/~+#-]*[\w@?^=%&/~+#-])?`,
	)
)
