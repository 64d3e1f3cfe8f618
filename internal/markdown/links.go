package markdown

import (
	"regexp"
	"strings"
)

// wikiLinkRe matches [[target]]. The target cannot contain ']'.
// Compiled once; regexp.Regexp is safe for concurrent use.
var wikiLinkRe = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// ExtractLinks returns the trimmed targets of every [[...]] span in line,
// left to right. Duplicates are kept. Whitespace-only targets become "".
func ExtractLinks(line string) []string {
	matches := wikiLinkRe.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}

	links := make([]string, 0, len(matches))
	for _, m := range matches {
		links = append(links, strings.TrimSpace(m[1]))
	}
	return links
}
