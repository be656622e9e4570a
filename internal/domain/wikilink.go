package domain

import (
	"regexp"
	"strings"
)

// Link pattern for Obsidian wiki links: [[Target]], [[Target|Alias]], [[Target#Section]]
var linkPattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// CrossReference is a directed edge extracted from a document's content,
// pointing at a target document name. Not guaranteed to resolve.
type CrossReference struct {
	SourcePath string // file containing the link
	Target     string // referenced document name
	LinkText   string // original [[link]] text
}

// ExtractLinks returns the cross references found in content, deduplicated
// by target. The target is everything before the first '|' or '#' inside
// the brackets; anything else in the text is treated as non-matching.
func ExtractLinks(sourcePath, content string) []CrossReference {
	matches := linkPattern.FindAllStringSubmatch(content, -1)

	seen := make(map[string]bool)
	var refs []CrossReference

	for _, match := range matches {
		target := match[1]
		if i := strings.IndexAny(target, "|#"); i >= 0 {
			target = target[:i]
		}
		if target == "" || seen[target] {
			continue
		}
		seen[target] = true
		refs = append(refs, CrossReference{
			SourcePath: sourcePath,
			Target:     target,
			LinkText:   match[0],
		})
	}

	return refs
}
