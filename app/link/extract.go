// Package link extracts weblinks and review references from changelist
// descriptions and classifies links against the configured integrations.
package link

import "regexp"

var (
	weblinkRe = regexp.MustCompile(`\((http[^)]*)\)`)
	reviewRe  = regexp.MustCompile(`^\d+`)
)

// Weblinks returns every http link enclosed in a parenthesis pair within the
// description, in order of appearance, duplicates preserved. The parentheses
// themselves are not part of the returned links.
func Weblinks(description string) []string {
	var links []string
	for _, m := range weblinkRe.FindAllStringSubmatch(description, -1) {
		links = append(links, m[1])
	}
	return links
}

// ReviewReference returns the review id the description begins with.
// The match is anchored to the very start of the description, so a review
// mentioned mid-description is not picked up. Inherited behavior, kept as is.
func ReviewReference(description string) (string, bool) {
	ref := reviewRe.FindString(description)
	return ref, ref != ""
}
