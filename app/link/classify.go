package link

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/cappuccinotm/damlink/app/store"
)

var titleRe = regexp.MustCompile(`//([^/:]*)`)

// Classify decides whether the weblink points to a known planning or issue
// tracking integration and derives the reference id from its last path
// segment.
//
// The registry is scanned once, endpoints whose service contains "plan" are
// considered planning integrations and those containing "jira" issue
// trackers. Within a category the last scanned endpoint wins. The planning
// match is checked before the tracker one; a link matching neither base url
// is generic.
func Classify(weblink string, registry store.Registry) store.Weblink {
	var plan, jira store.Endpoint
	registry.Scan(func(e store.Endpoint) {
		switch {
		case strings.Contains(e.Service, "plan"):
			plan = e
		case strings.Contains(e.Service, "jira"):
			jira = e
		}
	})

	switch {
	case plan.URL != "" && strings.Contains(weblink, plan.URL):
		return store.Weblink{
			URL:         weblink,
			Kind:        store.KindPlanningItem,
			WebhookUUID: plan.UUID,
			RefID:       lastPathSegment(weblink),
		}
	case jira.URL != "" && strings.Contains(weblink, jira.URL):
		return store.Weblink{
			URL:         weblink,
			Kind:        store.KindTrackerIssue,
			WebhookUUID: jira.UUID,
			RefID:       lastPathSegment(weblink),
		}
	}

	return store.Weblink{URL: weblink, Kind: store.KindGeneric, Text: displayText(weblink)}
}

// lastPathSegment returns the last non-empty path segment of the url,
// tolerating a trailing slash.
func lastPathSegment(weblink string) string {
	u, err := url.Parse(weblink)
	if err != nil {
		return ""
	}

	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

// displayText derives a human-readable title for a generic link: the
// authority right after the scheme separator, port excluded.
func displayText(weblink string) string {
	m := titleRe.FindStringSubmatch(weblink)
	if m == nil {
		return ""
	}
	return m[1]
}
