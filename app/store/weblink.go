package store

// Kind classifies a weblink against the configured integrations.
type Kind string

// Supported weblink kinds.
const (
	KindPlanningItem Kind = "plan"
	KindTrackerIssue Kind = "jira"
	KindGeneric      Kind = "generic"
)

// Weblink describes a classified weblink. At most one of the planning and
// tracker kinds applies to a given link; a link matching no known
// integration is always generic.
type Weblink struct {
	URL         string
	Kind        Kind
	WebhookUUID string // uuid of the matched integration, empty for generic links
	RefID       string // issue or item id, the last path segment of the url
	Text        string // display text, derived for generic links only
}
