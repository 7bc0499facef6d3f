package models

// Feed identifies one of the six spreadsheet feeds.
type Feed string

const (
	FeedNewProject     Feed = "new_project"
	FeedVersionUpgrade Feed = "version_upgrade"
	FeedEstimation     Feed = "estimation"
	FeedApproval       Feed = "approval"
	FeedDelivery       Feed = "delivery"
	FeedFeedback       Feed = "feedback"
)

// Feeds is the fixed feed order used for reconciliation and display:
// a project first seen in a later feed is inserted at that point.
var Feeds = []Feed{
	FeedNewProject,
	FeedVersionUpgrade,
	FeedEstimation,
	FeedApproval,
	FeedDelivery,
	FeedFeedback,
}

var feedLabels = map[Feed]string{
	FeedNewProject:     "New Project Submissions",
	FeedVersionUpgrade: "Version Upgrade Submissions",
	FeedEstimation:     "Project Estimation Submissions",
	FeedApproval:       "Project Approval Submissions",
	FeedDelivery:       "Project Delivery Submissions",
	FeedFeedback:       "Project Feedback Submissions",
}

// Label returns the human readable name of the feed.
func (f Feed) Label() string {
	if label, ok := feedLabels[f]; ok {
		return label
	}
	return string(f)
}

// IsValid reports whether f is one of the six known feeds.
func (f Feed) IsValid() bool {
	_, ok := feedLabels[f]
	return ok
}
