package models

// DatabaseRow is the reconciled per-project view: one row per distinct
// non-empty project identifier, referencing at most one record from
// each of the six feeds. A row exists for every identifier seen in any
// feed, even when only one feed carries it.
type DatabaseRow struct {
	ProjectID      string                    `json:"projectId"`
	NewProject     *NewProjectSubmission     `json:"newProject,omitempty"`
	VersionUpgrade *VersionUpgradeSubmission `json:"versionUpgrade,omitempty"`
	Estimation     *EstimationSubmission     `json:"estimation,omitempty"`
	Approval       *ApprovalSubmission       `json:"approval,omitempty"`
	Delivery       *DeliverySubmission       `json:"delivery,omitempty"`
	Feedback       *FeedbackSubmission       `json:"feedback,omitempty"`
}
