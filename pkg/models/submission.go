package models

// Record is the shape every feed submission shares: a project
// identifier and a canonical submission timestamp. The timestamp is an
// RFC 3339 UTC instant when the source value parsed, otherwise the
// original spreadsheet text untouched.
type Record interface {
	GetProjectID() string
	GetTimestamp() string
}

// NewProjectSubmission is a row from the new project intake feed.
type NewProjectSubmission struct {
	Timestamp              string `json:"timestamp"`
	EmailAddress           string `json:"emailAddress,omitempty"`
	ProjectID              string `json:"projectId"`
	ProjectName            string `json:"projectName"`
	ClientName             string `json:"clientName"`
	CompanyName            string `json:"companyName,omitempty"`
	CompanyType            string `json:"companyType,omitempty"`
	ProjectDescription     string `json:"projectDescription,omitempty"`
	ClientMessage          string `json:"clientMessage,omitempty"`
	ClientCountry          string `json:"clientCountry,omitempty"`
	ClientTimezone         string `json:"clientTimezone,omitempty"`
	CommunicationPlatforms string `json:"communicationPlatforms,omitempty"`
	BusinessManager        string `json:"businessManager,omitempty"`
	InternalInstructions   string `json:"internalInstructions,omitempty"`
	Attachments            string `json:"attachments,omitempty"`
	GdriveFolderLink       string `json:"gdriveFolderLink,omitempty"`
}

func (s NewProjectSubmission) GetProjectID() string { return s.ProjectID }
func (s NewProjectSubmission) GetTimestamp() string { return s.Timestamp }

// VersionUpgradeSubmission is a row from the version upgrade feed.
type VersionUpgradeSubmission struct {
	Timestamp       string `json:"timestamp"`
	ProjectID       string `json:"projectId"`
	Version         string `json:"version"`
	NewRequirements string `json:"newRequirements"`
}

func (s VersionUpgradeSubmission) GetProjectID() string { return s.ProjectID }
func (s VersionUpgradeSubmission) GetTimestamp() string { return s.Timestamp }

// EstimationSubmission is a row from the estimation feed.
type EstimationSubmission struct {
	Timestamp      string  `json:"timestamp"`
	ProjectID      string  `json:"projectId"`
	EstimatedHours float64 `json:"estimatedHours"`
	EstimatedCost  float64 `json:"estimatedCost"`
}

func (s EstimationSubmission) GetProjectID() string { return s.ProjectID }
func (s EstimationSubmission) GetTimestamp() string { return s.Timestamp }

// ApprovalSubmission is a row from the approval feed.
type ApprovalSubmission struct {
	Timestamp            string `json:"timestamp"`
	ProjectID            string `json:"projectId"`
	ApprovedBy           string `json:"approvedBy"`
	ApprovalDate         string `json:"approvalDate"`
	ExpectedDeliveryDate string `json:"expectedDeliveryDate"`
	DeliveryMethod       string `json:"deliveryMethod"`
}

func (s ApprovalSubmission) GetProjectID() string { return s.ProjectID }
func (s ApprovalSubmission) GetTimestamp() string { return s.Timestamp }

// DeliverySubmission is a row from the delivery feed.
type DeliverySubmission struct {
	Timestamp    string `json:"timestamp"`
	ProjectID    string `json:"projectId"`
	DeliveryDate string `json:"deliveryDate"`
	DeliveredBy  string `json:"deliveredBy"`
	Notes        string `json:"notes,omitempty"`
}

func (s DeliverySubmission) GetProjectID() string { return s.ProjectID }
func (s DeliverySubmission) GetTimestamp() string { return s.Timestamp }

// FeedbackSubmission is a row from the feedback feed.
type FeedbackSubmission struct {
	Timestamp         string  `json:"timestamp"`
	ProjectID         string  `json:"projectId"`
	SatisfactionScore float64 `json:"satisfactionScore"`
	Feedback          string  `json:"feedback"`
	ClientContact     string  `json:"clientContact"`
}

func (s FeedbackSubmission) GetProjectID() string { return s.ProjectID }
func (s FeedbackSubmission) GetTimestamp() string { return s.Timestamp }

// AllSubmissions holds the six feed record lists for one fetch. Each
// list owns its records; reconciled views only reference them.
type AllSubmissions struct {
	NewProjects     []NewProjectSubmission     `json:"newProjectSubmissions"`
	VersionUpgrades []VersionUpgradeSubmission `json:"versionUpgradeSubmissions"`
	Estimations     []EstimationSubmission     `json:"projectEstimationSubmissions"`
	Approvals       []ApprovalSubmission       `json:"projectApprovalSubmissions"`
	Deliveries      []DeliverySubmission       `json:"projectDeliverySubmissions"`
	Feedbacks       []FeedbackSubmission       `json:"projectFeedbackSubmissions"`
}
