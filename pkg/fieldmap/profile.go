package fieldmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Ramsey-B/fern/pkg/models"
)

// Profile is one named generation of the header-to-field mapping for
// all six feeds.
type Profile struct {
	Name    string
	Columns map[models.Feed]ColumnMap
}

// For returns the column map for a feed; an unknown feed yields an
// empty map, which decodes every row to zero fields.
func (p Profile) For(feed models.Feed) ColumnMap {
	if cols, ok := p.Columns[feed]; ok {
		return cols
	}
	return ColumnMap{}
}

// DefaultProfileName is the profile used when config names none.
const DefaultProfileName = "forms-v2"

var profiles = map[string]Profile{
	// forms-v2 is the current sheet generation: the intake form has no
	// literal ID column, the identifier comes from a "Normalized Name"
	// column maintained by the operations sheet.
	"forms-v2": {
		Name: "forms-v2",
		Columns: map[models.Feed]ColumnMap{
			models.FeedNewProject: {
				"Timestamp":               FieldTimestamp,
				"Email Address":           FieldEmailAddress,
				"Project Name":            FieldProjectName,
				"Client Name":             FieldClientName,
				"Company Name":            FieldCompanyName,
				"Company Type":            FieldCompanyType,
				"Project Description":     FieldProjectDescription,
				"Client Message":          FieldClientMessage,
				"Client Country":          FieldClientCountry,
				"Client Timezone":         FieldClientTimezone,
				"Communication Platforms": FieldCommunicationPlatforms,
				"Business Manager":        FieldBusinessManager,
				"Internal Instructions":   FieldInternalInstructions,
				"Attachments":             FieldAttachments,
				"Normalized Name":         FieldProjectID,
				"Gdrive Folder Link":      FieldGdriveFolderLink,
			},
			models.FeedVersionUpgrade: {
				"Timestamp":        FieldTimestamp,
				"Project ID":       FieldProjectID,
				"Version":          FieldVersion,
				"New Requirements": FieldNewRequirements,
			},
			models.FeedEstimation: {
				"Timestamp":       FieldTimestamp,
				"Project ID":      FieldProjectID,
				"Estimated Hours": FieldEstimatedHours,
				"Estimated Cost":  FieldEstimatedCost,
			},
			models.FeedApproval: {
				"Timestamp":              FieldTimestamp,
				"Project ID":             FieldProjectID,
				"Approved By":            FieldApprovedBy,
				"Approval Date":          FieldApprovalDate,
				"Expected Delivery Date": FieldExpectedDeliveryDate,
				"Delivery Method":        FieldDeliveryMethod,
			},
			models.FeedDelivery: {
				"Timestamp":     FieldTimestamp,
				"Project ID":    FieldProjectID,
				"Delivery Date": FieldDeliveryDate,
				"Delivered By":  FieldDeliveredBy,
				"Notes":         FieldNotes,
			},
			models.FeedFeedback: {
				"Timestamp":                FieldTimestamp,
				"Project ID":               FieldProjectID,
				"Satisfaction Score (1-5)": FieldSatisfactionScore,
				"Feedback":                 FieldFeedback,
				"Client Contact":           FieldClientContact,
			},
		},
	},

	// intake-v1 is the earlier intake form that still carried a
	// literal "Project ID" column; only the new project feed differs.
	"intake-v1": {
		Name: "intake-v1",
		Columns: map[models.Feed]ColumnMap{
			models.FeedNewProject: {
				"Timestamp":               FieldTimestamp,
				"Email Address":           FieldEmailAddress,
				"Project ID":              FieldProjectID,
				"Project Name":            FieldProjectName,
				"Client Name":             FieldClientName,
				"Company Name":            FieldCompanyName,
				"Company Type":            FieldCompanyType,
				"Project Description":     FieldProjectDescription,
				"Client Message":          FieldClientMessage,
				"Client Country":          FieldClientCountry,
				"Client Timezone":         FieldClientTimezone,
				"Communication Platforms": FieldCommunicationPlatforms,
				"Business Manager":        FieldBusinessManager,
				"Internal Instructions":   FieldInternalInstructions,
				"Attachments":             FieldAttachments,
				"Gdrive Folder Link":      FieldGdriveFolderLink,
			},
		},
	},
}

func init() {
	// intake-v1 shares every non-intake feed map with forms-v2.
	base := profiles["forms-v2"]
	v1 := profiles["intake-v1"]
	for _, feed := range models.Feeds {
		if _, ok := v1.Columns[feed]; !ok {
			v1.Columns[feed] = base.Columns[feed]
		}
	}
	profiles["intake-v1"] = v1
}

// GetProfile returns the named mapping profile. An empty name selects
// the default profile.
func GetProfile(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfileName
	}
	profile, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown mapping profile '%s', have: %s", name, strings.Join(ProfileNames(), ", "))
	}
	return profile, nil
}

// ProfileNames lists the registered profile names, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
