// Package fieldmap maps spreadsheet column headers to canonical record
// fields. The upstream sheet renames columns between deployments
// without any schema versioning, so each generation of headers lives
// in a named profile and the active one is picked by config.
package fieldmap

import "strings"

// Canonical field names shared by the decoders.
const (
	FieldTimestamp              = "timestamp"
	FieldProjectID              = "projectId"
	FieldEmailAddress           = "emailAddress"
	FieldProjectName            = "projectName"
	FieldClientName             = "clientName"
	FieldCompanyName            = "companyName"
	FieldCompanyType            = "companyType"
	FieldProjectDescription     = "projectDescription"
	FieldClientMessage          = "clientMessage"
	FieldClientCountry          = "clientCountry"
	FieldClientTimezone         = "clientTimezone"
	FieldCommunicationPlatforms = "communicationPlatforms"
	FieldBusinessManager        = "businessManager"
	FieldInternalInstructions   = "internalInstructions"
	FieldAttachments            = "attachments"
	FieldGdriveFolderLink       = "gdriveFolderLink"
	FieldVersion                = "version"
	FieldNewRequirements        = "newRequirements"
	FieldEstimatedHours         = "estimatedHours"
	FieldEstimatedCost          = "estimatedCost"
	FieldApprovedBy             = "approvedBy"
	FieldApprovalDate           = "approvalDate"
	FieldExpectedDeliveryDate   = "expectedDeliveryDate"
	FieldDeliveryMethod         = "deliveryMethod"
	FieldDeliveryDate           = "deliveryDate"
	FieldDeliveredBy            = "deliveredBy"
	FieldNotes                  = "notes"
	FieldSatisfactionScore      = "satisfactionScore"
	FieldFeedback               = "feedback"
	FieldClientContact          = "clientContact"
)

// ColumnMap maps source column header text to a canonical field name.
// Lookup is case sensitive on trimmed header text; headers without an
// entry are dropped.
type ColumnMap map[string]string

// HeaderIndex resolves a header row against the map, returning column
// index → canonical field name for every header that is mapped.
func (m ColumnMap) HeaderIndex(headers []string) map[int]string {
	index := make(map[int]string, len(headers))
	for i, header := range headers {
		if field, ok := m[strings.TrimSpace(header)]; ok {
			index[i] = field
		}
	}
	return index
}
