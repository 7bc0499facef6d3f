// Package decode turns tokenized CSV tables into typed feed records,
// combining header mapping, date normalization, and numeric coercion.
package decode

import (
	"strings"

	"github.com/Ramsey-B/fern/pkg/fieldmap"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalize"
)

// IdentityResolver derives a project identifier for a row whose feed
// carries no identifier column. It sees the row's decoded canonical
// fields and returns the identifier, or "" when one cannot be formed.
// Rows with an empty identifier never join.
type IdentityResolver func(fields map[string]string) string

// CompositeIdentity is the default resolver: project name and client
// name concatenated with " - ", only when both are present. This is a
// heuristic carried over from the operations sheet, not a uniqueness
// guarantee; collisions surface in the duplicates view.
func CompositeIdentity(fields map[string]string) string {
	name := fields[fieldmap.FieldProjectName]
	client := fields[fieldmap.FieldClientName]
	if name == "" || client == "" {
		return ""
	}
	return name + " - " + client
}

// Decoder decodes the six feed tables under one mapping profile.
type Decoder struct {
	profile  fieldmap.Profile
	identity IdentityResolver
}

// NewDecoder creates a decoder for the given profile using the
// composite identity fallback.
func NewDecoder(profile fieldmap.Profile) *Decoder {
	return NewDecoderWithIdentity(profile, CompositeIdentity)
}

// NewDecoderWithIdentity creates a decoder with a custom identity
// resolver.
func NewDecoderWithIdentity(profile fieldmap.Profile, identity IdentityResolver) *Decoder {
	if identity == nil {
		identity = CompositeIdentity
	}
	return &Decoder{profile: profile, identity: identity}
}

// rows decodes a table into canonical field maps for one feed. Row
// one is the header; mapped indices beyond a short row are skipped.
// Date-carrying fields are normalized in place, the new project
// primary timestamp in the row's own timezone. Fewer than two rows
// means no data.
func (d *Decoder) rows(table [][]string, feed models.Feed) []map[string]string {
	if len(table) < 2 {
		return nil
	}

	index := d.profile.For(feed).HeaderIndex(table[0])

	decoded := make([]map[string]string, 0, len(table)-1)
	for _, row := range table[1:] {
		fields := make(map[string]string, len(index))
		for i, field := range index {
			if i < len(row) {
				fields[field] = strings.TrimSpace(row[i])
			}
		}
		for field, value := range fields {
			if !normalize.IsDateField(field) {
				continue
			}
			if feed == models.FeedNewProject && field == fieldmap.FieldTimestamp {
				fields[field] = normalize.TimestampInZone(value, fields[fieldmap.FieldClientTimezone])
			} else {
				fields[field] = normalize.Timestamp(value)
			}
		}
		decoded = append(decoded, fields)
	}
	return decoded
}

// resolves reports whether the table's header row maps any column to
// the given canonical field under this decoder's profile.
func (d *Decoder) resolves(table [][]string, feed models.Feed, field string) bool {
	if len(table) == 0 {
		return false
	}
	for _, mapped := range d.profile.For(feed).HeaderIndex(table[0]) {
		if mapped == field {
			return true
		}
	}
	return false
}

// NewProjects decodes the new project intake table. When the fetched
// header resolves no identifier column the identity resolver
// synthesizes one per row.
func (d *Decoder) NewProjects(table [][]string) []models.NewProjectSubmission {
	hasIDColumn := d.resolves(table, models.FeedNewProject, fieldmap.FieldProjectID)

	var records []models.NewProjectSubmission
	for _, fields := range d.rows(table, models.FeedNewProject) {
		record := models.NewProjectSubmission{
			Timestamp:              fields[fieldmap.FieldTimestamp],
			EmailAddress:           fields[fieldmap.FieldEmailAddress],
			ProjectID:              fields[fieldmap.FieldProjectID],
			ProjectName:            fields[fieldmap.FieldProjectName],
			ClientName:             fields[fieldmap.FieldClientName],
			CompanyName:            fields[fieldmap.FieldCompanyName],
			CompanyType:            fields[fieldmap.FieldCompanyType],
			ProjectDescription:     fields[fieldmap.FieldProjectDescription],
			ClientMessage:          fields[fieldmap.FieldClientMessage],
			ClientCountry:          fields[fieldmap.FieldClientCountry],
			ClientTimezone:         fields[fieldmap.FieldClientTimezone],
			CommunicationPlatforms: fields[fieldmap.FieldCommunicationPlatforms],
			BusinessManager:        fields[fieldmap.FieldBusinessManager],
			InternalInstructions:   fields[fieldmap.FieldInternalInstructions],
			Attachments:            fields[fieldmap.FieldAttachments],
			GdriveFolderLink:       fields[fieldmap.FieldGdriveFolderLink],
		}
		if !hasIDColumn {
			record.ProjectID = d.identity(fields)
		}
		records = append(records, record)
	}
	return records
}

// VersionUpgrades decodes the version upgrade table.
func (d *Decoder) VersionUpgrades(table [][]string) []models.VersionUpgradeSubmission {
	var records []models.VersionUpgradeSubmission
	for _, fields := range d.rows(table, models.FeedVersionUpgrade) {
		records = append(records, models.VersionUpgradeSubmission{
			Timestamp:       fields[fieldmap.FieldTimestamp],
			ProjectID:       fields[fieldmap.FieldProjectID],
			Version:         fields[fieldmap.FieldVersion],
			NewRequirements: fields[fieldmap.FieldNewRequirements],
		})
	}
	return records
}

// Estimations decodes the estimation table.
func (d *Decoder) Estimations(table [][]string) []models.EstimationSubmission {
	var records []models.EstimationSubmission
	for _, fields := range d.rows(table, models.FeedEstimation) {
		records = append(records, models.EstimationSubmission{
			Timestamp:      fields[fieldmap.FieldTimestamp],
			ProjectID:      fields[fieldmap.FieldProjectID],
			EstimatedHours: normalize.Float(fields[fieldmap.FieldEstimatedHours]),
			EstimatedCost:  normalize.Float(fields[fieldmap.FieldEstimatedCost]),
		})
	}
	return records
}

// Approvals decodes the approval table.
func (d *Decoder) Approvals(table [][]string) []models.ApprovalSubmission {
	var records []models.ApprovalSubmission
	for _, fields := range d.rows(table, models.FeedApproval) {
		records = append(records, models.ApprovalSubmission{
			Timestamp:            fields[fieldmap.FieldTimestamp],
			ProjectID:            fields[fieldmap.FieldProjectID],
			ApprovedBy:           fields[fieldmap.FieldApprovedBy],
			ApprovalDate:         fields[fieldmap.FieldApprovalDate],
			ExpectedDeliveryDate: fields[fieldmap.FieldExpectedDeliveryDate],
			DeliveryMethod:       fields[fieldmap.FieldDeliveryMethod],
		})
	}
	return records
}

// Deliveries decodes the delivery table.
func (d *Decoder) Deliveries(table [][]string) []models.DeliverySubmission {
	var records []models.DeliverySubmission
	for _, fields := range d.rows(table, models.FeedDelivery) {
		records = append(records, models.DeliverySubmission{
			Timestamp:    fields[fieldmap.FieldTimestamp],
			ProjectID:    fields[fieldmap.FieldProjectID],
			DeliveryDate: fields[fieldmap.FieldDeliveryDate],
			DeliveredBy:  fields[fieldmap.FieldDeliveredBy],
			Notes:        fields[fieldmap.FieldNotes],
		})
	}
	return records
}

// Feedbacks decodes the feedback table.
func (d *Decoder) Feedbacks(table [][]string) []models.FeedbackSubmission {
	var records []models.FeedbackSubmission
	for _, fields := range d.rows(table, models.FeedFeedback) {
		records = append(records, models.FeedbackSubmission{
			Timestamp:         fields[fieldmap.FieldTimestamp],
			ProjectID:         fields[fieldmap.FieldProjectID],
			SatisfactionScore: normalize.Float(fields[fieldmap.FieldSatisfactionScore]),
			Feedback:          fields[fieldmap.FieldFeedback],
			ClientContact:     fields[fieldmap.FieldClientContact],
		})
	}
	return records
}
