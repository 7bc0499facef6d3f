// Package export flattens the dashboard views into CSV documents.
// Values are already canonical strings by the time they arrive here,
// so encoding is pure quoting, no reinterpretation.
package export

import (
	"strconv"

	"github.com/Ramsey-B/fern/pkg/csvio"
	"github.com/Ramsey-B/fern/pkg/models"
)

var databaseHeaders = []string{
	"Project ID",
	"Project Name",
	"Client Name",
	"Submitted",
	"Version",
	"Estimated Hours",
	"Estimated Cost",
	"Approved By",
	"Approval Date",
	"Expected Delivery Date",
	"Delivery Date",
	"Delivered By",
	"Satisfaction Score",
	"Feedback",
}

// Database renders the reconciled table. Absent feed references leave
// their columns empty.
func Database(rows []models.DatabaseRow) string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := make([]string, len(databaseHeaders))
		record[0] = row.ProjectID

		if row.NewProject != nil {
			record[1] = row.NewProject.ProjectName
			record[2] = row.NewProject.ClientName
			record[3] = row.NewProject.Timestamp
		}
		if row.VersionUpgrade != nil {
			record[4] = row.VersionUpgrade.Version
		}
		if row.Estimation != nil {
			record[5] = formatFloat(row.Estimation.EstimatedHours)
			record[6] = formatFloat(row.Estimation.EstimatedCost)
		}
		if row.Approval != nil {
			record[7] = row.Approval.ApprovedBy
			record[8] = row.Approval.ApprovalDate
			record[9] = row.Approval.ExpectedDeliveryDate
		}
		if row.Delivery != nil {
			record[10] = row.Delivery.DeliveryDate
			record[11] = row.Delivery.DeliveredBy
		}
		if row.Feedback != nil {
			record[12] = formatFloat(row.Feedback.SatisfactionScore)
			record[13] = row.Feedback.Feedback
		}

		records = append(records, record)
	}
	return csvio.Document(databaseHeaders, records)
}

var qualityHeaders = []string{
	"Feed",
	"Timestamp",
	"Project ID",
	"Project Name",
	"Client Name",
	"Version",
	"New Requirements",
	"Estimated Hours",
	"Estimated Cost",
	"Approved By",
	"Approval Date",
	"Expected Delivery Date",
	"Delivery Method",
	"Delivery Date",
	"Delivered By",
	"Notes",
	"Satisfaction Score",
	"Feedback",
	"Client Contact",
}

// Quality renders a data quality view (duplicates or unmapped) as one
// document. Each record carries its feed label in the first column and
// fills only the columns its feed defines.
func Quality(view models.AllSubmissions) string {
	records := make([][]string, 0)

	for _, record := range view.NewProjects {
		row := blankQualityRow(models.FeedNewProject, record.Timestamp, record.ProjectID)
		row[3] = record.ProjectName
		row[4] = record.ClientName
		records = append(records, row)
	}
	for _, record := range view.VersionUpgrades {
		row := blankQualityRow(models.FeedVersionUpgrade, record.Timestamp, record.ProjectID)
		row[5] = record.Version
		row[6] = record.NewRequirements
		records = append(records, row)
	}
	for _, record := range view.Estimations {
		row := blankQualityRow(models.FeedEstimation, record.Timestamp, record.ProjectID)
		row[7] = formatFloat(record.EstimatedHours)
		row[8] = formatFloat(record.EstimatedCost)
		records = append(records, row)
	}
	for _, record := range view.Approvals {
		row := blankQualityRow(models.FeedApproval, record.Timestamp, record.ProjectID)
		row[9] = record.ApprovedBy
		row[10] = record.ApprovalDate
		row[11] = record.ExpectedDeliveryDate
		row[12] = record.DeliveryMethod
		records = append(records, row)
	}
	for _, record := range view.Deliveries {
		row := blankQualityRow(models.FeedDelivery, record.Timestamp, record.ProjectID)
		row[13] = record.DeliveryDate
		row[14] = record.DeliveredBy
		row[15] = record.Notes
		records = append(records, row)
	}
	for _, record := range view.Feedbacks {
		row := blankQualityRow(models.FeedFeedback, record.Timestamp, record.ProjectID)
		row[16] = formatFloat(record.SatisfactionScore)
		row[17] = record.Feedback
		row[18] = record.ClientContact
		records = append(records, row)
	}

	return csvio.Document(qualityHeaders, records)
}

func blankQualityRow(feed models.Feed, timestamp, projectID string) []string {
	row := make([]string, len(qualityHeaders))
	row[0] = feed.Label()
	row[1] = timestamp
	row[2] = projectID
	return row
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
