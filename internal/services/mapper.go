package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/compsmart/bug-fixer/internal/models"
)

// identityID is the placeholder identity GUID the work item format carries
// for every identity reference.
const identityID = "a1b2c3d4-e5f6-7890-1234-567890abcdef"

// fieldDefaults is the substitution table for absent input fields. Every
// record passes through ApplyDefaults before mapping, so mapping never fails
// on incomplete input and every output field is populated.
var fieldDefaults = map[string]string{
	"id":               "BUG",
	"title":            "No Title",
	"status":           "Unknown",
	"severity":         "Unknown",
	"assignedTo":       "Unassigned",
	"description":      "No description",
	"location":         "Unknown",
	"expectedBehavior": "Not specified",
	"actualBehavior":   "Not specified",
	"fix":              "No fix proposed",
}

// severityPriority converts a severity label to a work item priority.
// Unrecognized labels fall through to defaultPriority.
var severityPriority = map[string]int{
	"Critical": 1,
	"High":     2,
	"Medium":   3,
	"Low":      4,
}

const defaultPriority = 3

// ApplyDefaults returns a copy of the record with every absent field replaced
// by its entry from the defaults table. Sequence fields are left as-is; an
// empty sequence renders as an omitted section, not an error.
func ApplyDefaults(bug models.BugRecord) models.BugRecord {
	orDefault := func(value, field string) string {
		if value == "" {
			return fieldDefaults[field]
		}
		return value
	}

	bug.ID = orDefault(bug.ID, "id")
	bug.Title = orDefault(bug.Title, "title")
	bug.Status = orDefault(bug.Status, "status")
	bug.Severity = orDefault(bug.Severity, "severity")
	bug.AssignedTo = orDefault(bug.AssignedTo, "assignedTo")
	bug.Description = orDefault(bug.Description, "description")
	bug.Location = orDefault(bug.Location, "location")
	bug.ExpectedBehavior = orDefault(bug.ExpectedBehavior, "expectedBehavior")
	bug.ActualBehavior = orDefault(bug.ActualBehavior, "actualBehavior")
	bug.Fix = orDefault(bug.Fix, "fix")
	return bug
}

// SeverityToPriority maps a severity label to a priority number
func SeverityToPriority(severity string) int {
	if priority, ok := severityPriority[severity]; ok {
		return priority
	}
	return defaultPriority
}

// ToWorkItem converts a bug record to Azure DevOps work item format. The
// organization and project names are only used to build display URLs. The
// conversion is total: absent input fields substitute defaults rather than
// failing.
func ToWorkItem(bug models.BugRecord, organization, project string) models.WorkItem {
	bug = ApplyDefaults(bug)

	apiURL := fmt.Sprintf("https://dev.azure.com/%s/%s/_apis/wit/workItems/%s", organization, project, bug.ID)
	htmlURL := fmt.Sprintf("https://dev.azure.com/%s/%s/_workitems/edit/%s", organization, project, bug.ID)

	return models.WorkItem{
		ID:  bug.ID,
		Rev: 1,
		Fields: models.WorkItemFields{
			SystemID:    bug.ID,
			Title:       bug.Title,
			State:       bug.Status,
			CreatedDate: time.Now().Format(time.RFC3339),
			CreatedBy: models.IdentityRef{
				DisplayName: "Bug Creator",
				UniqueName:  "bug.creator@company.com",
				ID:          identityID,
			},
			AssignedTo: models.IdentityRef{
				DisplayName: bug.AssignedTo,
				UniqueName:  deriveEmail(bug.AssignedTo),
				ID:          identityID,
			},
			WorkItemType:     "Bug",
			Description:      bug.Description,
			Tags:             bug.Severity,
			Priority:         SeverityToPriority(bug.Severity),
			Severity:         bug.Severity,
			Location:         bug.Location,
			LineNumbers:      bug.LineNumbers,
			ExpectedBehavior: bug.ExpectedBehavior,
			ActualBehavior:   bug.ActualBehavior,
			Steps:            bug.Steps,
			Fix:              bug.Fix,
		},
		Links: models.WorkItemLinks{
			Self: models.WorkItemLink{Href: apiURL},
			HTML: models.WorkItemLink{Href: htmlURL},
		},
		URL: apiURL,
	}
}

// ToIssue converts a bug record to GitHub issue format. Labels are the
// non-empty values among the record's severity and status, taken before
// default substitution so a missing field never becomes a label.
func ToIssue(bug models.BugRecord) models.IssuePayload {
	labels := make([]string, 0, 2)
	for _, label := range []string{bug.Severity, bug.Status} {
		if label != "" {
			labels = append(labels, label)
		}
	}

	bug = ApplyDefaults(bug)

	location := bug.Location
	if len(bug.LineNumbers) > 0 {
		location += fmt.Sprintf(" (Lines: %s)", joinInts(bug.LineNumbers, ", "))
	}

	var steps strings.Builder
	if len(bug.Steps) > 0 {
		steps.WriteString("\n### Steps to Reproduce\n")
		for i, step := range bug.Steps {
			fmt.Fprintf(&steps, "%d. %s\n", i+1, step)
		}
	}

	body := fmt.Sprintf(`## Bug Description
%s

### Location
%s

%s### Expected Behavior
%s

### Actual Behavior
%s

### Proposed Fix
%s

### Assigned To
%s
`, bug.Description, location, steps.String(), bug.ExpectedBehavior, bug.ActualBehavior, bug.Fix, bug.AssignedTo)

	return models.IssuePayload{
		Title:  fmt.Sprintf("%s: %s", bug.ID, bug.Title),
		Body:   body,
		Labels: labels,
	}
}

func deriveEmail(displayName string) string {
	return strings.ReplaceAll(strings.ToLower(displayName), " ", ".") + "@company.com"
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
