package services

import (
	"fmt"

	"github.com/compsmart/bug-fixer/internal/helpers"
	"github.com/compsmart/bug-fixer/internal/models"
)

// BugSet is an immutable, order-preserving collection of bug records loaded
// from the bug list file. It is passed by value; nothing mutates it after
// loading.
type BugSet struct {
	bugs []models.BugRecord
}

// NewBugSet builds a set from a slice of records, preserving order
func NewBugSet(bugs []models.BugRecord) BugSet {
	return BugSet{bugs: bugs}
}

// LoadBugs reads the bug list file. A missing or malformed file returns the
// error along with an empty set so callers can report and continue.
func LoadBugs(path string) (BugSet, error) {
	var file models.BugFile
	if err := helpers.LoadJSON(path, &file); err != nil {
		return BugSet{}, fmt.Errorf("failed to load bug file %s: %w", path, err)
	}

	return BugSet{bugs: file.Bugs}, nil
}

// Len returns the number of bugs in the set
func (s BugSet) Len() int {
	return len(s.bugs)
}

// All returns the bugs in input order
func (s BugSet) All() []models.BugRecord {
	out := make([]models.BugRecord, len(s.bugs))
	copy(out, s.bugs)
	return out
}

// Find returns the bug with the given ID
func (s BugSet) Find(id string) (models.BugRecord, bool) {
	for _, bug := range s.bugs {
		if bug.ID == id {
			return bug, true
		}
	}
	return models.BugRecord{}, false
}

// Filter returns the subset of bugs whose IDs appear in ids, preserving
// input order
func (s BugSet) Filter(ids []string) BugSet {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var filtered []models.BugRecord
	for _, bug := range s.bugs {
		if wanted[bug.ID] {
			filtered = append(filtered, bug)
		}
	}
	return BugSet{bugs: filtered}
}

// SampleWorkItems are the two hard-coded records kept for compatibility with
// callers that reference them by numeric ID. They are served verbatim when a
// requested ID is not present in the bug list.
var SampleWorkItems = map[string]models.WorkItem{
	"12345": {
		ID:  "12345",
		Rev: 5,
		Fields: models.WorkItemFields{
			SystemID:    "12345",
			Title:       "Fix pagination issue on record list",
			State:       "Active",
			CreatedDate: "2025-05-15T09:30:45.123Z",
			CreatedBy: models.IdentityRef{
				DisplayName: "Brad Johnson",
				UniqueName:  "brad.johnson@company.com",
				ID:          identityID,
			},
			AssignedTo: models.IdentityRef{
				DisplayName: "Brad Johnson",
				UniqueName:  "brad.johnson@company.com",
				ID:          identityID,
			},
			WorkItemType:     "User Story",
			Description:      "Users are reporting that the pagination controls don't work correctly on the record list page. When clicking to the next page, the same records are shown again.",
			Tags:             "Bug, Frontend, UI",
			Priority:         2,
			Severity:         "2 - Medium",
			Location:         "Unknown",
			ExpectedBehavior: "Not specified",
			ActualBehavior:   "Not specified",
			Fix:              "No fix proposed",
		},
		Links: models.WorkItemLinks{
			Self: models.WorkItemLink{Href: "https://dev.azure.com/organization/project/_apis/wit/workItems/12345"},
			HTML: models.WorkItemLink{Href: "https://dev.azure.com/organization/project/_workitems/edit/12345"},
		},
		URL: "https://dev.azure.com/organization/project/_apis/wit/workItems/12345",
	},
	"54321": {
		ID:  "54321",
		Rev: 3,
		Fields: models.WorkItemFields{
			SystemID:    "54321",
			Title:       "Implement user authentication with OAuth",
			State:       "New",
			CreatedDate: "2025-05-10T14:22:33.456Z",
			CreatedBy: models.IdentityRef{
				DisplayName: "Jane Smith",
				UniqueName:  "jane.smith@company.com",
				ID:          "z9y8x7w6-v5u4-3210-9876-543210fedcba",
			},
			AssignedTo: models.IdentityRef{
				DisplayName: "Brad Johnson",
				UniqueName:  "brad.johnson@company.com",
				ID:          identityID,
			},
			WorkItemType:     "Feature",
			Description:      "Implement OAuth 2.0 authentication flow for the application to allow users to sign in with their Google, Microsoft, or Facebook accounts.",
			Tags:             "Security, Authentication, Backend",
			Priority:         1,
			Severity:         "1 - Critical",
			Location:         "Unknown",
			ExpectedBehavior: "Not specified",
			ActualBehavior:   "Not specified",
			Fix:              "No fix proposed",
		},
		Links: models.WorkItemLinks{
			Self: models.WorkItemLink{Href: "https://dev.azure.com/organization/project/_apis/wit/workItems/54321"},
			HTML: models.WorkItemLink{Href: "https://dev.azure.com/organization/project/_workitems/edit/54321"},
		},
		URL: "https://dev.azure.com/organization/project/_apis/wit/workItems/54321",
	},
}

// PlaceholderWorkItem builds the fallback record returned when an ID matches
// neither the bug list nor the sample work items.
func PlaceholderWorkItem(id, organization, project string) models.WorkItem {
	return ToWorkItem(models.BugRecord{
		ID:          id,
		Title:       fmt.Sprintf("Unknown bug %s", id),
		Status:      "New",
		Description: fmt.Sprintf("No bug found with ID %s.", id),
	}, organization, project)
}

// WorkItemForID resolves an ID to a work item: a mapped bug record first,
// then the sample work items, then a generated placeholder.
func WorkItemForID(set BugSet, id, organization, project string) models.WorkItem {
	if bug, ok := set.Find(id); ok {
		return ToWorkItem(bug, organization, project)
	}

	if item, ok := SampleWorkItems[id]; ok {
		return item
	}

	return PlaceholderWorkItem(id, organization, project)
}
