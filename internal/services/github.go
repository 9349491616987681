package services

import (
	"fmt"
	"strings"

	"github.com/compsmart/bug-fixer/internal/config"
	"github.com/compsmart/bug-fixer/internal/helpers"
	"github.com/compsmart/bug-fixer/internal/models"
	"github.com/compsmart/bug-fixer/internal/repositories"
)

// labelColors assigns a color to each known severity and status label.
// Labels outside the table get the default color.
var labelColors = map[string]string{
	"Critical":    "ff0000",
	"High":        "d93f0b",
	"Medium":      "fbca04",
	"Low":         "0e8a16",
	"Open":        "c2e0c6",
	"In Progress": "0052cc",
	"Resolved":    "5319e7",
	"Closed":      "bfdadc",
}

const defaultLabelColor = "cccccc"

// GitHubService converts bugs to issues and submits them
type GitHubService struct {
	repo   *repositories.GitHubRepository
	config *config.GitHubConfig
}

// NewGitHubService creates a new GitHub service
func NewGitHubService(githubConfig *config.GitHubConfig) *GitHubService {
	return &GitHubService{
		repo:   repositories.NewGitHubRepository(githubConfig),
		config: githubConfig,
	}
}

// EnsureLabels creates any severity or status label used by the given bugs
// that does not already exist in the repository.
func (s *GitHubService) EnsureLabels(set BugSet) error {
	wanted := make(map[string]bool)
	for _, bug := range set.All() {
		if bug.Severity != "" {
			wanted[bug.Severity] = true
		}
		if bug.Status != "" {
			wanted[bug.Status] = true
		}
	}

	if len(wanted) == 0 {
		return nil
	}

	existing, err := s.repo.ListLabels()
	if err != nil {
		return fmt.Errorf("failed to list labels: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, label := range existing {
		present[label.Name] = true
	}

	for name := range wanted {
		if present[name] {
			continue
		}

		color, ok := labelColors[name]
		if !ok {
			color = defaultLabelColor
		}

		label := &models.Label{
			Name:        name,
			Color:       color,
			Description: fmt.Sprintf("Bug %s level", strings.ToLower(name)),
		}
		if err := s.repo.CreateLabel(label); err != nil {
			return fmt.Errorf("failed to create label %q: %w", name, err)
		}
		helpers.PrintSuccess("Created label: %s", name)
	}

	return nil
}

// SubmitBugs converts each bug in the set to an issue and posts it. In dry
// run mode the payloads are rendered instead of posted.
func (s *GitHubService) SubmitBugs(set BugSet, dryRun bool) error {
	bugs := set.All()
	helpers.PrintInfo("Converting %d bugs to GitHub issues...", len(bugs))

	for i, bug := range bugs {
		issue := ToIssue(bug)

		if dryRun {
			helpers.PrintSeparator()
			helpers.PrintInfo("Would create issue: %s", issue.Title)
			helpers.PrintInfo("Labels: %s", strings.Join(issue.Labels, ", "))
			fmt.Printf("\nBody:\n%s\n", issue.Body)
			continue
		}

		helpers.PrintProgress(i+1, len(bugs), fmt.Sprintf("Creating issue: %s", issue.Title))
		resp, err := s.repo.CreateIssue(&issue)
		if err != nil {
			return fmt.Errorf("failed to create issue for %s: %w", bug.ID, err)
		}
		helpers.PrintSuccess("Created: %s", resp.HTMLURL)
	}

	if dryRun {
		helpers.PrintSeparator()
		helpers.PrintInfo("Dry run - no issues were actually created")
	} else {
		helpers.PrintSuccess("All bugs have been converted to GitHub issues")
	}

	return nil
}
