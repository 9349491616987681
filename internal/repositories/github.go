package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/compsmart/bug-fixer/internal/config"
	"github.com/compsmart/bug-fixer/internal/models"
)

// GitHubRepository handles GitHub API interactions
type GitHubRepository struct {
	config *config.GitHubConfig
	client *http.Client
}

// NewGitHubRepository creates a new GitHub repository
func NewGitHubRepository(githubConfig *config.GitHubConfig) *GitHubRepository {
	return &GitHubRepository{
		config: githubConfig,
		client: &http.Client{
			Timeout: time.Duration(githubConfig.Timeout) * time.Second,
		},
	}
}

// CreateIssue creates a new issue in the configured repository
func (r *GitHubRepository) CreateIssue(issue *models.IssuePayload) (*models.IssueResponse, error) {
	jsonData, err := json.Marshal(issue)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal issue: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/issues", r.config.APIBaseURL, r.config.Repo)
	req, err := r.newRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GitHub API returned status %d: %s", resp.StatusCode, string(body))
	}

	var issueResp models.IssueResponse
	if err := json.NewDecoder(resp.Body).Decode(&issueResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &issueResp, nil
}

// ListLabels returns the labels that already exist in the repository
func (r *GitHubRepository) ListLabels() ([]models.Label, error) {
	url := fmt.Sprintf("%s/repos/%s/labels", r.config.APIBaseURL, r.config.Repo)
	req, err := r.newRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GitHub API returned status %d: %s", resp.StatusCode, string(body))
	}

	var labels []models.Label
	if err := json.NewDecoder(resp.Body).Decode(&labels); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return labels, nil
}

// CreateLabel creates a single label in the repository
func (r *GitHubRepository) CreateLabel(label *models.Label) error {
	jsonData, err := json.Marshal(label)
	if err != nil {
		return fmt.Errorf("failed to marshal label: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/labels", r.config.APIBaseURL, r.config.Repo)
	req, err := r.newRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GitHub API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (r *GitHubRepository) newRequest(method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "token "+r.config.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	return req, nil
}
