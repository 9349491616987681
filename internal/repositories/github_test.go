package repositories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/compsmart/bug-fixer/internal/config"
	"github.com/compsmart/bug-fixer/internal/models"
)

func testConfig(baseURL string) *config.GitHubConfig {
	return &config.GitHubConfig{
		Token:      "test-token",
		Repo:       "acme/webapp",
		APIBaseURL: baseURL,
		Timeout:    5,
	}
}

func TestCreateIssuePostsPayload(t *testing.T) {
	var gotPath, gotAuth, gotAccept string
	var gotIssue models.IssuePayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		if err := json.NewDecoder(r.Body).Decode(&gotIssue); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.IssueResponse{
			Number:  7,
			HTMLURL: "https://github.com/acme/webapp/issues/7",
		})
	}))
	defer server.Close()

	repo := NewGitHubRepository(testConfig(server.URL))
	resp, err := repo.CreateIssue(&models.IssuePayload{
		Title:  "BUG-001: Login fails",
		Body:   "body",
		Labels: []string{"Critical", "Open"},
	})
	if err != nil {
		t.Fatalf("CreateIssue error: %v", err)
	}

	if gotPath != "/repos/acme/webapp/issues" {
		t.Fatalf("path = %q, want /repos/acme/webapp/issues", gotPath)
	}
	if gotAuth != "token test-token" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotAccept != "application/vnd.github.v3+json" {
		t.Fatalf("accept = %q", gotAccept)
	}
	if gotIssue.Title != "BUG-001: Login fails" || len(gotIssue.Labels) != 2 {
		t.Fatalf("posted issue = %+v", gotIssue)
	}
	if resp.Number != 7 || resp.HTMLURL != "https://github.com/acme/webapp/issues/7" {
		t.Fatalf("response = %+v", resp)
	}
}

func TestCreateIssueReportsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Validation Failed"}`))
	}))
	defer server.Close()

	repo := NewGitHubRepository(testConfig(server.URL))
	_, err := repo.CreateIssue(&models.IssuePayload{Title: "BUG-001: Login fails"})
	if err == nil {
		t.Fatal("expected an error for a non-201 response")
	}
	if !strings.Contains(err.Error(), "422") || !strings.Contains(err.Error(), "Validation Failed") {
		t.Fatalf("error missing status and body: %v", err)
	}
}

func TestListLabels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/repos/acme/webapp/labels" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]models.Label{
			{Name: "Critical", Color: "ff0000"},
			{Name: "Open", Color: "c2e0c6"},
		})
	}))
	defer server.Close()

	repo := NewGitHubRepository(testConfig(server.URL))
	labels, err := repo.ListLabels()
	if err != nil {
		t.Fatalf("ListLabels error: %v", err)
	}
	if len(labels) != 2 || labels[0].Name != "Critical" {
		t.Fatalf("labels = %+v", labels)
	}
}

func TestCreateLabel(t *testing.T) {
	var gotLabel models.Label

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/repos/acme/webapp/labels" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotLabel); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	repo := NewGitHubRepository(testConfig(server.URL))
	err := repo.CreateLabel(&models.Label{Name: "High", Color: "d93f0b", Description: "Bug high level"})
	if err != nil {
		t.Fatalf("CreateLabel error: %v", err)
	}
	if gotLabel.Name != "High" || gotLabel.Color != "d93f0b" {
		t.Fatalf("posted label = %+v", gotLabel)
	}
}
