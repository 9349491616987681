package models

// IssuePayload represents the body of a GitHub issue creation request
type IssuePayload struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

// Label represents a GitHub repository label
type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// IssueResponse represents the subset of the GitHub issue response we report
type IssueResponse struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
}
