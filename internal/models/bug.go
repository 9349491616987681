package models

// BugRecord represents one defect entry from the bug list file. Every field
// is optional; absent values are substituted from the defaults table before
// mapping.
type BugRecord struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Status           string   `json:"status"`
	Severity         string   `json:"severity"`
	AssignedTo       string   `json:"assignedTo"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	LineNumbers      []int    `json:"lineNumbers,omitempty"`
	ExpectedBehavior string   `json:"expectedBehavior"`
	ActualBehavior   string   `json:"actualBehavior"`
	Steps            []string `json:"steps,omitempty"`
	Fix              string   `json:"fix"`
}

// BugFile represents the on-disk shape of the bug list file
type BugFile struct {
	Bugs []BugRecord `json:"bugs"`
}
