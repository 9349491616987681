package services

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBugFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bugs.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write bug file: %v", err)
	}
	return path
}

const bugFixture = `{
  "bugs": [
    {"id": "BUG-001", "title": "Login fails", "severity": "Critical", "status": "Open"},
    {"id": "BUG-002", "title": "Wrong total", "severity": "High", "status": "Open"},
    {"id": "BUG-003", "title": "Bad sort", "severity": "Medium", "status": "Resolved"}
  ]
}`

func TestLoadBugsPreservesOrder(t *testing.T) {
	set, err := LoadBugs(writeBugFile(t, bugFixture))
	if err != nil {
		t.Fatalf("LoadBugs error: %v", err)
	}

	if set.Len() != 3 {
		t.Fatalf("len = %d, want 3", set.Len())
	}

	wantIDs := []string{"BUG-001", "BUG-002", "BUG-003"}
	for i, bug := range set.All() {
		if bug.ID != wantIDs[i] {
			t.Fatalf("bug %d = %s, want %s", i, bug.ID, wantIDs[i])
		}
	}
}

func TestLoadBugsMissingFile(t *testing.T) {
	set, err := LoadBugs(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if set.Len() != 0 {
		t.Fatalf("len = %d, want 0", set.Len())
	}
}

func TestLoadBugsMalformedFile(t *testing.T) {
	set, err := LoadBugs(writeBugFile(t, "{not json"))
	if err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
	if set.Len() != 0 {
		t.Fatalf("len = %d, want 0", set.Len())
	}
}

func TestBugSetFind(t *testing.T) {
	set, err := LoadBugs(writeBugFile(t, bugFixture))
	if err != nil {
		t.Fatalf("LoadBugs error: %v", err)
	}

	bug, ok := set.Find("BUG-002")
	if !ok || bug.Title != "Wrong total" {
		t.Fatalf("Find(BUG-002) = %+v, %v", bug, ok)
	}

	if _, ok := set.Find("BUG-999"); ok {
		t.Fatal("Find(BUG-999) should not match")
	}
}

func TestBugSetFilterPreservesOrder(t *testing.T) {
	set, err := LoadBugs(writeBugFile(t, bugFixture))
	if err != nil {
		t.Fatalf("LoadBugs error: %v", err)
	}

	filtered := set.Filter([]string{"BUG-003", "BUG-001", "BUG-999"})
	if filtered.Len() != 2 {
		t.Fatalf("filtered len = %d, want 2", filtered.Len())
	}

	bugs := filtered.All()
	if bugs[0].ID != "BUG-001" || bugs[1].ID != "BUG-003" {
		t.Fatalf("filtered order = %s, %s; want BUG-001, BUG-003", bugs[0].ID, bugs[1].ID)
	}
}

func TestWorkItemForIDResolution(t *testing.T) {
	set, err := LoadBugs(writeBugFile(t, bugFixture))
	if err != nil {
		t.Fatalf("LoadBugs error: %v", err)
	}

	// a bug from the list wins
	item := WorkItemForID(set, "BUG-001", "acme", "webapp")
	if item.Fields.Title != "Login fails" {
		t.Fatalf("title = %q, want Login fails", item.Fields.Title)
	}

	// then the sample work items
	item = WorkItemForID(set, "12345", "acme", "webapp")
	if item.Fields.Title != "Fix pagination issue on record list" {
		t.Fatalf("sample title = %q", item.Fields.Title)
	}

	// then a generated placeholder
	item = WorkItemForID(set, "BUG-999", "acme", "webapp")
	if item.Fields.Title != "Unknown bug BUG-999" {
		t.Fatalf("placeholder title = %q", item.Fields.Title)
	}
	if item.Fields.State != "New" {
		t.Fatalf("placeholder state = %q, want New", item.Fields.State)
	}
	if item.Fields.Priority != 3 {
		t.Fatalf("placeholder priority = %d, want 3", item.Fields.Priority)
	}
}
