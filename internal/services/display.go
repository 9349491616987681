package services

import (
	"fmt"

	"github.com/compsmart/bug-fixer/internal/helpers"
	"github.com/compsmart/bug-fixer/internal/models"
)

// DisplayBugList prints one line per bug in the set
func DisplayBugList(set BugSet) {
	if set.Len() == 0 {
		helpers.PrintWarning("No bugs found in the bug list")
		return
	}

	helpers.PrintTitle("Available Bugs")
	helpers.PrintSeparator()
	for _, bug := range set.All() {
		bug = ApplyDefaults(bug)
		fmt.Printf("%s: %s - %s - %s\n", bug.ID, bug.Title, bug.Severity, bug.Status)
	}
	helpers.PrintSeparator()
}

// DisplayWorkItemSummary prints a human-readable rendering of a work item
func DisplayWorkItemSummary(item models.WorkItem) {
	fields := item.Fields

	helpers.PrintTitle("Bug #%s - %s", fields.SystemID, fields.Title)
	helpers.PrintSeparator()
	fmt.Printf("Status:      %s\n", fields.State)
	fmt.Printf("Severity:    %s\n", fields.Severity)
	fmt.Printf("Assigned to: %s\n", fields.AssignedTo.DisplayName)
	fmt.Printf("Location:    %s\n", fields.Location)
	if len(fields.LineNumbers) > 0 {
		fmt.Printf("Line(s):     %s\n", joinInts(fields.LineNumbers, ", "))
	}

	fmt.Println("\nDescription:")
	fmt.Println(fields.Description)

	if len(fields.Steps) > 0 {
		fmt.Println("\nSteps to Reproduce:")
		for i, step := range fields.Steps {
			fmt.Printf("%d. %s\n", i+1, step)
		}
	}

	fmt.Println("\nExpected Behavior:")
	fmt.Println(fields.ExpectedBehavior)

	fmt.Println("\nActual Behavior:")
	fmt.Println(fields.ActualBehavior)

	fmt.Println("\nProposed Fix:")
	fmt.Println(fields.Fix)
}
