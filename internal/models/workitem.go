package models

// WorkItem represents a bug in Azure DevOps work item format
type WorkItem struct {
	ID     string         `json:"id"`
	Rev    int            `json:"rev"`
	Fields WorkItemFields `json:"fields"`
	Links  WorkItemLinks  `json:"_links"`
	URL    string         `json:"url"`
}

// WorkItemFields represents the field collection of a work item
type WorkItemFields struct {
	SystemID         string      `json:"System.Id"`
	Title            string      `json:"System.Title"`
	State            string      `json:"System.State"`
	CreatedDate      string      `json:"System.CreatedDate"`
	CreatedBy        IdentityRef `json:"System.CreatedBy"`
	AssignedTo       IdentityRef `json:"System.AssignedTo"`
	WorkItemType     string      `json:"System.WorkItemType"`
	Description      string      `json:"System.Description"`
	Tags             string      `json:"System.Tags"`
	Priority         int         `json:"Microsoft.VSTS.Common.Priority"`
	Severity         string      `json:"Microsoft.VSTS.Common.Severity"`
	Location         string      `json:"Custom.Location"`
	LineNumbers      []int       `json:"Custom.LineNumbers"`
	ExpectedBehavior string      `json:"Custom.ExpectedBehavior"`
	ActualBehavior   string      `json:"Custom.ActualBehavior"`
	Steps            []string    `json:"Custom.Steps"`
	Fix              string      `json:"Custom.Fix"`
}

// IdentityRef represents an Azure DevOps identity reference
type IdentityRef struct {
	DisplayName string `json:"displayName"`
	UniqueName  string `json:"uniqueName"`
	ID          string `json:"id"`
}

// WorkItemLinks represents the _links section of a work item
type WorkItemLinks struct {
	Self WorkItemLink `json:"self"`
	HTML WorkItemLink `json:"html"`
}

// WorkItemLink represents a single hyperlink reference
type WorkItemLink struct {
	Href string `json:"href"`
}
