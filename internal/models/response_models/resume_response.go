package response_models

import "time"

type Link struct {
	Name string
	URL  string
}

type Detail struct {
	Label string
	Value string
	URL   string
}

// ResumeEntry is a resume entity prepared for the section templates.
type ResumeEntry struct {
	ID          uint
	EntityType  string
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	// Period is the rendered span, empty for undated entities.
	Period   string
	Original string
	Image    string
	Details  []Detail
	Skills   []Link
	Related  []Link
}

type SectionEntries struct {
	Slug    string
	Title   string
	Entries []ResumeEntry
}
