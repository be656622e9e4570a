package domain

// CollectionCandidate describes a vault area worth indexing for semantic
// search. Paths lists alternative locations; the richest one wins.
type CollectionCandidate struct {
	Name        string
	Paths       []string
	Glob        string
	MinFiles    int
	Description string
	Priority    int
	// AbsentReason overrides the generic skip reason when none of the
	// candidate's paths exist.
	AbsentReason string
}

// DefaultCatalog is the built-in set of collection candidates, ordered by
// priority. Thresholds keep near-empty directories from producing noise.
var DefaultCatalog = []CollectionCandidate{
	{
		Name:        "inbox",
		Paths:       []string{InboxDir},
		Glob:        "*.md",
		MinFiles:    5,
		Description: "Unprocessed captures awaiting triage",
		Priority:    1,
	},
	{
		Name:        "projects",
		Paths:       []string{ProjectsDir},
		Glob:        "*.md",
		MinFiles:    3,
		Description: "Active project notes",
		Priority:    2,
	},
	{
		Name:        "areas",
		Paths:       []string{AreasDir},
		Glob:        "*.md",
		MinFiles:    3,
		Description: "Ongoing areas of responsibility",
		Priority:    3,
	},
	{
		Name:        "meetings",
		Paths:       []string{MeetingsDir, "03-Meeting-Notes"},
		Glob:        "*.md",
		MinFiles:    5,
		Description: "Meeting notes and transcripts",
		Priority:    4,
	},
	{
		Name:        "people",
		Paths:       []string{PeopleDir},
		Glob:        "*.md",
		MinFiles:    3,
		Description: "People pages and relationship notes",
		Priority:    5,
	},
	{
		Name:         "resources",
		Paths:        []string{ResourcesDir},
		Glob:         "*.md",
		MinFiles:     5,
		Description:  "Reference material and clippings",
		Priority:     6,
		AbsentReason: "no resources directory in this vault",
	},
	{
		Name:         "system",
		Paths:        []string{SystemDir},
		Glob:         "*.md",
		MinFiles:     2,
		Description:  "System pages, tasks and memories",
		Priority:     7,
		AbsentReason: "no system directory in this vault",
	},
}
