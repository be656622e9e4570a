package domain

// Well-known vault locations. The scanner treats these as convention,
// not requirement: a missing directory simply yields no findings.
const (
	InboxDir     = "00-Inbox"
	ProjectsDir  = "01-Projects"
	AreasDir     = "02-Areas"
	MeetingsDir  = "03-Meetings"
	PeopleDir    = "04-People"
	ResourcesDir = "06-Resources"
	SystemDir    = "System"

	TasksDoc    = "System/Tasks.md"
	MemoriesDir = "System/Memories"
)

// CorpusDirs are the top-level directories scanned when building the
// document-name index for link resolution.
var CorpusDirs = []string{
	InboxDir,
	ProjectsDir,
	AreasDir,
	MeetingsDir,
	PeopleDir,
	ResourcesDir,
	SystemDir,
}

// Scan defaults. The sampling caps bound total I/O on large vaults.
const (
	StaleInboxDays   = 30
	StaleMemoryDays  = 90
	LinkSampleLimit  = 100
	LinkCorpusDepth  = 5
	RecentMeetings   = 20
	ReportSectionCap = 10
)
