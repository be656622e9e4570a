package commands

import (
	"context"
	"sort"
	"strings"

	"dexscan/internal/domain"
	"dexscan/internal/ports"
)

// OrphanedPagesCommand finds people pages referenced neither in the tasks
// document nor in the most recent meeting notes. Only the RecentMeetings
// newest notes are read; older mentions don't count as active references.
type OrphanedPagesCommand struct {
	repo           ports.VaultRepository
	RecentMeetings int
}

// NewOrphanedPagesCommand creates a new OrphanedPagesCommand
func NewOrphanedPagesCommand(repo ports.VaultRepository) *OrphanedPagesCommand {
	return &OrphanedPagesCommand{
		repo:           repo,
		RecentMeetings: domain.RecentMeetings,
	}
}

// Execute runs the orphan scan. A page counts as referenced when its name
// appears anywhere in the tasks document or a recent meeting note,
// wiki-linked or plain.
func (c *OrphanedPagesCommand) Execute(ctx context.Context) ([]domain.OrphanedPage, error) {
	people, err := c.repo.ListMarkdown(domain.PeopleDir, 0)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return nil, nil
	}

	tasks := ""
	if content, err := c.repo.ReadFile(domain.TasksDoc); err == nil {
		tasks = string(content)
	}

	meetings, err := c.recentMeetingContents()
	if err != nil {
		return nil, err
	}

	var orphans []domain.OrphanedPage
	for _, person := range people {
		if c.referenced(person.Name, tasks, meetings) {
			continue
		}
		orphans = append(orphans, domain.OrphanedPage{
			Path: person.Path,
			Name: person.Name,
		})
	}

	return orphans, nil
}

func (c *OrphanedPagesCommand) referenced(name, tasks string, meetings []string) bool {
	if strings.Contains(tasks, name) {
		return true
	}
	for _, content := range meetings {
		if strings.Contains(content, name) {
			return true
		}
	}
	return false
}

func (c *OrphanedPagesCommand) recentMeetingContents() ([]string, error) {
	notes, err := c.repo.ListMarkdown(domain.MeetingsDir, 0)
	if err != nil {
		return nil, err
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].ModTime.After(notes[j].ModTime)
	})
	if len(notes) > c.RecentMeetings {
		notes = notes[:c.RecentMeetings]
	}

	contents := make([]string, 0, len(notes))
	for _, note := range notes {
		content, err := c.repo.ReadFile(note.Path)
		if err != nil {
			continue
		}
		contents = append(contents, string(content))
	}
	return contents, nil
}
