package views

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dexscan/internal/adapters/tui/styles"
	"dexscan/internal/application/commands"
	"dexscan/internal/domain"
	"dexscan/internal/ports"
)

// ReportKeyMap defines key bindings for the report view
type ReportKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Copy   key.Binding
	Edit   key.Binding
	Rescan key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var ReportKeys = ReportKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Next: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("pgdn", "next page"),
	),
	Prev: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("pgup", "prev page"),
	),
	Copy: key.NewBinding(
		key.WithKeys("enter", "y"),
		key.WithHelp("enter", "copy"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Rescan: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rescan"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Messages for switching views and launching the editor
type SwitchToHelpMsg struct{}

type SwitchToReportMsg struct{}

type OpenEditorMsg struct{ Path string }

// finding is a single report line the cursor can land on
type finding struct {
	section string
	text    string
	path    string // vault-relative, empty for suggestions
}

type scanDoneMsg struct {
	report *domain.Report
	health domain.HealthCheck
}

type scanErrMsg struct{ err error }

// ReportModel drives the findings browser: it runs the full maintenance
// scan plus the collection health check and lets the user walk the results.
type ReportModel struct {
	ViewState

	repo  ports.VaultRepository
	index ports.SearchIndex

	scanning  bool
	findings  []finding
	report    *domain.Report
	health    *domain.HealthCheck
	paginator *Paginator
}

// NewReportModel creates a new report view model
func NewReportModel(repo ports.VaultRepository, index ports.SearchIndex) *ReportModel {
	return &ReportModel{
		repo:      repo,
		index:     index,
		scanning:  true,
		paginator: NewPaginator(15),
	}
}

// Init starts the first scan
func (m *ReportModel) Init() tea.Cmd {
	return m.scan
}

func (m *ReportModel) scan() tea.Msg {
	ctx := context.Background()

	report, err := commands.NewMaintenanceCommand(m.repo).Execute(ctx)
	if err != nil {
		return scanErrMsg{err}
	}

	health, err := commands.NewDiscoverCommand(m.repo, m.index).HealthCheck(ctx)
	if err != nil {
		return scanErrMsg{err}
	}

	return scanDoneMsg{report: report, health: health}
}

// Update handles messages for the report view
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanDoneMsg:
		m.scanning = false
		m.report = msg.report
		m.health = &msg.health
		m.findings = buildFindings(msg.report, msg.health)
		m.paginator.Reset()
		m.paginator.SetTotal(len(m.findings))
		return m, nil

	case scanErrMsg:
		m.scanning = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ReportModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ReportKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, ReportKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, ReportKeys.Rescan):
		if m.scanning {
			return m, nil
		}
		m.scanning = true
		m.ClearMessage()
		return m, m.scan

	case key.Matches(msg, ReportKeys.Up):
		m.paginator.CursorUp()
		return m, nil

	case key.Matches(msg, ReportKeys.Down):
		m.paginator.CursorDown()
		return m, nil

	case key.Matches(msg, ReportKeys.Next):
		m.paginator.NextPage()
		return m, nil

	case key.Matches(msg, ReportKeys.Prev):
		m.paginator.PrevPage()
		return m, nil

	case key.Matches(msg, ReportKeys.Copy):
		if f, ok := m.selected(); ok {
			value := f.path
			if value == "" {
				value = f.text
			}
			clipboard.WriteAll(value)
			m.SetMessage(fmt.Sprintf("copied %q", value), false)
		}
		return m, nil

	case key.Matches(msg, ReportKeys.Edit):
		if f, ok := m.selected(); ok && f.path != "" {
			path := filepath.Join(m.repo.Root(), filepath.FromSlash(f.path))
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
		}
		return m, nil
	}

	return m, nil
}

func (m *ReportModel) selected() (finding, bool) {
	cursor := m.paginator.Cursor()
	if cursor < 0 || cursor >= len(m.findings) {
		return finding{}, false
	}
	return m.findings[cursor], true
}

// buildFindings flattens the report and health check into cursor targets,
// keeping section order stable across rescans.
func buildFindings(report *domain.Report, health domain.HealthCheck) []finding {
	var fs []finding

	for _, sf := range report.StaleFiles {
		fs = append(fs, finding{
			section: fmt.Sprintf("Stale inbox files (%d+ days)", domain.StaleInboxDays),
			text:    fmt.Sprintf("%s (%d days)", sf.Path, sf.AgeDays),
			path:    sf.Path,
		})
	}
	for _, bl := range report.BrokenLinks {
		fs = append(fs, finding{
			section: "Broken links",
			text:    fmt.Sprintf("%s -> [[%s]]", bl.Source, bl.Target),
			path:    bl.Source,
		})
	}
	for _, op := range report.OrphanedPages {
		fs = append(fs, finding{
			section: "Orphaned people pages",
			text:    op.Path,
			path:    op.Path,
		})
	}
	for _, sf := range report.StaleMemoryEntries {
		fs = append(fs, finding{
			section: fmt.Sprintf("Stale memory entries (%d+ days)", domain.StaleMemoryDays),
			text:    fmt.Sprintf("%s (%d days)", sf.Path, sf.AgeDays),
			path:    sf.Path,
		})
	}
	for _, s := range health.Suggestions {
		fs = append(fs, finding{
			section: "Suggestions",
			text:    s,
		})
	}

	return fs
}

// View renders the report view
func (m *ReportModel) View() string {
	v := NewViewBuilder()
	v.Title("dexscan")
	v.Subtitle(m.repo.Root())

	if m.scanning {
		v.Muted("Scanning vault...")
		return v.String()
	}

	v.Message(m.Message, m.MessageErr)

	if len(m.findings) == 0 {
		v.Line(styles.HealthyBanner.Render("No issues found. Vault is healthy."))
		v.BlankLine()
		v.Help(ReportKeys.Rescan, ReportKeys.Help, ReportKeys.Quit)
		return v.String()
	}

	start, end := m.paginator.VisibleRange()
	section := ""
	if start > 0 {
		section = m.findings[start-1].section
	}
	for i := start; i < end; i++ {
		f := m.findings[i]
		if f.section != section {
			section = f.section
			v.Line(styles.SectionHeader.Render(section))
		}
		line := "  " + f.text
		if i == m.paginator.Cursor() {
			v.Line(styles.FindingSelected.Render("> " + f.text))
		} else {
			v.Line(styles.FindingLine.Render(line))
		}
	}

	v.BlankLine()
	if m.paginator.TotalPages() > 1 {
		v.Muted(fmt.Sprintf("page %d/%d, %d findings",
			m.paginator.CurrentPage(), m.paginator.TotalPages(), len(m.findings)))
	} else {
		v.Muted(fmt.Sprintf("%d findings", len(m.findings)))
	}
	v.BlankLine()
	v.Help(ReportKeys.Copy, ReportKeys.Edit, ReportKeys.Rescan, ReportKeys.Help, ReportKeys.Quit)

	return v.String()
}
