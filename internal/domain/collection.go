package domain

import (
	"fmt"
	"sort"
)

// Evaluation states for a collection candidate.
const (
	StateCandidate     = "candidate"
	StateSkippedTooFew = "skipped-too-few"
	StateSkippedAbsent = "skipped-absent"
)

// Evaluation is the outcome of checking one candidate against the vault.
type Evaluation struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	Path        string `json:"path,omitempty"`
	FileCount   int    `json:"fileCount"`
	MinFiles    int    `json:"minFiles"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// FileCounter counts files matching glob directly under dir.
// exists is false when the directory itself is missing.
type FileCounter func(dir, glob string) (count int, exists bool)

// Evaluate checks the candidate against the vault using count. When the
// candidate lists alternative paths, the one with the most files wins.
func (c CollectionCandidate) Evaluate(count FileCounter) Evaluation {
	ev := Evaluation{
		Name:        c.Name,
		MinFiles:    c.MinFiles,
		Description: c.Description,
		Priority:    c.Priority,
	}

	best := -1
	for _, p := range c.Paths {
		n, ok := count(p, c.Glob)
		if !ok {
			continue
		}
		if n > best {
			best = n
			ev.Path = p
		}
	}

	switch {
	case best < 0 || best == 0:
		ev.State = StateSkippedAbsent
		ev.Reason = c.AbsentReason
		if ev.Reason == "" {
			ev.Reason = "directory missing or empty"
		}
		ev.Path = ""
		ev.FileCount = 0
	case best < c.MinFiles:
		ev.State = StateSkippedTooFew
		ev.FileCount = best
		ev.Reason = fmt.Sprintf("%d files, need %d", best, c.MinFiles)
	default:
		ev.State = StateCandidate
		ev.FileCount = best
	}

	return ev
}

// EvaluateCatalog evaluates every candidate and returns the results sorted
// by priority.
func EvaluateCatalog(catalog []CollectionCandidate, count FileCounter) []Evaluation {
	evals := make([]Evaluation, 0, len(catalog))
	for _, c := range catalog {
		evals = append(evals, c.Evaluate(count))
	}
	sort.Slice(evals, func(i, j int) bool {
		return evals[i].Priority < evals[j].Priority
	})
	return evals
}

// ExistingCollection is a collection already known to the search index.
type ExistingCollection struct {
	Name      string `json:"name"`
	FileCount int    `json:"fileCount"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// IndexStatus is a snapshot of the external search index.
type IndexStatus struct {
	Collections       []ExistingCollection `json:"collections"`
	PendingEmbeddings int                  `json:"pendingEmbeddings"`
}

// StaleCollection is an indexed collection whose live file count has
// grown past what the index last saw.
type StaleCollection struct {
	Name         string `json:"name"`
	IndexedFiles int    `json:"indexedFiles"`
	LiveFiles    int    `json:"liveFiles"`
	Drift        int    `json:"drift"`
}

// HealthCheck compares discovered candidates against the search index.
type HealthCheck struct {
	NewCandidates     []Evaluation      `json:"newCandidates"`
	StaleCollections  []StaleCollection `json:"staleCollections"`
	PendingEmbeddings int               `json:"pendingEmbeddings"`
	Suggestions       []string          `json:"suggestions"`
	IndexAvailable    bool              `json:"indexAvailable"`
}

// BuildHealthCheck cross-references candidate evaluations with the index
// status. A nil status means the index is unreachable; candidates are
// still reported so the caller can act on them once the index is back.
func BuildHealthCheck(evals []Evaluation, status *IndexStatus) HealthCheck {
	hc := HealthCheck{IndexAvailable: status != nil}

	indexed := make(map[string]ExistingCollection)
	if status != nil {
		for _, col := range status.Collections {
			indexed[col.Name] = col
		}
		hc.PendingEmbeddings = status.PendingEmbeddings
	}

	for _, ev := range evals {
		if ev.State != StateCandidate {
			continue
		}
		col, ok := indexed[ev.Name]
		if !ok {
			hc.NewCandidates = append(hc.NewCandidates, ev)
			continue
		}
		if drift := ev.FileCount - col.FileCount; drift > 0 {
			hc.StaleCollections = append(hc.StaleCollections, StaleCollection{
				Name:         ev.Name,
				IndexedFiles: col.FileCount,
				LiveFiles:    ev.FileCount,
				Drift:        drift,
			})
		}
	}

	hc.Suggestions = buildSuggestions(hc)
	return hc
}

func buildSuggestions(hc HealthCheck) []string {
	var out []string
	if !hc.IndexAvailable {
		out = append(out, "search index unavailable; install qmd or check PATH")
	}
	for _, ev := range hc.NewCandidates {
		out = append(out, fmt.Sprintf("create collection %q for %s (%d files)", ev.Name, ev.Path, ev.FileCount))
	}
	for _, sc := range hc.StaleCollections {
		out = append(out, fmt.Sprintf("re-index collection %q (%d indexed, %d on disk)", sc.Name, sc.IndexedFiles, sc.LiveFiles))
	}
	if hc.PendingEmbeddings > 0 {
		out = append(out, fmt.Sprintf("run embedding update (%d chunks pending)", hc.PendingEmbeddings))
	}
	return out
}
