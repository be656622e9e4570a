package qmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"dexscan/internal/application"
	"dexscan/internal/domain"
)

const statusTimeout = 5 * time.Second

// Client implements ports.SearchIndex using the qmd CLI
type Client struct {
	binary  string
	timeout time.Duration

	probeOnce sync.Once
	available bool
}

// NewClient creates a new qmd client, locating the binary via PATH and the
// usual install locations. A missing binary is not an error; the client
// simply reports itself unavailable.
func NewClient() *Client {
	return &Client{
		binary:  findBinary(),
		timeout: statusTimeout,
	}
}

func findBinary() string {
	if path, err := exec.LookPath("qmd"); err == nil {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	candidates := []string{
		filepath.Join(home, ".bun", "bin", "qmd"),
		filepath.Join(home, ".local", "bin", "qmd"),
		"/usr/local/bin/qmd",
		"/opt/homebrew/bin/qmd",
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// IsAvailable checks if the qmd CLI is installed and responding.
// The probe runs once; the result is cached for the process lifetime.
func (c *Client) IsAvailable() bool {
	c.probeOnce.Do(func() {
		if c.binary == "" {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		c.available = exec.CommandContext(ctx, c.binary, "status").Run() == nil
	})
	return c.available
}

// Status runs `qmd status` and parses the collection summary.
func (c *Client) Status() (*domain.IndexStatus, error) {
	if c.binary == "" {
		return nil, application.ErrIndexUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, c.binary, "status").Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", application.ErrIndexUnavailable, err)
	}

	return parseStatus(string(output)), nil
}

var (
	collectionLine = regexp.MustCompile(`^\s*(\S+)\s+(\d+) files(?:\s+updated\s+(\S+))?`)
	pendingLine    = regexp.MustCompile(`Pending embeddings:\s*(\d+)`)
)

// parseStatus extracts collections and pending work from qmd's status
// output. Lines that don't match are skipped, so format drift degrades to
// a partial status instead of an error.
func parseStatus(output string) *domain.IndexStatus {
	status := &domain.IndexStatus{}

	inCollections := false
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "Collections") {
			inCollections = true
			continue
		}
		if m := pendingLine.FindStringSubmatch(line); m != nil {
			status.PendingEmbeddings, _ = strconv.Atoi(m[1])
			inCollections = false
			continue
		}
		if !inCollections {
			continue
		}
		if strings.TrimSpace(line) == "" {
			inCollections = false
			continue
		}
		m := collectionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		count, _ := strconv.Atoi(m[2])
		status.Collections = append(status.Collections, domain.ExistingCollection{
			Name:      m[1],
			FileCount: count,
			UpdatedAt: m[3],
		})
	}

	return status
}
