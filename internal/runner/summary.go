package runner

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FileResult describes one changed file.
type FileResult struct {
	Path        string   `json:"path" yaml:"path"`
	Changed     bool     `json:"changed" yaml:"changed"`
	Written     bool     `json:"written" yaml:"written"`
	Steps       []string `json:"steps,omitempty" yaml:"steps,omitempty"`
	Edits       int      `json:"edits" yaml:"edits"`
	BytesBefore int64    `json:"bytes_before" yaml:"bytes_before"`
	BytesAfter  int64    `json:"bytes_after" yaml:"bytes_after"`
	Diff        string   `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// DisplayPath returns the path with forward slashes.
func (f FileResult) DisplayPath() string {
	return filepath.ToSlash(f.Path)
}

// Summary captures what a run did.
type Summary struct {
	Pipeline     string        `json:"pipeline" yaml:"pipeline"`
	DryRun       bool          `json:"dry_run" yaml:"dry_run"`
	Scanned      int           `json:"scanned" yaml:"scanned"`
	Changed      int           `json:"changed" yaml:"changed"`
	Edits        int           `json:"edits" yaml:"edits"`
	BytesWritten int64         `json:"bytes_written" yaml:"bytes_written"`
	Duration     time.Duration `json:"duration_ns" yaml:"duration_ns"`
	Files        []FileResult  `json:"files" yaml:"files"`
}

func (s *Summary) add(f FileResult) {
	s.Changed++
	s.Edits += f.Edits
	if f.Written {
		s.BytesWritten += f.BytesAfter
	}
	s.Files = append(s.Files, f)
}

// String returns a human-readable summary.
func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d of %d files changed, %d edits", s.Pipeline, s.Changed, s.Scanned, s.Edits)
	if s.DryRun {
		sb.WriteString(" (dry run, nothing written)")
	} else {
		fmt.Fprintf(&sb, ", %s written", humanize.Bytes(uint64(s.BytesWritten)))
	}
	fmt.Fprintf(&sb, " in %v", s.Duration.Round(time.Millisecond))
	return sb.String()
}
