// Package report assembles the human-readable result of a road map
// analysis as an ordered list of sections, each a header line followed
// by body lines.
//
// A Report is a plain value: stages return Sections, the caller appends
// them, and rendering happens once at the end (to a string, an io.Writer,
// or a file).
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Section is one header line followed by zero or more body lines.
type Section struct {
	Header string
	Lines  []string
}

// Report is an ordered sequence of Sections.
type Report struct {
	Sections []Section
}

// Append adds sections in order and returns the report for chaining.
func (r *Report) Append(sections ...Section) *Report {
	r.Sections = append(r.Sections, sections...)

	return r
}

// Lines flattens the report into its output lines.
func (r Report) Lines() []string {
	var lines []string
	for _, s := range r.Sections {
		lines = append(lines, s.Header)
		lines = append(lines, s.Lines...)
	}

	return lines
}

// String joins all lines with "\n". There is no trailing newline.
func (r Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// WriteTo writes String() to w.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())

	return int64(n), err
}

// WriteFile writes the report to path, creating or truncating it.
func (r Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %q: %w", path, err)
	}
	if _, err = r.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("report: write %q: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("report: close %q: %w", path, err)
	}

	return nil
}
