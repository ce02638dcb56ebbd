// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/course-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxListItems is the default number of items shown from a list
	maxListItems = 5
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the user profile.
func (p *Printer) PrintProfile(profile types.UserProfile) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Education: %s\n", firstLine(profile.Education)))
	sb.WriteString(fmt.Sprintf("Goals:     %s\n", firstLine(profile.Goals)))
	if profile.SupportingText != "" {
		sb.WriteString(fmt.Sprintf("Context:   %d chars of supporting text", len(profile.SupportingText)))
	} else {
		sb.WriteString("Context:   none")
	}
	p.printBox("User Profile", sb.String())
}

// PrintRecommendations outputs a ranked summary of recommended courses.
func (p *Printer) PrintRecommendations(courses []types.Course) {
	if len(courses) == 0 {
		p.printBox("Recommendations", "No courses matched this profile.")
		return
	}

	var sb strings.Builder
	for i, course := range courses {
		sb.WriteString(fmt.Sprintf("%2d. [%3.0f%%] %s\n", i+1, course.RelevanceScore*100, course.Title))
		sb.WriteString(fmt.Sprintf("    %s · %s · %s\n", course.Difficulty, course.Duration, course.Price))
		if len(course.Skills) > 0 {
			sb.WriteString(fmt.Sprintf("    skills: %s\n", joinLimited(course.Skills, maxListItems)))
		}
	}
	p.printBox(fmt.Sprintf("Recommendations (%d)", len(courses)), strings.TrimRight(sb.String(), "\n"))
}

// firstLine returns the first line of possibly multi-line text.
func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}

// joinLimited joins up to limit items, noting how many were omitted.
func joinLimited(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:limit], ", "), len(items)-limit)
}
