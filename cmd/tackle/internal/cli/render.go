package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/skyezerfox/tackle/pkg/forge"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/scheduler"
	"github.com/skyezerfox/tackle/pkg/tackle"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// RenderError formats a fatal command error.
func RenderError(err error) string {
	return errorStyle.Render("✗ ") + err.Error()
}

// RenderPath formats a filesystem path.
func RenderPath(path string) string {
	return pathStyle.Render(path)
}

// RenderPackages lists installed packages grouped by hook type.
func RenderPackages(packages []tackle.InstalledPackage) string {
	var sb strings.Builder
	for _, t := range manifest.HookTypes {
		sb.WriteString(headerStyle.Render(t.GitHookName() + " hooks:"))
		sb.WriteString("\n")

		n := 0
		for _, p := range packages {
			if p.Type != t {
				continue
			}
			n++
			line := "  " + p.URL
			if p.Version != "" {
				line += "@" + p.Version
			}
			if !p.Fetched {
				line += " " + warningStyle.Render("(not fetched, run 'tackle sync')")
			}
			sb.WriteString(line + "\n")
		}
		if n == 0 {
			sb.WriteString(dimStyle.Render("  No hooks installed.") + "\n")
		}
	}
	return sb.String()
}

// RenderSearchResults lists forge search results.
func RenderSearchResults(results []forge.PackageInfo) string {
	if len(results) == 0 {
		return dimStyle.Render("No packages found.") + "\n"
	}

	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(headerStyle.Render(r.Identifier))
		sb.WriteString(dimStyle.Render(fmt.Sprintf(" ★ %d", r.Stars)))
		sb.WriteString("\n")
		if r.Description != "" {
			sb.WriteString("  " + r.Description + "\n")
		}
	}
	return sb.String()
}

// RenderPackageInfo describes one forge package.
func RenderPackageInfo(info *forge.PackageInfo) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(info.Identifier) + "\n")
	if info.Description != "" {
		sb.WriteString("  " + info.Description + "\n")
	}
	sb.WriteString(fmt.Sprintf("  stars:   %d\n", info.Stars))
	sb.WriteString("  url:     " + RenderPath(info.URL) + "\n")
	if len(info.Topics) > 0 {
		sb.WriteString("  topics:  " + strings.Join(info.Topics, ", ") + "\n")
	}
	if !info.UpdatedAt.IsZero() {
		sb.WriteString("  updated: " + info.UpdatedAt.Format("2006-01-02") + "\n")
	}
	return sb.String()
}

// RenderReport summarizes a hook run, one line per hook.
func RenderReport(report *tackle.RunReport) string {
	var sb strings.Builder
	for _, p := range report.Packages {
		sb.WriteString(headerStyle.Render(p.Name) + "\n")
		for _, r := range p.Report.Results {
			sb.WriteString("  " + renderHookResult(r) + "\n")
		}
	}

	summary := fmt.Sprintf("%d successful, %d failed, %d skipped",
		report.Count(scheduler.Successful), report.Count(scheduler.Failed), report.Count(scheduler.Skipped))
	if report.Failed() {
		sb.WriteString(errorStyle.Render(summary))
	} else {
		sb.WriteString(successStyle.Render(summary))
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderHookResult(r scheduler.HookResult) string {
	switch {
	case r.State == scheduler.Successful:
		return successStyle.Render("✓ ") + r.Label + dimStyle.Render(" "+r.Duration.Round(time.Millisecond).String())
	case r.State == scheduler.Failed && r.Reason != "":
		return errorStyle.Render("✗ ") + r.Label + dimStyle.Render(": "+r.Reason)
	case r.State == scheduler.Failed:
		return errorStyle.Render("✗ ") + r.Label + dimStyle.Render(fmt.Sprintf(": exit code %d", r.ExitCode))
	case r.Blocked:
		return warningStyle.Render("○ ") + r.Label + dimStyle.Render(": "+r.Reason)
	default:
		return dimStyle.Render("○ " + r.Label + " " + r.State.String())
	}
}
