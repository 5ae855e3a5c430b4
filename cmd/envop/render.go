package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/nicjohnson145/envop/internal/envsync"
	"github.com/nicjohnson145/envop/internal/storage"
	"gopkg.in/yaml.v3"
)

const (
	OutputHuman = "human"
	OutputYAML  = "yaml"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	statusStyles = map[envsync.DiffStatus]lipgloss.Style{
		envsync.DiffStatusMissing:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		envsync.DiffStatusChanged:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		envsync.DiffStatusVaultOnly: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
)

func renderDiff(w io.Writer, report *envsync.DiffReport, format string) error {
	switch format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("error encoding diff: %w", err)
		}
		return enc.Close()
	case OutputHuman:
		target := report.Vault + "/" + report.Item
		if report.Section != "" {
			target += "/" + report.Section
		}
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%v <-> %v", report.EnvPath, target)))

		if len(report.Entries) == 0 {
			fmt.Fprintln(w, mutedStyle.Render("Everything is in sync"))
			return nil
		}

		for _, e := range report.Entries {
			style, ok := statusStyles[e.Status]
			if !ok {
				style = cellStyle
			}
			fmt.Fprintf(w, "  %v %v\n", style.Width(12).Render(string(e.Status)), e.Key)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %v", format)
	}
}

func renderHistory(w io.Writer, runs []storage.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No history recorded"))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("WHEN", "KIND", "VAULT", "ITEM", "SECTION", "TARGET", "KEYS")

	for _, r := range runs {
		t.Row(
			r.CreatedAt.Local().Format(time.DateTime),
			string(r.Kind),
			deref(r.Vault),
			deref(r.Item),
			deref(r.Section),
			deref(r.Target),
			strings.Join(r.Keys, ", "),
		)
	}

	fmt.Fprintln(w, t.Render())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
