package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// ANSI colours
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

// Table renders data as a formatted table.
type Table struct {
	headers []string
	rows    [][]string
	writer  io.Writer
}

// NewTable creates a new table that writes to w.
func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{
		headers: headers,
		writer:  w,
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.rows = append(t.rows, cols)
}

// Render writes the table.
func (t *Table) Render() {
	w := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(t.headers, "\t"))

	sep := make([]string, len(t.headers))
	for i, h := range t.headers {
		sep[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(sep, "\t"))

	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush()
}

// printOutput prints data as json or yaml. Table output is rendered by the caller.
func printOutput(w io.Writer, data interface{}) error {
	switch format := getOutputFormat(); format {
	case "json":
		return printJSON(w, data)
	case "yaml":
		return printYAML(w, data)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func printJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printYAML(w io.Writer, data interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(data)
}

// colorEnabled reports whether w is a terminal that should get colours
func colorEnabled(w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func paint(w io.Writer, color, s string) string {
	if !colorEnabled(w) {
		return s
	}
	return color + s + colorReset
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// formatSeverity returns a severity string with visual indicator.
func formatSeverity(w io.Writer, severity string) string {
	switch strings.ToLower(severity) {
	case "critical":
		return paint(w, colorRed, "[!] CRITICAL")
	case "high", "error":
		return paint(w, colorRed, "[H] "+strings.ToUpper(severity))
	case "medium", "warning":
		return paint(w, colorYellow, "[M] "+strings.ToUpper(severity))
	case "low":
		return paint(w, colorGreen, "[L] LOW")
	case "info":
		return paint(w, colorBlue, "[i] INFO")
	default:
		return severity
	}
}

// formatStatus returns a status string with visual indicator.
func formatStatus(w io.Writer, status string) string {
	switch strings.ToLower(status) {
	case "active", "blocked", "resolved", "ok", "ready":
		return paint(w, colorGreen, "[+] "+status)
	case "inactive", "error":
		return paint(w, colorRed, "[-] "+status)
	case "quarantined", "investigating", "warning", "open":
		return paint(w, colorYellow, "[*] "+status)
	default:
		return status
	}
}

// formatAge renders t relative to now, e.g. "5m ago"
func formatAge(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("2006-01-02")
	}
}

// formatTrend turns a threat trend into an arrow word
func formatTrend(trend string) string {
	switch trend {
	case "increasing":
		return "up"
	case "decreasing":
		return "down"
	default:
		return trend
	}
}
