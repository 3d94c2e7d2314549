package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/campus/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatNumber prints whole numbers without decimals and everything else
// with two.
func FormatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatPercent prints a 0-100 percentage with two decimals, e.g. "68.97%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatMetricValue prints a metric according to its kind.
func FormatMetricValue(kind domain.MetricKind, v float64) string {
	if kind == domain.MetricPercentage {
		return FormatPercent(v)
	}
	return FormatNumber(v)
}

// StatusPill returns a colored item status. Statuses that read as done are
// dimmed, those that need attention are red or yellow.
func StatusPill(status string) string {
	if status == "" {
		return StyleDim.Render("--")
	}
	switch strings.ToLower(status) {
	case "overdue", "rejected", "unpaid", "out of stock", "open":
		return StyleRed.Render("● " + status)
	case "pending", "waiting", "applied", "in progress", "low stock", "unread", "shortlisted", "booked":
		return StyleYellow.Render("○ " + status)
	case "completed", "returned", "resolved", "read", "paid", "approved":
		return StyleDim.Render("✔ " + status)
	default:
		return StyleGreen.Render("● " + status)
	}
}

// FieldSummary renders free-form fields as "key: value" pairs in key order.
func FieldSummary(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, ", ")
}

// HumanTimestamp returns a human-friendly absolute timestamp in local time.
func HumanTimestamp(t time.Time) string {
	return t.Local().Format("Jan 2, 2006 15:04")
}
