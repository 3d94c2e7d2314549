package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/campus/internal/contract"
	"github.com/alexanderramin/campus/internal/domain"
)

const bandProgressBarWidth = 10

// FormatPages renders the page listing.
func FormatPages(pages []contract.PageSummary) string {
	headers := []string{"PAGE", "TITLE", "ITEMS", "CATEGORIES"}
	rows := make([][]string, 0, len(pages))
	total := 0
	for _, p := range pages {
		total += p.ItemCount
		rows = append(rows, []string{
			p.Name,
			p.Title,
			strconv.Itoa(p.ItemCount),
			strings.Join(p.Categories, ", "),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(fmt.Sprintf("\n%d pages, %d items\n", len(pages), total))
	return b.String()
}

// RenderTabs renders the category tabs with the active one highlighted.
func RenderTabs(categories []string, active string) string {
	if active == "" {
		active = domain.AllCategory
	}
	parts := make([]string, len(categories))
	for i, c := range categories {
		if c == active {
			parts[i] = StyleActiveTab.Render("[" + c + "]")
		} else {
			parts[i] = Dim(" " + c + " ")
		}
	}
	return strings.Join(parts, " ")
}

// FormatMetrics renders the page's summary numbers, one per line.
func FormatMetrics(metrics []contract.MetricValue) string {
	if len(metrics) == 0 {
		return ""
	}
	width := 0
	for _, m := range metrics {
		if w := len(m.Label); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, m := range metrics {
		value := FormatMetricValue(m.Kind, m.Value)
		if m.Band != "" {
			value = RenderBandProgress(m.Value, m.Band, bandProgressBarWidth) + "  " + BandIndicator(m.Band, m.BandLabel)
		} else {
			value = Bold(value)
		}
		scope := ""
		if m.Scope == domain.ScopeStore {
			scope = Dim("  (all items)")
		}
		b.WriteString(fmt.Sprintf("  %-*s  %s%s\n", width, m.Label, value, scope))
	}
	return b.String()
}

// FormatItemRows renders the visible rows as a table. Pages with a per-item
// band get a progress column.
func FormatItemRows(rows []contract.ItemRow) string {
	banded := false
	for _, r := range rows {
		if r.BandPct != nil {
			banded = true
			break
		}
	}

	headers := []string{"TITLE", "CATEGORY", "STATUS"}
	if banded {
		headers = append(headers, "PROGRESS", "BAND")
	}
	headers = append(headers, "DETAILS")

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := []string{Bold(r.Title), StylePurple.Render(r.Category), StatusPill(r.Status)}
		if banded {
			if r.BandPct != nil {
				row = append(row, RenderBandProgress(*r.BandPct, r.Band, bandProgressBarWidth), BandIndicator(r.Band, r.BandLabel))
			} else {
				row = append(row, Dim("--"), Dim("--"))
			}
		}
		row = append(row, Dim(details(r)))
		out = append(out, row)
	}
	return RenderTable(headers, out)
}

// FormatPage renders one page snapshot: tabs, search, metrics, then rows or
// the empty-state message.
func FormatPage(resp *contract.PageResponse) string {
	var b strings.Builder

	b.WriteString(RenderTabs(resp.Categories, resp.State.ActiveCategory) + "\n")
	if q := strings.TrimSpace(resp.State.SearchText); q != "" {
		b.WriteString(Dim("search: ") + StyleBlue.Render(q) + "\n")
	}
	b.WriteString("\n")

	if m := FormatMetrics(resp.Metrics); m != "" {
		b.WriteString(m + "\n")
	}

	if resp.Empty {
		b.WriteString(StyleYellow.Render(resp.EmptyMessage) + "\n")
	} else {
		b.WriteString(FormatItemRows(resp.Rows))
	}
	b.WriteString("\n" + Dim(fmt.Sprintf("showing %d of %d", resp.Visible, resp.Total)) + "\n")

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
		}
	}

	return RenderBox(resp.Title, b.String())
}

// FormatImport renders the outcome of a dataset import.
func FormatImport(rec domain.ImportRecord, perPage map[string]int, deleted int, warnings []string) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Imported %d items from %s", rec.ItemCount, rec.Source)) + "\n")

	pages := make([]string, 0, len(perPage))
	for p := range perPage {
		pages = append(pages, p)
	}
	sort.Strings(pages)
	for _, p := range pages {
		b.WriteString(fmt.Sprintf("  %s %d\n", Dim(p+":"), perPage[p]))
	}
	if rec.Replaced {
		b.WriteString(Dim(fmt.Sprintf("Replaced %d previously stored items.", deleted)) + "\n")
	}
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
	}
	return b.String()
}

// FormatImportHistory renders stored import records, newest first.
func FormatImportHistory(recs []domain.ImportRecord) string {
	if len(recs) == 0 {
		return Dim("No imports yet.") + "\n"
	}
	headers := []string{"WHEN", "SOURCE", "FORMAT", "ITEMS", "WARNINGS", "MODE"}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		mode := "append"
		if r.Replaced {
			mode = "replace"
		}
		rows = append(rows, []string{
			HumanTimestamp(r.ImportedAt),
			r.Source,
			r.Format,
			strconv.Itoa(r.ItemCount),
			strconv.Itoa(r.WarningCount),
			mode,
		})
	}
	return Header("Import history") + "\n" + RenderTable(headers, rows)
}

func details(r contract.ItemRow) string {
	parts := make([]string, 0, 2)
	if r.Description != "" {
		parts = append(parts, r.Description)
	}
	if f := FieldSummary(r.Fields); f != "" {
		parts = append(parts, f)
	}
	return strings.Join(parts, "; ")
}
