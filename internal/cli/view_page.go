package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/campus/internal/cli/formatter"
	"github.com/alexanderramin/campus/internal/contract"
	"github.com/alexanderramin/campus/internal/dashboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// pageLoadedMsg carries a page opened by openPage or reload. name is the
// page the load was issued for.
type pageLoadedMsg struct {
	index  int
	name   string
	page   *dashboard.Page
	reload bool
	err    error
}

type browseKeyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Search   key.Binding
	Clear    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		NextTab:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev tab")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		NextPage: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev page")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Search, k.Clear, k.NextPage, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab},
		{k.Search, k.Clear},
		{k.NextPage, k.PrevPage, k.Reload},
		{k.Help, k.Quit},
	}
}

// pageView browses one dashboard page at a time. It owns the page's
// controller; tabs, search and reset go straight to it.
type pageView struct {
	app   *App
	pages []contract.PageSummary
	index int
	page  *dashboard.Page
	err   error

	// wanted is the index of the most recent page switch; older loads are
	// dropped when they arrive.
	wanted int

	keys      browseKeyMap
	help      help.Model
	search    textinput.Model
	searching bool
}

func newPageView(app *App, pages []contract.PageSummary, index int, page *dashboard.Page) *pageView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search titles, descriptions and details"
	ti.CharLimit = 100

	return &pageView{
		app:    app,
		pages:  pages,
		index:  index,
		wanted: index,
		page:   page,
		keys:   defaultBrowseKeys(),
		help:   help.New(),
		search: ti,
	}
}

func (v *pageView) Init() tea.Cmd { return nil }

func (v *pageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.help.Width = msg.Width
		if msg.Width > 4 {
			v.search.Width = msg.Width - 4
		}
		return v, nil

	case pageLoadedMsg:
		if v.stale(msg) {
			return v, nil
		}
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		if msg.reload && v.page != nil {
			v.page.Reload(msg.page.Controller().Store())
			return v, nil
		}
		v.index = msg.index
		v.page = msg.page
		v.searching = false
		v.search.Blur()
		v.search.Reset()
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *pageView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
		return v, nil
	case key.Matches(msg, v.keys.NextPage):
		return v, v.openPage(v.index + 1)
	case key.Matches(msg, v.keys.PrevPage):
		return v, v.openPage(v.index - 1)
	case key.Matches(msg, v.keys.Reload):
		return v, v.reload()
	}

	if v.page == nil {
		return v, nil
	}
	ctrl := v.page.Controller()
	switch {
	case key.Matches(msg, v.keys.NextTab):
		ctrl.CycleCategory(1)
	case key.Matches(msg, v.keys.PrevTab):
		ctrl.CycleCategory(-1)
	case key.Matches(msg, v.keys.Search):
		v.searching = true
		return v, v.search.Focus()
	case key.Matches(msg, v.keys.Clear):
		ctrl.Reset()
		v.search.Reset()
	}
	return v, nil
}

// updateSearch routes keys to the search box. Enter keeps the text, esc
// clears it; both leave the box.
func (v *pageView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return v, tea.Quit
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		return v, nil
	case tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		v.search.Reset()
		if v.page != nil {
			v.page.Controller().SetSearchText("")
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if v.page != nil {
		v.page.Controller().SetSearchText(v.search.Value())
	}
	return v, cmd
}

// stale reports whether msg belongs to a page that is no longer the target.
// A reload only applies to the page it was issued for; a switch only applies
// if no later switch has been requested.
func (v *pageView) stale(msg pageLoadedMsg) bool {
	if msg.reload {
		return v.page == nil || msg.index != v.index || msg.name != v.page.Spec().Name
	}
	return msg.index != v.wanted
}

// openPage loads the page at index i, wrapping around the page list.
func (v *pageView) openPage(i int) tea.Cmd {
	n := len(v.pages)
	if n == 0 {
		return nil
	}
	i = (i%n + n) % n
	v.wanted = i
	return v.load(i, false)
}

// reload fetches the current page's items again; the selection is kept.
func (v *pageView) reload() tea.Cmd {
	if v.index >= len(v.pages) {
		return nil
	}
	return v.load(v.index, true)
}

func (v *pageView) load(i int, reload bool) tea.Cmd {
	app := v.app
	name := v.pages[i].Name
	return func() tea.Msg {
		page, err := app.Dashboard.OpenPage(context.Background(), name)
		return pageLoadedMsg{index: i, name: name, page: page, reload: reload, err: err}
	}
}

func (v *pageView) title() string {
	if v.page != nil {
		return v.page.Spec().Title
	}
	if v.index < len(v.pages) {
		return v.pages[v.index].Title
	}
	return ""
}

func (v *pageView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render(strings.ToUpper(v.title())))
	b.WriteString(formatter.Dim(fmt.Sprintf("  %d/%d", v.index+1, len(v.pages))) + "\n\n")

	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n\n")
	}
	if v.page == nil {
		b.WriteString("  " + formatter.Dim("Loading...") + "\n")
	} else {
		b.WriteString(v.body(v.page.Snapshot()))
	}

	b.WriteString("\n  " + v.help.View(v.keys) + "\n")
	return b.String()
}

func (v *pageView) body(resp *contract.PageResponse) string {
	var b strings.Builder
	b.WriteString("  " + formatter.RenderTabs(resp.Categories, resp.State.ActiveCategory) + "\n")
	switch {
	case v.searching:
		b.WriteString("  " + v.search.View() + "\n")
	case strings.TrimSpace(resp.State.SearchText) != "":
		b.WriteString("  " + formatter.Dim("search: ") + formatter.StyleBlue.Render(resp.State.SearchText) + "\n")
	}
	b.WriteString("\n")

	if m := formatter.FormatMetrics(resp.Metrics); m != "" {
		b.WriteString(m + "\n")
	}
	if resp.Empty {
		b.WriteString("  " + formatter.StyleYellow.Render(resp.EmptyMessage) + "\n")
	} else {
		b.WriteString(indent(formatter.FormatItemRows(resp.Rows), "  "))
	}
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("showing %d of %d", resp.Visible, resp.Total)) + "\n")
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString(prefix + l)
	}
	return b.String()
}
