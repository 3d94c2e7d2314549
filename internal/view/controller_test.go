package view

import (
	"testing"

	"github.com/alexanderramin/campus/internal/domain"
	"github.com/alexanderramin/campus/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaveRequests() []domain.Item {
	return []domain.Item{
		{ID: "l1", Category: "Personal", Status: "Pending", Title: "Family Emergency"},
		{ID: "l2", Category: "Medical", Status: "Approved", Title: "Medical Leave"},
		{ID: "l3", Category: "Personal", Status: "Rejected", Title: "Cousin's wedding"},
	}
}

func countMetrics(view, store []domain.Item) map[string]float64 {
	return map[string]float64{
		"visible": float64(len(view)),
		"pending": float64(metrics.CountBy(store, metrics.StatusIn("Pending"))),
	}
}

func viewIDs(c *Controller[domain.Item]) []string {
	var out []string
	for _, it := range c.View() {
		out = append(out, it.ID)
	}
	return out
}

func TestNewController_StartsOnAll(t *testing.T) {
	items := leaveRequests()
	c := NewController([]string{"Personal", "Medical"}, items, countMetrics)

	assert.Equal(t, domain.DefaultViewState(), c.State())
	assert.Equal(t, []string{domain.AllCategory, "Personal", "Medical"}, c.Categories())
	assert.Equal(t, items, c.View())
	assert.Equal(t, 3.0, c.Metrics()["visible"])
}

func TestController_SetActiveCategory(t *testing.T) {
	c := NewController([]string{domain.AllCategory, "Personal", "Medical"}, leaveRequests(), countMetrics)

	require.True(t, c.SetActiveCategory("Personal"))
	assert.Equal(t, []string{"l1", "l3"}, viewIDs(c))
	assert.Equal(t, 2.0, c.Metrics()["visible"])
	assert.Equal(t, 1.0, c.Metrics()["pending"])
}

func TestController_UnknownCategoryFallsBackToAll(t *testing.T) {
	c := NewController([]string{"Personal", "Medical"}, leaveRequests(), countMetrics)
	require.True(t, c.SetActiveCategory("Medical"))

	ok := c.SetActiveCategory("Vacation")
	assert.False(t, ok)
	assert.Equal(t, domain.AllCategory, c.State().ActiveCategory)
	assert.Len(t, c.View(), 3)
}

func TestController_SearchText(t *testing.T) {
	c := NewController([]string{"Personal", "Medical"}, leaveRequests(), countMetrics)

	c.SetSearchText("emergency")
	assert.Equal(t, []string{"l1"}, viewIDs(c))

	c.SetSearchText("")
	assert.Len(t, c.View(), 3)
}

func TestController_EmptyTab(t *testing.T) {
	c := NewController([]string{"Personal", "Medical", "Academic"}, leaveRequests(), countMetrics)
	require.True(t, c.SetActiveCategory("Academic"))
	assert.Empty(t, c.View())
	assert.Equal(t, 0.0, c.Metrics()["visible"])
}

func TestController_Reset(t *testing.T) {
	c := NewController([]string{"Personal"}, leaveRequests(), countMetrics)
	c.SetActiveCategory("Personal")
	c.SetSearchText("wedding")
	require.Len(t, c.View(), 1)

	c.Reset()
	assert.Equal(t, domain.DefaultViewState(), c.State())
	assert.Len(t, c.View(), 3)
}

func TestController_SetStoreKeepsSelection(t *testing.T) {
	c := NewController([]string{"Personal", "Medical"}, leaveRequests(), countMetrics)
	c.SetActiveCategory("Medical")

	c.SetStore(append(leaveRequests(), domain.Item{ID: "l4", Category: "Medical", Title: "Dental surgery"}))
	assert.Equal(t, []string{"l2", "l4"}, viewIDs(c))
	assert.Equal(t, "Medical", c.State().ActiveCategory)
}

func TestController_DoesNotMutateStore(t *testing.T) {
	items := leaveRequests()
	c := NewController([]string{"Personal"}, items, nil)
	c.SetActiveCategory("Personal")
	c.SetSearchText("family")
	assert.Equal(t, leaveRequests(), c.Store())
	assert.Empty(t, c.Metrics())
}

func TestController_MetricsReturnsCopy(t *testing.T) {
	c := NewController(nil, leaveRequests(), countMetrics)
	m := c.Metrics()
	m["visible"] = 99
	assert.Equal(t, 3.0, c.Metrics()["visible"])
}

func TestController_CycleCategory(t *testing.T) {
	c := NewController([]string{"Personal", "Medical"}, leaveRequests(), nil)

	c.CycleCategory(1)
	assert.Equal(t, "Personal", c.State().ActiveCategory)
	c.CycleCategory(1)
	assert.Equal(t, "Medical", c.State().ActiveCategory)
	c.CycleCategory(1)
	assert.Equal(t, domain.AllCategory, c.State().ActiveCategory)
	c.CycleCategory(-1)
	assert.Equal(t, "Medical", c.State().ActiveCategory)
}

func TestReduce(t *testing.T) {
	cats := []string{domain.AllCategory, "Finance"}
	start := domain.ViewState{ActiveCategory: "Finance", SearchText: "fee"}

	next, ok := Reduce(start, cats, SetSearch("hostel"))
	assert.True(t, ok)
	assert.Equal(t, domain.ViewState{ActiveCategory: "Finance", SearchText: "hostel"}, next)

	next, ok = Reduce(start, cats, SelectCategory("finance"))
	assert.False(t, ok)
	assert.Equal(t, domain.ViewState{ActiveCategory: domain.AllCategory, SearchText: "fee"}, next)

	next, ok = Reduce(start, cats, Reset())
	assert.True(t, ok)
	assert.Equal(t, domain.DefaultViewState(), next)
}

func TestNormalizeCategories(t *testing.T) {
	assert.Equal(t,
		[]string{domain.AllCategory, "Finance", "Event"},
		NormalizeCategories([]string{"Finance", " ", domain.AllCategory, "Event", "Finance"}))
	assert.Equal(t, []string{domain.AllCategory}, NormalizeCategories(nil))
}
