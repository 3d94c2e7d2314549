package metrics

import "github.com/alexanderramin/campus/internal/domain"

// Result holds the evaluated metrics of a page.
type Result struct {
	Values map[string]float64
	Bands  map[string]domain.Band
}

// Evaluate computes every metric definition against the view or the store,
// depending on the metric scope.
func Evaluate(defs []domain.MetricDef, view, store []domain.Item, th domain.Thresholds) Result {
	res := Result{
		Values: make(map[string]float64, len(defs)),
		Bands:  make(map[string]domain.Band),
	}
	for _, def := range defs {
		items := view
		if def.Scope == domain.ScopeStore {
			items = store
		}
		v := evaluateOne(def, items)
		res.Values[def.Name] = v
		if def.Banded {
			res.Bands[def.Name] = BandFor(v, th)
		}
	}
	return res
}

func evaluateOne(def domain.MetricDef, items []domain.Item) float64 {
	switch def.Kind {
	case domain.MetricCount:
		return float64(CountBy(items, StatusIn(def.Statuses...)))
	case domain.MetricSum:
		return Sum(items, def.Field)
	case domain.MetricPercentage:
		if def.Numerator != "" {
			return Ratio(items, def.Numerator, def.Denominator)
		}
		return Percentage(float64(CountBy(items, StatusIn(def.Statuses...))), float64(len(items)))
	default:
		return 0
	}
}
