package domain

// AllCategory is the tab that disables category filtering. Every page
// declares it as its first category.
const AllCategory = "All"

type Band string

const (
	BandSafe     Band = "safe"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

type MetricKind string

const (
	MetricCount      MetricKind = "count"
	MetricSum        MetricKind = "sum"
	MetricPercentage MetricKind = "percentage"
)

// ValidMetricKinds is the canonical set of accepted metric kind strings.
var ValidMetricKinds = map[MetricKind]bool{
	MetricCount: true, MetricSum: true, MetricPercentage: true,
}

type MetricScope string

const (
	ScopeView  MetricScope = "view"
	ScopeStore MetricScope = "store"
)

type SourceKind string

const (
	SourceSeed   SourceKind = "seed"
	SourceSQLite SourceKind = "sqlite"
)
