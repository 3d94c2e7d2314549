package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/campus/internal/contract"
	"github.com/alexanderramin/campus/internal/dashboard"
	"github.com/alexanderramin/campus/internal/domain"
	"github.com/alexanderramin/campus/internal/importer"
)

// PageCatalog is the set of page definitions the services work with.
type PageCatalog interface {
	Pages() []domain.PageSpec
	Page(name string) (domain.PageSpec, error)
}

type DashboardService interface {
	ListPages(ctx context.Context) ([]contract.PageSummary, error)
	// OpenPage loads a page with the default ViewState. The returned page is
	// owned by the caller.
	OpenPage(ctx context.Context, name string) (*dashboard.Page, error)
	ShowPage(ctx context.Context, req contract.PageRequest) (*contract.PageResponse, error)
}

// ImportResult holds the outcome of a dataset import.
type ImportResult struct {
	Record   domain.ImportRecord
	PerPage  map[string]int
	Deleted  int
	Warnings []string
}

type ImportService interface {
	ImportFile(ctx context.Context, path string, replace bool) (*ImportResult, error)
	ImportDataset(ctx context.Context, ds *importer.Dataset, source string, format importer.Format, replace bool) (*ImportResult, error)
	History(ctx context.Context, limit int) ([]domain.ImportRecord, error)
}

// ErrItemExists is returned when an appended item reuses an id already stored
// for its page.
var ErrItemExists = errors.New("item id already stored; use --replace to overwrite the page")

// ValidationError lists every problem found in a dataset.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(e.Errs))
	for _, err := range e.Errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() []error { return e.Errs }
