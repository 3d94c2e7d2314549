package importer

import (
	"strings"

	"github.com/alexanderramin/campus/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated Dataset into domain items. Items without an
// id get a random UUID. Positions follow file order within each page.
// Call ValidateDataset first; Convert assumes the dataset is valid.
func Convert(ds *Dataset) []domain.Item {
	positions := make(map[string]int)
	items := make([]domain.Item, 0, len(ds.Items))
	for _, in := range ds.Items {
		page, category, id := normalized(in)
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, domain.Item{
			ID:          id,
			Page:        page,
			Category:    category,
			Title:       strings.TrimSpace(in.Title),
			Description: strings.TrimSpace(in.Description),
			Status:      strings.TrimSpace(in.Status),
			Fields:      in.Fields,
			Numbers:     in.Numbers,
			Position:    positions[page],
		})
		positions[page]++
	}
	return items
}
