package repository

import (
	"context"

	"github.com/alexanderramin/campus/internal/domain"
)

// PageCount is the number of stored items on one page.
type PageCount struct {
	Page  string
	Count int
}

type ItemRepo interface {
	Create(ctx context.Context, it *domain.Item) error
	GetByID(ctx context.Context, page, id string) (*domain.Item, error)
	ListByPage(ctx context.Context, page string) ([]domain.Item, error)
	CountByPage(ctx context.Context) ([]PageCount, error)
	NextPosition(ctx context.Context, page string) (int, error)
	DeleteByPage(ctx context.Context, page string) (int, error)
}

type ImportRepo interface {
	Create(ctx context.Context, rec *domain.ImportRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.ImportRecord, error)
}
