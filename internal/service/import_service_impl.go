package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/alexanderramin/campus/internal/db"
	"github.com/alexanderramin/campus/internal/domain"
	"github.com/alexanderramin/campus/internal/importer"
	"github.com/alexanderramin/campus/internal/repository"
	"github.com/google/uuid"
)

type importService struct {
	uow      db.UnitOfWork
	history  repository.ImportRepo
	pages    importer.PageLookup
	observer UseCaseObserver
}

// NewImportService loads datasets into SQLite. Writes go through uow; history
// reads use the given repo.
func NewImportService(uow db.UnitOfWork, history repository.ImportRepo, pages importer.PageLookup, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		history:  history,
		pages:    pages,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string, replace bool) (*ImportResult, error) {
	format, err := importer.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	ds, err := importer.LoadDataset(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportDataset(ctx, ds, filepath.Base(path), format, replace)
}

// ImportDataset validates ds and stores its items in one transaction. With
// replace, the stored items of every page named in ds are deleted first;
// otherwise new items are appended after the existing ones.
func (s *importService) ImportDataset(ctx context.Context, ds *importer.Dataset, source string, format importer.Format, replace bool) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"source":  source,
		"replace": replace,
	}
	defer func() { observe(ctx, s.observer, "import-dataset", startedAt, err, fields) }()

	errs, warnings := importer.ValidateDataset(ds, s.pages)
	if len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}

	items := importer.Convert(ds)
	result = &ImportResult{
		PerPage:  make(map[string]int),
		Warnings: warnings,
		Record: domain.ImportRecord{
			ID:           uuid.New().String(),
			Source:       source,
			Format:       string(format),
			ItemCount:    len(items),
			WarningCount: len(warnings),
			Replaced:     replace,
			ImportedAt:   startedAt,
		},
	}
	for _, it := range items {
		result.PerPage[it.Page]++
	}
	pages := make([]string, 0, len(result.PerPage))
	for page := range result.PerPage {
		pages = append(pages, page)
	}
	sort.Strings(pages)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		itemRepo := repository.NewSQLiteItemRepo(tx)

		base := make(map[string]int, len(pages))
		for _, page := range pages {
			if replace {
				n, err := itemRepo.DeleteByPage(ctx, page)
				if err != nil {
					return err
				}
				result.Deleted += n
				continue
			}
			next, err := itemRepo.NextPosition(ctx, page)
			if err != nil {
				return err
			}
			base[page] = next
		}

		for i := range items {
			it := &items[i]
			if !replace {
				if err := ensureNotStored(ctx, itemRepo, it); err != nil {
					return err
				}
			}
			it.Position += base[it.Page]
			if err := itemRepo.Create(ctx, it); err != nil {
				return fmt.Errorf("importing %q: %w", it.Title, err)
			}
		}

		return repository.NewSQLiteImportRepo(tx).Create(ctx, &result.Record)
	})
	if err != nil {
		return nil, err
	}

	fields["items"] = len(items)
	fields["pages"] = len(pages)
	fields["deleted"] = result.Deleted
	fields["warnings"] = len(warnings)
	return result, nil
}

func ensureNotStored(ctx context.Context, items repository.ItemRepo, it *domain.Item) error {
	_, err := items.GetByID(ctx, it.Page, it.ID)
	switch {
	case err == nil:
		return fmt.Errorf("importing %q: %w (%s/%s)", it.Title, ErrItemExists, it.Page, it.ID)
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("importing %q: %w", it.Title, err)
	}
}

func (s *importService) History(ctx context.Context, limit int) ([]domain.ImportRecord, error) {
	recs, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing import history: %w", err)
	}
	return recs, nil
}
