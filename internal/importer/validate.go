package importer

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/alexanderramin/campus/internal/domain"
	"github.com/go-playground/validator/v10"
)

// PageLookup resolves page definitions by name.
type PageLookup interface {
	Page(name string) (domain.PageSpec, error)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report yaml/json field names instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateDataset checks ds before conversion. Errors block the import;
// warnings describe items that are kept but only reachable from the "All"
// tab of their page.
func ValidateDataset(ds *Dataset, pages PageLookup) (errs []error, warnings []string) {
	errs = append(errs, structErrors(ds)...)

	seen := make(map[string]map[string]int)
	for i, it := range ds.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		page, category, id := normalized(it)

		if page != "" {
			spec, err := pages.Page(page)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s.page: %w", prefix, err))
			} else if category != "" && !spec.HasCategory(category) {
				warnings = append(warnings, fmt.Sprintf(
					"%s.category %q is not a %s tab; the item is only visible under %q",
					prefix, category, spec.Name, domain.AllCategory))
			}
		}

		if id != "" {
			if seen[page] == nil {
				seen[page] = make(map[string]int)
			}
			if first, dup := seen[page][id]; dup {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q (first used by items[%d])", prefix, id, first))
			} else {
				seen[page][id] = i
			}
		}

		for name, v := range it.Numbers {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				errs = append(errs, fmt.Errorf("%s.numbers.%s: must be a non-negative number, got %v", prefix, name, v))
			}
		}
	}

	return errs, warnings
}

// normalized returns the keys of it the way Convert stores them.
func normalized(it ItemImport) (page, category, id string) {
	return strings.TrimSpace(it.Page), strings.TrimSpace(it.Category), strings.TrimSpace(it.ID)
}

func structErrors(ds *Dataset) []error {
	err := validate.Struct(ds)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{err}
	}
	out := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "Dataset.")
		switch fe.Tag() {
		case "required", "notblank":
			out = append(out, fmt.Errorf("%s is required", field))
		case "max":
			out = append(out, fmt.Errorf("%s must be at most %s characters", field, fe.Param()))
		default:
			out = append(out, fmt.Errorf("%s: failed %q validation", field, fe.Tag()))
		}
	}
	return out
}
