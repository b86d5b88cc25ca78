// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
)

// defaultPageSize matches the product grid used by catalog views.
const defaultPageSize = 12

// paginate slices one page out of items. Page numbers are 1-based; out of
// range pages yield an empty slice, not an error.
func paginate[T any](items []T, page, pageSize int) (pageItems []T, total, currentPage, totalPages int) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total = len(items)
	totalPages = (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []T{}, total, page, totalPages
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return items[start:end], total, page, totalPages
}

// resolveCatalogItems maps products through a catalog's price overrides,
// applying the catalog's product-category filter when present.
func resolveCatalogItems(catalog *entity.Catalog, products []*entity.Product) []*usecase.CatalogItem {
	allowed := make(map[string]struct{}, len(catalog.AllowedCategories))
	for _, c := range catalog.AllowedCategories {
		allowed[c] = struct{}{}
	}

	items := make([]*usecase.CatalogItem, 0, len(products))
	for _, p := range products {
		if len(allowed) > 0 {
			if _, ok := allowed[p.Category]; !ok {
				continue
			}
		}

		priceMin, priceMax := catalog.PriceFor(p)
		items = append(items, &usecase.CatalogItem{
			Product:      p,
			PriceMin:     priceMin,
			PriceMax:     priceMax,
			PriceDisplay: util.FormatPriceRange(priceMin, priceMax),
		})
	}

	return items
}

// newShareSlug derives a URL-safe slug from a catalog name with a random
// suffix so renamed or duplicated catalogs never collide.
func newShareSlug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if slug == "" {
		return suffix
	}

	return slug + "-" + suffix
}
