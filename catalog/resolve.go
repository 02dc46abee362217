package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"securecam-backend/models"
)

// Crumb is the {id, name, slug} projection of one breadcrumb segment.
type Crumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Resolution bundles the entities resolved from a slug chain. Levels that
// were not requested stay nil.
type Resolution struct {
	NavbarCategory *models.NavbarCategory `json:"navbarCategory,omitempty"`
	Category       *models.Category       `json:"category,omitempty"`
	SubCategory    *models.SubCategory    `json:"subcategory,omitempty"`
	Product        *models.Product        `json:"product,omitempty"`
}

// Breadcrumbs projects the resolved chain in path order.
func (r *Resolution) Breadcrumbs() []Crumb {
	crumbs := make([]Crumb, 0, 4)
	if r.NavbarCategory != nil {
		crumbs = append(crumbs, Crumb{ID: r.NavbarCategory.ID.Hex(), Name: r.NavbarCategory.Name, Slug: r.NavbarCategory.Slug})
	}
	if r.Category != nil {
		crumbs = append(crumbs, Crumb{ID: r.Category.ID.Hex(), Name: r.Category.Name, Slug: r.Category.Slug})
	}
	if r.SubCategory != nil {
		crumbs = append(crumbs, Crumb{ID: r.SubCategory.ID.Hex(), Name: r.SubCategory.Name, Slug: r.SubCategory.Slug})
	}
	if r.Product != nil {
		crumbs = append(crumbs, Crumb{ID: r.Product.ID.Hex(), Name: r.Product.Name, Slug: r.Product.Slug})
	}
	return crumbs
}

// linked checks parent references along the resolved chain. A chain built
// from mismatched ancestors (e.g. a real category under the wrong navbar
// slug) is treated the same as an unknown path.
func (r *Resolution) linked() bool {
	if r.Category != nil && r.NavbarCategory != nil &&
		r.Category.NavbarCategory != r.NavbarCategory.ID {
		return false
	}
	if r.SubCategory != nil && r.Category != nil &&
		r.SubCategory.Category != r.Category.ID {
		return false
	}
	if r.Product != nil {
		if r.SubCategory != nil && r.Product.SubCategory != r.SubCategory.ID {
			return false
		}
		if r.Category != nil && r.Product.Category != r.Category.ID {
			return false
		}
		if r.NavbarCategory != nil && r.Product.NavbarCategory != r.NavbarCategory.ID {
			return false
		}
	}
	return true
}

// Resolver translates URL slug chains into fully populated entities.
type Resolver struct {
	DB *mongo.Database
}

// Resolve fetches each requested level of the chain (empty segments are not
// requested; levels must be contiguous from the navbar down). Each segment is
// matched by slug first, then by raw id. Any miss, or a chain whose parent
// references do not line up, yields ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, navKey, catKey, subKey, prodKey string) (*Resolution, error) {
	res := &Resolution{}

	nav, err := NavbarCategoryByKey(ctx, r.DB, navKey)
	if err != nil {
		return nil, err
	}
	res.NavbarCategory = nav

	if catKey != "" {
		cat, err := CategoryByKey(ctx, r.DB, catKey)
		if err != nil {
			return nil, err
		}
		res.Category = cat
	}

	if subKey != "" {
		sub, err := SubCategoryByKey(ctx, r.DB, subKey)
		if err != nil {
			return nil, err
		}
		res.SubCategory = sub
	}

	if prodKey != "" {
		prod, err := ProductByKey(ctx, r.DB, prodKey)
		if err != nil {
			return nil, err
		}
		res.Product = prod
	}

	if !res.linked() {
		return nil, ErrNotFound
	}
	return res, nil
}
