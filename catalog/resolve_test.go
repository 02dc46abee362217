package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"securecam-backend/models"
)

func chainFixture() (*models.NavbarCategory, *models.Category, *models.SubCategory, *models.Product) {
	nav := &models.NavbarCategory{ID: primitive.NewObjectID(), Name: "Cameras", Slug: "cameras", Order: 1}
	cat := &models.Category{ID: primitive.NewObjectID(), Name: "Dome Cameras", Slug: "dome-cameras", NavbarCategory: nav.ID}
	sub := &models.SubCategory{ID: primitive.NewObjectID(), Name: "Indoor Domes", Slug: "indoor-domes", Category: cat.ID}
	prod := &models.Product{
		ID: primitive.NewObjectID(), Name: "DS-2CD2143G2-I", Slug: "ds-2cd2143g2-i",
		NavbarCategory: nav.ID, Category: cat.ID, SubCategory: sub.ID,
	}
	return nav, cat, sub, prod
}

func TestResolutionLinked(t *testing.T) {
	nav, cat, sub, prod := chainFixture()

	full := &Resolution{NavbarCategory: nav, Category: cat, SubCategory: sub, Product: prod}
	assert.True(t, full.linked())

	partial := &Resolution{NavbarCategory: nav, Category: cat}
	assert.True(t, partial.linked())

	navOnly := &Resolution{NavbarCategory: nav}
	assert.True(t, navOnly.linked())
}

func TestResolutionLinkedRejectsMismatchedAncestors(t *testing.T) {
	nav, cat, sub, _ := chainFixture()

	wrongNav := &models.NavbarCategory{ID: primitive.NewObjectID(), Name: "Solutions", Slug: "solutions"}
	mismatch := &Resolution{NavbarCategory: wrongNav, Category: cat}
	assert.False(t, mismatch.linked())

	wrongCat := &models.Category{ID: primitive.NewObjectID(), Name: "Thermal", Slug: "thermal", NavbarCategory: nav.ID}
	mismatch = &Resolution{NavbarCategory: nav, Category: wrongCat, SubCategory: sub}
	assert.False(t, mismatch.linked())

	strayProd := &models.Product{ID: primitive.NewObjectID(), Slug: "stray", NavbarCategory: nav.ID, Category: cat.ID, SubCategory: primitive.NewObjectID()}
	mismatch = &Resolution{NavbarCategory: nav, Category: cat, SubCategory: sub, Product: strayProd}
	assert.False(t, mismatch.linked())
}

func TestBreadcrumbsPreserveChainOrder(t *testing.T) {
	nav, cat, sub, prod := chainFixture()
	res := &Resolution{NavbarCategory: nav, Category: cat, SubCategory: sub, Product: prod}

	crumbs := res.Breadcrumbs()
	require.Len(t, crumbs, 4)
	assert.Equal(t, []string{"cameras", "dome-cameras", "indoor-domes", "ds-2cd2143g2-i"},
		[]string{crumbs[0].Slug, crumbs[1].Slug, crumbs[2].Slug, crumbs[3].Slug})
	assert.Equal(t, nav.ID.Hex(), crumbs[0].ID)
	assert.Equal(t, "Dome Cameras", crumbs[1].Name)
}

func TestBreadcrumbsSkipUnrequestedLevels(t *testing.T) {
	nav, cat, _, _ := chainFixture()
	res := &Resolution{NavbarCategory: nav, Category: cat}

	crumbs := res.Breadcrumbs()
	require.Len(t, crumbs, 2)
	assert.Equal(t, "cameras", crumbs[0].Slug)
	assert.Equal(t, "dome-cameras", crumbs[1].Slug)
}
