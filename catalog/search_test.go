package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	// A nil database proves the empty-query path never issues a query.
	s := &Searcher{DB: nil}

	for _, q := range []string{"", "   ", "\t\n"} {
		resp, err := s.Search(context.Background(), q)
		require.NoError(t, err, "query %q", q)
		assert.Empty(t, resp.Results.Categories)
		assert.Empty(t, resp.Results.SubCategories)
		assert.Empty(t, resp.Results.Products)
		assert.Nil(t, resp.BestMatch)
	}
}

func TestSearchEmptyQueryKeepsArraysNonNil(t *testing.T) {
	// The JSON body must carry empty arrays, not nulls.
	s := &Searcher{DB: nil}
	resp, err := s.Search(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, resp.Results.Categories)
	assert.NotNil(t, resp.Results.SubCategories)
	assert.NotNil(t, resp.Results.Products)
}
