package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SeededRange(t *testing.T) {
	cat := Default()

	all := cat.List()
	require.Len(t, all, 9)

	// catalog order: fragrances, then perfumery, then diffusers
	assert.Equal(t, "frag-01", all[0].ID)
	assert.Equal(t, "diff-03", all[8].ID)

	assert.Len(t, cat.ByCategory(CategoryFragrance), 4)
	assert.Len(t, cat.ByCategory(CategoryPerfumery), 2)
	assert.Len(t, cat.ByCategory(CategoryDiffuser), 3)
}

func TestCatalog_Get(t *testing.T) {
	cat := Default()

	p, ok := cat.Get("frag-02")
	require.True(t, ok)
	assert.Equal(t, "Winter Solstice", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(265)))
	assert.Equal(t, IntensityIntense, p.Intensity)

	_, ok = cat.Get("no-such-product")
	assert.False(t, ok)
}

func TestCatalog_Featured(t *testing.T) {
	cat := Default()

	featured := cat.Featured()

	require.Len(t, featured, 5)
	for _, p := range featured {
		assert.True(t, p.Featured, "%s not featured", p.ID)
	}
}

func TestCatalog_Related(t *testing.T) {
	cat := Default()

	related := cat.Related("frag-01", 3)

	require.Len(t, related, 3)
	for _, p := range related {
		assert.Equal(t, CategoryFragrance, p.Category)
		assert.NotEqual(t, "frag-01", p.ID)
	}
}

func TestCatalog_Related_LimitAndUnknown(t *testing.T) {
	cat := Default()

	// only one other perfumery product exists
	related := cat.Related("perf-01", 3)
	require.Len(t, related, 1)
	assert.Equal(t, "perf-02", related[0].ID)

	assert.Empty(t, cat.Related("no-such-product", 3))
	assert.Empty(t, cat.Related("frag-01", 0))
}

func TestCatalog_ListReturnsCopy(t *testing.T) {
	cat := Default()

	list := cat.List()
	list[0].Name = "mutated"

	fresh, _ := cat.Get("frag-01")
	assert.Equal(t, "Nordic Dawn", fresh.Name)
}
