package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume/internal/models/db_models"
	"resume/internal/models/response_models"
)

func ptr(v uint) *uint { return &v }

func names(nodes []*response_models.MenuNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestBuildMenu(t *testing.T) {
	items := []db_models.MenuItem{
		{ID: 1, PointName: "Home", Slug: "home"},
		{ID: 2, PointName: "About", Slug: "about"},
		{ID: 3, PointName: "Team", Slug: "team", ParentID: ptr(2)},
		{ID: 4, PointName: "History", Slug: "history", ParentID: ptr(2)},
		{ID: 5, PointName: "Founders", Slug: "founders", ParentID: ptr(4)},
		{ID: 6, PointName: "Blog", Slug: "blog", ParentID: ptr(1)},
	}

	roots := BuildMenu(items, "founders")
	require.Equal(t, []string{"About", "Home"}, names(roots))

	about := roots[0]
	assert.True(t, about.Expanded)
	assert.Equal(t, []string{"History", "Team"}, names(about.Children))

	history := about.Children[0]
	assert.True(t, history.Expanded)
	assert.False(t, about.Children[1].Expanded)
	require.Len(t, history.Children, 1)
	assert.True(t, history.Children[0].Active)
	assert.True(t, history.Children[0].Expanded)

	home := roots[1]
	assert.False(t, home.Expanded)
	assert.Len(t, home.Children, 1)
}

func TestBuildMenuTreatsBrokenParentsAsRoots(t *testing.T) {
	items := []db_models.MenuItem{
		{ID: 1, PointName: "A", Slug: "a", ParentID: ptr(2)},
		{ID: 2, PointName: "B", Slug: "b", ParentID: ptr(1)},
		{ID: 3, PointName: "C", Slug: "c", ParentID: ptr(1)},
		{ID: 4, PointName: "D", Slug: "d", ParentID: ptr(42)},
	}

	roots := BuildMenu(items, "c")
	assert.Equal(t, []string{"A", "B", "D"}, names(roots))
	assert.True(t, roots[0].Expanded)
	assert.Equal(t, []string{"C"}, names(roots[0].Children))
	assert.False(t, roots[1].Expanded)
}

func TestBuildMenuEmpty(t *testing.T) {
	assert.Empty(t, BuildMenu(nil, "x"))
}
