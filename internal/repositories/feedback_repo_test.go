package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"resume/internal/models/db_models"
	"resume/internal/testutils"
	"resume/pkg/utils"
)

func setupFeedbackDB(t *testing.T) (*gorm.DB, *FeedbackRepository, EntityTypeRepository) {
	t.Helper()
	db := testutils.NewTestDB(t)
	types := NewEntityTypeRepository(db)
	require.NoError(t, types.Sync(context.Background(), []db_models.EntityTypeRecord{
		{Tag: db_models.EntitySkill, Label: "Skill"},
		{Tag: db_models.EntityProject, Label: "Project"},
	}))
	return db, NewFeedbackRepository(db), types
}

func newFeedback(target db_models.TargetRef, content string, status db_models.FeedbackStatus, at time.Time) *db_models.Feedback {
	return &db_models.Feedback{
		BaseModel:  db_models.BaseModel{CreatedAt: at},
		Content:    content,
		EntityType: target.EntityType,
		EntityID:   target.EntityID,
		Status:     status,
	}
}

func contents(items []db_models.Feedback) []string {
	out := make([]string, 0, len(items))
	for _, f := range items {
		out = append(out, f.Content)
	}
	return out
}

func TestListPublishedMatchesExactTarget(t *testing.T) {
	ctx := context.Background()
	_, repo, _ := setupFeedbackDB(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	skill7 := db_models.ObjectTarget(db_models.EntitySkill, 7)
	skill8 := db_models.ObjectTarget(db_models.EntitySkill, 8)
	skills := db_models.CollectionTarget(db_models.EntitySkill)
	projects := db_models.CollectionTarget(db_models.EntityProject)

	for _, f := range []*db_models.Feedback{
		newFeedback(skill7, "old on 7", db_models.StatusPublished, base),
		newFeedback(skill7, "new on 7", db_models.StatusPublished, base.Add(time.Hour)),
		newFeedback(skill7, "pending on 7", db_models.StatusPending, base.Add(2*time.Hour)),
		newFeedback(skill8, "on 8", db_models.StatusPublished, base),
		newFeedback(skills, "on all skills", db_models.StatusPublished, base),
		newFeedback(projects, "on all projects", db_models.StatusPublished, base),
	} {
		require.NoError(t, repo.CreateFeedback(ctx, f))
	}

	got, err := repo.ListPublished(ctx, skill7)
	require.NoError(t, err)
	assert.Equal(t, []string{"new on 7", "old on 7"}, contents(got))

	got, err = repo.ListPublished(ctx, skills)
	require.NoError(t, err)
	assert.Equal(t, []string{"on all skills"}, contents(got))

	got, err = repo.ListPublished(ctx, db_models.ObjectTarget(db_models.EntityProject, 7))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListPublishedBreaksTiesByID(t *testing.T) {
	ctx := context.Background()
	_, repo, _ := setupFeedbackDB(t)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	target := db_models.CollectionTarget(db_models.EntityProject)

	require.NoError(t, repo.CreateFeedback(ctx, newFeedback(target, "first", db_models.StatusPublished, at)))
	require.NoError(t, repo.CreateFeedback(ctx, newFeedback(target, "second", db_models.StatusPublished, at)))

	got, err := repo.ListPublished(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, contents(got))
}

func TestCreateRejectsUnregisteredType(t *testing.T) {
	_, repo, _ := setupFeedbackDB(t)
	f := newFeedback(db_models.CollectionTarget("ghost"), "boo", db_models.StatusPublished, time.Now())
	assert.Error(t, repo.CreateFeedback(context.Background(), f))
}

func TestDeletingEntityTypeCascades(t *testing.T) {
	ctx := context.Background()
	db, repo, types := setupFeedbackDB(t)
	now := time.Now()

	require.NoError(t, repo.CreateFeedback(ctx, newFeedback(db_models.ObjectTarget(db_models.EntitySkill, 1), "a", db_models.StatusPublished, now)))
	require.NoError(t, repo.CreateFeedback(ctx, newFeedback(db_models.CollectionTarget(db_models.EntitySkill), "b", db_models.StatusHidden, now)))
	require.NoError(t, repo.CreateFeedback(ctx, newFeedback(db_models.CollectionTarget(db_models.EntityProject), "c", db_models.StatusPublished, now)))

	require.NoError(t, types.Delete(ctx, db_models.EntitySkill))

	var remaining []db_models.Feedback
	require.NoError(t, db.Find(&remaining).Error)
	assert.Equal(t, []string{"c"}, contents(remaining))

	records, err := types.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, db_models.EntityProject, records[0].Tag)
}

func TestDeletingAuthorKeepsFeedback(t *testing.T) {
	ctx := context.Background()
	db, repo, _ := setupFeedbackDB(t)

	user := &db_models.User{Username: "ann", FirstName: "Ann"}
	require.NoError(t, db.Create(user).Error)

	f := newFeedback(db_models.CollectionTarget(db_models.EntitySkill), "hello", db_models.StatusPublished, time.Now())
	f.AuthorUserID = &user.ID
	require.NoError(t, repo.CreateFeedback(ctx, f))

	got, err := repo.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.DisplayAuthor())

	require.NoError(t, db.Delete(&db_models.User{}, user.ID).Error)

	got, err = repo.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AuthorUserID)
	assert.Equal(t, db_models.AnonymousAuthor, got.DisplayAuthor())
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	_, repo, _ := setupFeedbackDB(t)
	target := db_models.ObjectTarget(db_models.EntitySkill, 3)

	f := newFeedback(target, "hello", db_models.StatusPublished, time.Now())
	require.NoError(t, repo.CreateFeedback(ctx, f))

	updated, err := repo.UpdateStatus(ctx, f.ID, db_models.StatusHidden)
	require.NoError(t, err)
	assert.Equal(t, db_models.StatusHidden, updated.Status)

	got, err := repo.ListPublished(ctx, target)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = repo.UpdateStatus(ctx, 9999, db_models.StatusHidden)
	assert.ErrorIs(t, err, utils.ErrFeedbackNotFound)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, utils.ErrFeedbackNotFound)
}

func TestListForModerationIncludesEveryStatus(t *testing.T) {
	ctx := context.Background()
	_, repo, _ := setupFeedbackDB(t)
	now := time.Now()

	require.NoError(t, repo.CreateFeedback(ctx, newFeedback(db_models.ObjectTarget(db_models.EntitySkill, 2), "s2", db_models.StatusHidden, now)))
	require.NoError(t, repo.CreateFeedback(ctx, newFeedback(db_models.CollectionTarget(db_models.EntityProject), "p", db_models.StatusPending, now)))
	require.NoError(t, repo.CreateFeedback(ctx, newFeedback(db_models.ObjectTarget(db_models.EntitySkill, 1), "s1", db_models.StatusPublished, now)))

	got, err := repo.ListForModeration(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"s2", "p", "s1"}, contents(got))
	assert.Equal(t, db_models.EntityProject, got[0].EntityType)
}

func TestSyncUpdatesLabels(t *testing.T) {
	ctx := context.Background()
	_, _, types := setupFeedbackDB(t)

	require.NoError(t, types.Sync(ctx, []db_models.EntityTypeRecord{{Tag: db_models.EntitySkill, Label: "Skills"}}))

	records, err := types.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Project", records[0].Label)
	assert.Equal(t, "Skills", records[1].Label)
}
