package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
	"resume/internal/testutils"
	"resume/pkg/utils"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleDocument() *request_models.ResumeDocument {
	level := "SN"
	return &request_models.ResumeDocument{
		Owner: &request_models.OwnerInput{
			Username:        "owner",
			Email:           "Owner@Example.com",
			FirstName:       "Jane",
			LastName:        "Doe",
			IsStaff:         true,
			City:            "Lisbon",
			Profession:      "Engineer",
			Specializations: []string{"Backend"},
			Job:             "Acme",
			Languages:       []request_models.LanguageInput{{Name: "English", Level: "C1"}},
		},
		Skills: []request_models.SkillInput{
			{Name: "Go", Level: &level},
			{Name: "SQL"},
		},
		Workings: []request_models.WorkingInput{
			{Name: "Acme", Position: "Engineer", StartDate: day(2020, 1, 1), EndDate: day(2021, 1, 1), Skills: []string{"Go"}},
			{Name: "Globex", Position: "Lead", StartDate: day(2021, 2, 1), Skills: []string{"Go", "SQL"}},
			{Name: "Initech", Position: "Intern", StartDate: day(2018, 1, 1), EndDate: day(2019, 1, 1)},
		},
		Projects: []request_models.ProjectInput{
			{Name: "Site", Job: "Globex", Skills: []string{"Go"}},
		},
		CourseDevelopers: []request_models.DeveloperInput{{Name: "Coursera"}},
		Courses: []request_models.CourseInput{
			{Name: "Databases", Developer: "Coursera", StartDate: day(2019, 3, 1), EndDate: day(2019, 6, 1), Skills: []string{"SQL"}},
		},
		Certificates: []request_models.CertificateInput{
			{Name: "DB cert", Date: *day(2019, 6, 2), Course: "Databases"},
		},
		Passions: []request_models.PassionInput{{Name: "Chess"}},
		Menus: []request_models.MenuInput{{
			Name: "main",
			Items: []request_models.MenuPointInput{
				{Name: "Child", Slug: "child", Parent: "root"},
				{Name: "Root", Slug: "root"},
			},
		}},
	}
}

func TestImportAndRead(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	repo := NewResumeRepository(db)

	ownerID, err := repo.Import(ctx, sampleDocument(), "hash")
	require.NoError(t, err)
	require.NotZero(t, ownerID)

	workings, err := repo.ListWorkings(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(workings))
	for _, w := range workings {
		names = append(names, w.Name)
	}
	// current job first, then by end date descending
	assert.Equal(t, []string{"Globex", "Acme", "Initech"}, names)
	assert.Len(t, workings[0].UsedSkills, 2)

	project, err := repo.GetProject(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, project.Job)
	assert.Equal(t, "Globex", project.Job.Name)

	course, err := repo.GetCourse(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, course.Developer)
	require.NotNil(t, course.Certificate)
	assert.Equal(t, "DB cert", course.Certificate.Name)

	name, err := repo.NameOf(ctx, db_models.EntityCourseDeveloper, course.Developer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coursera", name)

	users := NewUserRepository(db)
	owner, err := users.FindProfile(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", owner.FullName())
	require.NotNil(t, owner.Job)
	assert.Equal(t, "Acme", owner.Job.Name)
	assert.Len(t, owner.Languages, 1)
	assert.Len(t, owner.Specializations, 1)

	byEmail, err := users.FindByLogin(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, ownerID, byEmail.ID)

	items, err := NewMenuRepository(db).ListByMenu(ctx, "main")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].ParentID)
	assert.Equal(t, items[1].ID, *items[0].ParentID)
}

func TestImportIsRepeatable(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	repo := NewResumeRepository(db)

	first, err := repo.Import(ctx, sampleDocument(), "hash")
	require.NoError(t, err)

	doc := sampleDocument()
	doc.Skills[1].Description = "Structured Query Language"
	second, err := repo.Import(ctx, doc, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	skills, err := repo.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "Structured Query Language", skills[1].Description)

	owner, err := NewUserRepository(db).FindByID(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "hash", owner.PasswordHash)

	items, err := NewMenuRepository(db).ListByMenu(ctx, "main")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestImportRollsBackOnUnknownReference(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	repo := NewResumeRepository(db)

	doc := sampleDocument()
	doc.Projects[0].Skills = []string{"Rust"}

	_, err := repo.Import(ctx, doc, "hash")
	require.ErrorIs(t, err, utils.ErrEntityNotFound)

	skills, err := repo.ListSkills(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestNameOfAndGetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewResumeRepository(testutils.NewTestDB(t))

	_, err := repo.NameOf(ctx, db_models.EntitySkill, 42)
	assert.ErrorIs(t, err, utils.ErrEntityNotFound)

	_, err = repo.NameOf(ctx, "ghost", 1)
	assert.ErrorIs(t, err, utils.ErrUnresolvedTarget)

	_, err = repo.GetPassion(ctx, 42)
	assert.ErrorIs(t, err, utils.ErrEntityNotFound)
}
