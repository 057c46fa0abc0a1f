package forms

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
)

func TestProfileFormBindsEveryField(t *testing.T) {
	form := NewProfileForm()
	in, ok := form.Bind(url.Values{
		"first_name":         {" Jane "},
		"middle_name":        {"Ivanovna"},
		"last_name":          {"Doe"},
		"biological_sex":     {"F"},
		"birthday":           {"1990-04-12"},
		"citizenship":        {"Latvia"},
		"city":               {"Riga"},
		"profession":         {"Engineer"},
		"specializations":    {"Backend, Databases\nBackend"},
		"professional_level": {"PR"},
		"job":                {"Acme"},
		"languages":          {"English:b2\nLatvian"},
		"motto":              {"Ship it"},
		"about_me":           {""},
		"photo":              {"evil.png"},
	})
	require.True(t, ok, form.Errors)

	assert.Equal(t, "Jane", in.FirstName)
	require.NotNil(t, in.MiddleName)
	assert.Equal(t, "Ivanovna", *in.MiddleName)
	require.NotNil(t, in.Birthday)
	assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), *in.Birthday)
	assert.Equal(t, []string{"Backend", "Databases"}, in.Specializations)
	assert.Equal(t, []request_models.LanguageInput{{Name: "English", Level: "B2"}, {Name: "Latvian", Level: "A1"}}, in.Languages)
	require.NotNil(t, in.ProfessionalLevel)
	assert.Equal(t, "PR", *in.ProfessionalLevel)
	assert.Nil(t, in.AboutMe)
	assert.NotContains(t, form.Values, "photo")
}

func TestProfileFormRejectsBadChoices(t *testing.T) {
	form := NewProfileForm()
	_, ok := form.Bind(url.Values{
		"biological_sex":     {"X"},
		"birthday":           {"12/04/1990"},
		"professional_level": {"GURU"},
	})
	require.False(t, ok)

	assert.Equal(t, []string{"Select a valid choice."}, form.FieldErrors("biological_sex"))
	assert.Equal(t, []string{"Enter a valid date (YYYY-MM-DD)."}, form.FieldErrors("birthday"))
	assert.Equal(t, []string{"Select a valid choice."}, form.FieldErrors("professional_level"))
	assert.Equal(t, "12/04/1990", form.Value("birthday"))
}

func TestProfileFormRejectsBadLanguages(t *testing.T) {
	form := NewProfileForm()
	_, ok := form.Bind(url.Values{"languages": {"English:Z9, :B1, english:C1, English:B2"}})
	require.False(t, ok)

	errs := form.FieldErrors("languages")
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0], "level must be one of")
	assert.Contains(t, errs[1], "no language name")
	assert.Equal(t, "English is listed twice.", errs[2])
}

func TestProfileFormFor(t *testing.T) {
	birthday := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	motto := "Ship it"
	form := ProfileFormFor(&db_models.User{
		FirstName:       "Jane",
		Birthday:        &birthday,
		City:            &db_models.City{Name: "Riga"},
		Specializations: []db_models.Specialization{{Name: "Backend"}, {Name: "Databases"}},
		Languages:       []db_models.Language{{Name: "English", Level: "B2"}},
		Motto:           &motto,
	})

	assert.Equal(t, "Jane", form.Value("first_name"))
	assert.Equal(t, "1990-04-12", form.Value("birthday"))
	assert.Equal(t, "Riga", form.Value("city"))
	assert.Equal(t, "Backend, Databases", form.Value("specializations"))
	assert.Equal(t, "English:B2", form.Value("languages"))
	assert.Equal(t, "", form.Value("job"))
	assert.True(t, form.Valid())
}
