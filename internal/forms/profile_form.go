package forms

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
)

const dateLayout = "2006-01-02"

// ProfileForm edits the signed-in user's own profile.
type ProfileForm struct {
	Form
}

func NewProfileForm() *ProfileForm {
	return &ProfileForm{Form: newForm()}
}

// ProfileFormFor prefills the form with the stored profile.
func ProfileFormFor(u *db_models.User) *ProfileForm {
	f := NewProfileForm()
	v := f.Values
	v["first_name"] = u.FirstName
	v["middle_name"] = strOrEmpty(u.MiddleName)
	v["last_name"] = u.LastName
	v["biological_sex"] = strOrEmpty(u.BiologicalSex)
	if u.Birthday != nil {
		v["birthday"] = u.Birthday.Format(dateLayout)
	}
	if u.Citizenship != nil {
		v["citizenship"] = u.Citizenship.Name
	}
	if u.City != nil {
		v["city"] = u.City.Name
	}
	if u.Profession != nil {
		v["profession"] = u.Profession.Name
	}
	specs := make([]string, 0, len(u.Specializations))
	for _, s := range u.Specializations {
		specs = append(specs, s.Name)
	}
	v["specializations"] = strings.Join(specs, ", ")
	v["professional_level"] = strOrEmpty(u.ProfessionalLevel)
	if u.Job != nil {
		v["job"] = u.Job.Name
	}
	langs := make([]string, 0, len(u.Languages))
	for _, l := range u.Languages {
		langs = append(langs, l.Name+":"+l.Level)
	}
	v["languages"] = strings.Join(langs, ", ")
	v["motto"] = strOrEmpty(u.Motto)
	v["about_me"] = strOrEmpty(u.AboutMe)
	return f
}

// Sexes and Levels feed the template's select boxes.
func (f *ProfileForm) Sexes() map[string]string {
	return db_models.BiologicalSexes
}

func (f *ProfileForm) Levels() map[string]string {
	return db_models.ProfessionalLevels
}

func (f *ProfileForm) Bind(values url.Values) (*request_models.ProfileUpdate, bool) {
	var in request_models.ProfileRequest
	if !f.bind(values, &in) {
		return nil, false
	}

	out := &request_models.ProfileUpdate{
		FirstName:         in.FirstName,
		MiddleName:        optional(in.MiddleName),
		LastName:          in.LastName,
		BiologicalSex:     optional(in.BiologicalSex),
		Citizenship:       in.Citizenship,
		City:              in.City,
		Profession:        in.Profession,
		Specializations:   splitList(in.Specializations),
		ProfessionalLevel: optional(in.ProfessionalLevel),
		Job:               in.Job,
		Motto:             optional(in.Motto),
		AboutMe:           optional(in.AboutMe),
	}
	if in.Birthday != "" {
		// already checked by the datetime rule
		day, _ := time.Parse(dateLayout, in.Birthday)
		out.Birthday = &day
	}

	seen := map[string]bool{}
	for _, item := range splitList(in.Languages) {
		name, level, _ := strings.Cut(item, ":")
		name, level = strings.TrimSpace(name), strings.ToUpper(strings.TrimSpace(level))
		if level == "" {
			level = "A1"
		}
		switch {
		case name == "":
			f.AddError("languages", fmt.Sprintf("%q has no language name.", item))
			continue
		case db_models.LanguageLevels[level] == "":
			f.AddError("languages", fmt.Sprintf("%q: level must be one of A1, A2, B1, B2, C1, C2.", item))
			continue
		case seen[strings.ToLower(name)]:
			f.AddError("languages", fmt.Sprintf("%s is listed twice.", name))
			continue
		}
		seen[strings.ToLower(name)] = true
		out.Languages = append(out.Languages, request_models.LanguageInput{Name: name, Level: level})
	}
	if !f.Valid() {
		return nil, false
	}
	return out, true
}

// splitList splits on commas and newlines, dropping blanks and repeats.
func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '\n' || r == ';' })
	out := make([]string, 0, len(parts))
	seen := map[string]bool{}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
