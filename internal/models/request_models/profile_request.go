package request_models

import "time"

// ProfileRequest is the profile edit form as posted. Specializations and
// languages arrive as comma or newline separated text; languages are written
// "Name:Level".
type ProfileRequest struct {
	FirstName         string `form:"first_name" validate:"max=150"`
	MiddleName        string `form:"middle_name" validate:"max=100"`
	LastName          string `form:"last_name" validate:"max=150"`
	BiologicalSex     string `form:"biological_sex" validate:"omitempty,oneof=F M"`
	Birthday          string `form:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Citizenship       string `form:"citizenship" validate:"max=100"`
	City              string `form:"city" validate:"max=100"`
	Profession        string `form:"profession" validate:"max=100"`
	Specializations   string `form:"specializations" validate:"max=1000"`
	ProfessionalLevel string `form:"professional_level" validate:"omitempty,oneof=LR BR LL EX PR SP HB"`
	Job               string `form:"job" validate:"max=100"`
	Languages         string `form:"languages" validate:"max=1000"`
	Motto             string `form:"motto" validate:"max=1000"`
	AboutMe           string `form:"about_me" validate:"max=10000"`
}

// ProfileUpdate is a validated profile edit. Empty reference names clear the
// relation; the photo is not editable here.
type ProfileUpdate struct {
	FirstName         string
	MiddleName        *string
	LastName          string
	BiologicalSex     *string
	Birthday          *time.Time
	Citizenship       string
	City              string
	Profession        string
	Specializations   []string
	ProfessionalLevel *string
	Job               string
	Languages         []LanguageInput
	Motto             *string
	AboutMe           *string
}
