package db_models

import (
	"strings"
	"time"
)

var ProfessionalLevels = map[string]string{
	"LR": "apprentice",
	"BR": "beginner",
	"LL": "some experience",
	"EX": "experienced",
	"PR": "professional",
	"SP": "expert",
	"HB": "hobby",
}

var BiologicalSexes = map[string]string{
	"F": "female",
	"M": "male",
}

// User is both the site owner whose resume is shown and any visitor who
// signed in to leave feedback.
type User struct {
	BaseModel
	Username     string  `gorm:"size:150;uniqueIndex;not null"`
	Email        string  `gorm:"size:254;index"`
	PasswordHash string  `json:"-"`
	FirstName    string  `gorm:"size:150"`
	MiddleName   *string `gorm:"size:100"`
	LastName     string  `gorm:"size:150"`
	IsStaff      bool    `gorm:"not null;default:false"`

	Photo             *string    `gorm:"size:255"`
	BiologicalSex     *string    `gorm:"size:1"`
	Birthday          *time.Time `gorm:"type:date"`
	CitizenshipID     *uint
	Citizenship       *Country `gorm:"constraint:OnDelete:SET NULL"`
	CityID            *uint
	City              *City `gorm:"constraint:OnDelete:SET NULL"`
	ProfessionID      *uint
	Profession        *Profession      `gorm:"constraint:OnDelete:SET NULL"`
	Specializations   []Specialization `gorm:"many2many:user_specializations"`
	ProfessionalLevel *string          `gorm:"size:2"`
	JobID             *uint
	Job               *Organization `gorm:"constraint:OnDelete:SET NULL"`
	Languages         []Language    `gorm:"many2many:user_languages"`
	Motto             *string       `gorm:"size:1000"`
	AboutMe           *string       `gorm:"type:text"`
}

// FullName joins first, middle and last name, skipping empty parts, and
// falls back to the username.
func (u *User) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.FirstName, deref(u.MiddleName), u.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if name := strings.Join(parts, " "); name != "" {
		return name
	}
	return u.Username
}

func (u *User) IsAuthenticated() bool {
	return u != nil && u.ID != 0
}

func (u *User) LevelLabel() string {
	return ProfessionalLevels[deref(u.ProfessionalLevel)]
}

func (u *User) SexLabel() string {
	return BiologicalSexes[deref(u.BiologicalSex)]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
