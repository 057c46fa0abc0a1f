package db_models

import (
	"time"

	"resume/pkg/utils"
)

// Entity type tags under which resume entities accept feedback.
const (
	EntitySkill           = "skill"
	EntityWorking         = "working"
	EntityProject         = "project"
	EntityCourse          = "course"
	EntityCertificate     = "certificate"
	EntityPassion         = "passion"
	EntityCourseDeveloper = "course_developer"
)

var SkillLevels = map[string]string{
	"JN": "basic",
	"MD": "intermediate",
	"SN": "advanced",
}

// Named is the name/description pair every resume entity carries.
type Named struct {
	Name        string `gorm:"size:500;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}

func (n Named) String() string {
	return n.Name
}

// Period is an optional start/end date span.
type Period struct {
	StartDate *time.Time `gorm:"type:date"`
	EndDate   *time.Time `gorm:"type:date"`
}

func (p Period) PeriodLength() string {
	return utils.PeriodLength(p.StartDate, p.EndDate, time.Now())
}

func (p Period) Validate() error {
	if verr := utils.ValidatePeriod(p.StartDate, p.EndDate); verr != nil {
		return verr
	}
	return nil
}

type OriginalLink struct {
	LinkToTheOriginal *string `gorm:"size:200"`
}

func (l OriginalLink) Link() string {
	return deref(l.LinkToTheOriginal)
}

type Skill struct {
	ID uint `gorm:"primaryKey"`
	Named
	Level *string `gorm:"size:2"`
}

func (s Skill) LevelLabel() string {
	return SkillLevels[deref(s.Level)]
}

type Working struct {
	ID uint `gorm:"primaryKey"`
	Named
	Period
	OriginalLink
	Position   string    `gorm:"size:255"`
	UsedSkills []Skill   `gorm:"many2many:working_skills"`
	Projects   []Project `gorm:"foreignKey:JobID"`
}

type Project struct {
	ID uint `gorm:"primaryKey"`
	Named
	Period
	OriginalLink
	UsedSkills []Skill `gorm:"many2many:project_skills"`
	JobID      *uint
	Job        *Working `gorm:"constraint:OnDelete:SET NULL"`
}

type CourseDeveloper struct {
	ID uint `gorm:"primaryKey"`
	Named
	OriginalLink
}

type Course struct {
	ID uint `gorm:"primaryKey"`
	Named
	Period
	OriginalLink
	DeveloperID *uint
	Developer   *CourseDeveloper `gorm:"constraint:OnDelete:SET NULL"`
	UsedSkills  []Skill          `gorm:"many2many:course_skills"`
	Certificate *Certificate     `gorm:"foreignKey:CourseID"`
}

type Certificate struct {
	ID uint `gorm:"primaryKey"`
	Named
	OriginalLink
	Date     time.Time `gorm:"type:date;not null"`
	Image    *string   `gorm:"size:255"`
	CourseID *uint     `gorm:"uniqueIndex"`
	Course   *Course   `gorm:"constraint:OnDelete:SET NULL"`
}

type Passion struct {
	ID uint `gorm:"primaryKey"`
	Named
}
