package request_models

import "time"

// ResumeDocument is the YAML layout accepted by the seed command. Entities
// refer to each other by name.
type ResumeDocument struct {
	Owner            *OwnerInput        `yaml:"owner"`
	Skills           []SkillInput       `yaml:"skills"`
	Workings         []WorkingInput     `yaml:"workings"`
	Projects         []ProjectInput     `yaml:"projects"`
	CourseDevelopers []DeveloperInput   `yaml:"course_developers"`
	Courses          []CourseInput      `yaml:"courses"`
	Certificates     []CertificateInput `yaml:"certificates"`
	Passions         []PassionInput     `yaml:"passions"`
	Menus            []MenuInput        `yaml:"menus"`
}

type OwnerInput struct {
	Username          string          `yaml:"username"`
	Email             string          `yaml:"email"`
	Password          string          `yaml:"password"`
	FirstName         string          `yaml:"first_name"`
	MiddleName        *string         `yaml:"middle_name"`
	LastName          string          `yaml:"last_name"`
	IsStaff           bool            `yaml:"is_staff"`
	Photo             *string         `yaml:"photo"`
	BiologicalSex     *string         `yaml:"biological_sex"`
	Birthday          *time.Time      `yaml:"birthday"`
	Citizenship       string          `yaml:"citizenship"`
	City              string          `yaml:"city"`
	Profession        string          `yaml:"profession"`
	Specializations   []string        `yaml:"specializations"`
	ProfessionalLevel *string         `yaml:"professional_level"`
	Job               string          `yaml:"job"`
	Languages         []LanguageInput `yaml:"languages"`
	Motto             *string         `yaml:"motto"`
	AboutMe           *string         `yaml:"about_me"`
}

type LanguageInput struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type SkillInput struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Level       *string `yaml:"level"`
}

type WorkingInput struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Position    string     `yaml:"position"`
	StartDate   *time.Time `yaml:"start_date"`
	EndDate     *time.Time `yaml:"end_date"`
	Link        *string    `yaml:"link"`
	Skills      []string   `yaml:"skills"`
}

type ProjectInput struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	StartDate   *time.Time `yaml:"start_date"`
	EndDate     *time.Time `yaml:"end_date"`
	Link        *string    `yaml:"link"`
	Job         string     `yaml:"job"`
	Skills      []string   `yaml:"skills"`
}

type DeveloperInput struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Link        *string `yaml:"link"`
}

type CourseInput struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	StartDate   *time.Time `yaml:"start_date"`
	EndDate     *time.Time `yaml:"end_date"`
	Link        *string    `yaml:"link"`
	Developer   string     `yaml:"developer"`
	Skills      []string   `yaml:"skills"`
}

type CertificateInput struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Link        *string   `yaml:"link"`
	Date        time.Time `yaml:"date"`
	Image       *string   `yaml:"image"`
	Course      string    `yaml:"course"`
}

type PassionInput struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type MenuInput struct {
	Name  string           `yaml:"name"`
	Items []MenuPointInput `yaml:"items"`
}

// MenuPointInput names its parent by slug; an empty parent makes a root.
type MenuPointInput struct {
	Name   string `yaml:"name"`
	Slug   string `yaml:"slug"`
	Parent string `yaml:"parent"`
}
