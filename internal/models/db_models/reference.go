package db_models

var LanguageLevels = map[string]string{
	"A1": "beginner",
	"A2": "elementary",
	"B1": "intermediate",
	"B2": "upper intermediate",
	"C1": "advanced",
	"C2": "proficient",
}

type Country struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:100;uniqueIndex;not null"`
	StateFlag *string `gorm:"size:255"`
}

type City struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex;not null"`
}

type Specialization struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex;not null"`
}

type Profession struct {
	ID              uint             `gorm:"primaryKey"`
	Name            string           `gorm:"size:100;uniqueIndex;not null"`
	Specializations []Specialization `gorm:"many2many:profession_specializations"`
}

type Organization struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"size:100;uniqueIndex;not null"`
	CityID *uint
	City   *City `gorm:"constraint:OnDelete:SET NULL"`
}

type Language struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:100;not null"`
	Level string `gorm:"size:2;not null;default:A1"`
}

func (l Language) String() string {
	return l.Name + "(" + l.Level + ")"
}
