package db_models

// MenuItem is one point of a named, self-referential menu.
type MenuItem struct {
	ID        uint      `gorm:"primaryKey"`
	MenuName  string    `gorm:"size:200;not null;index"`
	PointName string    `gorm:"size:200;not null"`
	ParentID  *uint     `gorm:"index"`
	Parent    *MenuItem `gorm:"constraint:OnDelete:SET NULL"`
	Slug      string    `gorm:"size:200;not null;index"`
}
