package models

import "gorm.io/gorm"

// Badge is a named achievement attachable to users. No uniqueness is
// enforced on name or tag.
type Badge struct {
	gorm.Model
	PublicID string `gorm:"uniqueIndex;size:100" json:"id"`
	Name     string `gorm:"not null;size:200" json:"name"`
	Tag      string `gorm:"not null;size:100" json:"tag"`
}
