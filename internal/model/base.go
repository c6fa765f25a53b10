package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel carries the identity, timestamps, soft-delete marker and audit
// actor columns shared by every persisted entity. Soft-deleted rows stay in
// the table; GORM's DeletedAt scope keeps them out of all default queries.
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	CreatedBy string         `json:"created_by,omitempty" gorm:"type:varchar(100)"`
	UpdatedBy string         `json:"updated_by,omitempty" gorm:"type:varchar(100)"`
}
