package models

import (
	"time"

	"gorm.io/datatypes"
)

// ObjectAttributesModel is the persisted inspection blob: one flat JSON map
// per object, keyed by report field name. Keys absent from the map mean
// "unset"; empty values are stripped before persistence.
type ObjectAttributesModel struct {
	ID         int               `json:"id" gorm:"primaryKey;autoIncrement"`
	ObjectID   int               `json:"objectId" gorm:"column:object_id;uniqueIndex;not null"`
	Attributes datatypes.JSONMap `json:"attributes" gorm:"type:jsonb;not null"`
	CreatedAt  time.Time         `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time         `json:"updatedAt" gorm:"autoUpdateTime"`
}

// AttachmentModel is one uploaded image or document tied to a report field.
// The stored Path is what the field's value list carries in the blob.
type AttachmentModel struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	ObjectID     int       `json:"objectId" gorm:"column:object_id;index;not null"`
	FieldKey     string    `json:"fieldKey" gorm:"column:field_key;type:varchar(100);index;not null"`
	Filename     string    `json:"filename" gorm:"type:varchar(255);not null"`
	OriginalName string    `json:"originalName" gorm:"column:original_name;type:varchar(255)"`
	Path         string    `json:"path" gorm:"type:varchar(512);not null"`
	ContentType  string    `json:"contentType" gorm:"column:content_type;type:varchar(100)"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
