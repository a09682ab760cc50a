package models

import "time"

// ObjectModel holds the identity of one physical watch. Identity fields
// live on this record; every inspection attribute goes to the attributes
// blob instead.
type ObjectModel struct {
	ID              int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Brand           string    `json:"brand" gorm:"type:varchar(100);not null"`
	Model           string    `json:"model" gorm:"type:varchar(100)"`
	Reference       *string   `json:"reference" gorm:"type:varchar(100)"`
	SerialNumber    *string   `json:"serialNumber" gorm:"column:serial_number;type:varchar(100)"`
	YearManufacture *string   `json:"yearManufacture" gorm:"column:year_manufacture;type:varchar(20)"`
	Surname         *string   `json:"surname" gorm:"type:varchar(100)"`
	Type            *string   `json:"type" gorm:"type:varchar(50)"`
	Status          *string   `json:"status" gorm:"type:varchar(50)"`
	CreatedAt       time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
