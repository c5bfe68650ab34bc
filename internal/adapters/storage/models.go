package storage

import "time"

// PreferenceModel is the GORM model for one persisted preference entry.
// Values are stored as opaque strings; the services layer owns the JSON
// encoding of structured values.
type PreferenceModel struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default GORM table name
func (PreferenceModel) TableName() string {
	return "preferences"
}
