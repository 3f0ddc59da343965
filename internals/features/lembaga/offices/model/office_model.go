package model

import (
	"time"

	"github.com/google/uuid"
)

// OfficeModel: kantor/cabang asal materi (dipakai dropdown form materi).
type OfficeModel struct {
	OfficeID   uuid.UUID `gorm:"column:office_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"office_id"`
	OfficeName string    `gorm:"column:office_name;type:varchar(100);not null;unique" json:"office_name"`

	OfficeCreatedAt time.Time  `gorm:"column:office_created_at;autoCreateTime" json:"office_created_at"`
	OfficeUpdatedAt *time.Time `gorm:"column:office_updated_at;autoUpdateTime" json:"office_updated_at,omitempty"`
}

func (OfficeModel) TableName() string {
	return "offices"
}
