package model

import (
	"time"

	"github.com/google/uuid"
)

// MaterialImageModel: gambar hasil upload untuk satu langkah materi.
// Binding ke langkah memakai NOMOR langkah (bukan id baris recipe_steps),
// jadi gambar tetap hidup walau langkahnya di-bulk-replace.
type MaterialImageModel struct {
	MaterialImageID         uuid.UUID `gorm:"column:material_image_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"material_image_id"`
	MaterialImageMaterialID uuid.UUID `gorm:"column:material_image_material_id;type:uuid;not null;index" json:"material_image_material_id"`
	MaterialImageStepNumber int       `gorm:"column:material_image_step_number;not null" json:"material_image_step_number"`
	MaterialImageURL        string    `gorm:"column:material_image_url;type:text;not null" json:"material_image_url"`
	MaterialImageFileName   string    `gorm:"column:material_image_file_name;type:varchar(255)" json:"material_image_file_name"`
	MaterialImageFileSize   int64     `gorm:"column:material_image_file_size" json:"material_image_file_size"`
	MaterialImageMimeType   string    `gorm:"column:material_image_mime_type;type:varchar(100)" json:"material_image_mime_type"`
	MaterialImageOrder      int       `gorm:"column:material_image_order;not null;default:1" json:"material_image_order"`

	MaterialImageCreatedAt time.Time `gorm:"column:material_image_created_at;autoCreateTime" json:"material_image_created_at"`
}

func (MaterialImageModel) TableName() string {
	return "material_images"
}
