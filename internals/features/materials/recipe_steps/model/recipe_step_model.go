package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeStepModel: langkah pengerjaan sebuah materi, urut per
// recipe_step_number. Heading (pemisah seksi) ditandai kolom
// recipe_step_heading non-null; heading tidak ikut penomoran instruksi
// dan tidak bisa dilampiri gambar.
type RecipeStepModel struct {
	RecipeStepID         uuid.UUID `gorm:"column:recipe_step_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"recipe_step_id"`
	RecipeStepMaterialID uuid.UUID `gorm:"column:recipe_step_material_id;type:uuid;not null;index" json:"recipe_step_material_id"`
	RecipeStepNumber     int       `gorm:"column:recipe_step_number;not null" json:"recipe_step_number"`
	RecipeStepContent    string    `gorm:"column:recipe_step_content;type:text;not null" json:"recipe_step_content"`
	RecipeStepHeading    *string   `gorm:"column:recipe_step_heading;type:text" json:"recipe_step_heading,omitempty"`

	RecipeStepCreatedAt time.Time  `gorm:"column:recipe_step_created_at;autoCreateTime" json:"recipe_step_created_at"`
	RecipeStepUpdatedAt *time.Time `gorm:"column:recipe_step_updated_at;autoUpdateTime" json:"recipe_step_updated_at,omitempty"`
}

func (RecipeStepModel) TableName() string {
	return "recipe_steps"
}

// IsHeading: satu-satunya representasi heading yang dipakai.
// Encoding lama (flag boolean, step_number >= 9999) sudah tidak diterima.
func (m *RecipeStepModel) IsHeading() bool {
	return m.RecipeStepHeading != nil
}
