package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"materialku_backend/internals/features/materials/workflow"
)

type MaterialModel struct {
	MaterialID          uuid.UUID `gorm:"column:material_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"material_id"`
	MaterialTitle       string    `gorm:"column:material_title;type:varchar(255);not null" json:"material_title"`
	MaterialDescription *string   `gorm:"column:material_description;type:text" json:"material_description,omitempty"`

	// Sumber video
	MaterialYoutubeURL *string `gorm:"column:material_youtube_url;type:text" json:"material_youtube_url,omitempty"`
	MaterialYoutubeID  *string `gorm:"column:material_youtube_id;type:varchar(20)" json:"material_youtube_id,omitempty"`
	MaterialThumbnail  *string `gorm:"column:material_thumbnail;type:text" json:"material_thumbnail,omitempty"`

	// Snapshot metadata video (diisi dari YouTube Data API)
	MaterialVideoTitle       *string        `gorm:"column:material_video_title;type:text" json:"material_video_title,omitempty"`
	MaterialVideoDescription *string        `gorm:"column:material_video_description;type:text" json:"material_video_description,omitempty"`
	MaterialVideoChannel     *string        `gorm:"column:material_video_channel;type:varchar(255)" json:"material_video_channel,omitempty"`
	MaterialVideoPublishedAt *time.Time     `gorm:"column:material_video_published_at" json:"material_video_published_at,omitempty"`
	MaterialVideoDuration    *string        `gorm:"column:material_video_duration;type:varchar(32)" json:"material_video_duration,omitempty"`
	MaterialVideoMeta        datatypes.JSON `gorm:"column:material_video_meta;type:jsonb" json:"material_video_meta,omitempty"`

	// Konten produksi
	MaterialTranscript     *string `gorm:"column:material_transcript;type:text" json:"material_transcript,omitempty"`
	MaterialInstruction    *string `gorm:"column:material_instruction;type:text" json:"material_instruction,omitempty"`
	MaterialNote           *string `gorm:"column:material_note;type:text" json:"material_note,omitempty"`
	MaterialSoftware       *string `gorm:"column:material_software;type:varchar(255)" json:"material_software,omitempty"`
	MaterialVersion        *string `gorm:"column:material_version;type:varchar(100)" json:"material_version,omitempty"`
	MaterialLearningNote   *string `gorm:"column:material_learning_note;type:text" json:"material_learning_note,omitempty"`
	MaterialSampleImageURL *string `gorm:"column:material_sample_image_url;type:text" json:"material_sample_image_url,omitempty"`

	// Penugasan
	MaterialOffice *string `gorm:"column:material_office;type:varchar(255)" json:"material_office,omitempty"`

	// Lima kolom status tahap produksi. Gating-nya ada di package workflow,
	// bukan di sini.
	MaterialVideoRegistration string `gorm:"column:material_video_registration;type:varchar(20);not null;default:'pending'" json:"material_video_registration"`
	MaterialTextRegistration  string `gorm:"column:material_text_registration;type:varchar(20);not null;default:'pending'" json:"material_text_registration"`
	MaterialTextRevision      string `gorm:"column:material_text_revision;type:varchar(20);not null;default:'pending'" json:"material_text_revision"`
	MaterialImageRegistration string `gorm:"column:material_image_registration;type:varchar(20);not null;default:'pending'" json:"material_image_registration"`
	MaterialConfirmation      string `gorm:"column:material_confirmation;type:varchar(20);not null;default:'pending'" json:"material_confirmation"`

	// Timestamps
	MaterialCreatedAt time.Time  `gorm:"column:material_created_at;autoCreateTime" json:"material_created_at"`
	MaterialUpdatedAt *time.Time `gorm:"column:material_updated_at;autoUpdateTime" json:"material_updated_at,omitempty"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

// StageStatuses memotret kelima kolom tahap untuk package workflow.
func (m *MaterialModel) StageStatuses() workflow.Statuses {
	return workflow.Statuses{
		workflow.Status(m.MaterialVideoRegistration),
		workflow.Status(m.MaterialTextRegistration),
		workflow.Status(m.MaterialTextRevision),
		workflow.Status(m.MaterialImageRegistration),
		workflow.Status(m.MaterialConfirmation),
	}
}
