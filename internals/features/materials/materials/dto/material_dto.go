package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"materialku_backend/internals/features/materials/materials/model"
	"materialku_backend/internals/features/materials/workflow"
)

var validate = validator.New()

// Request dari frontend → backend (create oleh admin)
type MaterialCreateRequest struct {
	MaterialTitle       string  `json:"material_title" validate:"required,min=1,max=255"`
	MaterialDescription *string `json:"material_description"`
	MaterialYoutubeURL  *string `json:"material_youtube_url"`
}

func (r *MaterialCreateRequest) Validate() error {
	return validate.Struct(r)
}

// Convert request → model. Tahap 1 (registrasi video) langsung completed:
// membuat materi = mendaftarkan videonya.
func (r *MaterialCreateRequest) ToModel() *model.MaterialModel {
	return &model.MaterialModel{
		MaterialTitle:             r.MaterialTitle,
		MaterialDescription:       r.MaterialDescription,
		MaterialYoutubeURL:        r.MaterialYoutubeURL,
		MaterialVideoRegistration: string(workflow.StatusCompleted),
		MaterialTextRegistration:  string(workflow.StatusPending),
		MaterialTextRevision:      string(workflow.StatusPending),
		MaterialImageRegistration: string(workflow.StatusPending),
		MaterialConfirmation:      string(workflow.StatusPending),
	}
}

// Full update oleh admin (PUT). Field status tahap sengaja tidak ada di sini:
// progres tahap lewat PATCH yang di-gate workflow.
type MaterialUpdateRequest struct {
	MaterialTitle          string  `json:"material_title" validate:"required,min=1,max=255"`
	MaterialDescription    *string `json:"material_description"`
	MaterialYoutubeURL     *string `json:"material_youtube_url"`
	MaterialTranscript     *string `json:"material_transcript"`
	MaterialInstruction    *string `json:"material_instruction"`
	MaterialNote           *string `json:"material_note"`
	MaterialSoftware       *string `json:"material_software"`
	MaterialVersion        *string `json:"material_version"`
	MaterialLearningNote   *string `json:"material_learning_note"`
	MaterialSampleImageURL *string `json:"material_sample_image_url"`
	MaterialOffice         *string `json:"material_office"`
}

func (r *MaterialUpdateRequest) Validate() error {
	return validate.Struct(r)
}

// ApplyToModel menyalin field editable ke model yang sudah di-load.
func (r *MaterialUpdateRequest) ApplyToModel(m *model.MaterialModel) {
	m.MaterialTitle = r.MaterialTitle
	m.MaterialDescription = r.MaterialDescription
	m.MaterialYoutubeURL = r.MaterialYoutubeURL
	m.MaterialTranscript = r.MaterialTranscript
	m.MaterialInstruction = r.MaterialInstruction
	m.MaterialNote = r.MaterialNote
	m.MaterialSoftware = r.MaterialSoftware
	m.MaterialVersion = r.MaterialVersion
	m.MaterialLearningNote = r.MaterialLearningNote
	m.MaterialSampleImageURL = r.MaterialSampleImageURL
	m.MaterialOffice = r.MaterialOffice
}

// Response ke frontend
type MaterialResponse struct {
	MaterialID          string  `json:"material_id"`
	MaterialTitle       string  `json:"material_title"`
	MaterialDescription *string `json:"material_description,omitempty"`

	MaterialYoutubeURL *string `json:"material_youtube_url,omitempty"`
	MaterialYoutubeID  *string `json:"material_youtube_id,omitempty"`
	MaterialThumbnail  *string `json:"material_thumbnail,omitempty"`

	MaterialVideoTitle       *string        `json:"material_video_title,omitempty"`
	MaterialVideoDescription *string        `json:"material_video_description,omitempty"`
	MaterialVideoChannel     *string        `json:"material_video_channel,omitempty"`
	MaterialVideoPublishedAt *time.Time     `json:"material_video_published_at,omitempty"`
	MaterialVideoDuration    *string        `json:"material_video_duration,omitempty"`
	MaterialVideoMeta        datatypes.JSON `json:"material_video_meta,omitempty"`

	MaterialTranscript     *string `json:"material_transcript,omitempty"`
	MaterialInstruction    *string `json:"material_instruction,omitempty"`
	MaterialNote           *string `json:"material_note,omitempty"`
	MaterialSoftware       *string `json:"material_software,omitempty"`
	MaterialVersion        *string `json:"material_version,omitempty"`
	MaterialLearningNote   *string `json:"material_learning_note,omitempty"`
	MaterialSampleImageURL *string `json:"material_sample_image_url,omitempty"`

	MaterialOffice *string `json:"material_office,omitempty"`

	MaterialVideoRegistration string `json:"material_video_registration"`
	MaterialTextRegistration  string `json:"material_text_registration"`
	MaterialTextRevision      string `json:"material_text_revision"`
	MaterialImageRegistration string `json:"material_image_registration"`
	MaterialConfirmation      string `json:"material_confirmation"`

	// Hasil hitung workflow, biar frontend tidak menduplikasi aturan gating.
	MaterialCurrentStage int                             `json:"material_current_stage"`
	MaterialStageStates  map[string]workflow.RenderState `json:"material_stage_states"`

	MaterialCreatedAt string `json:"material_created_at"`
	MaterialUpdatedAt string `json:"material_updated_at,omitempty"`
}

// Convert model → response
func ToMaterialResponse(m *model.MaterialModel) *MaterialResponse {
	st := m.StageStatuses()

	resp := &MaterialResponse{
		MaterialID:          m.MaterialID.String(),
		MaterialTitle:       m.MaterialTitle,
		MaterialDescription: m.MaterialDescription,

		MaterialYoutubeURL: m.MaterialYoutubeURL,
		MaterialYoutubeID:  m.MaterialYoutubeID,
		MaterialThumbnail:  m.MaterialThumbnail,

		MaterialVideoTitle:       m.MaterialVideoTitle,
		MaterialVideoDescription: m.MaterialVideoDescription,
		MaterialVideoChannel:     m.MaterialVideoChannel,
		MaterialVideoPublishedAt: m.MaterialVideoPublishedAt,
		MaterialVideoDuration:    m.MaterialVideoDuration,
		MaterialVideoMeta:        m.MaterialVideoMeta,

		MaterialTranscript:     m.MaterialTranscript,
		MaterialInstruction:    m.MaterialInstruction,
		MaterialNote:           m.MaterialNote,
		MaterialSoftware:       m.MaterialSoftware,
		MaterialVersion:        m.MaterialVersion,
		MaterialLearningNote:   m.MaterialLearningNote,
		MaterialSampleImageURL: m.MaterialSampleImageURL,

		MaterialOffice: m.MaterialOffice,

		MaterialVideoRegistration: m.MaterialVideoRegistration,
		MaterialTextRegistration:  m.MaterialTextRegistration,
		MaterialTextRevision:      m.MaterialTextRevision,
		MaterialImageRegistration: m.MaterialImageRegistration,
		MaterialConfirmation:      m.MaterialConfirmation,

		MaterialCurrentStage: int(st.Current()),
		MaterialStageStates:  st.RenderAll(),

		MaterialCreatedAt: m.MaterialCreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.MaterialUpdatedAt != nil {
		resp.MaterialUpdatedAt = m.MaterialUpdatedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}
