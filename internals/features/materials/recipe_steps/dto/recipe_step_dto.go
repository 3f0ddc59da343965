package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"materialku_backend/internals/features/materials/recipe_steps/model"
)

// Input satu langkah pada bulk replace. Heading dikirim sebagai flag;
// server yang menentukan representasi simpannya.
type RecipeStepInput struct {
	RecipeStepContent   string `json:"recipe_step_content"`
	RecipeStepIsHeading bool   `json:"recipe_step_is_heading"`
}

// NormalizeSteps memvalidasi & menata input bulk replace:
// - konten wajib (error menyebut nomor urutnya, 1-based)
// - penomoran ulang 1..n sesuai urutan kiriman
// - heading: kolom heading diisi kontennya (kompatibel data lama)
func NormalizeSteps(materialID uuid.UUID, inputs []RecipeStepInput) ([]model.RecipeStepModel, error) {
	steps := make([]model.RecipeStepModel, 0, len(inputs))
	for i, in := range inputs {
		content := strings.TrimSpace(in.RecipeStepContent)
		if content == "" {
			return nil, fmt.Errorf("langkah %d tidak punya konten", i+1)
		}

		step := model.RecipeStepModel{
			RecipeStepMaterialID: materialID,
			RecipeStepNumber:     i + 1,
			RecipeStepContent:    content,
		}
		if in.RecipeStepIsHeading {
			heading := content
			step.RecipeStepHeading = &heading
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Response ke frontend
type RecipeStepResponse struct {
	RecipeStepID         string  `json:"recipe_step_id"`
	RecipeStepMaterialID string  `json:"recipe_step_material_id"`
	RecipeStepNumber     int     `json:"recipe_step_number"`
	RecipeStepContent    string  `json:"recipe_step_content"`
	RecipeStepHeading    *string `json:"recipe_step_heading,omitempty"`
	RecipeStepIsHeading  bool    `json:"recipe_step_is_heading"`
	RecipeStepCreatedAt  string  `json:"recipe_step_created_at"`
}

func ToRecipeStepResponse(m *model.RecipeStepModel) *RecipeStepResponse {
	return &RecipeStepResponse{
		RecipeStepID:         m.RecipeStepID.String(),
		RecipeStepMaterialID: m.RecipeStepMaterialID.String(),
		RecipeStepNumber:     m.RecipeStepNumber,
		RecipeStepContent:    m.RecipeStepContent,
		RecipeStepHeading:    m.RecipeStepHeading,
		RecipeStepIsHeading:  m.IsHeading(),
		RecipeStepCreatedAt:  m.RecipeStepCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToRecipeStepResponses(steps []model.RecipeStepModel) []RecipeStepResponse {
	out := make([]RecipeStepResponse, len(steps))
	for i := range steps {
		out[i] = *ToRecipeStepResponse(&steps[i])
	}
	return out
}
