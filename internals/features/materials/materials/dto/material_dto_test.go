package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"materialku_backend/internals/features/materials/workflow"
)

func TestMaterialCreateRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     MaterialCreateRequest
		wantErr bool
	}{
		{"judul valid", MaterialCreateRequest{MaterialTitle: "Tutorial Kamera"}, false},
		{"judul kosong", MaterialCreateRequest{MaterialTitle: ""}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestMaterialCreateRequestToModel(t *testing.T) {
	desc := "deskripsi"
	url := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	req := MaterialCreateRequest{
		MaterialTitle:       "Tutorial Kamera",
		MaterialDescription: &desc,
		MaterialYoutubeURL:  &url,
	}

	m := req.ToModel()

	// create = registrasi video selesai, sisanya belum mulai
	if m.MaterialVideoRegistration != string(workflow.StatusCompleted) {
		t.Errorf("video_registration = %q, ingin completed", m.MaterialVideoRegistration)
	}
	for col, val := range map[string]string{
		"text_registration":  m.MaterialTextRegistration,
		"text_revision":      m.MaterialTextRevision,
		"image_registration": m.MaterialImageRegistration,
		"confirmation":       m.MaterialConfirmation,
	} {
		if val != string(workflow.StatusPending) {
			t.Errorf("%s = %q, ingin pending", col, val)
		}
	}

	if got := m.StageStatuses().Current(); got != workflow.StageTextRegistration {
		t.Errorf("Current() = %d, materi baru harus di tahap 2", got)
	}
}

func TestToMaterialResponseStageStates(t *testing.T) {
	req := MaterialCreateRequest{MaterialTitle: "Materi"}
	m := req.ToModel()
	m.MaterialID = uuid.New()
	m.MaterialCreatedAt = time.Now()

	resp := ToMaterialResponse(m)

	if resp.MaterialCurrentStage != 2 {
		t.Errorf("MaterialCurrentStage = %d, ingin 2", resp.MaterialCurrentStage)
	}

	states := resp.MaterialStageStates
	if len(states) != workflow.StageCount {
		t.Fatalf("jumlah stage states = %d, ingin %d", len(states), workflow.StageCount)
	}
	if states["video_registration"] != workflow.RenderDone {
		t.Errorf("video_registration = %q, ingin done", states["video_registration"])
	}
	if states["text_registration"] != workflow.RenderCurrent {
		t.Errorf("text_registration = %q, ingin current", states["text_registration"])
	}
	if states["text_revision"] != workflow.RenderDisabled {
		t.Errorf("text_revision = %q, ingin disabled", states["text_revision"])
	}
	if states["confirmation"] != workflow.RenderDisabled {
		t.Errorf("confirmation = %q, ingin disabled", states["confirmation"])
	}
}
