package dto

import (
	"testing"

	"materialku_backend/internals/features/materials/workflow"
)

func TestFilterPatchAllowList(t *testing.T) {
	body := map[string]interface{}{
		"material_transcript": "teks transkrip",
		"material_software":   "Premiere Pro",
		"material_title":      "coba ganti judul", // bukan anggota allow-list
		"material_id":         "injeksi id",       // bukan anggota allow-list
	}

	patch, err := FilterPatch(body)
	if err != nil {
		t.Fatalf("FilterPatch error: %v", err)
	}

	if len(patch.Updates) != 2 {
		t.Fatalf("Updates = %v, ingin 2 kolom", patch.Updates)
	}
	if patch.Updates["material_transcript"] != "teks transkrip" {
		t.Error("material_transcript hilang dari Updates")
	}
	if _, ok := patch.Updates["material_title"]; ok {
		t.Error("material_title lolos padahal di luar allow-list")
	}
	if _, ok := patch.Updates["material_id"]; ok {
		t.Error("material_id lolos padahal di luar allow-list")
	}
}

func TestFilterPatchStageFields(t *testing.T) {
	body := map[string]interface{}{
		"material_text_registration": "in_progress",
		"material_confirmation":      "completed",
	}

	patch, err := FilterPatch(body)
	if err != nil {
		t.Fatalf("FilterPatch error: %v", err)
	}

	if got := patch.Stages[workflow.StageTextRegistration]; got != workflow.StatusInProgress {
		t.Errorf("tahap 2 = %q, ingin in_progress", got)
	}
	if got := patch.Stages[workflow.StageConfirmation]; got != workflow.StatusCompleted {
		t.Errorf("tahap 5 = %q, ingin completed", got)
	}
}

func TestFilterPatchVideoRegistrationExcluded(t *testing.T) {
	// Tahap 1 di-set saat create oleh admin; PATCH publik tidak boleh menyentuhnya.
	patch, err := FilterPatch(map[string]interface{}{
		"material_video_registration": "pending",
	})
	if err != nil {
		t.Fatalf("FilterPatch error: %v", err)
	}
	if !patch.IsEmpty() {
		t.Errorf("material_video_registration harus diabaikan, dapat %+v", patch)
	}
}

func TestFilterPatchColumnValueMustBeString(t *testing.T) {
	// object/array/angka di kolom teks harus 400 di DTO, bukan error driver
	for _, val := range []interface{}{
		map[string]interface{}{"x": 1},
		[]interface{}{"a"},
		42,
		true,
	} {
		_, err := FilterPatch(map[string]interface{}{
			"material_office": val,
		})
		if err == nil {
			t.Errorf("nilai %#v untuk material_office harus ditolak", val)
		}
	}

	// null boleh: mengosongkan kolom nullable
	patch, err := FilterPatch(map[string]interface{}{
		"material_office": nil,
	})
	if err != nil {
		t.Fatalf("null harus diterima, dapat error: %v", err)
	}
	if v, ok := patch.Updates["material_office"]; !ok || v != nil {
		t.Errorf("material_office = %#v, ingin null tersimpan di Updates", v)
	}
}

func TestFilterPatchStageValueMustBeString(t *testing.T) {
	cases := []interface{}{42, true, nil, []interface{}{"completed"}}
	for _, val := range cases {
		_, err := FilterPatch(map[string]interface{}{
			"material_text_revision": val,
		})
		if err == nil {
			t.Errorf("nilai tahap %#v harus ditolak", val)
		}
	}
}

func TestFilterPatchEmpty(t *testing.T) {
	patch, err := FilterPatch(map[string]interface{}{
		"field_asing": "x",
	})
	if err != nil {
		t.Fatalf("FilterPatch error: %v", err)
	}
	if !patch.IsEmpty() {
		t.Errorf("patch harus kosong, dapat %+v", patch)
	}
}

func TestStageColumn(t *testing.T) {
	cases := map[workflow.Stage]string{
		workflow.StageVideoRegistration: "material_video_registration",
		workflow.StageTextRegistration:  "material_text_registration",
		workflow.StageTextRevision:      "material_text_revision",
		workflow.StageImageRegistration: "material_image_registration",
		workflow.StageConfirmation:      "material_confirmation",
	}
	for stage, want := range cases {
		if got := StageColumn(stage); got != want {
			t.Errorf("StageColumn(%d) = %q, ingin %q", stage, got, want)
		}
	}
}
