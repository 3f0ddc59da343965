package dto

import (
	"fmt"

	"materialku_backend/internals/features/materials/workflow"
)

// Allow-list PATCH publik: flow non-admin (kantor pengerjaan, transkrip,
// instruksi, progres tahap 2-5) boleh update tanpa login. Field di luar
// daftar ini dibuang diam-diam, persis perilaku endpoint lamanya.
var patchAllowedColumns = map[string]string{
	"material_office":            "material_office",
	"material_video_description": "material_video_description",
	"material_transcript":        "material_transcript",
	"material_instruction":       "material_instruction",
	"material_note":              "material_note",
	"material_software":          "material_software",
	"material_version":           "material_version",
	"material_learning_note":     "material_learning_note",
	"material_sample_image_url":  "material_sample_image_url",
}

// Kolom status tahap yang boleh lewat PATCH. Registrasi video (tahap 1)
// tidak ada di sini: statusnya di-set completed saat create dan hanya admin
// yang membuat materi.
var patchStageFields = map[string]workflow.Stage{
	"material_text_registration":  workflow.StageTextRegistration,
	"material_text_revision":      workflow.StageTextRevision,
	"material_image_registration": workflow.StageImageRegistration,
	"material_confirmation":       workflow.StageConfirmation,
}

// MaterialPatch hasil penyaringan body PATCH.
type MaterialPatch struct {
	Updates map[string]interface{}             // kolom biasa → nilai
	Stages  map[workflow.Stage]workflow.Status // perubahan status tahap
}

func (p MaterialPatch) IsEmpty() bool {
	return len(p.Updates) == 0 && len(p.Stages) == 0
}

// FilterPatch menyaring body mentah terhadap allow-list.
// Semua kolom allow-list bertipe teks: nilainya wajib string (atau null
// untuk mengosongkan kolom nullable). Nilai status tahap wajib string.
// Tipe lain error (bukan dibuang), supaya typo tidak lolos jadi no-op
// atau meledak sebagai error driver di bawah.
func FilterPatch(body map[string]interface{}) (MaterialPatch, error) {
	patch := MaterialPatch{
		Updates: map[string]interface{}{},
		Stages:  map[workflow.Stage]workflow.Status{},
	}

	for key, val := range body {
		if col, ok := patchAllowedColumns[key]; ok {
			if val != nil {
				if _, ok := val.(string); !ok {
					return MaterialPatch{}, fmt.Errorf("nilai %s harus string", key)
				}
			}
			patch.Updates[col] = val
			continue
		}
		if stage, ok := patchStageFields[key]; ok {
			s, ok := val.(string)
			if !ok || s == "" {
				return MaterialPatch{}, fmt.Errorf("nilai %s harus string status yang valid", key)
			}
			patch.Stages[stage] = workflow.Status(s)
		}
		// key lain: bukan anggota allow-list, diabaikan
	}

	return patch, nil
}

// StageColumn memetakan tahap → nama kolom di tabel materials.
func StageColumn(s workflow.Stage) string {
	return "material_" + s.Label()
}
