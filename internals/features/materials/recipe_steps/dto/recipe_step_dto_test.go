package dto

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNormalizeStepsRenumbers(t *testing.T) {
	materialID := uuid.New()
	inputs := []RecipeStepInput{
		{RecipeStepContent: "Buka project"},
		{RecipeStepContent: "Persiapan", RecipeStepIsHeading: true},
		{RecipeStepContent: "  Atur kamera  "},
	}

	steps, err := NormalizeSteps(materialID, inputs)
	if err != nil {
		t.Fatalf("NormalizeSteps error: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("jumlah steps = %d, ingin 3", len(steps))
	}

	for i, s := range steps {
		if s.RecipeStepNumber != i+1 {
			t.Errorf("step %d: number = %d, ingin %d", i, s.RecipeStepNumber, i+1)
		}
		if s.RecipeStepMaterialID != materialID {
			t.Errorf("step %d: material id salah", i)
		}
	}

	if steps[2].RecipeStepContent != "Atur kamera" {
		t.Errorf("content tidak di-trim: %q", steps[2].RecipeStepContent)
	}
}

func TestNormalizeStepsHeading(t *testing.T) {
	steps, err := NormalizeSteps(uuid.New(), []RecipeStepInput{
		{RecipeStepContent: "Bagian Editing", RecipeStepIsHeading: true},
		{RecipeStepContent: "Potong klip"},
	})
	if err != nil {
		t.Fatalf("NormalizeSteps error: %v", err)
	}

	if steps[0].RecipeStepHeading == nil {
		t.Fatal("heading step: kolom heading nil")
	}
	if *steps[0].RecipeStepHeading != "Bagian Editing" {
		t.Errorf("heading = %q, ingin konten step-nya", *steps[0].RecipeStepHeading)
	}
	if !steps[0].IsHeading() {
		t.Error("IsHeading() = false untuk heading")
	}

	if steps[1].RecipeStepHeading != nil {
		t.Error("step biasa: kolom heading harus nil")
	}
	if steps[1].IsHeading() {
		t.Error("IsHeading() = true untuk step biasa")
	}
}

func TestNormalizeStepsEmptyContent(t *testing.T) {
	cases := []struct {
		name    string
		inputs  []RecipeStepInput
		wantIdx string // nomor 1-based yang harus disebut di pesan error
	}{
		{
			name:    "kosong di awal",
			inputs:  []RecipeStepInput{{RecipeStepContent: ""}},
			wantIdx: "1",
		},
		{
			name: "whitespace di tengah",
			inputs: []RecipeStepInput{
				{RecipeStepContent: "ok"},
				{RecipeStepContent: "   "},
				{RecipeStepContent: "ok juga"},
			},
			wantIdx: "2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeSteps(uuid.New(), tc.inputs)
			if err == nil {
				t.Fatal("ingin error, dapat nil")
			}
			if !strings.Contains(err.Error(), tc.wantIdx) {
				t.Errorf("pesan error %q tidak menyebut langkah %s", err.Error(), tc.wantIdx)
			}
		})
	}
}
