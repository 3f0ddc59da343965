// Package workflow memusatkan aturan gating lima tahap produksi materi
// (video → teks → revisi teks → gambar → konfirmasi) di satu tempat.
// Dulu logika ini tersebar dan saling bertentangan di tiap halaman frontend;
// sekarang semua controller dan DTO memakai package ini.
package workflow

import "fmt"

// Status vocabulary per kolom tahap. Nilai di luar daftar ini tetap diterima
// (fungsi total) dan diperlakukan sebagai belum-completed.
type Status string

const (
	StatusPending    Status = "pending"
	StatusDraft      Status = "draft"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"

	// khusus tahap konfirmasi
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Stage 1..5 sesuai urutan produksi.
type Stage int

const (
	StageVideoRegistration Stage = iota + 1
	StageTextRegistration
	StageTextRevision
	StageImageRegistration
	StageConfirmation
)

// StageCount = jumlah tahap.
const StageCount = int(StageConfirmation)

func (s Stage) Valid() bool {
	return s >= StageVideoRegistration && s <= StageConfirmation
}

// Label = nama kolom tahap di tabel materials (tanpa prefix material_).
func (s Stage) Label() string {
	switch s {
	case StageVideoRegistration:
		return "video_registration"
	case StageTextRegistration:
		return "text_registration"
	case StageTextRevision:
		return "text_revision"
	case StageImageRegistration:
		return "image_registration"
	case StageConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("stage_%d", int(s))
	}
}

// Statuses memotret kelima kolom tahap sebuah materi, index 0 = tahap 1.
type Statuses [StageCount]Status

// Current mengembalikan tahap pertama yang belum completed;
// kalau semua completed, tetap tahap 5 (konfirmasi bisa dibuka ulang).
func (st Statuses) Current() Stage {
	for i := 0; i < StageCount; i++ {
		if st[i] != StatusCompleted {
			return Stage(i + 1)
		}
	}
	return StageConfirmation
}

// CanAccess: tahap 1 selalu boleh; tahap N>1 hanya bila 1..N-1 semuanya
// persis completed. Rantai linear, tidak ada jalur alternatif.
func (st Statuses) CanAccess(target Stage) bool {
	if target == StageVideoRegistration {
		return true
	}
	if !target.Valid() {
		return false
	}
	for i := StageVideoRegistration; i < target; i++ {
		if st[i-1] != StatusCompleted {
			return false
		}
	}
	return true
}

// RenderState menentukan tampilan kartu tahap di UI.
type RenderState string

const (
	RenderDone     RenderState = "done"
	RenderCurrent  RenderState = "current"
	RenderTodo     RenderState = "todo"
	RenderDisabled RenderState = "disabled"
)

// Render memetakan (status, tahap, tahap-aktif) → tepat satu RenderState.
func (st Statuses) Render(target Stage) RenderState {
	if !target.Valid() {
		return RenderDisabled
	}
	status := st[target-1]

	if !st.CanAccess(target) && status == StatusPending {
		return RenderDisabled
	}
	if status == StatusCompleted {
		// Konfirmasi tetap "current" walau completed: boleh dibuka ulang.
		if target == StageConfirmation {
			return RenderCurrent
		}
		return RenderDone
	}
	if status == StatusDraft || status == StatusInProgress {
		return RenderCurrent
	}
	if target == st.Current() && status == StatusPending {
		return RenderCurrent
	}
	return RenderTodo
}

// RenderAll untuk response DTO: state kelima tahap sekaligus, key = Label.
func (st Statuses) RenderAll() map[string]RenderState {
	out := make(map[string]RenderState, StageCount)
	for i := StageVideoRegistration; i <= StageConfirmation; i++ {
		out[i.Label()] = st.Render(i)
	}
	return out
}

// StageGateError: penolakan precondition tahap (dipetakan 422 di controller).
type StageGateError struct {
	Stage Stage
}

func (e *StageGateError) Error() string {
	return fmt.Sprintf("tahap %s belum bisa diubah: tahap sebelumnya belum completed", e.Stage.Label())
}

// ApplyChanges menerapkan perubahan status tahap ke snapshot dengan urutan
// tahap menaik, supaya "selesaikan tahap 2 dan 3 sekaligus" tetap valid.
// Perubahan ke tahap yang belum reachable ditolak; snapshot asli tidak diubah.
func (st Statuses) ApplyChanges(changes map[Stage]Status) (Statuses, error) {
	next := st
	for s := StageVideoRegistration; s <= StageConfirmation; s++ {
		status, ok := changes[s]
		if !ok {
			continue
		}
		if !next.CanAccess(s) {
			return st, &StageGateError{Stage: s}
		}
		next[s-1] = status
	}
	return next, nil
}
