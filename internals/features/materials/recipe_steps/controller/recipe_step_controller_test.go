package controller

import (
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               gormLogger.Default.LogMode(gormLogger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func newStepApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewRecipeStepController(db)
	app.Post("/materials/:id/recipe-steps", ctrl.BulkReplace)
	return app
}

func expectMaterialExists(mock sqlmock.Sqlmock, materialID uuid.UUID) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "material_id" FROM "materials"`)).
		WillReturnRows(sqlmock.NewRows([]string{"material_id"}).AddRow(materialID.String()))
}

// Gagal insert di tengah bulk replace harus me-rollback delete-nya:
// langkah lama tetap utuh, bukan materi tanpa langkah sama sekali.
func TestBulkReplaceRollsBackDeleteOnFailedInsert(t *testing.T) {
	db, mock := newMockDB(t)
	app := newStepApp(db)
	materialID := uuid.New()

	expectMaterialExists(mock, materialID)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recipe_steps"`)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "recipe_steps"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key"})
	mock.ExpectRollback()

	req := httptest.NewRequest("POST", "/materials/"+materialID.String()+"/recipe-steps",
		strings.NewReader(`[{"recipe_step_content":"Buka project"},{"recipe_step_content":"Atur kamera"}]`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("status = %d, ingin 409 dari mapping error PG", resp.StatusCode)
	}

	// ExpectRollback terpenuhi = delete tidak pernah ter-commit
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("ekspektasi transaksi tidak terpenuhi: %v", err)
	}
}

func TestBulkReplaceCommitsDeleteAndInsertTogether(t *testing.T) {
	db, mock := newMockDB(t)
	app := newStepApp(db)
	materialID := uuid.New()

	expectMaterialExists(mock, materialID)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recipe_steps"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "recipe_steps"`)).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_step_id"}).
			AddRow(uuid.New().String()).
			AddRow(uuid.New().String()))
	mock.ExpectCommit()

	req := httptest.NewRequest("POST", "/materials/"+materialID.String()+"/recipe-steps",
		strings.NewReader(`[{"recipe_step_content":"Persiapan","recipe_step_is_heading":true},{"recipe_step_content":"Buka project"}]`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusCreated {
		t.Errorf("status = %d, ingin 201", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("ekspektasi transaksi tidak terpenuhi: %v", err)
	}
}

func TestBulkReplaceRejectsEmptyAndInvalidBodies(t *testing.T) {
	db, mock := newMockDB(t)
	app := newStepApp(db)
	materialID := uuid.New()

	cases := []struct {
		name string
		body string
	}{
		{"array kosong", `[]`},
		{"konten kosong", `[{"recipe_step_content":"  "}]`},
		{"bukan array", `{"recipe_step_content":"x"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/materials/"+materialID.String()+"/recipe-steps",
				strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, ingin 400", resp.StatusCode)
			}
		})
	}

	// tidak ada satu pun query yang boleh menyentuh DB
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("request invalid tidak boleh menyentuh DB: %v", err)
	}
}
