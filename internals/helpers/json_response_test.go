package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	resp.Body.Close()
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name        string
		target      string
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"tanpa query", "/x", 1, 25, 0},
		{"page 3", "/x?page=3&per_page=10", 3, 10, 20},
		{"alias limit", "/x?limit=40", 1, 40, 0},
		{"per_page menang atas limit", "/x?per_page=10&limit=40", 1, 10, 0},
		{"page negatif", "/x?page=-5", 1, 25, 0},
		{"page bukan angka", "/x?page=abc", 1, 25, 0},
		{"per_page nol", "/x?per_page=0", 1, 25, 0},
		{"per_page melebihi max", "/x?per_page=9999", 1, 200, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := resolveFor(t, tc.target, 25, 200)
			if p.Page != tc.wantPage || p.PerPage != tc.wantPerPage || p.Offset != tc.wantOffset {
				t.Errorf("got page=%d per_page=%d offset=%d, ingin page=%d per_page=%d offset=%d",
					p.Page, p.PerPage, p.Offset, tc.wantPage, tc.wantPerPage, tc.wantOffset)
			}
			if p.Limit != p.PerPage {
				t.Errorf("Limit = %d, harus sama dengan PerPage %d", p.Limit, p.PerPage)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name           string
		total          int64
		page, perPage  int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"kosong", 0, 1, 25, 1, false, false},
		{"pas satu halaman", 25, 1, 25, 1, false, false},
		{"lebih satu", 26, 1, 25, 2, true, false},
		{"halaman tengah", 100, 2, 25, 4, true, true},
		{"halaman terakhir", 100, 4, 25, 4, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.wantTotalPages {
				t.Errorf("TotalPages = %d, ingin %d", p.TotalPages, tc.wantTotalPages)
			}
			if p.HasNext != tc.wantHasNext || p.HasPrev != tc.wantHasPrev {
				t.Errorf("HasNext=%v HasPrev=%v, ingin %v/%v", p.HasNext, p.HasPrev, tc.wantHasNext, tc.wantHasPrev)
			}
			if p.Total != tc.total {
				t.Errorf("Total = %d, ingin %d", p.Total, tc.total)
			}
		})
	}
}
