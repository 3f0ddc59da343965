package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"foto.jpg":           "foto.jpg",
		"foto akhir (1).png": "foto_akhir_1_.png",
		"画面キャプチャ.png":        "_.png",
		"a/b\\c.webp":        "a_b_c.webp",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, ingin %q", in, got, want)
		}
	}
}

func TestGenerateObjectKey(t *testing.T) {
	materialID := uuid.New()
	key := GenerateObjectKey(materialID, 3, "screen shot.png")

	wantPrefix := "materials/" + materialID.String() + "/steps/3/"
	if !strings.HasPrefix(key, wantPrefix) {
		t.Fatalf("key %q tidak diawali %q", key, wantPrefix)
	}
	if !strings.HasSuffix(key, ".webp") {
		t.Errorf("key %q harus berekstensi .webp", key)
	}
	if strings.Contains(key, " ") {
		t.Errorf("key %q mengandung spasi", key)
	}

	// dua panggilan = dua key berbeda (ada uuid di dalamnya)
	if key2 := GenerateObjectKey(materialID, 3, "screen shot.png"); key2 == key {
		t.Error("dua key identik, harusnya unik per upload")
	}
}

func TestObjectPathFromPublicURL(t *testing.T) {
	cases := []struct {
		name       string
		url        string
		wantBucket string
		wantPath   string
		wantOK     bool
	}{
		{
			name:       "public url normal",
			url:        "https://proj.supabase.co/storage/v1/object/public/material-images/materials/abc/steps/1/foto.webp",
			wantBucket: "material-images",
			wantPath:   "materials/abc/steps/1/foto.webp",
			wantOK:     true,
		},
		{
			name:       "path ter-escape",
			url:        "https://proj.supabase.co/storage/v1/object/public/material-images/a%20b.webp",
			wantBucket: "material-images",
			wantPath:   "a b.webp",
			wantOK:     true,
		},
		{name: "bukan url storage", url: "https://example.com/foto.webp", wantOK: false},
		{name: "tanpa path object", url: "https://proj.supabase.co/storage/v1/object/public/material-images", wantOK: false},
		{name: "string kosong", url: "", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bucket, path, ok := ObjectPathFromPublicURL(tc.url)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, ingin %v", ok, tc.wantOK)
			}
			if !tc.wantOK {
				return
			}
			if bucket != tc.wantBucket || path != tc.wantPath {
				t.Errorf("got (%q, %q), ingin (%q, %q)", bucket, path, tc.wantBucket, tc.wantPath)
			}
		})
	}
}

func TestPublicURLRoundTrip(t *testing.T) {
	// PublicURL lalu ObjectPathFromPublicURL harus kembali ke path semula
	key := "materials/abc/steps/2/20240301-x-foto akhir.webp"
	url := PublicURL("material-images", key)

	bucket, path, ok := ObjectPathFromPublicURL(url)
	if !ok {
		t.Fatalf("ObjectPathFromPublicURL gagal untuk %q", url)
	}
	if bucket != "material-images" || path != key {
		t.Errorf("round trip (%q, %q), ingin (material-images, %q)", bucket, path, key)
	}
}
