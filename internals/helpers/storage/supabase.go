// internals/helpers/storage/supabase.go
package storage

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"materialku_backend/internals/configs"
)

// batas ukuran uploader di controller (tetap dipakai sebagai guard ringan)
const MaxUploadSize = int64(5 * 1024 * 1024)

func envInt(key string, def int) int {
	if v := strings.TrimSpace(configs.GetEnv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := strings.TrimSpace(configs.GetEnv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			return float32(f)
		}
	}
	return def
}

/* =======================================================================
   Konversi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // batas lebar (resize keep-aspect)
	MaxH    int     // batas tinggi
	Quality float32 // kualitas lossy
}

func DefaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

// ConvertToWebP men-decode jpeg/png/webp, resize keep-aspect bila melebihi
// batas, lalu encode ulang ke webp lossy.
func ConvertToWebP(raw []byte, opt WebPOptions) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("gagal decode gambar: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > opt.MaxW || b.Dy() > opt.MaxH {
		img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: opt.Quality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return out.Bytes(), nil
}

/* =======================================================================
   Object key
======================================================================= */

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeFilename menghapus karakter selain huruf, angka, titik, dash, underscore
func SanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

// GenerateObjectKey membentuk key unik per (material, step):
// materials/<material_id>/steps/<n>/<yyyymmdd>-<uuid>-<nama>.webp
func GenerateObjectKey(materialID uuid.UUID, stepNumber int, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := strings.TrimSuffix(SanitizeFilename(originalFilename), extOf(originalFilename))
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("materials/%s/steps/%d/%s-%s-%s.webp",
		materialID.String(), stepNumber, timestamp, uuid.New().String(), base)
}

func extOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return SanitizeFilename(name[i:])
	}
	return ""
}

/* =======================================================================
   Supabase Storage (REST)
======================================================================= */

var httpClient = &http.Client{Timeout: 30 * time.Second}

// UploadImageToSupabase membaca file multipart, konversi ke webp, lalu upload
// ke bucket material-images. Mengembalikan public URL + ukuran hasil konversi.
func UploadImageToSupabase(objectKey string, fileHeader *multipart.FileHeader) (string, int64, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", 0, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", 0, fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	converted, err := ConvertToWebP(buf.Bytes(), DefaultWebPOptionsFromEnv())
	if err != nil {
		return "", 0, err
	}

	bucket := configs.SupabaseStorageBucket
	if err := UploadToSupabase(bucket, objectKey, "image/webp", bytes.NewBuffer(converted)); err != nil {
		return "", 0, fmt.Errorf("upload gambar gagal: %w", err)
	}

	return PublicURL(bucket, objectKey), int64(len(converted)), nil
}

func UploadToSupabase(bucket, filename, contentType string, data *bytes.Buffer) error {
	supabaseURL := configs.SupabaseProjectURL
	supabaseKey := configs.SupabaseServiceRoleKey
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL atau SUPABASE_SERVICE_ROLE_KEY belum diset")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", supabaseURL, bucket, filename)

	req, err := http.NewRequest(http.MethodPut, endpoint, data)
	if err != nil {
		return fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim request upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeleteFromSupabase menghapus object. Dipakai best-effort oleh controller:
// kegagalan cukup di-log, row DB tetap sumber kebenaran.
func DeleteFromSupabase(bucket, path string) error {
	supabaseURL := configs.SupabaseProjectURL
	supabaseKey := configs.SupabaseServiceRoleKey
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("kredensial Supabase belum diset")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", supabaseURL, bucket, path)

	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		configs.SupabaseProjectURL, bucket, escapePath(path))
}

// ObjectPathFromPublicURL membalik PublicURL → (bucket, path).
// Dipakai saat delete: row hanya menyimpan public URL.
func ObjectPathFromPublicURL(publicURL string) (bucket, path string, ok bool) {
	const marker = "/storage/v1/object/public/"
	i := strings.Index(publicURL, marker)
	if i < 0 {
		return "", "", false
	}
	rest := publicURL[i+len(marker):]
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	unescaped, err := url.PathUnescape(parts[1])
	if err != nil {
		unescaped = parts[1]
	}
	return parts[0], unescaped, true
}

func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// BestEffortDelete menghapus object dari public URL; salah format cuma di-log.
func BestEffortDelete(publicURL string) {
	bucket, path, ok := ObjectPathFromPublicURL(publicURL)
	if !ok {
		log.Printf("[STORAGE] URL bukan public object Supabase, skip delete: %s", publicURL)
		return
	}
	if err := DeleteFromSupabase(bucket, path); err != nil {
		log.Printf("[STORAGE] best-effort delete gagal (%s): %v", path, err)
	}
}
