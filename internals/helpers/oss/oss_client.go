package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// batas ukuran uploader di controller (guard ringan)
const maxUploadSize = int64(5 * 1024 * 1024)

/* =======================================================================
   OSSService — wrapper tipis di atas bucket S3-compatible.
   Avatar di-recompress ke WebP sebelum upload, file lain apa adanya.
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	ak := getEnv("OSS_ACCESS_KEY")
	sk := getEnv("OSS_SECRET_KEY")
	bucketName := getEnv("OSS_BUCKET")

	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env belum lengkap (OSS_ENDPOINT/OSS_ACCESS_KEY/OSS_SECRET_KEY/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bucket,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// UploadAsWebP: recompress gambar ke webp, upload <prefix>/<dir>/<uuid>.webp,
// kembalikan URL publiknya (yang disimpan di avatar_url dan dipakai
// DeleteByPublicURL saat ganti avatar).
func (s *OSSService) UploadAsWebP(fh *multipart.FileHeader, dir string) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi %d bytes", maxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	webpBytes, err := ReencodeToWebP(data)
	if err != nil {
		return "", err
	}

	key := s.buildObjectKey(dir, uuid.New().String()+".webp")
	opts := []oss.Option{
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(webpBytes), opts...); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) DeleteObject(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("empty key")
	}
	return s.Bucket.DeleteObject(key)
}

func (s *OSSService) DeleteByPublicURL(publicURL string) error {
	key, err := s.ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.DeleteObject(key)
}

// PublicURL membangun URL publik: endpoint/bucket/key
// (atau OSS_PUBLIC_BASE/key jika di-set).
func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if base := getEnv("OSS_PUBLIC_BASE"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	ep := strings.TrimRight(s.Endpoint, "/")
	if !strings.Contains(ep, "://") {
		ep = "https://" + ep
	}
	return fmt.Sprintf("%s/%s/%s", ep, s.BucketName, key)
}

func (s *OSSService) ExtractKeyFromPublicURL(publicURL string) (string, error) {
	if strings.TrimSpace(publicURL) == "" {
		return "", fmt.Errorf("empty public url")
	}
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("parse public url: %w", err)
	}
	p := strings.TrimPrefix(u.Path, "/")
	if rest, ok := strings.CutPrefix(p, s.BucketName+"/"); ok {
		return rest, nil
	}
	// OSS_PUBLIC_BASE: path sudah langsung key
	if p == "" {
		return "", fmt.Errorf("url tanpa object key: %s", publicURL)
	}
	return p, nil
}

func (s *OSSService) buildObjectKey(dir, filename string) string {
	return path.Join(s.Prefix, strings.Trim(dir, "/"), filename)
}
