package files

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage writes upload payloads and returns the stored location. The
// backend is chosen once at startup from STORAGE_BACKEND: local disk by
// default, an S3-compatible object store when set to "s3".
type Storage interface {
	Save(ctx context.Context, fileType Type, name string, r io.Reader, size int64, contentType string) (string, error)
}

func NewStorage() (Storage, error) {
	if os.Getenv("STORAGE_BACKEND") == "s3" {
		return NewMinioStorage()
	}
	root := os.Getenv("UPLOAD_DIR")
	if root == "" {
		root = filepath.Join(".", "uploads")
	}
	return NewDiskStorage(root)
}

type DiskStorage struct {
	root string
}

func NewDiskStorage(root string) (*DiskStorage, error) {
	for _, dir := range []string{subdir(TypePDF), subdir(TypeVideo)} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, err
		}
	}
	return &DiskStorage{root: root}, nil
}

func subdir(fileType Type) string {
	return string(fileType) + "s"
}

func (s *DiskStorage) Save(ctx context.Context, fileType Type, name string, r io.Reader, size int64, contentType string) (string, error) {
	path := filepath.Join(s.root, subdir(fileType), name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

type MinioStorage struct {
	client *minio.Client
	bucket string
}

func NewMinioStorage() (*MinioStorage, error) {
	rawEndpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")
	if rawEndpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return nil, fmt.Errorf("s3 storage configuration incomplete")
	}

	endpoint, secure, err := normalizeEndpoint(rawEndpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("s3 bucket does not exist: %s", bucket)
	}

	log.Println("Using s3 storage backend, bucket:", bucket)
	return &MinioStorage{client: client, bucket: bucket}, nil
}

// normalizeEndpoint accepts "host:port" or a full http(s) URL.
func normalizeEndpoint(raw string) (string, bool, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		return raw, false, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false, err
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("invalid s3 endpoint")
	}
	if u.Path != "" && u.Path != "/" {
		return "", false, fmt.Errorf("s3 endpoint must not contain a path")
	}
	return u.Host, u.Scheme == "https", nil
}

func (s *MinioStorage) Save(ctx context.Context, fileType Type, name string, r io.Reader, size int64, contentType string) (string, error) {
	key := subdir(fileType) + "/" + name
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}
