package services

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	BucketResumes = "resumes"
	BucketProject = "projects"
	BucketAvatars = "avatars"
)

func EnsureStoragePath(base string, bucket string) (string, error) {
	path := filepath.Join(base, bucket)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", err
	}
	return path, nil
}

// SaveMediaAsset streams the body to disk under the bucket, records the asset
// row and returns the asset id with its retrievable URL. The file is removed
// again if the row cannot be written.
func SaveMediaAsset(db *sqlx.DB, basePath, bucket, contentType, filename, ownerID string, body io.Reader) (string, string, error) {
	assetID := uuid.NewString()
	bucketPath, err := EnsureStoragePath(basePath, bucket)
	if err != nil {
		return "", "", err
	}
	targetPath := filepath.Join(bucketPath, assetID)

	file, err := os.Create(targetPath)
	if err != nil {
		return "", "", err
	}
	hasher := sha256.New()
	writer := io.MultiWriter(file, hasher)
	size, err := io.Copy(writer, body)
	_ = file.Close()
	if err != nil {
		return "", "", err
	}
	if size == 0 {
		_ = os.Remove(targetPath)
		return "", "", ErrBadRequest(CodeBadRequest, "The uploaded file is empty.")
	}
	sha := hex.EncodeToString(hasher.Sum(nil))

	_, err = db.Exec(`
INSERT INTO media_assets (id, owner_user_id, bucket, storage_key, filename, content_type, size_bytes, sha256, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`, assetID, ownerID, bucket, assetID, filename, contentType, size, sha, time.Now().UTC())
	if err != nil {
		_ = os.Remove(targetPath)
		return "", "", err
	}
	return assetID, BuildAssetURL(assetID), nil
}

func BuildAssetURL(assetID string) string {
	return "/api/media/assets/" + assetID + "/content"
}

// AssetPath resolves the on-disk location and content type of an asset.
func AssetPath(db *sqlx.DB, basePath, assetID string) (string, string, *string, error) {
	row := struct {
		Bucket      string  `db:"bucket"`
		StorageKey  string  `db:"storage_key"`
		ContentType string  `db:"content_type"`
		Filename    *string `db:"filename"`
	}{}
	err := db.Get(&row, `SELECT bucket, storage_key, content_type, filename FROM media_assets WHERE id = $1`, assetID)
	if err != nil {
		return "", "", nil, ErrNotFound(CodeNotFound, "File not found.")
	}
	return filepath.Join(basePath, row.Bucket, row.StorageKey), row.ContentType, row.Filename, nil
}

func DeleteAsset(db *sqlx.DB, basePath string, assetID string) error {
	row := struct {
		Bucket     string `db:"bucket"`
		StorageKey string `db:"storage_key"`
	}{}
	if err := db.Get(&row, `SELECT bucket, storage_key FROM media_assets WHERE id = $1`, assetID); err != nil {
		return nil
	}
	_, _ = db.Exec(`DELETE FROM media_assets WHERE id = $1`, assetID)
	_ = os.Remove(filepath.Join(basePath, row.Bucket, row.StorageKey))
	return nil
}
