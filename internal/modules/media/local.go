package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore writes images to local disk, served back via a static route.
type LocalStore struct {
	baseDir    string // absolute path to uploads dir
	staticBase string // URL prefix for serving files
}

func NewLocalStore(baseDir, staticBase string) *LocalStore {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if staticBase == "" {
		staticBase = "/static/uploads"
	}
	return &LocalStore{baseDir: baseDir, staticBase: staticBase}
}

func (s *LocalStore) Upload(ctx context.Context, ownerID string, file File, slot string) (string, error) {
	if !ValidSlot(slot) {
		return "", ErrInvalidSlot
	}

	reader, mimeType, err := sniff(file)
	if err != nil {
		return "", err
	}

	relDir := filepath.Join("images", ownerID)
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%s-%d%s", slot, time.Now().UnixNano(), mimeToExt(mimeType))
	absPath := filepath.Join(absDir, filename)

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	return s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/"), nil
}

// sniff validates size, detects the MIME type from the first 512 bytes and
// returns a reader replaying the whole stream.
func sniff(file File) (io.Reader, string, error) {
	if file.Size == 0 {
		return nil, "", ErrEmptyFile
	}
	if file.Size > MaxFileSize {
		return nil, "", ErrFileTooLarge
	}

	buf := make([]byte, 512)
	n, err := io.ReadFull(file.Reader, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}
	head := buf[:n]

	mimeType := http.DetectContentType(head)
	mimeType = strings.Split(mimeType, ";")[0] // strip charset params
	if !AllowedMimeTypes[mimeType] {
		return nil, "", ErrInvalidMimeType
	}

	return io.MultiReader(bytes.NewReader(head), file.Reader), mimeType, nil
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
