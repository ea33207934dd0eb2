// Package storage keeps uploaded post images and hands back their public URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store accepts an uploaded blob and returns a retrievable reference.
type Store interface {
	Save(ctx context.Context, fh *multipart.FileHeader) (string, error)
	Delete(ref string) error
}

// Local stores files under Root and publishes them below URL.
type Local struct {
	Root string
	URL  string
	now  func() time.Time
}

// NewLocal creates a Local store; url is the public prefix, e.g. "/media/".
func NewLocal(root, url string) *Local {
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return &Local{Root: root, URL: url, now: time.Now}
}

// Save writes fh to posts/YYYY/MM/DD/<uuid><ext> and returns its URL.
func (l *Local) Save(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	now := l.now()
	rel := path.Join("posts", now.Format("2006"), now.Format("01"), now.Format("02"))
	dir := filepath.Join(l.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filepath.Base(fh.Filename)))
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dstPath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("write %s: %w", dstPath, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("close %s: %w", dstPath, err)
	}
	return l.URL + path.Join(rel, name), nil
}

// Delete removes the file behind ref. References outside this store are ignored.
func (l *Local) Delete(ref string) error {
	rel, ok := strings.CutPrefix(ref, l.URL)
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(l.Root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
