package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestLocal_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	l := NewLocal(root, "/media")
	l.now = func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) }

	ref, err := l.Save(context.Background(), fileHeader(t, "Cat.PNG", []byte("data")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/media/posts/2024/03/09/"), ref)
	assert.True(t, strings.HasSuffix(ref, ".png"), ref)

	onDisk := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(ref, "/media/")))
	got, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))

	require.NoError(t, l.Delete(ref))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, l.Delete(ref), "deleting twice is fine")
	assert.NoError(t, l.Delete("/elsewhere/x.png"))
	assert.NoError(t, l.Delete("/media/../../etc/passwd"))
}

func TestLocal_SaveHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLocal(t.TempDir(), "/media/").Save(ctx, fileHeader(t, "a.gif", []byte("x")))
	assert.ErrorIs(t, err, context.Canceled)
}
