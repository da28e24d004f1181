package service

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/repository"
	"gorm.io/gorm"
)

// fakeStorage records bucket operations in memory.
type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (f *fakeStorage) Upload(key string, reader io.Reader) error {
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return err
	}
	f.uploaded = append(f.uploaded, key)
	return nil
}

func (f *fakeStorage) Delete(key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename)},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func newTestPhotoService(t *testing.T) (*PhotoService, *fakeStorage, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	store := &fakeStorage{}
	svc := NewPhotoService(
		repository.NewPhotoRepository(db),
		repository.NewAlbumRepository(db),
		store,
	)
	return svc, store, db
}

func TestUploadPhoto(t *testing.T) {
	svc, store, db := newTestPhotoService(t)
	require.NoError(t, db.Create(&models.Album{Title: "Tournoi"}).Error)

	file := makeFileHeader(t, "finale.jpg", "image/jpeg", []byte("jpeg-bytes"))

	photo, err := svc.UploadPhoto(1, file)
	require.NoError(t, err)

	assert.Equal(t, uint(1), photo.AlbumID)
	assert.Equal(t, "finale.jpg", photo.Title)

	// Stored under a randomized name that keeps the extension.
	require.Len(t, store.uploaded, 1)
	key := store.uploaded[0]
	assert.True(t, strings.HasPrefix(key, "photos/"))
	assert.Equal(t, ".jpg", filepath.Ext(key))
	assert.NotContains(t, key, "finale")
	assert.Equal(t, "https://cdn.test/"+key, photo.ImageURL)
	assert.Empty(t, store.deleted)
}

func TestUploadPhotoRejectsUnknownAlbum(t *testing.T) {
	svc, store, _ := newTestPhotoService(t)

	file := makeFileHeader(t, "finale.jpg", "image/jpeg", []byte("jpeg-bytes"))

	_, err := svc.UploadPhoto(42, file)
	assert.EqualError(t, err, "album not found")
	assert.Empty(t, store.uploaded)
}

func TestUploadPhotoRejectsNonImage(t *testing.T) {
	svc, store, db := newTestPhotoService(t)
	require.NoError(t, db.Create(&models.Album{Title: "Tournoi"}).Error)

	file := makeFileHeader(t, "notes.txt", "text/plain", []byte("hello"))

	_, err := svc.UploadPhoto(1, file)
	assert.EqualError(t, err, "invalid file type")
	assert.Empty(t, store.uploaded)
}

func TestUploadPhotoCleansUpOnInsertFailure(t *testing.T) {
	svc, store, db := newTestPhotoService(t)
	require.NoError(t, db.Create(&models.Album{Title: "Tournoi"}).Error)

	// Force the insert to fail after the object is uploaded.
	require.NoError(t, db.Migrator().DropTable(&models.Photo{}))

	file := makeFileHeader(t, "finale.jpg", "image/jpeg", []byte("jpeg-bytes"))

	_, err := svc.UploadPhoto(1, file)
	require.Error(t, err)
	require.Len(t, store.uploaded, 1)
	assert.Equal(t, store.uploaded, store.deleted)
}
