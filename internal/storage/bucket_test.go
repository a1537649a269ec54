package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBucket(t *testing.T) BucketI {
	t.Helper()
	bucket := NewBucket(t.TempDir(), "property_images", "http://localhost:8080")
	require.NoError(t, bucket.Ensure())
	return bucket
}

func TestBucketUploadListRemove(t *testing.T) {
	bucket := newTestBucket(t)

	require.NoError(t, bucket.Upload("user-1/photo.jpg", strings.NewReader("jpeg bytes")))
	require.NoError(t, bucket.Upload("user-1/thumb_photo.jpg", strings.NewReader("thumb bytes")))
	require.NoError(t, bucket.Upload("avatars/user-1/me.png", strings.NewReader("png bytes")))

	paths, err := bucket.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"user-1/photo.jpg",
		"user-1/thumb_photo.jpg",
		"avatars/user-1/me.png",
	}, paths)

	require.NoError(t, bucket.Remove("user-1/photo.jpg"))
	paths, err = bucket.List()
	require.NoError(t, err)
	assert.Len(t, paths, 2)
	assert.NotContains(t, paths, "user-1/photo.jpg")
}

func TestBucketUploadOverwrites(t *testing.T) {
	mediaDir := t.TempDir()
	bucket := NewBucket(mediaDir, "property_images", "http://localhost:8080")
	require.NoError(t, bucket.Ensure())

	require.NoError(t, bucket.Upload("a/object.jpg", strings.NewReader("first")))
	require.NoError(t, bucket.Upload("a/object.jpg", strings.NewReader("second")))

	data, err := os.ReadFile(filepath.Join(mediaDir, "property_images", "a", "object.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestBucketPublicURL(t *testing.T) {
	bucket := NewBucket("./media", "property_images", "http://localhost:8080")
	url := bucket.PublicURL("user-1/photo.jpg")
	assert.Equal(t, "http://localhost:8080/media/property_images/user-1/photo.jpg", url)
}
