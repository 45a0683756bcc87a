package minio

import (
	"testing"

	"github.com/pribylovaa/go-video-hosting/internal/config"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
	"github.com/stretchr/testify/require"
)

func testBlobStorage() *BlobStorage {
	return &BlobStorage{cfg: &config.Config{
		Media: config.MediaConfig{
			MaxVideoSizeBytes: 100,
			MaxImageSizeBytes: 10,
			VideoContentTypes: []string{"video/mp4", "video/webm"},
			ImageContentTypes: []string{"image/jpeg", "image/png", "image/webp"},
		},
	}}
}

func TestLimitsFor(t *testing.T) {
	s := testBlobStorage()

	allow, maxSize, ok := s.limitsFor(storage.MediaVideo)
	require.True(t, ok)
	require.Equal(t, int64(100), maxSize)
	require.Contains(t, allow, "video/mp4")

	for _, kind := range []storage.MediaKind{storage.MediaThumbnail, storage.MediaAvatar, storage.MediaCover} {
		allow, maxSize, ok = s.limitsFor(kind)
		require.True(t, ok)
		require.Equal(t, int64(10), maxSize)
		require.Contains(t, allow, "image/png")
	}

	_, _, ok = s.limitsFor(storage.MediaKind("bogus"))
	require.False(t, ok)
}

func TestKeyPrefix(t *testing.T) {
	require.Equal(t, "videos/abc/", keyPrefix(storage.MediaVideo, "abc"))
	require.Equal(t, "avatars/u1/", keyPrefix(storage.MediaAvatar, "u1"))
}

func TestExtByContentType(t *testing.T) {
	require.Equal(t, ".mp4", extByContentType("video/mp4"))
	require.Equal(t, ".webp", extByContentType("image/webp"))
	require.Equal(t, "", extByContentType("application/octet-stream"))
}

func TestIsAllowedContentType(t *testing.T) {
	allow := []string{"image/png", "image/jpeg"}

	require.True(t, isAllowedContentType(allow, "image/png"))
	require.False(t, isAllowedContentType(allow, "image/gif"))
	require.False(t, isAllowedContentType(nil, "image/png"))
}
