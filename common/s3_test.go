package common

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeBucket is a minimal path-style S3 endpoint supporting HEAD and PUT
type fakeBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	puts    int
}

func (b *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch r.Method {
	case http.MethodHead:
		if _, ok := b.objects[r.URL.Path]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		b.objects[r.URL.Path] = body
		b.types[r.URL.Path] = r.Header.Get("Content-Type")
		b.puts++
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newFakeS3(t *testing.T) (*S3, *fakeBucket) {
	t.Helper()
	bucket := &fakeBucket{objects: map[string][]byte{}, types: map[string]string{}}
	srv := httptest.NewServer(bucket)
	t.Cleanup(srv.Close)

	s, err := NewS3(context.Background(), S3Config{
		Region:       "us-east-1",
		Endpoint:     srv.URL,
		UsePathStyle: true,
		Anonymous:    true,
	})
	require.NoError(t, err)
	return s, bucket
}

func TestS3MirrorUploadsOnce(t *testing.T) {
	s, bucket := newFakeS3(t)
	m := NewS3Mirror(s, "wallpapers", "/dev/")
	require.Equal(t, "dev/images/j1/image-1.png", m.ObjectKey("images/j1/image-1.png"))

	ctx := context.Background()
	require.NoError(t, m.Mirror(ctx, "images/j1/image-1.png", []byte("png-bytes"), "image/png"))

	path := "/wallpapers/dev/images/j1/image-1.png"
	require.Contains(t, string(bucket.objects[path]), "png-bytes")
	require.Equal(t, "image/png", bucket.types[path])

	exists, err := s.Exists(ctx, "wallpapers", "dev/images/j1/image-1.png")
	require.NoError(t, err)
	require.True(t, exists)

	// Second mirror of the same key is skipped
	require.NoError(t, m.Mirror(ctx, "images/j1/image-1.png", []byte("png-bytes"), "image/png"))
	require.Equal(t, 1, bucket.puts)
}

func TestS3ExistsMissing(t *testing.T) {
	s, _ := newFakeS3(t)
	exists, err := s.Exists(context.Background(), "wallpapers", "videos/none/video.mp4")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestNewS3MirrorWithoutPrefix(t *testing.T) {
	m := NewS3Mirror(nil, "b", "")
	require.Equal(t, "videos/j1/video.mp4", m.ObjectKey("/videos/j1/video.mp4"))
}
