package storage

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"

	"catwallpaper/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Kind is a top-level asset directory
type Kind string

const (
	KindUploads Kind = "uploads"
	KindImages  Kind = "images"
	KindVideos  Kind = "videos"
)

// Kinds lists every asset directory created at startup
var Kinds = []Kind{KindUploads, KindImages, KindVideos}

// Mirror copies stored assets to a secondary location
type Mirror interface {
	Mirror(ctx context.Context, key string, data []byte, contentType string) error
}

// Assets lays out job files as {kind}/{job_id}/{name} on a FileStore and
// optionally mirrors every write.
type Assets struct {
	files  *FileStore
	mirror Mirror
	logger zerolog.Logger
}

// NewAssets creates the asset directories under files. mirror may be nil.
func NewAssets(files *FileStore, mirror Mirror, logger zerolog.Logger) (*Assets, error) {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	if err := files.EnsureDirs(names...); err != nil {
		return nil, err
	}
	return &Assets{
		files:  files,
		mirror: mirror,
		logger: logger.With().Str("component", "assets").Logger(),
	}, nil
}

// Root returns the directory served under the static prefix
func (a *Assets) Root() string {
	return a.files.BasePath()
}

// Save stores data and returns its public locator (/static/{kind}/{job}/{name})
func (a *Assets) Save(ctx context.Context, kind Kind, jobID, name string, data []byte) (string, error) {
	key, err := a.files.Write(ctx, Key(kind, jobID, name), data)
	if err != nil {
		return "", err
	}

	if a.mirror != nil {
		contentType := mime.TypeByExtension(path.Ext(name))
		if err := a.mirror.Mirror(ctx, key, data, contentType); err != nil {
			a.logger.Warn().Err(err).Str("key", key).Msg("asset mirror failed")
		}
	}
	return Locator(key), nil
}

// Load reads a stored asset
func (a *Assets) Load(ctx context.Context, kind Kind, jobID, name string) ([]byte, error) {
	return a.files.Read(ctx, Key(kind, jobID, name))
}

// NewJobID returns a fresh job identifier (uuid4 hex)
func NewJobID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Key builds the storage key for an asset
func Key(kind Kind, jobID, name string) string {
	return path.Join(string(kind), jobID, name)
}

// Locator turns a storage key into its public path
func Locator(key string) string {
	return config.StaticPrefix + "/" + strings.TrimLeft(key, "/")
}

// ParseLocator splits a locator (relative or absolute URL) of the form
// /static/{kind}/{job_id}/{name}.
func ParseLocator(locator string) (Kind, string, string, error) {
	u, err := url.Parse(strings.TrimSpace(locator))
	if err != nil {
		return "", "", "", fmt.Errorf("invalid locator %q: %w", locator, err)
	}
	rest, ok := strings.CutPrefix(path.Clean("/"+u.Path), config.StaticPrefix+"/")
	if !ok {
		return "", "", "", fmt.Errorf("locator %q is not under %s", locator, config.StaticPrefix)
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("locator %q must name kind, job and file", locator)
	}
	return Kind(parts[0]), parts[1], parts[2], nil
}
