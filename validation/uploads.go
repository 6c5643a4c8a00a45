// Package validation holds the local input checks that run before anything
// reaches the generation backend.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"catwallpaper/config"
)

// ValidationError is a local, recoverable input error. It never reaches the backend.
type ValidationError struct {
	Message string
	// File names the offending upload, when the error is about a single file
	File string
}

func (e *ValidationError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.File)
	}
	return e.Message
}

// Validation messages
const (
	MsgNoFiles            = "at least one file required"
	MsgTooManyFiles       = "too many files"
	MsgUnsupportedType    = "unsupported file type"
	MsgFileTooLarge       = "file too large"
	MsgUnsupportedAspect  = "unsupported aspect ratio"
	MsgImageCountOutRange = "image count out of range"
)

// UploadFile is one photo selected by the user
type UploadFile struct {
	Name string // display name, used for the extension check
	Path string // local path the bytes are read from
	Size int64  // size in bytes
}

// UploadSet is the ordered selection of photos sent with one generation request
type UploadSet []UploadFile

// Names returns the file names in selection order
func (s UploadSet) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Extension returns the lower-cased text after the last '.' of name, or "" when there is no dot
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// ValidateUploadSet checks a candidate selection. Rules run in order and the first failure wins:
// count, then per-file extension, then per-file size.
func ValidateUploadSet(files UploadSet) error {
	if len(files) == 0 {
		return &ValidationError{Message: MsgNoFiles}
	}
	if len(files) > config.MaxUploadCount {
		return &ValidationError{Message: MsgTooManyFiles}
	}

	for _, f := range files {
		if !config.IsAllowedExtension(Extension(f.Name)) {
			return &ValidationError{Message: MsgUnsupportedType, File: f.Name}
		}
	}

	for _, f := range files {
		if f.Size > config.MaxFileSizeBytes {
			return &ValidationError{Message: MsgFileTooLarge, File: f.Name}
		}
	}

	return nil
}

// NewUploadSet stats local paths into an UploadSet. It does not validate the result.
func NewUploadSet(paths []string) (UploadSet, error) {
	set := make(UploadSet, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", p)
		}
		set = append(set, UploadFile{
			Name: filepath.Base(p),
			Path: p,
			Size: info.Size(),
		})
	}
	return set, nil
}
