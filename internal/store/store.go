package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// DefaultDir is the directory used when the caller supplies none.
const DefaultDir = "Fetched_Images"

// ErrPermission indicates the directory or a file in it cannot be accessed.
var ErrPermission = errors.New("store: permission denied")

// Store writes fetched content into a local directory.
type Store struct {
	dir    string
	bucket *blob.Bucket
}

// Open ensures dir exists, creating missing parent segments, and opens it as
// a bucket. An empty dir selects DefaultDir. A pre-existing directory is not
// an error.
func Open(dir string) (*Store, error) {
	if dir == "" {
		dir = DefaultDir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("create directory %s: %w", dir, ErrPermission)
		}
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		Metadata: fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, fmt.Errorf("open directory %s: %w", dir, err)
	}

	return &Store{dir: dir, bucket: bucket}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Exists reports whether a file with the given name is already present.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := s.bucket.Exists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", name, classify(err))
	}
	return ok, nil
}

// NewWriter opens a writer for name. The file only becomes visible under
// name once the writer is closed successfully; cancel the writer's context
// before Close to abandon the write without leaving a partial file.
func (s *Store) NewWriter(ctx context.Context, name, contentType string) (*blob.Writer, error) {
	w, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s for writing: %w", name, classify(err))
	}
	return w, nil
}

// Abs returns the absolute path of name inside the store directory. Falls
// back to the joined relative path if the working directory is unavailable.
func (s *Store) Abs(name string) string {
	p := filepath.Join(s.dir, name)
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}

// classify maps storage errors onto the package error taxonomy.
func classify(err error) error {
	if gcerrors.Code(err) == gcerrors.PermissionDenied || errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %v", ErrPermission, err)
	}
	return err
}
