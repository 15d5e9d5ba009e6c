// Package blob stores plant images on the local filesystem. Paths handed
// out and accepted by Store are slash-separated and relative to the root
// directory, e.g. "temp_submissions/submission_<uuid>.jpg".
package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/SillyFizy/grow/internal/config"
	"github.com/SillyFizy/grow/internal/domain"
)

// ErrNotImage is returned by SaveTemp when the upload is not an image.
var ErrNotImage = errors.New("upload is not an image")

// Object describes a stored blob.
type Object struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Store is a filesystem-backed blob store with a temporary area for
// pending submissions and a permanent area for catalog plants.
type Store struct {
	root      string
	temp      string
	permanent string
	maxBytes  int64
}

// New creates the root, temporary and permanent directories if missing.
func New(cfg config.BlobConfig) (*Store, error) {
	s := &Store{
		root:      cfg.RootDir,
		temp:      cfg.TempPrefix,
		permanent: cfg.PermanentPrefix,
		maxBytes:  cfg.MaxUploadBytes,
	}
	for _, dir := range []string{s.temp, s.permanent} {
		if err := os.MkdirAll(filepath.Join(s.root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("blob: create %s: %w", dir, err)
		}
	}
	return s, nil
}

// TempPrefix returns the directory name of the temporary area.
func (s *Store) TempPrefix() string { return s.temp }

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// SaveTemp stores an uploaded image in the temporary area under a fresh
// name and returns its path. The content is sniffed; anything that is not
// image/* is refused with ErrNotImage. Uploads larger than the configured
// limit fail with domain.ErrValidation.
func (s *Store) SaveTemp(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	limited := io.LimitReader(r, s.maxBytes+1)

	// Sniff the header, then replay it in front of the remaining stream.
	header := make([]byte, 3072)
	n, err := io.ReadFull(limited, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("blob: read upload: %w", err)
	}
	header = header[:n]

	mt := mimetype.Detect(header)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("blob: %s: %w", mt.String(), ErrNotImage)
	}

	rel := path.Join(s.temp, "submission_"+uuid.NewString()+mt.Extension())
	written, err := s.writeAtomic(rel, io.MultiReader(bytes.NewReader(header), limited))
	if err != nil {
		return "", err
	}
	if written > s.maxBytes {
		_ = os.Remove(s.abs(rel))
		return "", fmt.Errorf("blob: upload exceeds %d bytes: %w", s.maxBytes, domain.ErrValidation)
	}

	return rel, nil
}

// writeAtomic writes r to rel through a sibling temp file and a rename, so
// readers never observe a partial blob.
func (s *Store) writeAtomic(rel string, r io.Reader) (int64, error) {
	dst := s.abs(rel)
	f, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("blob: create: %w", err)
	}
	tmp := f.Name()

	written, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("blob: write %s: %w", rel, err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("blob: commit %s: %w", rel, err)
	}
	return written, nil
}

// PermanentPath returns where a temporary blob lands once it is attached
// to plantID. The temporary name is kept so the origin stays traceable.
func (s *Store) PermanentPath(tempPath string, plantID int64) string {
	return path.Join(s.permanent, fmt.Sprintf("plant_%d_%s", plantID, path.Base(tempPath)))
}

// MovePermanent moves a temporary blob into the permanent area for plantID
// and returns the new path. The temporary blob no longer exists afterwards.
func (s *Store) MovePermanent(ctx context.Context, tempPath string, plantID int64) (string, error) {
	if !s.inArea(tempPath, s.temp) {
		return "", fmt.Errorf("blob: %q is not a temporary path: %w", tempPath, domain.ErrValidation)
	}
	final := s.PermanentPath(tempPath, plantID)
	if err := s.Move(ctx, tempPath, final); err != nil {
		return "", err
	}
	return final, nil
}

// Move renames a blob. The destination is replaced if it exists.
func (s *Store) Move(ctx context.Context, from, to string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src, err := s.resolve(from)
	if err != nil {
		return err
	}
	dst, err := s.resolve(to)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("blob: move %s: %w", from, err)
	}
	if err := os.Rename(src, dst); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("blob %s: %w", from, domain.ErrNotFound)
		}
		return fmt.Errorf("blob: move %s to %s: %w", from, to, err)
	}
	return nil
}

// Delete removes a blob. Deleting a missing blob is not an error.
func (s *Store) Delete(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	abs, err := s.resolve(p)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("blob: delete %s: %w", p, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Exists reports whether a blob is present at p.
func (s *Store) Exists(ctx context.Context, p string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	abs, err := s.resolve(p)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(abs)
	switch {
	case err == nil:
		return info.Mode().IsRegular(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("blob: stat %s: %w", p, err)
	}
}

// Open returns a reader for the blob at p.
func (s *Store) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	abs, err := s.resolve(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("blob %s: %w", p, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("blob: open %s: %w", p, err)
	}
	return f, nil
}

// ListTemp returns every blob in the temporary area.
func (s *Store) ListTemp(ctx context.Context) ([]Object, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, s.temp))
	if err != nil {
		return nil, fmt.Errorf("blob: list %s: %w", s.temp, err)
	}

	out := make([]Object, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("blob: stat %s: %w", e.Name(), err)
		}
		out = append(out, Object{
			Path:    path.Join(s.temp, e.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Paths
// ---------------------------------------------------------------------------

// resolve maps a relative blob path to an absolute filesystem path,
// refusing anything that would escape the root.
func (s *Store) resolve(p string) (string, error) {
	clean := path.Clean(p)
	if p == "" || path.IsAbs(p) || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("blob: invalid path %q: %w", p, domain.ErrValidation)
	}
	return s.abs(clean), nil
}

func (s *Store) abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

func (s *Store) inArea(p, area string) bool {
	return strings.HasPrefix(path.Clean(p), area+"/")
}
