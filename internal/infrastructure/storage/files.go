package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Uploads manages the local directory that attachment files are written to.
// Stored files are referenced by path in message payloads and served
// statically; nothing else about them is persisted.
type Uploads struct {
	dir    string
	logger *zap.SugaredLogger
}

// StoredFile describes a file after it has been written to disk.
type StoredFile struct {
	Name         string `json:"filename"`
	OriginalName string `json:"originalname"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
}

func NewUploads(dir string, logger *zap.SugaredLogger) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Uploads{dir: dir, logger: logger}, nil
}

func (u *Uploads) Dir() string { return u.dir }

// Save streams src to a new file named file-<unixms>-<random><ext>, keeping
// the original extension so served files keep their content type.
func (u *Uploads) Save(ctx context.Context, originalName string, src io.Reader) (*StoredFile, error) {
	name := fmt.Sprintf("file-%d-%d%s",
		time.Now().UnixMilli(), rand.IntN(1_000_000_000), filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(dst.Name())
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &StoredFile{
		Name:         name,
		OriginalName: originalName,
		Path:         "/uploads/" + name,
		Size:         size,
	}, nil
}

// DeleteAll removes every file in the uploads directory. Removals run
// concurrently and are joined before returning; individual failures are
// collected rather than aborting the batch. The error return is only non-nil
// when the directory itself cannot be read.
func (u *Uploads) DeleteAll(ctx context.Context) (deleted []string, failed []string, err error) {
	entries, err := os.ReadDir(u.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read uploads dir: %w", err)
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			removeErr := os.Remove(filepath.Join(u.dir, name))
			mu.Lock()
			defer mu.Unlock()
			if removeErr != nil {
				u.logger.Errorw("failed to delete upload", "file", name, "error", removeErr)
				failed = append(failed, name)
			} else {
				deleted = append(deleted, name)
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(deleted)
	sort.Strings(failed)

	return deleted, failed, nil
}
