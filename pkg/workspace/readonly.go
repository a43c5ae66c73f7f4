package workspace

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

var _ Files = (*ReadOnlyFiles)(nil)

// ReadOnlyFiles passes reads through and records writes without performing them
type ReadOnlyFiles struct {
	Files

	mu      sync.Mutex
	pending map[string][]byte
	order   []string
}

// ReadOnly wraps files so that WriteFile never reaches it
func ReadOnly(files Files) *ReadOnlyFiles {
	return &ReadOnlyFiles{
		Files:   files,
		pending: make(map[string][]byte),
	}
}

func (r *ReadOnlyFiles) WriteFile(ctx context.Context, path string, content []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pending[path]; !ok {
		r.order = append(r.order, path)
	}
	r.pending[path] = append([]byte(nil), content...)
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("write suppressed")
	return nil
}

// Pending returns the paths that would have been written, in first-write order
func (r *ReadOnlyFiles) Pending() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// PendingContent returns the content that would have been written to path
func (r *ReadOnlyFiles) PendingContent(path string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	content, ok := r.pending[path]
	return content, ok
}
