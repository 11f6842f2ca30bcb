package adapter

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hugohenrick/virtual-assistant/internal/domain/email"
	"github.com/hugohenrick/virtual-assistant/internal/domain/file"
	"github.com/hugohenrick/virtual-assistant/internal/domain/history"
)

var errDatabaseDown = errors.New("database down")

type memoryFileRepo struct {
	mu        sync.Mutex
	files     map[string]*file.File
	nextID    int64
	createErr error
	findErr   error
}

func newMemoryFileRepo() *memoryFileRepo {
	return &memoryFileRepo{files: map[string]*file.File{}}
}

func (r *memoryFileRepo) Create(_ context.Context, f *file.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.files[f.Filename]; ok {
		return file.ErrAlreadyExists
	}
	r.nextID++
	f.ID = r.nextID
	f.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	f.UpdatedAt = f.CreatedAt
	cp := *f
	r.files[f.Filename] = &cp
	return nil
}

func (r *memoryFileRepo) FindByFilename(_ context.Context, filename string) (*file.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	f, ok := r.files[filename]
	if !ok {
		return nil, file.ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *memoryFileRepo) UpdateSize(_ context.Context, filename string, size int64) (*file.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[filename]
	if !ok {
		return nil, file.ErrNotFound
	}
	f.Size = size
	f.UpdatedAt = time.Now()
	cp := *f
	return &cp, nil
}

func (r *memoryFileRepo) Delete(_ context.Context, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[filename]; !ok {
		return file.ErrNotFound
	}
	delete(r.files, filename)
	return nil
}

func (r *memoryFileRepo) DeleteMany(_ context.Context, filenames []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, name := range filenames {
		if _, ok := r.files[name]; ok {
			delete(r.files, name)
			n++
		}
	}
	return n, nil
}

func (r *memoryFileRepo) Search(_ context.Context, query string) ([]*file.File, error) {
	all, _ := r.List(context.Background())
	out := make([]*file.File, 0)
	for _, f := range all {
		if strings.Contains(strings.ToLower(f.Filename), strings.ToLower(query)) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memoryFileRepo) List(_ context.Context) ([]*file.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*file.File, 0, len(r.files))
	for _, f := range r.files {
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryFileRepo) Stats(_ context.Context) (*file.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &file.Stats{Total: int64(len(r.files))}
	for _, f := range r.files {
		s.TotalSize += f.Size
	}
	return s, nil
}

func (r *memoryFileRepo) has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.files[name]
	return ok
}

type memoryEmailRepo struct {
	emails []*email.Email
	err    error
}

func (r *memoryEmailRepo) Create(_ context.Context, e *email.Email) error {
	if r.err != nil {
		return r.err
	}
	e.ID = int64(len(r.emails) + 1)
	r.emails = append(r.emails, e)
	return nil
}

func (r *memoryEmailRepo) List(_ context.Context, limit int) ([]*email.Email, error) {
	return r.emails, nil
}

func (r *memoryEmailRepo) Stats(_ context.Context) (*email.Stats, error) {
	return &email.Stats{Total: int64(len(r.emails))}, nil
}

type fakeSender struct {
	err  error
	sent []string
}

func (s *fakeSender) Send(_ context.Context, to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

type memoryHistoryRepo struct {
	entries []*history.Entry
}

func (r *memoryHistoryRepo) Create(_ context.Context, e *history.Entry) error {
	e.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, e)
	return nil
}

func (r *memoryHistoryRepo) List(_ context.Context, _ history.Filter) ([]*history.Entry, error) {
	return r.entries, nil
}

func (r *memoryHistoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.entries)), nil
}

func (r *memoryHistoryRepo) Delete(_ context.Context, _ int64) (bool, error) { return false, nil }
func (r *memoryHistoryRepo) Clear(_ context.Context) error                  { return nil }
func (r *memoryHistoryRepo) Stats(_ context.Context) (*history.Stats, error) {
	return &history.Stats{}, nil
}
