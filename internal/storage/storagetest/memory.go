// Package storagetest provides in-memory stores for tests.
package storagetest

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"resume-intake/internal/storage"
)

type shortlistEntry struct {
	seq     int64
	addedAt time.Time
}

// MemoryStore mimics the PostgreSQL candidate store.
// Setting Err makes every call fail with it.
type MemoryStore struct {
	mu         sync.Mutex
	nextID     int64
	nextSeq    int64
	candidates map[int64]storage.Candidate
	shortlist  map[int64]shortlistEntry

	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		candidates: map[int64]storage.Candidate{},
		shortlist:  map[int64]shortlistEntry{},
	}
}

func (m *MemoryStore) InsertCandidate(_ context.Context, c *storage.Candidate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = time.Now()
	m.candidates[c.ID] = *c
	return c.ID, nil
}

func (m *MemoryStore) ListCandidates(context.Context) ([]storage.CandidateSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.summaries(m.idsDesc(), nil), nil
}

func (m *MemoryStore) SearchCandidates(_ context.Context, query string) ([]storage.CandidateSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	q := strings.ToLower(query)
	return m.summaries(m.idsDesc(), func(c storage.Candidate) bool {
		return strings.Contains(strings.ToLower(c.ResumeText), q)
	}), nil
}

func (m *MemoryStore) AllCandidates(context.Context) ([]storage.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	ids := m.idsDesc()
	res := make([]storage.Candidate, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		res = append(res, m.candidates[ids[i]])
	}
	return res, nil
}

func (m *MemoryStore) GetCandidate(_ context.Context, id int64) (*storage.CandidateDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.candidates[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	d := &storage.CandidateDetail{CandidateSummary: c.ToSummary(), ResumeText: c.ResumeText}
	if e, ok := m.shortlist[id]; ok {
		added := e.addedAt
		d.Shortlisted = true
		d.AddedAt = &added
	}
	return d, nil
}

func (m *MemoryStore) DeleteCandidate(_ context.Context, id int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	c, ok := m.candidates[id]
	delete(m.shortlist, id)
	delete(m.candidates, id)
	if !ok {
		return "", nil
	}
	return c.Filename, nil
}

func (m *MemoryStore) AddToShortlist(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.candidates[id]; !ok {
		return nil
	}
	if _, ok := m.shortlist[id]; ok {
		return nil
	}
	m.nextSeq++
	m.shortlist[id] = shortlistEntry{seq: m.nextSeq, addedAt: time.Now()}
	return nil
}

func (m *MemoryStore) ListShortlist(context.Context) ([]storage.CandidateSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]int64, 0, len(m.shortlist))
	for id := range m.shortlist {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return m.shortlist[ids[i]].seq > m.shortlist[ids[j]].seq
	})
	return m.summaries(ids, nil), nil
}

func (m *MemoryStore) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Err
}

// ShortlistLen returns the number of shortlist rows.
func (m *MemoryStore) ShortlistLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.shortlist)
}

// Len returns the number of stored candidates.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.candidates)
}

func (m *MemoryStore) idsDesc() []int64 {
	ids := make([]int64, 0, len(m.candidates))
	for id := range m.candidates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return ids
}

func (m *MemoryStore) summaries(ids []int64, keep func(storage.Candidate) bool) []storage.CandidateSummary {
	res := []storage.CandidateSummary{}
	for _, id := range ids {
		c := m.candidates[id]
		if keep != nil && !keep(c) {
			continue
		}
		res = append(res, c.ToSummary())
	}
	return res
}

// MemoryFileStore keeps files in a map.
// Setting Err makes Save fail with it.
type MemoryFileStore struct {
	mu    sync.Mutex
	files map[string][]byte

	Err error
}

func NewMemoryFileStore() *MemoryFileStore {
	return &MemoryFileStore{files: map[string][]byte{}}
}

func (f *MemoryFileStore) Save(_ context.Context, name string, data []byte) error {
	if err := storage.ValidateFileName(name); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.files[name] = bytes.Clone(data)
	return nil
}

func (f *MemoryFileStore) Open(_ context.Context, name string) (io.ReadSeekCloser, error) {
	if err := storage.ValidateFileName(name); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[name]
	if !ok {
		return nil, storage.ErrFileNotFound
	}
	return nopCloser{bytes.NewReader(data)}, nil
}

func (f *MemoryFileStore) Remove(_ context.Context, name string) error {
	if err := storage.ValidateFileName(name); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, name)
	return nil
}

// Names returns the stored file names in no particular order.
func (f *MemoryFileStore) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.files))
	for name := range f.files {
		names = append(names, name)
	}
	return names
}

type nopCloser struct {
	io.ReadSeeker
}

func (nopCloser) Close() error { return nil }
