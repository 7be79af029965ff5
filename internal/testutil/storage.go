package testutil

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"uatf-curricular/backend/pkg/storage"
)

// ErrInjected failure returned by MemStorage when a Fail flag is set
var ErrInjected = errors.New("injected storage failure")

// MemStorage in-memory storage.Storage with failure injection
type MemStorage struct {
	mu      sync.Mutex
	objects map[string][]byte

	FailPut    bool
	FailGet    bool
	FailDelete bool
}

// NewMemStorage creates an empty store
func NewMemStorage() *MemStorage {
	return &MemStorage{objects: make(map[string][]byte)}
}

func (s *MemStorage) Put(_ context.Context, r io.Reader, key string) (string, error) {
	if s.FailPut {
		return "", ErrInjected
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return key, nil
}

func (s *MemStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	if s.FailGet {
		return nil, ErrInjected
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *MemStorage) Delete(_ context.Context, key string) error {
	if s.FailDelete {
		return ErrInjected
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// Has reports whether key is stored
func (s *MemStorage) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

// Len number of stored objects
func (s *MemStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
