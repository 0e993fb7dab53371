package project

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProjectExists   = errors.New("project with this name already exists")
	ErrProjectNotFound = errors.New("project not found")
)

type Project struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Fields      []string          `json:"fields"`
	Priority    int32             `json:"priority,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Storage persists accepted projects.
type Storage interface {
	CreateProject(ctx context.Context, p Project) error
	GetProject(ctx context.Context, id uuid.UUID) (Project, error)
}

// NewProject builds a Project from a request that passed validation.
func NewProject(req CreateProjectRequest, now time.Time) Project {
	p := Project{
		ID:        uuid.New(),
		Name:      *req.Name,
		Fields:    append([]string{}, req.Options.Fields...),
		Tags:      req.Options.Tags,
		CreatedAt: now.UTC(),
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Options.Priority != nil {
		p.Priority = *req.Options.Priority
	}
	return p
}

// MemoryStorage is a Storage kept in process memory. Names are unique
// case-insensitively.
type MemoryStorage struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]Project
	byName map[string]uuid.UUID
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:   make(map[uuid.UUID]Project),
		byName: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStorage) CreateProject(_ context.Context, p Project) error {
	key := strings.ToLower(p.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[key]; ok {
		return ErrProjectExists
	}
	s.byID[p.ID] = p
	s.byName[key] = p.ID
	return nil
}

func (s *MemoryStorage) GetProject(_ context.Context, id uuid.UUID) (Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return p, nil
}
