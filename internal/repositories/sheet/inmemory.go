package sheetrepo

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// InMemoryRepository implements Repository with a map. Stored sheets are
// copied on the way in and out.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*sheet.Sheet
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*sheet.Sheet),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new sheet
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSheet(input.Sheet); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Sheet.ID]; exists {
		return nil, errors.AlreadyExists("sheet already exists").WithMeta("sheet_id", input.Sheet.ID)
	}
	r.store[input.Sheet.ID] = input.Sheet.Clone()

	return &CreateOutput{Sheet: input.Sheet.Clone()}, nil
}

// Get retrieves a sheet by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFound("sheet not found").WithMeta("sheet_id", input.ID)
	}

	return &GetOutput{Sheet: s.Clone()}, nil
}

// Update replaces an existing sheet
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSheet(input.Sheet); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Sheet.ID]; !exists {
		return nil, errors.NotFound("sheet not found").WithMeta("sheet_id", input.Sheet.ID)
	}
	r.store[input.Sheet.ID] = input.Sheet.Clone()

	return &UpdateOutput{Sheet: input.Sheet.Clone()}, nil
}

// Delete removes a sheet
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFound("sheet not found").WithMeta("sheet_id", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}
