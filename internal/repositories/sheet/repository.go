// Package sheetrepo defines persistence for character sheets
package sheetrepo

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetrepomock github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Repository stores character sheets
type Repository interface {
	// Create stores a new sheet
	// Returns errors.InvalidArgument for a nil sheet or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a sheet by ID
	// Returns errors.NotFound if the sheet doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing sheet
	// Returns errors.NotFound if the sheet doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a sheet
	// Returns errors.NotFound if the sheet doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a sheet
type CreateInput struct {
	Sheet *sheet.Sheet
}

// CreateOutput defines the output for creating a sheet
type CreateOutput struct {
	Sheet *sheet.Sheet
}

// GetInput defines the input for getting a sheet
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a sheet
type GetOutput struct {
	Sheet *sheet.Sheet
}

// UpdateInput defines the input for updating a sheet
type UpdateInput struct {
	Sheet *sheet.Sheet
}

// UpdateOutput defines the output for updating a sheet
type UpdateOutput struct {
	Sheet *sheet.Sheet
}

// DeleteInput defines the input for deleting a sheet
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a sheet
type DeleteOutput struct{}
