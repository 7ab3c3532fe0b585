package sheetrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// Key pattern: sheet:{id}
	sheetKeyPrefix = "sheet:"

	errSheetNil     = "sheet cannot be nil"
	errSheetIDEmpty = "sheet ID cannot be empty"
)

// RedisConfig holds the dependencies of the Redis repository
type RedisConfig struct {
	Client redisclient.Client

	// TTL expires sheets that are not written for this long. Zero keeps them
	// forever.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed sheet repository
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new sheet, refusing to overwrite an existing ID
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSheet(input.Sheet); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	created, err := r.client.SetNX(ctx, r.buildKey(input.Sheet.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store sheet in Redis")
	}
	if !created {
		return nil, errors.AlreadyExists("sheet already exists").WithMeta("sheet_id", input.Sheet.ID)
	}

	return &CreateOutput{Sheet: input.Sheet.Clone()}, nil
}

// Get retrieves a sheet by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("sheet not found").WithMeta("sheet_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get sheet from Redis")
	}

	var s sheet.Sheet
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal sheet")
	}

	return &GetOutput{Sheet: &s}, nil
}

// Update replaces an existing sheet and refreshes its TTL
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSheet(input.Sheet); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	updated, err := r.client.SetXX(ctx, r.buildKey(input.Sheet.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update sheet in Redis")
	}
	if !updated {
		return nil, errors.NotFound("sheet not found").WithMeta("sheet_id", input.Sheet.ID)
	}

	return &UpdateOutput{Sheet: input.Sheet.Clone()}, nil
}

// Delete removes a sheet
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete sheet from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFound("sheet not found").WithMeta("sheet_id", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) buildKey(id string) string {
	return fmt.Sprintf("%s%s", sheetKeyPrefix, id)
}

func validateSheet(s *sheet.Sheet) error {
	if s == nil {
		return errors.InvalidArgument(errSheetNil)
	}
	if s.ID == "" {
		return errors.InvalidArgument(errSheetIDEmpty)
	}
	return nil
}
