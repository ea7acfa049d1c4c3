package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/marble-mania/internal/entity"
)

var ErrResultNotFound = errors.New("result not found")

type ResultRepository interface {
	CreateOrUpdate(ctx context.Context, result *entity.Result) error
	GetByGame(ctx context.Context, players, lastMarble int) (*entity.Result, error)
	DeleteByGame(ctx context.Context, players, lastMarble int) error
}

type dbResult struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultRepository - results expire after ttl, or never when ttl is 0.
func NewResultRepository(client *redis.Client, ttl time.Duration) ResultRepository {
	return &dbResult{
		client: client,
		ttl:    ttl,
	}
}

func resultKey(players, lastMarble int) string {
	return fmt.Sprintf("result:%d:%d", players, lastMarble)
}

func (that *dbResult) CreateOrUpdate(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	err = that.client.Set(ctx, resultKey(result.Players, result.LastMarble), resultJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByGame(ctx context.Context, players, lastMarble int) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKey(players, lastMarble)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Result{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.Result{}, fmt.Errorf("failed to get result: %w", err)
	}

	var existingResult entity.Result
	if err = json.Unmarshal([]byte(response), &existingResult); err != nil {
		return &entity.Result{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &existingResult, nil
}

func (that *dbResult) DeleteByGame(ctx context.Context, players, lastMarble int) error {
	deleted, err := that.client.Del(ctx, resultKey(players, lastMarble)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}

	if deleted == 0 {
		return ErrResultNotFound
	}

	return nil
}
