package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/entity"
)

var ErrActivationsNotFound = errors.New("activations not found")

type ActivationRepository interface {
	Append(ctx context.Context, event entity.ActivationEvent) error
	DeleteByMount(ctx context.Context, mountID string) error
}

type dbActivation struct {
	client *redis.Client
	ttl    time.Duration
}

// NewActivationRepository - keeps per-mount activation trails that expire after ttl.
func NewActivationRepository(client *redis.Client, ttl time.Duration) ActivationRepository {
	return &dbActivation{
		client: client,
		ttl:    ttl,
	}
}

func activationKey(mountID string) string {
	return "activations:" + mountID
}

func (that *dbActivation) Append(ctx context.Context, event entity.ActivationEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal activation: %w", err)
	}

	key := activationKey(event.MountID)

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, eventJSON)
		if that.ttl > 0 {
			pipe.Expire(ctx, key, that.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append activation: %w", err)
	}

	return nil
}

func (that *dbActivation) DeleteByMount(ctx context.Context, mountID string) error {
	removed, err := that.client.Del(ctx, activationKey(mountID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete activations: %w", err)
	}

	if removed == 0 {
		return ErrActivationsNotFound
	}

	return nil
}
