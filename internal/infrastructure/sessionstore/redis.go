package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL generoso: la pseudo-sesión demo no es credencial, pero tampoco tiene
// sentido que sobreviva días en Redis.
const redisSessionTTL = 24 * time.Hour

// Redis implementa el almacén sobre go-redis, con prefijo de namespace para
// no pisar otras claves de la instancia.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis construye el almacén y verifica la conexión con un ping.
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a redis %s: %w", addr, err)
	}
	return &Redis{client: client, prefix: "filavirtual:"}, nil
}

func (r *Redis) key(k string) string { return r.prefix + k }

// Get devuelve ("", nil) cuando la clave no existe (redis.Nil no es error).
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, redisSessionTTL).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Remove es idempotente: DEL sobre clave ausente no es error.
func (r *Redis) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Close libera la conexión.
func (r *Redis) Close() error {
	return r.client.Close()
}
