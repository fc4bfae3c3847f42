/*
Package redisstore provides a model.Store backed by a redis database.
Models are stored under <prefix>:<name> keys, encoded with the
model.EncodeDecoder the store is built with.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/nalipour/MLlab/model"
	"gopkg.in/redis.v5"
)

type redisStore struct {
	rc     *redis.Client
	prefix string
	codec  model.EncodeDecoder
}

// New builds a model.Store backed by a redis DB. The store does not
// own the client; closing the store leaves it open.
func New(rc *redis.Client, prefix string, codec model.EncodeDecoder) model.Store {
	return &redisStore{rc, prefix, codec}
}

func (rs *redisStore) Save(ctx context.Context, name string, m *model.Model) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := rs.codec.Encode(m)
	if err != nil {
		return fmt.Errorf("saving model %q: encoding model: %v", name, err)
	}
	_, err = rs.rc.Set(rs.keyFor(name), data, 0).Result()
	if err != nil {
		return fmt.Errorf("saving model %q in redis: %v", name, err)
	}
	return nil
}

func (rs *redisStore) Load(ctx context.Context, name string) (*model.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := rs.rc.Get(rs.keyFor(name)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading model %q from redis: %v", name, err)
	}
	m, err := rs.codec.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("loading model %q: decoding model: %v", name, err)
	}
	return m, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := rs.rc.Del(rs.keyFor(name)).Result()
	if err != nil {
		return fmt.Errorf("deleting model %q from redis: %v", name, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return nil
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
