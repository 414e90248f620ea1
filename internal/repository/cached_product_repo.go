package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-catalog-api/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const publishedKey = "catalog:products:published"

// cachedProductRepo keeps the public listing in Redis. Any write through it
// drops the cached listing; Redis failures fall through to the next repository.
type cachedProductRepo struct {
	ProductRepository
	rdb *redis.Client
	ttl time.Duration
	log *logrus.Logger
}

func NewCachedProductRepo(next ProductRepository, rdb *redis.Client, ttl time.Duration, log *logrus.Logger) ProductRepository {
	return &cachedProductRepo{
		ProductRepository: next,
		rdb:               rdb,
		ttl:               ttl,
		log:               log,
	}
}

func (r *cachedProductRepo) FindPublished(ctx context.Context) ([]model.Product, error) {
	raw, err := r.rdb.Get(ctx, publishedKey).Bytes()
	if err == nil {
		var products []model.Product
		if err := json.Unmarshal(raw, &products); err == nil {
			return products, nil
		}
		r.log.WithField("key", publishedKey).Warn("dropping undecodable cache entry")
	} else if !errors.Is(err, redis.Nil) {
		r.log.WithError(err).Warn("product cache read failed")
	}

	products, err := r.ProductRepository.FindPublished(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		if err := r.rdb.Set(ctx, publishedKey, payload, r.ttl).Err(); err != nil {
			r.log.WithError(err).Warn("product cache write failed")
		}
	}
	return products, nil
}

func (r *cachedProductRepo) Create(ctx context.Context, product *model.Product) error {
	if err := r.ProductRepository.Create(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedProductRepo) Update(ctx context.Context, product *model.Product) error {
	if err := r.ProductRepository.Update(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedProductRepo) invalidate(ctx context.Context) {
	if err := r.rdb.Del(ctx, publishedKey).Err(); err != nil {
		r.log.WithError(err).Warn("product cache invalidation failed")
	}
}
