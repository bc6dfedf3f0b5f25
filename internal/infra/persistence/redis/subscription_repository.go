package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"adhan/config"
	"adhan/internal/domain/entity"
	"adhan/internal/domain/repository"
	"adhan/internal/errors"
)

// subscriptionRepository implements repository.SubscriptionRepository with
// one hash per subscriber and a set of all ids.
type subscriptionRepository struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(client *redis.Client, cfg *config.Config) repository.SubscriptionRepository {
	prefix := ""
	if cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix + ":"
	}

	return &subscriptionRepository{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (repo *subscriptionRepository) recordKey(id string) string {
	return repo.prefix + "sub:" + id
}

func (repo *subscriptionRepository) setKey() string {
	return repo.prefix + "subs:all"
}

// Upsert writes the full record and its id set membership in one transaction.
func (repo *subscriptionRepository) Upsert(ctx context.Context, sub *entity.Subscription) error {
	if sub.ID == "" {
		return errors.New("subscription id is required")
	}

	set, del := fromSubscriptionDomain(sub)
	key := repo.recordKey(sub.ID)

	_, err := repo.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, set)
		if len(del) > 0 {
			pipe.HDel(ctx, key, del...)
		}
		pipe.SAdd(ctx, repo.setKey(), sub.ID)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert subscription")
	}

	return nil
}

// Get retrieves a subscription by id.
func (repo *subscriptionRepository) Get(ctx context.Context, id string) (*entity.Subscription, error) {
	h, err := repo.client.HGetAll(ctx, repo.recordKey(id)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get subscription")
	}
	if len(h) == 0 {
		return nil, repository.ErrSubscriptionNotFound
	}

	return toSubscriptionDomain(id, h), nil
}

// Delete removes the record and its id set membership.
func (repo *subscriptionRepository) Delete(ctx context.Context, id string) error {
	_, err := repo.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, repo.recordKey(id))
		pipe.SRem(ctx, repo.setKey(), id)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

// SetFields writes only the named fields. A deleted record is never recreated.
func (repo *subscriptionRepository) SetFields(ctx context.Context, id string, fields entity.SubscriptionFields) error {
	if fields.IsEmpty() {
		return nil
	}

	set, del := fromFieldsDomain(fields, repo.now())
	args := make([]any, 0, 1+len(set)+len(del))
	args = append(args, len(set)/2)
	for _, s := range set {
		args = append(args, s)
	}
	for _, d := range del {
		args = append(args, d)
	}

	ok, err := setFieldsScript.Run(ctx, repo.client, []string{repo.recordKey(id)}, args...).Int()
	if err != nil {
		return errors.Wrap(err, "failed to set subscription fields")
	}
	if ok == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// ListActiveIDs returns every id in the id set.
func (repo *subscriptionRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	ids, err := repo.client.SMembers(ctx, repo.setKey()).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscription ids")
	}

	return ids, nil
}

// ClaimDelivery atomically records (nextAt, name) as the last sent prayer if
// nothing at or after nextAt was sent yet.
func (repo *subscriptionRepository) ClaimDelivery(ctx context.Context, id string, nextAt int64, name entity.Prayer) (bool, error) {
	res, err := claimScript.Run(ctx, repo.client, []string{repo.recordKey(id)},
		strconv.FormatInt(nextAt, 10), string(name)).Int()
	if err != nil {
		return false, errors.Wrap(err, "failed to claim delivery")
	}
	if res < 0 {
		return false, repository.ErrSubscriptionNotFound
	}

	return res == 1, nil
}

// ReleaseDelivery reverts a claim for nextAt back to (prevAt, prevName).
func (repo *subscriptionRepository) ReleaseDelivery(ctx context.Context, id string, nextAt, prevAt int64, prevName entity.Prayer) error {
	err := releaseScript.Run(ctx, repo.client, []string{repo.recordKey(id)},
		strconv.FormatInt(nextAt, 10), strconv.FormatInt(prevAt, 10), string(prevName)).Err()
	if err != nil {
		return errors.Wrap(err, "failed to release delivery claim")
	}

	return nil
}
