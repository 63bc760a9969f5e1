package badge

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"hr-requests-backend/db"
	requeststore "hr-requests-backend/lib/request/store"
	"hr-requests-backend/models"
)

const counterTTL = 5 * time.Minute

// Provider is the pending-approval badge counter. Counts are cached in
// redis under the named sidebar key and recomputed from the wait-approval
// queue on miss; every successful transition invalidates the counters of
// the affected users.
type Provider interface {
	WaitApprovalCount(ctx context.Context, userCode string) (int64, error)
	Invalidate(ctx context.Context, userCodes ...string)
}

var Instance Provider

func NewHandler(client *redis.Client) {
	Instance = impl{
		client: client,
		store:  requeststore.NewInstance(db.DB),
	}
}

type impl struct {
	client *redis.Client
	store  requeststore.Provider
}

func counterKey(userCode string) string {
	return fmt.Sprintf("%s:%s", models.BadgeWaitApprovalKey, userCode)
}

func (i impl) WaitApprovalCount(ctx context.Context, userCode string) (int64, error) {
	logger := log.WithField("user_code", userCode)
	if i.client != nil {
		count, err := i.client.Get(ctx, counterKey(userCode)).Int64()
		if err == nil {
			return count, nil
		}
		if err != redis.Nil {
			logger.WithError(err).Warn("badge counter read failed, falling back to the database")
		}
	}
	count, err := i.store.CountWaitApproval(userCode)
	if err != nil {
		return 0, err
	}
	if i.client != nil {
		if err = i.client.Set(ctx, counterKey(userCode), count, counterTTL).Err(); err != nil {
			logger.WithError(err).Warn("badge counter write failed")
		}
	}
	return count, nil
}

func (i impl) Invalidate(ctx context.Context, userCodes ...string) {
	if i.client == nil || len(userCodes) == 0 {
		return
	}
	keys := make([]string, 0, len(userCodes))
	for _, code := range userCodes {
		if code == "" {
			continue
		}
		keys = append(keys, counterKey(code))
	}
	if len(keys) == 0 {
		return
	}
	if err := i.client.Del(ctx, keys...).Err(); err != nil {
		log.WithError(err).Warn("badge counter invalidation failed")
	}
}
