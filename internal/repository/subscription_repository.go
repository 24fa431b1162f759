package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/models"
)

// SubscriptionRepository persists subscription versions.
type SubscriptionRepository struct {
	store
}

// NewSubscriptionRepository constructs the repository.
func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{store{db: db}}
}

// AppendSubscription appends a subscription version.
func (r *SubscriptionRepository) AppendSubscription(ctx context.Context, exec sqlx.ExtContext, subscription *models.Subscription) error {
	return subscriptionChain.Append(ctx, r.exec(exec), subscription)
}

// SubscriptionHead returns the current subscription of user.
func (r *SubscriptionRepository) SubscriptionHead(ctx context.Context, exec sqlx.ExtContext, userID int64) (*models.Subscription, error) {
	return head[models.Subscription](ctx, r.exec(exec), subscriptionChain, userID)
}

// ListSubscriptions returns subscription versions matching the filter.
func (r *SubscriptionRepository) ListSubscriptions(ctx context.Context, exec sqlx.ExtContext, filter models.SubscriptionFilter) ([]models.Subscription, error) {
	f := common(filter.CommonFilter).
		Int64s("subscription_id", filter.SubscriptionID).
		Strings("subscription_kind", kinds(filter.SubscriptionKind))
	return list[models.Subscription](ctx, r.exec(exec), subscriptionChain, filter.OnlyRecent, f)
}
