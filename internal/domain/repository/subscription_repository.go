// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adhan/internal/domain/entity"
	"adhan/internal/errors"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription record does not exist.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository is the key-value store holding one record per
// subscriber plus the set of all subscriber ids.
type SubscriptionRepository interface {
	// Upsert writes the full record and adds its id to the id set.
	Upsert(ctx context.Context, sub *entity.Subscription) error

	// Get retrieves a subscription by id.
	Get(ctx context.Context, id string) (*entity.Subscription, error)

	// Delete removes the record and its id set membership.
	Delete(ctx context.Context, id string) error

	// SetFields writes only the named fields of an existing record.
	// Returns ErrSubscriptionNotFound rather than recreating a deleted record.
	SetFields(ctx context.Context, id string, fields entity.SubscriptionFields) error

	// ListActiveIDs returns every id in the id set. Inactive records are
	// filtered by the caller after reading them.
	ListActiveIDs(ctx context.Context) ([]string, error)

	// ClaimDelivery atomically sets lastSentAt/lastSentName to (nextAt, name)
	// only if the stored lastSentAt is lower than nextAt. It reports whether
	// this caller won the claim.
	ClaimDelivery(ctx context.Context, id string, nextAt int64, name entity.Prayer) (bool, error)

	// ReleaseDelivery restores (prevAt, prevName) if the claim for nextAt is
	// still in place. Used after a transient send failure.
	ReleaseDelivery(ctx context.Context, id string, nextAt, prevAt int64, prevName entity.Prayer) error
}
