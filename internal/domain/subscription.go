package domain

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	ID           uuid.UUID `json:"id" db:"subscription_id"`
	SubscriberID uuid.UUID `json:"subscriber_id" db:"subscriber_id"`
	ChannelID    uuid.UUID `json:"channel_id" db:"channel_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Subscriber is a subscription edge enriched with the subscriber's profile.
type Subscriber struct {
	SubscriptionID uuid.UUID   `json:"subscription_id" db:"subscription_id"`
	SubscribedAt   time.Time   `json:"subscribed_at" db:"subscribed_at"`
	User           UserSummary `json:"user"`
}

// SubscribedChannel is a subscription edge enriched with the channel profile.
type SubscribedChannel struct {
	SubscriptionID uuid.UUID   `json:"subscription_id" db:"subscription_id"`
	SubscribedAt   time.Time   `json:"subscribed_at" db:"subscribed_at"`
	Channel        UserSummary `json:"channel"`
}

// SubscribeResult reports which side of the subscription toggle ran.
type SubscribeResult struct {
	Subscribed   bool       `json:"subscribed"`
	Subscription *uuid.UUID `json:"subscription_id,omitempty"`
}
