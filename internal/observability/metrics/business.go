package metrics

import "time"

// RecordStoreOperation records the outcome and duration of a store operation.
// Operation should describe the call (e.g., "create_post", "list_accounts").
func RecordStoreOperation(operation, result string, duration time.Duration) {
	StoreOperationsTotal.WithLabelValues(operation, result).Inc()
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetEntityCounts updates the entity gauges.
// The store calls this after every mutation that changes a collection size.
func SetEntityCounts(accounts, posts, comments int) {
	EntitiesTotal.WithLabelValues("account").Set(float64(accounts))
	EntitiesTotal.WithLabelValues("post").Set(float64(posts))
	EntitiesTotal.WithLabelValues("comment").Set(float64(comments))
}

// RecordEventPublished counts a published change event.
func RecordEventPublished(topicKind, mutation string) {
	EventsPublishedTotal.WithLabelValues(topicKind, mutation).Inc()
}

// RecordEventDelivered counts an event handed to a subscriber.
func RecordEventDelivered(topicKind string) {
	EventsDeliveredTotal.WithLabelValues(topicKind).Inc()
}

// SubscriptionOpened increments the active subscription gauge.
func SubscriptionOpened(topicKind string) {
	ActiveSubscriptions.WithLabelValues(topicKind).Inc()
}

// SubscriptionClosed decrements the active subscription gauge.
func SubscriptionClosed(topicKind string) {
	ActiveSubscriptions.WithLabelValues(topicKind).Dec()
}
