package domain

import "time"

// Типы событий timeline заказа.
const (
	TimelineOrderCreated   = "order_created"
	TimelineOrderCompleted = "order_completed"
	TimelineOrderRejected  = "order_rejected"
	TimelineOrderPaid      = "order_paid"
)

// TimelineEvent описывает событие в жизненном цикле заказа.
type TimelineEvent struct {
	OrderID  string
	Type     string
	Reason   string
	Occurred time.Time
}

// TimelineRepository хранит события жизненного цикла заказа.
type TimelineRepository interface {
	Append(event TimelineEvent) error
	List(orderID string) ([]TimelineEvent, error)
}
