package audit

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// Recorder пишет события заказов в timeline и структурированный лог.
type Recorder struct {
	timeline domain.TimelineRepository
	logger   *log.Entry
	now      func() time.Time
}

// NewRecorder создаёт наблюдатель для аудита. timeline может быть nil: тогда только логируем.
func NewRecorder(timeline domain.TimelineRepository, logger *log.Entry) *Recorder {
	if logger == nil {
		logger = log.New().WithField("component", "audit")
	}
	return &Recorder{
		timeline: timeline,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ProductSold логирует продажу одной единицы.
func (r *Recorder) ProductSold(barCode string, price int) {
	r.logger.WithFields(log.Fields{
		"bar_code": barCode,
		"price":    price,
	}).Debug("product sold")
}

// OrderCreated фиксирует открытие заказа.
func (r *Recorder) OrderCreated(customerID string, order domain.OrderSummary) {
	r.logger.WithFields(log.Fields{
		"customer_id": customerID,
		"order_id":    order.ID,
	}).Info("order created")
	r.append(order.ID, domain.TimelineOrderCreated, "")
}

// OrderCompleted фиксирует завершение заказа.
func (r *Recorder) OrderCompleted(order domain.OrderSummary) {
	r.logger.WithFields(orderFields(order)).Info("order completed")
	r.append(order.ID, domain.TimelineOrderCompleted, "")
}

// OrderRejected фиксирует отказ с причиной.
func (r *Recorder) OrderRejected(order domain.OrderSummary, err error) {
	r.logger.WithError(err).WithFields(orderFields(order)).Warn("order rejected")
	r.append(order.ID, domain.TimelineOrderRejected, domain.ErrorReason(err))
}

// OrderPaid фиксирует списание денег покупателя.
func (r *Recorder) OrderPaid(customerID string, order domain.OrderSummary) {
	r.logger.WithFields(orderFields(order)).WithField("customer_id", customerID).Info("order paid")
	r.append(order.ID, domain.TimelineOrderPaid, "")
}

func (r *Recorder) append(orderID, eventType, reason string) {
	if r.timeline == nil {
		return
	}
	event := domain.TimelineEvent{
		OrderID:  orderID,
		Type:     eventType,
		Reason:   reason,
		Occurred: r.now(),
	}
	if err := r.timeline.Append(event); err != nil {
		r.logger.WithError(err).WithFields(log.Fields{
			"order_id": orderID,
			"event":    eventType,
		}).Warn("append timeline event failed")
	}
}

func orderFields(order domain.OrderSummary) log.Fields {
	return log.Fields{
		"order_id":       order.ID,
		"status":         string(order.Status),
		"items":          order.NumberOfItems,
		"total_quantity": order.TotalQuantity,
		"total_cost":     order.TotalCost,
	}
}

var _ domain.Observer = (*Recorder)(nil)
