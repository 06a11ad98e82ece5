package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// ShopMetrics собирает метрики продаж и заказов. Реализует domain.Observer.
type ShopMetrics struct {
	// Продажи магазина
	productsSold prometheus.Counter
	revenue      prometheus.Counter

	// Жизненный цикл заказов
	ordersCreated   prometheus.Counter
	ordersCompleted prometheus.Counter
	ordersRejected  *prometheus.CounterVec
	ordersPaid      prometheus.Counter
	moneySpent      prometheus.Counter

	// Размер завершённых заказов в единицах товара
	orderQuantity prometheus.Histogram

	// Gauge для открытых заказов
	openOrders prometheus.Gauge
}

// NewShopMetricsWithRegisterer создаёт метрики в указанном registerer.
// Повторная регистрация возвращает уже существующие коллекторы.
func NewShopMetricsWithRegisterer(registerer prometheus.Registerer) *ShopMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &ShopMetrics{
		productsSold: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_products_sold_total",
			Help: "Total number of product units sold",
		}),
		revenue: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_revenue_total",
			Help: "Total revenue accrued by sold units",
		}),
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_orders_created_total",
			Help: "Total number of orders created by customers",
		}),
		ordersCompleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_orders_completed_total",
			Help: "Total number of orders completed",
		}),
		ordersRejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "shop_orders_rejected_total",
			Help: "Total number of rejected order completions by reason",
		}, []string{"reason"}),
		ordersPaid: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_orders_paid_total",
			Help: "Total number of orders paid by customers",
		}),
		moneySpent: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_customer_money_spent_total",
			Help: "Total amount debited from customers",
		}),
		orderQuantity: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "shop_order_quantity_units",
			Help:    "Number of units in completed orders",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		openOrders: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "shop_open_orders",
			Help: "Number of orders that are created but not completed",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// ProductSold учитывает проданную единицу и выручку.
func (m *ShopMetrics) ProductSold(_ string, price int) {
	m.productsSold.Inc()
	m.revenue.Add(float64(price))
}

// OrderCreated увеличивает счётчики созданных и открытых заказов.
func (m *ShopMetrics) OrderCreated(string, domain.OrderSummary) {
	m.ordersCreated.Inc()
	m.openOrders.Inc()
}

// OrderCompleted учитывает завершённый заказ и его размер.
func (m *ShopMetrics) OrderCompleted(order domain.OrderSummary) {
	m.ordersCompleted.Inc()
	m.openOrders.Dec()
	m.orderQuantity.Observe(float64(order.TotalQuantity))
}

// OrderRejected учитывает отказ с меткой причины.
func (m *ShopMetrics) OrderRejected(_ domain.OrderSummary, err error) {
	m.ordersRejected.WithLabelValues(domain.ErrorReason(err)).Inc()
}

// OrderPaid учитывает оплату заказа покупателем.
func (m *ShopMetrics) OrderPaid(_ string, order domain.OrderSummary) {
	m.ordersPaid.Inc()
	m.moneySpent.Add(float64(order.TotalCost))
}

var _ domain.Observer = (*ShopMetrics)(nil)
