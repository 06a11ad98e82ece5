package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/health"
)

// SessionResult содержит итог демонстрационной сессии.
type SessionResult struct {
	OrderID     string
	OrderCost   int
	Revenue     int
	MoneyLeft   int
	MostPopular string
	Timeline    []domain.TimelineEvent
	Health      health.Report
	Metrics     map[string]float64
}

// Run создаёт зависимости и проводит сессию покупки по DemoCatalog.
func Run(ctx context.Context, cfg Config) error {
	deps := NewDependencies(log.WithField("component", "app"))
	_, err := RunSession(ctx, deps, cfg, DemoCatalog)
	return err
}

// RunSession регистрирует каталог, пополняет склад, оформляет и оплачивает заказ.
// Возвращает первую бизнес-ошибку без перевода в другой тип.
func RunSession(ctx context.Context, deps *Dependencies, cfg Config, catalog []CatalogEntry) (SessionResult, error) {
	logger := deps.Logger
	shop := deps.Factory.NewShop()
	customer := deps.Factory.NewCustomer()
	customer.SetMoney(cfg.CustomerMoney)

	registerSessionChecks(deps.Health, shop, customer)

	if err := stockCatalog(shop, deps.Factory, catalog, cfg.InitialStock); err != nil {
		return SessionResult{}, err
	}
	logger.WithFields(log.Fields{
		"products":    shop.NumberOfProducts(),
		"total_stock": shop.TotalStockCount(),
	}).Info("catalog registered")

	if err := ctx.Err(); err != nil {
		return SessionResult{}, err
	}

	order := customer.CreateOrder(shop)
	if err := fillOrder(order, catalog); err != nil {
		if domain.IsStockUnavailable(err) {
			logger.WithError(err).WithField("order_id", order.ID()).Warn("not enough stock to fill order")
		}
		return SessionResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return SessionResult{}, err
	}

	result := SessionResult{OrderID: order.ID(), OrderCost: order.TotalOrderCost()}
	if err := customer.CompleteOrder(customer.TotalNumberOfOrders() - 1); err != nil {
		return result, err
	}

	result.Revenue = shop.Revenue()
	result.MoneyLeft = customer.Money()
	if popular, err := shop.MostPopular(); err == nil {
		result.MostPopular = popular.BarCode()
	}

	timeline, err := deps.TimelineRepo.List(order.ID())
	if err != nil {
		return result, err
	}
	result.Timeline = timeline
	result.Health = deps.Health.Report()

	logger.WithFields(log.Fields{
		"order_id":     result.OrderID,
		"order_cost":   result.OrderCost,
		"revenue":      result.Revenue,
		"money_left":   result.MoneyLeft,
		"most_popular": result.MostPopular,
		"events":       len(result.Timeline),
		"health":       string(result.Health.Status),
	}).Info("session finished")

	if cfg.LogMetrics {
		values, err := summarizeMetrics(deps.Registry)
		if err != nil {
			logger.WithError(err).Warn("gather metrics failed")
		} else {
			result.Metrics = values
			logMetrics(logger, values)
		}
	}

	return result, nil
}

func stockCatalog(shop *domain.Shop, factory *domain.Factory, catalog []CatalogEntry, stock int) error {
	for _, entry := range catalog {
		if err := shop.RegisterProduct(factory.NewProduct(entry.BarCode, entry.Description)); err != nil {
			return err
		}
		if err := shop.SetPriceOf(entry.BarCode, entry.Price); err != nil {
			return err
		}
		for i := 0; i < stock; i++ {
			if err := shop.AddStock(entry.BarCode); err != nil {
				return err
			}
		}
	}
	return nil
}

func fillOrder(order *domain.Order, catalog []CatalogEntry) error {
	for _, entry := range catalog {
		if entry.OrderQty <= 0 {
			continue
		}
		if err := order.AddItem(entry.BarCode); err != nil {
			return err
		}
		for i := 0; i < entry.OrderQty; i++ {
			if err := order.IncreaseQuantityOf(entry.BarCode); err != nil {
				return err
			}
		}
	}
	return nil
}

func registerSessionChecks(registry *health.Registry, shop *domain.Shop, customer *domain.Customer) {
	registry.RegisterChecker("catalog", health.NewSimpleChecker("catalog", func() error {
		if shop.NumberOfProducts() == 0 {
			return errors.New("catalog is empty")
		}
		if shop.TotalStockCount() == 0 {
			return fmt.Errorf("%w: out of stock", health.ErrDegraded)
		}
		return nil
	}))
	registry.RegisterChecker("orders", health.NewSimpleChecker("orders", func() error {
		if open := customer.NumberOfIncompleteOrders(); open > 0 {
			return fmt.Errorf("%w: %d open orders", health.ErrDegraded, open)
		}
		return nil
	}))
}

// summarizeMetrics собирает значения counter и gauge; для гистограмм берётся число наблюдений.
// Метрики с метками суммируются по имени.
func summarizeMetrics(gatherer prometheus.Gatherer) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}
	values := make(map[string]float64, len(families))
	for _, family := range families {
		for _, m := range family.GetMetric() {
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				values[family.GetName()] += m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				values[family.GetName()] += m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				values[family.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return values, nil
}

func logMetrics(logger *log.Entry, values map[string]float64) {
	fields := make(log.Fields, len(values))
	for name, value := range values {
		fields[name] = value
	}
	logger.WithFields(fields).Info("metrics summary")
}
