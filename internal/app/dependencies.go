package app

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/health"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
	"github.com/vladislavdragonenkov/shop/internal/service/audit"
	"github.com/vladislavdragonenkov/shop/internal/storage/memory"
	"github.com/vladislavdragonenkov/shop/internal/version"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Registry     *prometheus.Registry
	Metrics      *metrics.ShopMetrics
	TimelineRepo domain.TimelineRepository
	Recorder     *audit.Recorder
	Factory      *domain.Factory
	Health       *health.Registry
	Logger       *log.Entry
}

// NewDependencies создаёт и связывает зависимости: фабрика домена получает
// наблюдателя, который пишет метрики в отдельный registry и аудит в timeline.
func NewDependencies(logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	registry := prometheus.NewRegistry()
	shopMetrics := metrics.NewShopMetricsWithRegisterer(registry)
	timeline := memory.NewTimelineRepository()
	recorder := audit.NewRecorder(timeline, logger.WithField("layer", "audit"))

	return &Dependencies{
		Registry:     registry,
		Metrics:      shopMetrics,
		TimelineRepo: timeline,
		Recorder:     recorder,
		Factory:      domain.NewFactory(domain.WithObserver(domain.MultiObserver{shopMetrics, recorder})),
		Health:       health.NewRegistry(version.GetVersion()),
		Logger:       logger,
	}
}
