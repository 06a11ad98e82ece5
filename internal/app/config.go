package app

import "github.com/vladislavdragonenkov/shop/internal/domain"

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config описывает настройки запуска демонстрационной сессии.
type Config struct {
	LogLevel      string
	LogFormat     string
	CustomerMoney int
	InitialStock  int
	LogMetrics    bool
}

// DefaultConfig возвращает базовые настройки.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		LogFormat:     LogFormatText,
		CustomerMoney: domain.DefaultMoney,
		InitialStock:  5,
		LogMetrics:    true,
	}
}

// CatalogEntry описывает товар демонстрационного каталога и сколько единиц заказать.
type CatalogEntry struct {
	BarCode     string
	Description string
	Price       int
	OrderQty    int
}

// DemoCatalog регистрируется в магазине при Run.
var DemoCatalog = []CatalogEntry{
	{BarCode: "4607001770011", Description: "espresso beans 1kg", Price: 12, OrderQty: 2},
	{BarCode: "4607001770028", Description: "green tea 100g", Price: 4, OrderQty: 3},
	{BarCode: "4607001770035", Description: "ceramic mug", Price: 7, OrderQty: 1},
}
