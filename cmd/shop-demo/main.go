package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/app"
	"github.com/vladislavdragonenkov/shop/internal/version"
)

const (
	envLogLevel      = "SHOP_LOG_LEVEL"
	envLogFormat     = "SHOP_LOG_FORMAT"
	envCustomerMoney = "SHOP_CUSTOMER_MONEY"
	envInitialStock  = "SHOP_INITIAL_STOCK"
	envLogMetrics    = "SHOP_LOG_METRICS"
)

// maxInitialStock ограничивает число единиц каждого товара, которые кладутся на склад по одной.
const maxInitialStock = 100_000

type envLookup func(key string) (string, bool)

// setupLogger настраивает формат и уровень логирования.
func setupLogger(cfg app.Config) {
	if cfg.LogFormat == app.LogFormatJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// readConfigFromEnv формирует конфигурацию из переменных окружения.
// Некорректные значения заменяются значениями по умолчанию и возвращаются как предупреждения.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string

	if v, ok := lookup(envLogLevel); ok && strings.TrimSpace(v) != "" {
		level := strings.ToLower(strings.TrimSpace(v))
		if _, err := log.ParseLevel(level); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envLogLevel, err))
		} else {
			cfg.LogLevel = level
		}
	}
	if v, ok := lookup(envLogFormat); ok && strings.TrimSpace(v) != "" {
		format := strings.ToLower(strings.TrimSpace(v))
		switch format {
		case app.LogFormatText, app.LogFormatJSON:
			cfg.LogFormat = format
		default:
			warnings = append(warnings, fmt.Sprintf("%s: unsupported format %q", envLogFormat, v))
		}
	}
	if v, ok := lookup(envCustomerMoney); ok {
		money, err := parseInt(v, func(n int) bool { return n >= 0 }, "must be >= 0")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envCustomerMoney, err))
		} else {
			cfg.CustomerMoney = money
		}
	}
	if v, ok := lookup(envInitialStock); ok {
		stock, err := parseInt(v, func(n int) bool { return n >= 0 && n <= maxInitialStock },
			fmt.Sprintf("must be between 0 and %d", maxInitialStock))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envInitialStock, err))
		} else {
			cfg.InitialStock = stock
		}
	}
	if v, ok := lookup(envLogMetrics); ok {
		enabled, err := parseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envLogMetrics, err))
		} else {
			cfg.LogMetrics = enabled
		}
	}

	return cfg, warnings
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q", raw)
	}
}

func parseInt(raw string, valid func(int) bool, rule string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid int value %q: %w", raw, err)
	}
	if !valid(value) {
		return 0, fmt.Errorf("value %d %s", value, rule)
	}
	return value, nil
}

func main() {
	cfg, warnings := readConfigFromEnv(os.LookupEnv)
	setupLogger(cfg)
	for _, w := range warnings {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"version":        version.String(),
		"customer_money": cfg.CustomerMoney,
		"initial_stock":  cfg.InitialStock,
	}).Info("запускаем демонстрационную сессию магазина")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("сессия завершилась с ошибкой")
	}

	log.Info("сессия завершена")
}
