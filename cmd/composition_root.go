package cmd

import (
	"log/slog"

	"ordertracker/internal/adapters/out/postgres"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/eventbus"
	"ordertracker/internal/jobs"
	"ordertracker/internal/notification"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and the notification pipeline.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	bus        *eventbus.Bus
	logger     *slog.Logger
}

// NewCompositionRoot builds the full object graph: persistence, the event
// bus, and the notification pipeline subscribed to it. The bus still has to
// be started by the caller.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	bus := eventbus.NewBus(logger, configs.EventQueueSize)

	channels := []notification.Channel{
		notification.NewEmailChannel(logger, configs.EmailTo, configs.EmailFrom),
		notification.NewSMSChannel(logger, configs.SMSTo, configs.SMSFrom),
	}

	if configs.WebhookBaseURL != "" {
		webhook, err := notification.NewWebhookChannel(configs.WebhookBaseURL, configs.WebhookPath)
		if err == nil {
			channels = append(channels, notification.NewRetryingChannel(webhook, notification.RetryPolicy{
				MaxAttempts:  configs.RetryMaxAttempts,
				InitialDelay: configs.RetryInitialDelay,
				Multiplier:   configs.RetryMultiplier,
			}, logger))
		} else {
			logger.Warn("webhook channel disabled", "error", err)
		}
	}

	registry := notification.NewRegistry(channels...)
	router := notification.NewRouter(registry, configs.EnabledChannels, logger)
	bus.Subscribe(notification.NewOrderListener(router, logger))

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        bus,
		logger:     logger,
	}
}

// EventBus returns the bus so the caller can manage its lifecycle.
func (c *CompositionRoot) EventBus() *eventbus.Bus {
	return c.bus
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderStatsJob() *jobs.OrderStatsJob {
	return jobs.NewOrderStatsJob(c.CreateGetOrderStatsQueryHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
