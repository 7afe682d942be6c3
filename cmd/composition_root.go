package cmd

import (
	"errors"
	"io"
	"log/slog"

	httpin "bakery/internal/adapters/in/http"
	kafkain "bakery/internal/adapters/in/kafka"
	"bakery/internal/adapters/out/eventbus"
	"bakery/internal/adapters/out/gateways"
	kafkaout "bakery/internal/adapters/out/kafka"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/adapters/out/pqlistener"
	"bakery/internal/adapters/out/rabbitmq"
	"bakery/internal/core/application/policies"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
	"bakery/internal/jobs"
	"bakery/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	registry   *eventstore.Registry
	uowFactory postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger

	bus      *eventbus.InMemoryBus
	notifier ports.Notifier
	payments ports.PaymentGateway
	payroll  ports.PayrollGateway

	closers []io.Closer
}

// Option replaces a default collaborator, mostly for tests.
type Option func(*CompositionRoot)

func WithPaymentGateway(g ports.PaymentGateway) Option {
	return func(c *CompositionRoot) { c.payments = g }
}

func WithNotifier(n ports.Notifier) Option {
	return func(c *CompositionRoot) { c.notifier = n }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *CompositionRoot) { c.metrics = m }
}

// NewCompositionRoot builds the shared infrastructure. With RabbitMQURL set,
// notifications go to RabbitMQ, otherwise they are only logged.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger, opts ...Option) (*CompositionRoot, error) {
	registry := eventstore.DomainRegistry()
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		registry:   registry,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, registry),
		logger:     logger,
		bus:        eventbus.NewInMemoryBus(logger),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.metrics == nil {
		c.metrics = metrics.New()
	}
	if c.payments == nil {
		c.payments = gateways.NewCryptoPaymentGateway(
			config.PaymentLatency, config.PaymentSuccessRate, c.metrics, logger)
	}
	if c.payroll == nil {
		c.payroll = gateways.NewPayrollGateway(logger)
	}
	if c.notifier == nil {
		if config.RabbitMQURL == "" {
			c.notifier = gateways.NewLogNotifier(logger)
		} else {
			n, err := rabbitmq.NewNotifier(config.RabbitMQURL, logger)
			if err != nil {
				return nil, err
			}
			c.notifier = n
			c.closers = append(c.closers, n)
		}
	}

	policies.RegisterAll(c.bus, c.CreatePolicies()...)
	return c, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// EventBus dispatches relayed events to the policies of this process.
func (c *CompositionRoot) EventBus() *eventbus.InMemoryBus {
	return c.bus
}

// Close releases the broker connections opened by the root.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i].Close())
	}
	return errors.Join(errList...)
}

// Command handlers

func (c *CompositionRoot) CreatePublishBakedGoodCommandHandler() commands.PublishBakedGoodCommandHandler {
	return commands.NewPublishBakedGoodCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateChangeBakedGoodCommandHandler() commands.ChangeBakedGoodCommandHandler {
	return commands.NewChangeBakedGoodCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateChooseLocationCommandHandler() commands.ChooseLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChooseLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCartCommandHandler() commands.CartCommandHandler {
	return commands.NewCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateOrderProjectionCommandHandler() commands.OrderProjectionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOrderProjectionCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	return commands.NewCreatePaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreatePayCommandHandler() commands.PayCommandHandler {
	return commands.NewPayCommandHandler(c.paymentUoWFactory(), c.payments)
}

func (c *CompositionRoot) CreateMarkPaymentPaidCommandHandler() commands.MarkPaymentPaidCommandHandler {
	return commands.NewMarkPaymentPaidCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateReleaseFundsCommandHandler() commands.ReleaseFundsCommandHandler {
	return commands.NewReleaseFundsCommandHandler(c.paymentUoWFactory(), c.payroll)
}

func (c *CompositionRoot) CreateDeliveryCommandHandler() commands.DeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCourierCommandHandler() commands.CourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateOfferCommandHandler() commands.OfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchDeliveryCommandHandler() commands.DispatchDeliveryCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchDeliveryCommandHandler(f, services.NewCourierDispatcher())
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

// Query handlers

func (c *CompositionRoot) CreateListBakedGoodsQueryHandler() queries.ListBakedGoodsQueryHandler {
	return queries.NewListBakedGoodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBakedGoodQueryHandler() queries.GetBakedGoodQueryHandler {
	return queries.NewGetBakedGoodQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderQueryHandler() queries.OrderQueryHandler {
	return queries.NewOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentQueryHandler() queries.GetPaymentQueryHandler {
	return queries.NewGetPaymentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableCouriersQueryHandler() queries.ListAvailableCouriersQueryHandler {
	return queries.NewListAvailableCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOffersQueryHandler() queries.ListOffersQueryHandler {
	return queries.NewListOffersQueryHandler(c.gormDB)
}

// CreateGetPackageLocationQueryHandler reads through repositories of a unit of work
// that is never begun, so no transaction is held.
func (c *CompositionRoot) CreateGetPackageLocationQueryHandler() queries.GetPackageLocationQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetPackageLocationQueryHandler(uow.OfferRepository(), uow.PackageLocationRepository())
}

// Policies

func (c *CompositionRoot) CreatePolicies() []policies.Policy {
	carts := c.CreateCartCommandHandler()
	orders := c.CreateOrderProjectionCommandHandler()
	createPayment := c.CreateCreatePaymentCommandHandler()
	markPaid := c.CreateMarkPaymentPaidCommandHandler()
	releaseFunds := c.CreateReleaseFundsCommandHandler()
	deliveries := c.CreateDeliveryCommandHandler()
	dispatch := c.CreateDispatchDeliveryCommandHandler()
	offers := c.CreateOfferCommandHandler()
	assign := c.CreateAssignCourierCommandHandler()

	return []policies.Policy{
		policies.NewCartCleanupPolicy(&carts, c.logger, c.metrics),
		policies.NewOrderProjectionPolicy(&orders, c.logger, c.metrics),
		policies.NewPaymentInitiationPolicy(&createPayment, c.logger, c.metrics),
		policies.NewPaymentCompletionPolicy(&markPaid, c.logger, c.metrics),
		policies.NewDeliveryCreationPolicy(&deliveries, c.notifier, c.logger, c.metrics),
		policies.NewCourierNeededPolicy(&dispatch, c.notifier, c.logger, c.metrics),
		policies.NewCompetingOffersPolicy(&offers, c.logger, c.metrics),
		policies.NewCourierAssignmentPolicy(&assign, c.logger, c.metrics),
		policies.NewCustomerNotificationPolicy(c.notifier, c.logger, c.metrics),
		policies.NewPayrollPolicy(&releaseFunds, c.logger, c.metrics),
	}
}

// Event transport

// CreateEventPublisher returns the transport the outbox relay hands events to: the
// in-process bus, or the Kafka events topic when EVENT_BUS=kafka.
func (c *CompositionRoot) CreateEventPublisher() ports.EventPublisher {
	if !c.config.UsesKafka() {
		return c.bus
	}
	producer := kafkaout.NewProducer(c.config.KafkaBrokers(), c.config.KafkaEventsTopic, c.registry, c.logger)
	c.closers = append(c.closers, producer)
	return producer
}

// CreateEventsConsumer feeds the Kafka events topic into the in-process bus. It is
// nil unless EVENT_BUS=kafka.
func (c *CompositionRoot) CreateEventsConsumer() *kafkain.EventsConsumer {
	if !c.config.UsesKafka() {
		return nil
	}
	consumer := kafkain.NewEventsConsumer(
		c.config.KafkaBrokers(),
		c.config.KafkaEventsTopic,
		c.config.KafkaConsumerGroup,
		c.registry,
		c.bus,
		c.logger,
	)
	c.closers = append(c.closers, consumer)
	return consumer
}

func (c *CompositionRoot) CreateOutboxRelayJob(publisher ports.EventPublisher) *jobs.OutboxRelayJob {
	return jobs.NewOutboxRelayJob(
		eventstore.NewOutbox(c.gormDB, c.registry),
		publisher,
		c.config.OutboxBatchSize,
		c.metrics,
		c.logger,
	)
}

// CreateRelayListener wakes the relay on every append signalled by Postgres.
func (c *CompositionRoot) CreateRelayListener() (*pqlistener.Listener, error) {
	l, err := pqlistener.New(c.config.DSN(), eventstore.NotifyChannel, c.logger)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, l)
	return l, nil
}

// HTTP

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			PublishBakedGood: c.CreatePublishBakedGoodCommandHandler(),
			ChangeBakedGood:  c.CreateChangeBakedGoodCommandHandler(),
			ChooseLocation:   c.CreateChooseLocationCommandHandler(),
			Cart:             c.CreateCartCommandHandler(),
			Checkout:         c.CreateCheckoutCommandHandler(),
			Pay:              c.CreatePayCommandHandler(),
			Delivery:         c.CreateDeliveryCommandHandler(),
			Courier:          c.CreateCourierCommandHandler(),
			Offer:            c.CreateOfferCommandHandler(),
		},
		httpin.QueryHandlers{
			ListBakedGoods:     c.CreateListBakedGoodsQueryHandler(),
			GetBakedGood:       c.CreateGetBakedGoodQueryHandler(),
			GetCart:            c.CreateGetCartQueryHandler(),
			Orders:             c.CreateOrderQueryHandler(),
			GetPayment:         c.CreateGetPaymentQueryHandler(),
			GetDelivery:        c.CreateGetDeliveryQueryHandler(),
			ListCouriers:       c.CreateListAvailableCouriersQueryHandler(),
			ListOffers:         c.CreateListOffersQueryHandler(),
			GetPackageLocation: c.CreateGetPackageLocationQueryHandler(),
		},
		c.logger,
	)
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
