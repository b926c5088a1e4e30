package cmd

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	httpadapter "printmarket/internal/adapters/in/http"
	"printmarket/internal/adapters/out/postgres"
	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/application/usecases/queries"
	"printmarket/internal/core/domain/model/geometry"
	"printmarket/internal/core/domain/services"
	"printmarket/internal/core/ports"
)

// CompositionRoot wires application handlers to their adapters. Each
// Create method builds a handler over the shared unit of work factory.
type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	notifier       ports.Notifier
	store          ports.ObjectStore
	gateway        ports.PaymentGateway
	matcher        services.ProducerMatcher
	analyzer       geometry.Analyzer
	disputeWindow  time.Duration
	payoutDelay    time.Duration
	commissionRate float64
	logger         zerolog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	store ports.ObjectStore,
	gateway ports.PaymentGateway,
	logger zerolog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		store:      store,
		gateway:    gateway,
		matcher:    services.NewProducerMatcher(),
		analyzer: geometry.NewAnalyzerWithLimits(
			intOrDefault(configs.TriangleLimit, geometry.DefaultTriangleLimit),
			intOrDefault(configs.PreviewLimit, geometry.DefaultPreviewLimit),
		),
		disputeWindow:  daysOrZero(configs.DisputeWindowDays),
		payoutDelay:    daysOrZero(configs.PayoutDelayDays),
		commissionRate: floatOrZero(configs.CommissionRate),
		logger:         logger,
	}
}

// intOrDefault parses an env-sourced integer, keeping the fallback for empty
// or malformed values.
func intOrDefault(value string, fallback int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// daysOrZero converts an env-sourced day count to a duration. Zero means
// "use the domain default", which the handler constructors apply.
func daysOrZero(value string) time.Duration {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0
	}
	return time.Duration(parsed) * 24 * time.Hour
}

func floatOrZero(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed <= 0 {
		return 0
	}
	return parsed
}

func (c *CompositionRoot) CreateRegisterParticipantCommandHandler() commands.RegisterParticipantCommandHandler {
	var f commands.ParticipantUoWFactory = FuncParticipantUoWFactory(func() commands.ParticipantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterParticipantCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUploadModelCommandHandler() commands.UploadModelCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUploadModelCommandHandler(f, c.analyzer, c.store)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.matcher, c.notifier, c.commissionRate, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.AcceptUoWFactory = FuncAcceptUoWFactory(func() commands.AcceptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.gateway, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.AcceptUoWFactory = FuncAcceptUoWFactory(func() commands.AcceptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateSetShippingInfoCommandHandler() commands.SetShippingInfoCommandHandler {
	return commands.NewSetShippingInfoCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetTrackingCommandHandler() commands.SetTrackingCommandHandler {
	return commands.NewSetTrackingCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAttachPhotoCommandHandler() commands.AttachPhotoCommandHandler {
	var f commands.PhotoUoWFactory = FuncPhotoUoWFactory(func() commands.PhotoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachPhotoCommandHandler(f, c.store, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteProductionCommandHandler() commands.CompleteProductionCommandHandler {
	var f commands.PhotoUoWFactory = FuncPhotoUoWFactory(func() commands.PhotoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteProductionCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.settlementUoWFactory(), c.notifier, c.payoutDelay, c.logger)
}

func (c *CompositionRoot) CreateOpenDisputeCommandHandler() commands.OpenDisputeCommandHandler {
	var f commands.AcceptUoWFactory = FuncAcceptUoWFactory(func() commands.AcceptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenDisputeCommandHandler(f, c.notifier, c.disputeWindow, c.logger)
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	return commands.NewResolveDisputeCommandHandler(c.settlementUoWFactory(), c.gateway, c.notifier, c.payoutDelay, c.logger)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() (commands.CancelStaleOrdersCommandHandler, error) {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateArchivePhotosCommandHandler() (commands.ArchivePhotosCommandHandler, error) {
	var f commands.ArchiveUoWFactory = FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchivePhotosCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetProducerPoolQueryHandler() queries.GetProducerPoolQueryHandler {
	return queries.NewGetProducerPoolQueryHandler(c.gormDB, c.matcher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMarketplaceStatsQueryHandler() queries.GetMarketplaceStatsQueryHandler {
	return queries.NewGetMarketplaceStatsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every handler the HTTP server routes to.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		RegisterParticipant: c.CreateRegisterParticipantCommandHandler(),
		UploadModel:         c.CreateUploadModelCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		AcceptOrder:         c.CreateAcceptOrderCommandHandler(),
		RejectOrder:         c.CreateRejectOrderCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		MarkOrderPaid:       c.CreateMarkOrderPaidCommandHandler(),
		SetShippingInfo:     c.CreateSetShippingInfoCommandHandler(),
		SetTracking:         c.CreateSetTrackingCommandHandler(),
		AttachPhoto:         c.CreateAttachPhotoCommandHandler(),
		CompleteProduction:  c.CreateCompleteProductionCommandHandler(),
		ConfirmDelivery:     c.CreateConfirmDeliveryCommandHandler(),
		OpenDispute:         c.CreateOpenDisputeCommandHandler(),
		ResolveDispute:      c.CreateResolveDisputeCommandHandler(),
		GetProducerPool:     c.CreateGetProducerPoolQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetMarketplaceStats: c.CreateGetMarketplaceStatsQueryHandler(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

type FuncParticipantUoWFactory func() commands.ParticipantUoW

func (f FuncParticipantUoWFactory) Create() commands.ParticipantUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncAcceptUoWFactory func() commands.AcceptUoW

func (f FuncAcceptUoWFactory) Create() commands.AcceptUoW {
	return f()
}

type FuncPhotoUoWFactory func() commands.PhotoUoW

func (f FuncPhotoUoWFactory) Create() commands.PhotoUoW {
	return f()
}

type FuncArchiveUoWFactory func() commands.ArchiveUoW

func (f FuncArchiveUoWFactory) Create() commands.ArchiveUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
