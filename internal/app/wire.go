//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"fulfillment/internal/gateway/paystack"
	"fulfillment/internal/handlers/rest/delivery_get"
	"fulfillment/internal/handlers/rest/delivery_status_post"
	"fulfillment/internal/handlers/rest/fee_quote_post"
	"fulfillment/internal/handlers/rest/payment_initialize_post"
	"fulfillment/internal/handlers/rest/payment_verify_get"
	"fulfillment/internal/handlers/tasks/notification_cleanup"
	"fulfillment/internal/pkg/config"

	courierRepo "fulfillment/internal/repository/courier"
	deliveryRepo "fulfillment/internal/repository/delivery"
	notificationRepo "fulfillment/internal/repository/notification"
	orderRepo "fulfillment/internal/repository/order"
	courierService "fulfillment/internal/service/courier"
	deliveryService "fulfillment/internal/service/delivery"
	feeService "fulfillment/internal/service/fee"
	notificationService "fulfillment/internal/service/notification"
	paymentService "fulfillment/internal/service/payment"

	"fulfillment/pkg/background"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/querier"
	"fulfillment/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
)

type Application struct {
	ServiceFee        ServiceFee
	ServiceDelivery   ServiceDelivery
	ServicePayment    ServicePayment
	BackgroundWorkers *background.Worker
}

type ServiceFee interface {
	fee_quote_post.Service
}

type ServiceDelivery interface {
	delivery_status_post.Service
	delivery_get.Service
}

type ServicePayment interface {
	payment_initialize_post.Service
	payment_verify_get.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,

		provideCourierRepository,
		provideDeliveryRepository,
		provideNotificationRepository,
		provideOrderRepository,

		provideServiceFee,
		provideServiceNotification,
		provideServiceCourier,
		provideServiceDelivery,
		providePaystackGateway,
		provideServicePayment,

		provideNotificationCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceFee), new(*feeService.Resolver)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.NotificationService), new(*notificationService.Service)),
		wire.Bind(new(deliveryService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),

		wire.Bind(new(paymentService.Gateway), new(*paystack.Gateway)),
		wire.Bind(new(paymentService.FeeResolver), new(*feeService.Resolver)),
		wire.Bind(new(paymentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(paymentService.DeliveryRepository), new(*deliveryRepo.Repository)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notification_cleanup.Service), new(*notificationService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ServicePayment *paymentService.Payment
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-payment-events).
func InitializeKafkaWorkerApp(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideDeliveryRepository,
		provideOrderRepository,

		provideServiceFee,
		providePaystackGateway,
		provideServicePayment,

		wire.Bind(new(paymentService.Gateway), new(*paystack.Gateway)),
		wire.Bind(new(paymentService.FeeResolver), new(*feeService.Resolver)),
		wire.Bind(new(paymentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(paymentService.DeliveryRepository), new(*deliveryRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceFee(cfg *config.Config) *feeService.Resolver {
	return feeService.New(feeService.Config{
		RatePerKm:  cfg.Fee.RatePerKm,
		DefaultFee: cfg.Fee.DefaultFee,
		Currency:   cfg.Fee.Currency,
	})
}

func provideServiceNotification(repository notificationService.Repository) *notificationService.Service {
	return notificationService.New(repository)
}

func provideServiceCourier(
	repository courierService.Repository,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, txManager)
}

func provideServiceDelivery(
	log logger.Logger,
	repository deliveryService.Repository,
	orderRepository deliveryService.OrderRepository,
	notifications deliveryService.NotificationService,
	couriers deliveryService.CourierService,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		log,
		repository,
		orderRepository,
		notifications,
		couriers,
		txManager,
	)
}

func providePaystackGateway(cfg *config.Config, httpClient *http.Client) *paystack.Gateway {
	return paystack.New(paystack.Config{
		BaseURL:     cfg.Paystack.BaseURL,
		SecretKey:   cfg.Paystack.SecretKey,
		CallbackURL: cfg.Paystack.CallbackURL,
	}, httpClient)
}

func provideServicePayment(
	log logger.Logger,
	gateway paymentService.Gateway,
	feeResolver paymentService.FeeResolver,
	orderRepository paymentService.OrderRepository,
	deliveryRepository paymentService.DeliveryRepository,
) *paymentService.Payment {
	return paymentService.New(
		log,
		gateway,
		feeResolver,
		orderRepository,
		deliveryRepository,
	)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.NotificationsCleanupInterval)
}

func provideNotificationCleanupTask(
	log logger.Logger,
	notifications notification_cleanup.Service,
	interval CleanupInterval,
) *notification_cleanup.NotificationCleanup {
	return notification_cleanup.NewNotificationCleanup(log, notifications, time.Duration(interval))
}

func provideTaskList(
	notificationCleanupTask *notification_cleanup.NotificationCleanup,
) []background.Task {
	return []background.Task{
		notificationCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
