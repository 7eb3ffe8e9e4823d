package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/tdngo/gomarket-api/configs"
	"github.com/tdngo/gomarket-api/internal/adapter/cache"
	httpadapter "github.com/tdngo/gomarket-api/internal/adapter/http"
	"github.com/tdngo/gomarket-api/internal/adapter/http/middleware"
	"github.com/tdngo/gomarket-api/internal/adapter/kafka"
	"github.com/tdngo/gomarket-api/internal/adapter/queue"
	"github.com/tdngo/gomarket-api/internal/adapter/repo"
	"github.com/tdngo/gomarket-api/internal/clock"
	"github.com/tdngo/gomarket-api/internal/logging"
	"github.com/tdngo/gomarket-api/internal/security"
	"github.com/tdngo/gomarket-api/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init(cfg.App.Name, cfg.App.LogFile)
	logger.Info("market-api: starting up")

	// init mongo
	db, closeMongo, err := repo.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Timeout)
	if err != nil {
		return nil, nil, err
	}

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		closeMongo()
		return nil, nil, err
	}

	// init rabbitmq
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		closeMongo()
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		closeMongo()
		return nil, nil, err
	}
	producer, err := queue.NewRabbitProducer(ch)
	if err != nil {
		closeMongo()
		return nil, nil, err
	}

	// infra
	orderRepo := repo.NewMongoOrderRepo(db)
	productRepo := repo.NewMongoProductRepo(db)
	shopRepo := repo.NewMongoShopRepo(db)
	userRepo := repo.NewMongoUserRepo(db)
	couponRepo := repo.NewMongoCouponRepo(db)
	eventRepo := repo.NewMongoEventRepo(db)
	conversationRepo := repo.NewMongoConversationRepo(db)
	messageRepo := repo.NewMongoMessageRepo(db)
	withdrawRepo := repo.NewMongoWithdrawRepo(db)
	redisCache := cache.NewRedisCache(rdb, cfg.Cache.TTL)

	// usecases
	clk := clock.NewSystem()
	checkoutUC := usecase.NewCheckout(orderRepo, redisCache, producer, clk)
	lifecycleUC := usecase.NewOrderLifecycle(orderRepo, productRepo, shopRepo, redisCache, clk)
	withdrawUC := usecase.NewWithdrawals(withdrawRepo, shopRepo, clk)

	// register kafka-listener for payment events
	setupKafkaListener(cfg, orderRepo, redisCache)

	// handlers + router + middleware
	tokens := security.NewTokens(cfg)
	authz := middleware.NewAuthz(tokens, userRepo, shopRepo)
	handlers := httpadapter.Handlers{
		Users:         httpadapter.NewUserHandler(userRepo, tokens),
		Shops:         httpadapter.NewShopHandler(shopRepo, tokens),
		Products:      httpadapter.NewProductHandler(productRepo),
		Events:        httpadapter.NewEventHandler(eventRepo),
		Coupons:       httpadapter.NewCouponHandler(couponRepo),
		Orders:        httpadapter.NewOrderHandler(checkoutUC, lifecycleUC, orderRepo, redisCache),
		Withdrawals:   httpadapter.NewWithdrawHandler(withdrawUC, withdrawRepo),
		Conversations: httpadapter.NewConversationHandler(conversationRepo, messageRepo, producer),
	}
	router := httpadapter.NewRouter(handlers, authz)

	cleanup := func() {
		closeMongo()
		_ = rdb.Close()
		_ = ch.Close()
		_ = conn.Close()
	}

	return &App{Router: router}, cleanup, nil
}

func setupKafkaListener(cfg configs.Config, orderRepo *repo.MongoOrderRepo, redisCache *cache.RedisCache) {
	if len(cfg.Kafka.Brokers) == 0 {
		return
	}
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		panic(err)
	}

	h := kafka.NewPaymentStatusHandler(orderRepo, redisCache)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.Topic}, h.Handle)
	consumer.Logger = logging.New("kafka")

	go func() {
		if err := consumer.Start(context.Background()); err != nil && err != context.Canceled {
			panic(err)
		}
	}()
}
