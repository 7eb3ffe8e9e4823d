package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"github.com/tdngo/gomarket-api/configs"
	"github.com/tdngo/gomarket-api/internal/adapter/queue"
	"github.com/tdngo/gomarket-api/internal/logging"
	"github.com/tdngo/gomarket-api/internal/relay"
	"github.com/tdngo/gomarket-api/internal/usecase"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.Init("market-relay", cfg.App.LogFile)
	hub := relay.NewHub(logging.New("hub"))
	go hub.Run()

	// Bridge conversation.updated events from the REST API into the hub.
	if err := setupQueue(cfg, hub); err != nil {
		logger.Warn("rabbitmq unavailable, last-message fanout disabled", "err", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", relay.ServeWS(hub))

	logger.Info("market-relay listening", "addr", cfg.Relay.HTTPAddr)
	if err := r.Run(cfg.Relay.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

func setupQueue(cfg configs.Config, hub *relay.Hub) error {
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	if _, err := queue.NewRabbitProducer(ch); err != nil {
		// Producer setup also declares the relay queue and its binding.
		return err
	}

	router := queue.NewRouter(ch, queue.WithPrefetch(50))
	router.Register(queue.QueueRelayLastMessage, queue.JSONHandler[usecase.ConversationUpdatedMsg]{
		HandleFunc: func(ctx context.Context, msg usecase.ConversationUpdatedMsg) error {
			hub.BroadcastLastMessage(msg.LastMessage, msg.LastMessageID)
			return nil
		},
	})
	return router.Start()
}
