/**
 * @description
 * This is the main entry point for the payment-api. It is responsible for
 * initializing all components of the service: configuration, the Redis
 * connection, the cash-out repository, the core payment service, and the
 * HTTP server. It wires everything together and starts the service.
 *
 * @dependencies
 * - log, net/http: Standard Go libraries for logging and HTTP server functionality.
 * - github.com/redis/go-redis/v9: Redis client.
 * - internal/api, internal/app, internal/config, internal/store: Internal packages for the service.
 */

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/emensonlima01/payment-api/internal/api"
	"github.com/emensonlima01/payment-api/internal/app"
	"github.com/emensonlima01/payment-api/internal/config"
	"github.com/emensonlima01/payment-api/internal/domain"
	"github.com/emensonlima01/payment-api/internal/store"
)

func main() {
	// Load application configuration from environment variables.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"config load failed\" err=%v", err)
	}

	log.Printf("level=info component=bootstrap msg=\"starting payment-api\" port=%s", cfg.ServerPort)

	// The Redis connection string is passed to the client as-is; the
	// remaining options from configuration are layered on top.
	redisOptions, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"redis url parse failed\" err=%v", err)
	}
	redisOptions.DialTimeout = time.Duration(cfg.RedisDialTimeoutMs) * time.Millisecond
	redisOptions.ReadTimeout = time.Duration(cfg.RedisReadTimeoutMs) * time.Millisecond
	redisOptions.WriteTimeout = time.Duration(cfg.RedisWriteTimeoutMs) * time.Millisecond
	redisOptions.MaxRetries = cfg.RedisMaxRetries
	if cfg.RedisPoolSize > 0 {
		redisOptions.PoolSize = cfg.RedisPoolSize
	}
	if cfg.RedisKeepAliveSec > 0 {
		redisOptions.ConnMaxIdleTime = time.Duration(cfg.RedisKeepAliveSec) * time.Second
	}

	// A single long-lived client shared by every request; the client is safe
	// for concurrent use and single-key operations are atomic on the server.
	redisClient := redis.NewClient(redisOptions)
	defer redisClient.Close()

	// A failed ping does not prevent startup: store failures surface per
	// request, and the health endpoint reflects connectivity.
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if pingErr := redisClient.Ping(pingCtx).Err(); pingErr != nil {
		log.Printf("level=warn component=bootstrap msg=\"redis ping failed; store operations will fail until connectivity returns\" err=%v", pingErr)
	} else {
		log.Println("level=info component=bootstrap msg=\"redis connected\"")
	}
	cancelPing()

	// Initialize the data access layer (typed KV store + repository).
	cashOutKV := store.NewKV[domain.CashOutRecord](redisClient)
	repository := store.NewCashOutRepository(cashOutKV)

	// Initialize the core application service with its dependencies.
	paymentService := app.NewService(repository)

	// Initialize the API handlers and router.
	handlers := api.NewPaymentHandlers(paymentService)
	storeProbe := func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	}
	router := api.PaymentRoutes(handlers, storeProbe, cfg.EnableAPIDocs)
	if cfg.EnableAPIDocs {
		log.Println("level=info component=bootstrap msg=\"api docs enabled\" path=/docs")
	}

	// Start the HTTP server.
	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("level=info component=http msg=\"server listening\" addr=%s", serverAddr)

	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("level=fatal component=http msg=\"server stopped unexpectedly\" err=%v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("level=info component=http msg=\"shutdown started\"")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("level=error component=http msg=\"shutdown failed\" err=%v", err)
	}

	log.Println("level=info component=http msg=\"shutdown complete\"")
}
