package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ariefcatur/go-laundry-pos.git/internal/cache"
	"github.com/ariefcatur/go-laundry-pos.git/internal/config"
	kafkax "github.com/ariefcatur/go-laundry-pos.git/internal/kafka"
	"github.com/ariefcatur/go-laundry-pos.git/internal/pos"
	"github.com/ariefcatur/go-laundry-pos.git/internal/redisx"
	"github.com/joho/godotenv"
)

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Service
	svc := &cache.Service{
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-cacheworker",
	}

	// Consumer
	group := getenv("CACHEWORKER_GROUP", "cacheworker-svc")
	workers := mustAtoi(os.Getenv("CACHEWORKER_WORKERS"), "4")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, pos.TopicOrderCreated, workers)

	go func() {
		log.Printf("cacheworker consumer started: group=%s topic=%s workers=%d", group, pos.TopicOrderCreated, workers)
		if err := cons.Start(ctx, svc.HandleOrderCreated); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
