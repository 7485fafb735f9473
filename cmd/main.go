package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchen-drone/internal/config"
	httpapi "kitchen-drone/internal/http"
	"kitchen-drone/internal/repository"
	"kitchen-drone/internal/service"

	_ "kitchen-drone/docs"
)

func main() {
	cfg := config.Load()

	store := repository.NewMemoryStore()
	ordersSvc := service.NewOrderService(store)

	srv := httpapi.NewServer(ordersSvc)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
