package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/caarlos0/env/v11"
	ledgerv1 "github.com/iskorotkov/splitledger-backend/internal/api/ledger/v1"
	"github.com/iskorotkov/splitledger-backend/internal/db"
	"github.com/iskorotkov/splitledger-backend/internal/events"
	"github.com/iskorotkov/splitledger-backend/internal/events/kafka"
	"github.com/iskorotkov/splitledger-backend/internal/middleware"
	"github.com/iskorotkov/splitledger-backend/internal/service"
	"github.com/iskorotkov/splitledger-backend/internal/storage"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", err)
			os.Exit(1)
		}
	}()

	// .env is optional, real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error: load .env: %v\n", err)
		os.Exit(1)
	}

	config, err := env.ParseAs[Config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})))

	if err := run(ctx, config); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type Config struct {
	LogLevel slog.Level `env:"LOG_LEVEL"`
	Addr     string     `env:"ADDR" envDefault:":8080"`
	DB       string     `env:"DB,required"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"expense.recorded"`
}

func run(ctx context.Context, c Config) error {
	pgxConfig, err := pgxpool.ParseConfig(c.DB)
	if err != nil {
		return fmt.Errorf("parse database config: %w", err)
	}
	pgxConfig.AfterConnect = func(ctx context.Context, c *pgx.Conn) error {
		pgxdecimal.Register(c.TypeMap())
		return nil
	}

	conn, err := pgxpool.NewWithConfig(ctx, pgxConfig)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer conn.Close()

	var publisher events.Publisher = events.Nop{}
	if len(c.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(c.KafkaBrokers, c.KafkaTopic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				slog.ErrorContext(ctx, "failed to close kafka publisher", "error", err)
			}
		}()
		publisher = kafkaPublisher
	} else {
		slog.InfoContext(ctx, "no kafka brokers configured, expense events are dropped")
	}

	queries := db.New(conn)
	storage := storage.NewExpenses(conn, queries)
	service := service.NewLedger(storage, publisher)

	mux := http.NewServeMux()
	mux.Handle(ledgerv1.NewLedgerServiceHandler(service,
		connect.WithInterceptors(middleware.LogRequests()),
	))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var protocols http.Protocols
	protocols.SetHTTP1(true)
	protocols.SetHTTP2(true)
	protocols.SetUnencryptedHTTP2(true)

	server := &http.Server{
		Addr:         c.Addr,
		Handler:      h2c.NewHandler(mux, &http2.Server{}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Protocols:    &protocols,
	}

	slog.InfoContext(ctx, "starting server", "addr", c.Addr)
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.InfoContext(ctx, "stopping server")
		if err := server.Shutdown(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to shutdown server", "error", err)
		}
		slog.InfoContext(ctx, "server stopped")
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
