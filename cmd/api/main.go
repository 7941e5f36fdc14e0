package main

import (
	"context"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/quantumcareers/backend/internal/assessment"
	"github.com/quantumcareers/backend/internal/config"
	"github.com/quantumcareers/backend/internal/handler"
	"github.com/quantumcareers/backend/internal/logger"
	"github.com/quantumcareers/backend/internal/mistral"
	"github.com/quantumcareers/backend/internal/store"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Store   *store.Store
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s llm=%t mirror=%t", cfg.Env, cfg.MistralEnabled(), cfg.MongoEnabled())

	// The mirror is optional: a connection failure only disables it, the
	// in-memory store stays authoritative.
	var mirror store.Mirror
	if cfg.MongoEnabled() {
		client, err := connectMongo(ctx, cfg.Mongo.URL)
		if err != nil {
			sugar.Warnw("mongo mirror disabled", "err", err)
		} else {
			defer client.Disconnect(ctx)
			mirror = store.NewMongoMirror(client.Database(cfg.Mongo.DBName))
		}
	}

	llm := mistral.NewClient(cfg.Mistral.APIKey, cfg.Mistral.Model, cfg.Mistral.BaseURL, cfg.Mistral.Timeout)
	st := store.New(mirror, log)

	app := &application{
		Logger: log,
		Config: cfg,
		Store:  st,
		Handler: &handler.Handler{
			Logger:         log,
			Store:          st,
			LLM:            llm,
			Generator:      assessment.NewGenerator(llm, log),
			MaxUploadBytes: cfg.Upload.MaxBytes,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

func connectMongo(ctx context.Context, url string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, err
	}
	return client, nil
}
