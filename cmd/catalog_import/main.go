package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gympro/internal/config"
	"github.com/2beens/gympro/internal/db"
	"github.com/2beens/gympro/internal/exercises"
	"github.com/2beens/gympro/internal/logging"
)

func main() {
	fmt.Println("starting catalog import ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	catalogPath := flag.String("catalog", "./exercises.json", "path of the exercises catalog json file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	secrets, err := config.LoadSecrets(ctx, ".env")
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	catalogFile, err := os.Open(*catalogPath)
	if err != nil {
		log.Fatalf("open catalog file: %s", err)
	}
	defer func() {
		if err := catalogFile.Close(); err != nil {
			log.Warnf("close catalog file: %s", err)
		}
	}()

	catalog, skipped, err := readCatalog(catalogFile)
	if err != nil {
		log.Fatalf("read catalog: %s", err)
	}
	log.Infof("read %d exercises from [%s], skipped %d", len(catalog), *catalogPath, skipped)

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     secrets.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.EnsureSchema(ctx, dbPool); err != nil {
		log.Fatalf("ensure db schema: %s", err)
	}

	upserted, err := exercises.NewRepo(dbPool).Upsert(ctx, catalog)
	if err != nil {
		log.Fatalf("upsert catalog, %d exercises stored before failure: %s", upserted, err)
	}

	log.Infof("catalog import done, %d exercises stored", upserted)
}
