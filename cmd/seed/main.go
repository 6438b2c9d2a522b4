// Seed tool: loads a restcountries v2 style JSON export into the countries
// collection. Records are upserted by name so it can be rerun safely.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"github.com/anonto42/wanderlog/backend/internal/repositories"
	"github.com/anonto42/wanderlog/backend/pkg/config"
	"github.com/sirupsen/logrus"
)

func main() {
	var file, uri, database string
	var timeout time.Duration
	flag.StringVar(&file, "file", "countries.json", "path to the countries JSON array")
	flag.StringVar(&uri, "mongo", "", "mongo connection string (default $MONGO_URI)")
	flag.StringVar(&database, "db", "", "mongo database name (default $MONGO_DATABASE)")
	flag.DurationVar(&timeout, "timeout", time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.LoadStore(map[string]string{
		"MONGO_URI":      uri,
		"MONGO_DATABASE": database,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	countries, err := readCountries(file)
	if err != nil {
		logrus.WithError(err).WithField("file", file).Fatal("failed to read countries")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := config.ConnectMongo(ctx, cfg.MongoURI, cfg.StoreTimeout)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := repositories.NewMongoCountryRepository(client.Database(cfg.MongoDatabase))
	if err := repo.EnsureIndexes(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to create country indexes")
	}

	start := time.Now()
	inserted, updated, err := repo.UpsertCountries(ctx, countries)
	if err != nil {
		logrus.WithError(err).Fatal("failed to seed countries")
	}

	logrus.WithFields(logrus.Fields{
		"read":     len(countries),
		"inserted": inserted,
		"updated":  updated,
		"took":     time.Since(start).Truncate(time.Millisecond).String(),
	}).Info("countries seeded")
}

func readCountries(path string) ([]models.Country, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var countries []models.Country
	if err := json.NewDecoder(f).Decode(&countries); err != nil {
		return nil, err
	}
	return countries, nil
}
