package main

import (
	"os"
	"time"

	"gosyncswap/config"
	"gosyncswap/realtime"
	"gosyncswap/redis"
	"gosyncswap/workers"
	"gosyncswap/workers/handlers"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	log.Info().Msg("starting SYNC cross-chain swap API")

	config.Init()

	store := redis.NewStore(config.Config.Server.RedisHost, config.Config.Server.RedisPort)
	if err := store.Ping(); err != nil {
		// history reads degrade to empty lists while the store is away,
		// swap execution fails with a 500 until it comes back
		log.Warn().Err(err).Msg("redis not reachable at startup")
	}

	handlers.Store = store
	handlers.Hub = realtime.NewHub()

	workers.Worker_HTTP()
}
