package workers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"gosyncswap/config"
	"gosyncswap/workers/handlers"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func Worker_HTTP() {
	log.Info().Msg("starting HTTP service")

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)

	r.Mount("/api", APIRouter())

	// a bit of logic to prevent directory listing
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		workDir, _ := os.Getwd()
		filesDir := filepath.Join(workDir, config.APP_DIR)
		filePath := filepath.Join(filesDir, r.URL.Path)

		fileInfo, err := os.Stat(filePath)
		if err != nil || fileInfo.IsDir() {
			filePath = filepath.Join(filesDir, "index.html")
			fileInfo, _ = os.Stat(filePath)
		}

		file, err := os.Open(filePath)
		if err != nil {
			// this should not happen at this point
			http.Error(w, "unable to open", http.StatusInternalServerError)
			return
		}
		defer file.Close()

		http.ServeContent(w, r, file.Name(), fileInfo.ModTime(), file)
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Config.Server.Port),
		Handler: r,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("error listening")
		}
	}()
	log.Info().Int("port", config.Config.Server.Port).Msg("HTTP service started")

	<-done
	log.Info().Msg("HTTP service stopping")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("HTTP service shutdown error")
	}
	log.Info().Msg("HTTP service shutdown normal")
}

// APIRouter assembles the REST and websocket surface under /api.
func APIRouter() chi.Router {
	r := chi.NewRouter()

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.HealthCheck)

	r.Get("/chains", handlers.GetChains)
	r.Get("/tokens/{chainID}", handlers.GetTokens)

	r.Post("/quote", handlers.GetQuote)
	r.Post("/swap", handlers.ExecuteSwap)
	r.Get("/transactions/{address}", handlers.GetTransactions)

	r.Get("/portfolio/{address}", handlers.GetPortfolio)
	r.Get("/stats", handlers.GetStats)
	r.Get("/prices", handlers.GetPrices)
	r.Get("/market-data", handlers.GetMarketData)

	r.Get("/sdk/widget-config", handlers.GetWidgetConfig)
	r.Post("/sdk/embed-quote", handlers.GetEmbedQuote)

	r.Get("/ws", handlers.Websocket)

	return r
}
