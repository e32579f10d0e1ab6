package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	middleware "github.com/rgdevment/phone-tracer/internal/platform/http/middleware"

	"github.com/rgdevment/phone-tracer/internal/platform/carrier"
	httpHandler "github.com/rgdevment/phone-tracer/internal/platform/http"
	"github.com/rgdevment/phone-tracer/internal/platform/storage/jsonfile"
	"github.com/rgdevment/phone-tracer/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	port := os.Getenv("HTTP_PORT")
	dataDir := os.Getenv("TRACER_DATA_DIR")
	numverifyKey := os.Getenv("NUMVERIFY_API_KEY")

	if port == "" {
		port = ":8000"
	}
	if dataDir == "" {
		dataDir = "./data"
	}

	log.Println("🛡️  Starting PhoneTracer backend...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("❌ Could not build logger: %v", err)
	}
	defer logger.Sync()

	repo := jsonfile.NewStore(dataDir)

	live := carrier.NewNumVerify(numverifyKey)
	if live == nil {
		log.Println("⚠️  NUMVERIFY_API_KEY not set, carrier data comes from offline numbering plans")
	}

	svc := service.NewTraceService(repo, live)

	handler := httpHandler.NewHandler(svc, logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.AllowAll)

	handler.RegisterRoutes(r)

	log.Printf("🚀 Backend listening on http://localhost%s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatalf("❌ HTTP server error: %v", err)
	}
}
