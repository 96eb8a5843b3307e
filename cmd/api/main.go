package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"booklib/internal/auth"
	"booklib/internal/entity"
	apphttp "booklib/internal/http"
	"booklib/internal/httpx"
	"booklib/internal/store"
	"booklib/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":7081")
	maxBodyBytes := getEnvInt64("MAX_BODY_BYTES", 1<<20)
	rateLimitRPS := getEnvFloat("RATE_LIMIT_RPS", 50)
	rateLimitBurst := int(getEnvInt64("RATE_LIMIT_BURST", 100))
	allowedOrigins := strings.Split(getEnv("ALLOWED_ORIGINS", ""), ",")

	gate := auth.NewGate(auth.DefaultCredentials(
		getEnv("ADMIN_USERNAME", "admin"),
		getEnv("ADMIN_PASSWORD", "password"),
		getEnv("USER_USERNAME", "user"),
		getEnv("USER_PASSWORD", "password"),
	))

	catalog := store.NewBookMem()
	if getEnv("SEED_BOOKS", "") == "true" {
		books := seedBooks()
		catalog.Seed(books)
		log.Printf("seeded catalog with %d books", len(books))
	}

	bookService := usecase.NewBookService(catalog)
	bookHandler := apphttp.NewBookHandler(bookService)
	router := apphttp.NewRouter(bookHandler)

	rateLimit := httpx.NewRateLimitMiddleware(rateLimitRPS, rateLimitBurst)

	var handler http.Handler = router
	handler = httpx.BasicAuthMiddleware(gate)(handler)
	handler = httpx.RequestSizeLimitMiddleware(maxBodyBytes)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.CORSMiddleware(allowedOrigins)(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// seedBooks is the canonical fixture catalog: clients written against the
// stock deployment expect a book with id 1 to exist.
func seedBooks() []entity.Book {
	return []entity.Book{
		{ID: 1, Title: "The World: A Family History", Author: "Simon Sebag Montefiore"},
		{ID: 2, Title: "Jadunama", Author: "Javed Akhtar and Arvind Mandloi"},
		{ID: 3, Title: "The Lord of the Rings", Author: "J.R.R. Tolkien"},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Fatalf("invalid value for %s: %s", key, v)
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Fatalf("invalid value for %s: %s", key, v)
	}
	return def
}
