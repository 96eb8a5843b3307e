package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"booklib/internal/entity"

	"github.com/joho/godotenv"
)

// Loads the fixture catalog into a running API over HTTP. Safe to re-run:
// identical re-submissions come back as 208 and are counted, not failed.
func main() {
	_ = godotenv.Load(".env.local")

	baseURL := getEnv("API_URL", "http://localhost:7081")
	adminUser := getEnv("ADMIN_USERNAME", "admin")
	adminPass := getEnv("ADMIN_PASSWORD", "password")

	client := &http.Client{Timeout: 5 * time.Second}

	books := []entity.Book{
		{ID: 1, Title: "The World: A Family History", Author: "Simon Sebag Montefiore"},
		{ID: 2, Title: "Jadunama", Author: "Javed Akhtar and Arvind Mandloi"},
		{ID: 3, Title: "The Lord of the Rings", Author: "J.R.R. Tolkien"},
		{ID: 4, Title: "A Brief History of Time", Author: "Stephen Hawking"},
		{ID: 5, Title: "The Go Programming Language", Author: "Alan A. A. Donovan and Brian W. Kernighan"},
	}

	var created, existing, failed int
	for _, book := range books {
		status, err := postBook(client, baseURL, adminUser, adminPass, book)
		switch {
		case err != nil:
			failed++
			log.Printf("seed id=%d error: %v", book.ID, err)
		case status == http.StatusCreated:
			created++
		case status == http.StatusAlreadyReported:
			existing++
		default:
			failed++
			log.Printf("seed id=%d unexpected status %d", book.ID, status)
		}
	}

	log.Printf("seed finished: created=%d existing=%d failed=%d", created, existing, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func postBook(client *http.Client, baseURL, username, password string, book entity.Book) (int, error) {
	body, err := json.Marshal(book)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/books", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.SetBasicAuth(username, password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("POST %s: %w", req.URL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
