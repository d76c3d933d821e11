package main

import (
	"net/http"
	"os"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Points to the internal port of the gateway
	resp, err := http.Get("http://localhost:" + port + "/ping")
	if err != nil || resp.StatusCode != http.StatusOK {
		os.Exit(1) // Docker marks as UNHEALTHY
	}
	os.Exit(0) // Docker marks as HEALTHY
}
