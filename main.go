package main

import (
	"log/slog"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded, using environment variables from system if set")
	}
	Execute()
}
