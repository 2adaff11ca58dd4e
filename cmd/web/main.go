package main

import (
	"revhire_backend/internal/app"
	"revhire_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("Server exited", "error", err.Error())
	}
}
