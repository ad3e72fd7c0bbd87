package main

import (
	"yakjeong/core/logger"
	"yakjeong/core/server"
)

// @title YakJeong API
// @version 1.0
// @description Scheduling poll backend: rooms, participants, versioned responses and optimal-time aggregation
// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
