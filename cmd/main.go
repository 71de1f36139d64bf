package main

import (
	"backend/config"
	"backend/logger"
	"backend/routes"
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
