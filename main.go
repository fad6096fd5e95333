package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Sandeepkd1824/tummy-tap/configs"
	"github.com/Sandeepkd1824/tummy-tap/middlewares"
	"github.com/Sandeepkd1824/tummy-tap/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
