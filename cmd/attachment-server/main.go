package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"profnet/internal/config"
	"profnet/internal/dbmongo"
	"profnet/internal/media"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Close(context.Background())

	attachmentServer := media.NewHTTPServer(mongoClient)

	log.Printf("Attachment HTTP server starting on port %s", cfg.Server.Port)
	log.Printf("Serving files at: http://localhost:%s/attachments/{fileId}", cfg.Server.Port)

	if err := http.ListenAndServe(":"+cfg.Server.Port, attachmentServer); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
