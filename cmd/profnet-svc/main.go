package main

import (
	"log"
	"net"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"profnet/internal/common"
	"profnet/internal/config"
	"profnet/internal/dbmysql"
	"profnet/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()
	log.Println("Configuration loaded")

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully")

	core := di.InitializeCore(cfg, db)
	log.Println("Dependencies wired successfully")

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			common.AuthInterceptor(),
			common.ErrorInterceptor(),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	for name, ready := range core.ServiceStatus() {
		status := healthpb.HealthCheckResponse_NOT_SERVING
		if ready {
			status = healthpb.HealthCheckResponse_SERVING
		}
		healthServer.SetServingStatus(name, status)
	}

	reflection.Register(server)
	log.Println("gRPC reflection enabled")

	listener, err := net.Listen("tcp", ":"+cfg.Server.Port)
	if err != nil {
		log.Fatalf("Failed to listen on port %s: %v", cfg.Server.Port, err)
	}

	log.Printf("profnet service listening on :%s", cfg.Server.Port)
	if err := server.Serve(listener); err != nil {
		log.Fatalf("Failed to serve gRPC: %v", err)
	}
}
