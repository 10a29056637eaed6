package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffhub-io/staffdir-backend-go/internal/config"
	appHTTP "github.com/staffhub-io/staffdir-backend-go/internal/handler/http"
	"github.com/staffhub-io/staffdir-backend-go/internal/pkg/cache"
	"github.com/staffhub-io/staffdir-backend-go/internal/pkg/database"
	"github.com/staffhub-io/staffdir-backend-go/internal/repository/postgresql"
	staffService "github.com/staffhub-io/staffdir-backend-go/internal/service/staff"
	statisticsService "github.com/staffhub-io/staffdir-backend-go/internal/service/statistics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	var cacheClient *cache.Client
	if cfg.Redis.Addr != "" {
		cacheClient, err = cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.CacheTTL)
		if err != nil {
			log.Fatal("Failed to connect to redis:", err)
		}
		defer cacheClient.Close()
	}

	clientRepo := postgresql.NewClientRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	enrichRepo := postgresql.NewEnrichmentRepository(db)
	statsRepo := postgresql.NewStatisticsRepository(db)

	statsService := statisticsService.NewStatisticsService(statsRepo, clientRepo)
	listService := staffService.NewStaffService(staffRepo, enrichRepo, statsRepo, clientRepo, cacheClient)

	staffHandler := appHTTP.NewStaffHandler(listService)
	statisticsHandler := appHTTP.NewStatisticsHandler(statsService)

	router, err := appHTTP.NewRouter(cfg, staffHandler, statisticsHandler)
	if err != nil {
		log.Fatal("Failed to build router:", err)
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
