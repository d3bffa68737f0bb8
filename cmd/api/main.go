package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EnamulBokshi/skillbridge-server/internal/config"
	dbpkg "github.com/EnamulBokshi/skillbridge-server/internal/db"
	infraRepo "github.com/EnamulBokshi/skillbridge-server/internal/infra/repository"
	"github.com/EnamulBokshi/skillbridge-server/internal/routes"
	ucBooking "github.com/EnamulBokshi/skillbridge-server/internal/usecase/booking"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	go runExpireSweep(cfg, ucBooking.NewExpirePastBookings(infraRepo.NewBookingGormRepository(db)))

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// runExpireSweep periodically drops stale pending bookings so their slots
// become claimable again.
func runExpireSweep(cfg *config.Config, uc *ucBooking.ExpirePastBookings) {
	ticker := time.NewTicker(cfg.ExpireSweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		removed, err := uc.Execute(ctx)
		cancel()
		if err != nil {
			log.Printf("expire sweep failed: %v", err)
			continue
		}
		if removed > 0 {
			log.Printf("expire sweep removed %d stale bookings", removed)
		}
	}
}
