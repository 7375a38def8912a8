package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fstagno77/travel-organizer-sub001/api"
	"github.com/fstagno77/travel-organizer-sub001/config"
	"github.com/fstagno77/travel-organizer-sub001/internal/category"
	"github.com/fstagno77/travel-organizer-sub001/internal/service/share"
	"github.com/fstagno77/travel-organizer-sub001/internal/service/trips"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, tripSvc trips.TripUseCase, shareSvc share.ShareUseCase) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, tripSvc, shareSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, tripSvc trips.TripUseCase, shareSvc share.ShareUseCase) *gin.Engine {
	router := gin.Default()

	registry := category.NewRegistry()

	tripHandler := api.NewTripHandler(tripSvc)
	timelineHandler := api.NewTimelineHandler(tripSvc, registry, cfg.Timeline.Locale)
	shareHandler := api.NewShareHandler(shareSvc)

	tripGroup := router.Group("/trips")
	tripHandler.Register(tripGroup)
	timelineHandler.Register(tripGroup)

	shareGroup := router.Group("/shares")
	shareHandler.Register(shareGroup)

	return router
}
