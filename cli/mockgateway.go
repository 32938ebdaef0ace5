package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmereats/config"
	"farmereats/handlers"
	"farmereats/routes"
	"farmereats/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func mockGatewayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mock-gateway",
		Short: "Run the local stub of the FarmerEats API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := utils.GetLogger()

			if config.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}
			router := gin.New()
			router.Use(gin.Recovery())
			router.Use(utils.ErrorHandler())
			router.Use(gin.Logger())

			hb := handlers.NewHandlerBundle()
			routes.RegisterRoutes(router, hb)

			srv := &http.Server{
				Addr:    ":" + config.AppConfig.MockPort,
				Handler: router,
			}

			go func() {
				logger.Info("Stub gateway listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("Stub gateway failed", zap.Error(err))
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}
}
