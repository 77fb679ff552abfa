package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spigell/cv-matcher/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the matching engine over HTTP",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default 127.0.0.1:8080)")
	serveCmd.Flags().Int("concurrency", 0, "how many candidates a batch request scores at once (default GOMAXPROCS)")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

func serve(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cmd.Flags().Changed("concurrency") {
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		viper.Set("batch.concurrency", concurrency)
	}

	logger, config, engine := setup()
	logger.Info("starting the cv-matcher server", zap.String("listen", config.Server.Listen))

	if err := server.New(engine, logger).ListenAndServe(ctx, config.Server.Listen); err != nil {
		logger.Fatal("serving", zap.Error(err))
	}
}
