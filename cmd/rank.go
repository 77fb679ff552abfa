package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spigell/cv-matcher/internal/input"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs --candidate <file> <job files or directories...>",
	Short: "Score one candidate against many jobs, best fit first",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rankJobs(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(rankJobsCmd)

	rankJobsCmd.Flags().StringP("candidate", "c", "", "candidate JSON file, - for stdin")
	rankJobsCmd.Flags().String("candidate-json", "", "candidate JSON document given inline")
}

func rankJobs(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, _, engine := setup()

	candidateFile, _ := cmd.Flags().GetString("candidate")
	candidateInline, _ := cmd.Flags().GetString("candidate-json")

	candidate, err := loadCandidate(logger, input.Source{Name: "candidate", Value: candidateInline, File: candidateFile})
	if err != nil {
		logger.Fatal("loading candidate", zap.Error(err))
	}

	jobs, err := loadJobs(args)
	if err != nil {
		logger.Fatal("loading jobs", zap.Error(err))
	}

	evaluations, err := engine.EvaluateJobs(ctx, candidate, jobs)
	if err != nil {
		logger.Fatal("evaluating jobs", zap.Error(err))
	}
	evaluations.SortByScore()

	if err := printJSON(cmd.OutOrStdout(), evaluations); err != nil {
		logger.Fatal("printing results", zap.Error(err))
	}
}
