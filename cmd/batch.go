package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spigell/cv-matcher/internal/filtering"
	"github.com/spigell/cv-matcher/internal/input"
	"github.com/spigell/cv-matcher/internal/matching"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptPrint           = "Print results"
	PromptReportByQuality = "Report by match quality"
	PromptFilters         = "Show filters"
	PromptResultsToFile   = "Dump results to file"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptPrint, PromptReportByQuality, PromptFilters, PromptResultsToFile, PromptExit},
}

var batchCmd = &cobra.Command{
	Use:   "batch --job <file> <candidate files or directories...>",
	Short: "Score many candidates against one job, filter and rank them",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		batch(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().String("job", "", "job JSON file, - for stdin")
	batchCmd.Flags().String("job-json", "", "job JSON document given inline")
	batchCmd.Flags().BoolP("auto-approve", "y", false, "print the results without asking what to do with them")
	batchCmd.Flags().Int("concurrency", 0, "how many candidates are scored at once (default GOMAXPROCS)")
	batchCmd.Flags().Int("min-score", 0, "drop candidates scoring below this")
	batchCmd.Flags().String("quality", "", "drop candidates below this match quality")
	batchCmd.Flags().Int("top", 0, "keep only the best N candidates")
	batchCmd.Flags().StringSlice("disable-filter", nil, "filter steps to skip (failed, min_score, quality, top)")

	viper.BindPFlag("batch.concurrency", batchCmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("batch.min-score", batchCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("batch.quality", batchCmd.Flags().Lookup("quality"))
	viper.BindPFlag("batch.top", batchCmd.Flags().Lookup("top"))
}

func batch(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, config, engine := setup()

	logger.Info("starting the cv-matcher batch", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	flags := cmd.Flags()
	jobFile, _ := flags.GetString("job")
	jobInline, _ := flags.GetString("job-json")

	job, err := loadJob(input.Source{Name: "job", Value: jobInline, File: jobFile})
	if err != nil {
		logger.Fatal("loading job", zap.Error(err))
	}

	docs, err := input.LoadAll("candidates", args)
	if err != nil {
		logger.Fatal("loading candidates", zap.Error(err))
	}

	candidates, err := decodeCandidates(logger, docs)
	if err != nil {
		logger.Fatal("decoding candidates", zap.Error(err))
	}

	if len(candidates) == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates found"))
		return
	}

	evaluations, err := engine.EvaluateBatch(ctx, candidates, job)
	if err != nil {
		logger.Fatal("evaluating candidates", zap.Error(err))
	}

	steps := filtering.Default()
	disabled, _ := flags.GetStringSlice("disable-filter")
	for _, name := range disabled {
		filtering.DisableByName(steps, name, "disabled via flag")
	}

	filterConfig := &filtering.Config{
		MinScore: config.Batch.MinScore,
		Quality:  config.Batch.Quality,
		Top:      config.Batch.Top,
	}

	evaluations, err = filtering.Run(ctx, filterConfig, filtering.Deps{Logger: logger}, steps, evaluations)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if evaluations.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	autoApprove, _ := flags.GetBool("auto-approve")
	if autoApprove {
		if err := handleAction(PromptPrint, cmd.OutOrStdout(), logger, steps, evaluations); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		logger.Info("current list of candidates", zap.Int("count", evaluations.Len()))

		if err := handleAction(action, cmd.OutOrStdout(), logger, steps, evaluations); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, out io.Writer, logger *zap.Logger, steps []filtering.Filter, evaluations *matching.Evaluations) error {
	switch action {
	case PromptPrint:
		return printJSON(out, evaluations)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByQuality:
		pretty, _ := json.MarshalIndent(evaluations.ReportByQuality(), "", "  ")
		logger.Info(string(pretty), zap.Int("candidates count", evaluations.Len()))
		return nil
	case PromptFilters:
		pretty, _ := json.MarshalIndent(filtering.Describe(steps), "", "  ")
		logger.Info(string(pretty))
		return nil
	case PromptResultsToFile:
		filename, err := evaluations.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
