package cmd

import (
	"github.com/spigell/cv-matcher/internal/input"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score one candidate against one job and print the match result",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringP("candidate", "c", "", "candidate JSON file, - for stdin")
	evaluateCmd.Flags().String("candidate-json", "", "candidate JSON document given inline")
	evaluateCmd.Flags().String("job", "", "job JSON file, - for stdin")
	evaluateCmd.Flags().String("job-json", "", "job JSON document given inline")
}

func evaluate(cmd *cobra.Command) {
	logger, _, engine := setup()

	flags := cmd.Flags()
	jobFile, _ := flags.GetString("job")
	jobInline, _ := flags.GetString("job-json")
	candidateFile, _ := flags.GetString("candidate")
	candidateInline, _ := flags.GetString("candidate-json")

	if jobFile == input.Stdin && candidateFile == input.Stdin {
		logger.Fatal("only one document can be read from stdin")
	}

	job, err := loadJob(input.Source{Name: "job", Value: jobInline, File: jobFile})
	if err != nil {
		logger.Fatal("loading job", zap.Error(err))
	}

	candidate, err := loadCandidate(logger, input.Source{Name: "candidate", Value: candidateInline, File: candidateFile})
	if err != nil {
		logger.Fatal("loading candidate", zap.Error(err))
	}

	result, err := engine.Evaluate(candidate, job)
	if err != nil {
		logger.Fatal("evaluating candidate", zap.Error(err))
	}

	if err := printJSON(cmd.OutOrStdout(), result); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}
