// Command wellnessctl runs the scoring engine offline against answer files
// (YAML or JSON) and prints the result as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"wellness-backend/internal/domain"
	"wellness-backend/internal/logging"
	"wellness-backend/internal/usecase"
)

var (
	verbose   bool
	inputFile string

	logger *zap.Logger
)

type productsFile struct {
	SymptomType string  `yaml:"symptomType"`
	Score       float64 `yaml:"score"`
}

type suggestFile struct {
	Completed []domain.CompletedAssessment `yaml:"completed"`
	Available []string                     `yaml:"available"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wellnessctl",
		Short:         "Score wellness assessments from answer files",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			var err error
			logger, err = logging.New(level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "answer file (YAML or JSON)")
	root.MarkPersistentFlagRequired("file")

	root.AddCommand(
		&cobra.Command{
			Use:   "energy",
			Short: "Score the energy loop",
			RunE: func(cmd *cobra.Command, args []string) error {
				var in domain.EnergyInputs
				if err := readInput(&in); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), usecase.CalculateEnergyLoop(in))
			},
		},
		&cobra.Command{
			Use:   "metabolic",
			Short: "Estimate metabolic age",
			RunE: func(cmd *cobra.Command, args []string) error {
				var in domain.MetabolicAgeInput
				if err := readInput(&in); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), usecase.CalculateMetabolicAge(in))
			},
		},
		&cobra.Command{
			Use:   "longevity",
			Short: "Score the longevity nutrition quiz with pillars and protocol",
			RunE: func(cmd *cobra.Command, args []string) error {
				var d domain.LongevityNutritionData
				if err := readInput(&d); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), usecase.BuildLongevityReport(d))
			},
		},
		&cobra.Command{
			Use:   "products",
			Short: "Match products to a symptom score and price the bundle",
			RunE: func(cmd *cobra.Command, args []string) error {
				var in productsFile
				if err := readInput(&in); err != nil {
					return err
				}
				products := usecase.MatchProductsToAssessment(in.SymptomType, in.Score)
				return printJSON(cmd.OutOrStdout(), domain.ProductMatch{
					SymptomType: usecase.ResolveSymptomType(in.SymptomType),
					Score:       in.Score,
					Products:    products,
					Bundle:      usecase.CalculateBundlePrice(products),
				})
			},
		},
		&cobra.Command{
			Use:   "suggest",
			Short: "Suggest the next assessments to take",
			RunE: func(cmd *cobra.Command, args []string) error {
				var in suggestFile
				if err := readInput(&in); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), usecase.GetSuggestedAdditionalAssessments(in.Completed, in.Available))
			},
		},
	)

	return root
}

// readInput decodes the --file answers. JSON is valid YAML, so one decoder
// covers both.
func readInput(dst any) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputFile, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", inputFile, err)
	}
	logger.Debug("input loaded", zap.String("file", inputFile), zap.Int("bytes", len(data)))
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
