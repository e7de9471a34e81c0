package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhamdan/ksapay/internal/calculation"
	"github.com/nhamdan/ksapay/internal/config"
	"github.com/nhamdan/ksapay/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "ksapay %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "ksapay",
	Short: "Saudi Labor Law Payroll Calculator CLI",
	Long:  "Payroll calculation and labor law compliance engine for KSA employers",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [run-file]",
	Short: "Calculate payroll for every employee in a run file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		run, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		asOf := time.Now()
		if run.AsOf != nil {
			asOf = *run.AsOf
		}
		if asOfFlag, _ := cmd.Flags().GetString("as-of"); asOfFlag != "" {
			parsed, err := time.Parse("2006-01-02", asOfFlag)
			if err != nil {
				return fmt.Errorf("invalid --as-of date %q: %w", asOfFlag, err)
			}
			asOf = parsed
		}

		engine := calculation.NewEngine(asOf)
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		items := make([]calculation.BatchItem, len(run.Items))
		for i := range run.Items {
			items[i] = calculation.BatchItem{
				Employee: &run.Items[i].Employee,
				Period:   &run.Items[i].Period,
				Policy:   run.Policy,
			}
		}
		workers, _ := cmd.Flags().GetInt("workers")
		results, err := engine.RunBatch(context.Background(), items, workers)
		if err != nil {
			return err
		}

		runResults := &output.RunResults{GeneratedAt: engine.AsOf()}
		for _, result := range results {
			runResults.Items = append(runResults.Items, output.RunResultItem{
				Result:     result,
				Compliance: calculation.ValidateCompliance(result, run.Policy),
			})
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter, err := output.GetFormatterByName(formatName)
		if err != nil {
			return err
		}
		rendered, err := formatter.Format(runResults)
		if err != nil {
			return fmt.Errorf("failed to render %s output: %w", formatter.Name(), err)
		}
		_, err = os.Stdout.Write(rendered)
		return err
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [run-file]",
	Short: "Check a run file against the labor-law floors and report violations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		run, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Run file %s is valid\n", args[0])

		asOf := time.Now()
		if run.AsOf != nil {
			asOf = *run.AsOf
		}
		engine := calculation.NewEngine(asOf)

		violations := 0
		for i := range run.Items {
			result, err := engine.Calculate(&run.Items[i].Employee, &run.Items[i].Period, run.Policy)
			if err != nil {
				return err
			}
			report := calculation.ValidateCompliance(result, run.Policy)
			if report.LaborLawCompliant {
				continue
			}
			for _, v := range report.Violations {
				violations++
				fmt.Printf("%s/%s [%s] %s: %s (penalty risk %d/100)\n",
					result.EmployeeID, result.PeriodID, v.Severity, v.Type, v.Description, v.PenaltyRisk)
			}
		}
		if violations == 0 {
			fmt.Println("No labor law violations detected")
		}
		return nil
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	calculateCmd.Flags().String("as-of", "", "Reference date for service calculations (YYYY-MM-DD, default today)")
	calculateCmd.Flags().Int("workers", 0, "Concurrency limit for the batch run (0 = unlimited)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
