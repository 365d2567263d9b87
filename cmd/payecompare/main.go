package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nairatools/payecompare/internal/calculation"
	"github.com/nairatools/payecompare/internal/compare"
	"github.com/nairatools/payecompare/internal/config"
	"github.com/nairatools/payecompare/internal/domain"
	"github.com/nairatools/payecompare/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var hundred = decimal.NewFromInt(100)

var rootCmd = &cobra.Command{
	Use:   "payecompare",
	Short: "Nigerian PAYE regime comparison",
	Long:  "Compute and compare personal income-tax liability under the legacy and reform PAYE regimes",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "payecompare %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// buildEngine creates the PAYE engine, applying a regime-rules override file
// when one is supplied.
func buildEngine(cmd *cobra.Command) (*calculation.PAYEEngine, error) {
	rulesFile, _ := cmd.Flags().GetString("rules")
	debugMode, _ := cmd.Flags().GetBool("debug")

	var engine *calculation.PAYEEngine
	if rulesFile != "" {
		parser := config.NewInputParser()
		rules, err := parser.LoadRegimeRules(rulesFile)
		if err != nil {
			return nil, err
		}
		engine, err = calculation.NewPAYEEngineWithRules(*rules)
		if err != nil {
			return nil, err
		}
	} else {
		engine = calculation.NewPAYEEngine()
	}

	if debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine, nil
}

var compareCmd = &cobra.Command{
	Use:   "compare [gross-income]",
	Short: "Compare both regimes for one gross income figure",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gross, err := config.ParseGrossIncome(args[0])
		if err != nil {
			log.Fatal(err)
		}

		annual, _ := cmd.Flags().GetBool("annual")
		monthlyGross := gross
		if annual {
			monthlyGross = domain.GrossIncome{Amount: gross, Period: domain.PeriodAnnual}.Monthly()
		}

		pension, _ := cmd.Flags().GetString("pension")
		nhf, _ := cmd.Flags().GetString("nhf")
		insurance, _ := cmd.Flags().GetString("insurance")
		deductions := domain.AdditionalDeductions{Pension: pension, NHF: nhf, Insurance: insurance}

		engine, err := buildEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		results := compare.NewCompareEngine(engine).Compare(monthlyGross, deductions)

		format, _ := cmd.Flags().GetString("format")
		pretty, _ := cmd.Flags().GetBool("pretty")
		switch format {
		case "json":
			jf := &compare.JSONFormatter{Pretty: pretty}
			out, err := jf.Format(&results)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		case "csv":
			cf := &compare.CSVFormatter{}
			out, err := cf.Format(&results)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		default:
			tf := &compare.TableFormatter{}
			fmt.Print(tf.Format(&results))
		}
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch [scenario-file]",
	Short: "Compare every scenario in a YAML file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		configData, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine, err := buildEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		set := compare.NewCompareEngine(engine).CompareScenarios(configData)

		format, _ := cmd.Flags().GetString("format")
		pretty, _ := cmd.Flags().GetBool("pretty")
		switch format {
		case "json":
			jf := &compare.JSONFormatter{Pretty: pretty}
			out, err := jf.FormatScenarios(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		case "csv":
			cf := &compare.CSVFormatter{}
			out, err := cf.FormatScenarios(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		default:
			tf := &compare.TableFormatter{}
			fmt.Print(tf.FormatScenarios(set))
		}
	},
}

var bracketsCmd = &cobra.Command{
	Use:   "brackets",
	Short: "Print both regime bracket tables",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := buildEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		printTable := func(name string, brackets []calculation.TaxBracket) {
			fmt.Printf("%s regime (annual thresholds):\n", name)
			prev := "₦0"
			for _, b := range brackets {
				upper := "Above"
				if !b.Unbounded {
					upper = output.FormatNaira(b.Limit)
				}
				fmt.Printf("  %-28s at %s\n", prev+" - "+upper, output.FormatPercentage(b.Rate.Mul(hundred)))
				prev = upper
			}
			fmt.Println()
		}
		printTable("Legacy", engine.Legacy)
		printTable("Reform", engine.Reform)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{compareCmd, batchCmd, bracketsCmd} {
		cmd.Flags().String("rules", "", "Regime-rules override file (YAML)")
		cmd.Flags().String("format", "table", "Output format (table, json, csv)")
		cmd.Flags().Bool("pretty", false, "Indent JSON output")
		cmd.Flags().Bool("debug", false, "Enable debug logging")
	}
	compareCmd.Flags().Bool("annual", false, "Treat the gross figure as annual")
	compareCmd.Flags().String("pension", "", "Monthly pension contribution")
	compareCmd.Flags().String("nhf", "", "Monthly NHF contribution")
	compareCmd.Flags().String("insurance", "", "Monthly insurance premium")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(bracketsCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
