package commands

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/varunriyer/ozark-app/internal/categorize"
	"github.com/varunriyer/ozark-app/internal/config"
	"github.com/varunriyer/ozark-app/internal/logger"
	"github.com/varunriyer/ozark-app/internal/memory"
	"github.com/varunriyer/ozark-app/internal/model"
	"github.com/varunriyer/ozark-app/internal/statement"
)

// exportHeader is the CSV header for exported transactions.
const exportHeader = "date,description,original_raw,amount,type,category,user_note,ai_reasoning"

func newImportCommand() *cobra.Command {
	var configPath string
	var outputPath string
	var runOracle bool

	cmd := &cobra.Command{
		Use:   "import <statement file>",
		Short: "Parse an exported statement into normalized transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], configPath, outputPath, runOracle)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to ozark.yaml")
	cmd.Flags().StringVar(&outputPath, "output", "", "write transactions to a CSV file instead of stdout")
	cmd.Flags().BoolVar(&runOracle, "categorize", false, "run AI categorization after parsing")

	return cmd
}

func runImport(cmd *cobra.Command, path, configPath, outputPath string, runOracle bool) error {
	log := logger.New()
	runID := uuid.NewString()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading statement: %w", err)
	}

	txns, format := statement.Parse(string(data))
	log.Info().
		Str("run_id", runID).
		Str("file", path).
		Str("format", string(format)).
		Int("transactions", len(txns)).
		Msg("statement parsed")

	store, err := memory.OpenFileStore(cfg.Memory.Path)
	if err != nil {
		return err
	}
	if err := memory.Inject(txns, store); err != nil {
		return err
	}

	if runOracle {
		oracle := categorize.NewGeminiOracle(cfg.Oracle.Model, cfg.Oracle.Categories)
		svc := categorize.NewService(oracle, log)
		txns = svc.Categorize(cmd.Context(), txns)
	}

	if outputPath != "" {
		if err := writeCSV(outputPath, txns); err != nil {
			return err
		}
		fmt.Printf("Wrote %d transaction(s) to %s\n", len(txns), outputPath)
		return nil
	}

	printTable(txns)
	return nil
}

func writeCSV(path string, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write(strings.Split(exportHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		row := []string{
			t.Date,
			t.Description,
			t.OriginalRaw,
			t.Amount.StringFixed(2),
			string(t.Type),
			t.Category,
			t.UserNote,
			t.AIReasoning,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func printTable(txns []model.Transaction) {
	if len(txns) == 0 {
		fmt.Println("No transactions found. The file may not match a known statement layout.")
		return
	}
	for _, t := range txns {
		category := t.Category
		if category == "" {
			category = "-"
		}
		fmt.Printf("%-10s  %-6s  %10s  %-12s  %s\n",
			t.Date, t.Type, t.Amount.StringFixed(2), category, t.Description)
	}
	fmt.Printf("%d transaction(s)\n", len(txns))
}
