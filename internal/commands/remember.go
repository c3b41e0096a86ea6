package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varunriyer/ozark-app/internal/config"
	"github.com/varunriyer/ozark-app/internal/memory"
	"github.com/varunriyer/ozark-app/internal/model"
)

func newRememberCommand() *cobra.Command {
	var configPath string
	var category string
	var cleanName string
	var note string

	cmd := &cobra.Command{
		Use:   "remember <raw description>",
		Short: "Confirm a categorization and store it for future statements",
		Long: `Remember stores a confirmed categorization for a merchant, keyed by the
normalized signature of the raw statement description. Future imports of the
same merchant receive the remembered category as a hint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemember(args[0], configPath, memory.Edit{
				Category:  category,
				CleanName: cleanName,
				Note:      note,
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to ozark.yaml")
	cmd.Flags().StringVar(&category, "category", "", "category to remember (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&cleanName, "name", "", "clean display name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&note, "note", "", "free-text note shown on future matches")

	return cmd
}

func runRemember(raw, configPath string, edit memory.Edit) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	store, err := memory.OpenFileStore(cfg.Memory.Path)
	if err != nil {
		return err
	}

	txn := model.Transaction{OriginalRaw: raw, Description: raw}
	if err := memory.Commit(store, &txn, edit); err != nil {
		return err
	}

	fmt.Printf("Remembered %q as %s (key %s)\n", raw, edit.Category, memory.DeriveKey(raw))
	return nil
}
