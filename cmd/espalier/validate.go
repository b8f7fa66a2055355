package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier/pkg/adapters/file"
	"github.com/aretw0/espalier/pkg/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate [list...]",
	Short: "Check stored lists for order consistency",
	Long:  `Loads lists from the store and reports duplicate IDs, gaps or out-of-range order values. With no arguments, every stored list is checked.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		if err := runValidate(dir, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All lists are valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(dir string, args []string) error {
	ctx := context.Background()
	store := file.New(dir)

	ids := args
	if len(ids) == 0 {
		var err error
		ids, err = store.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to enumerate lists: %w", err)
		}
		if len(ids) == 0 {
			return fmt.Errorf("no lists found in %s", store.BasePath)
		}
	}

	for _, id := range ids {
		items, err := store.Load(ctx, id)
		if err != nil {
			return fmt.Errorf("list %q: %w", id, err)
		}
		if err := domain.ValidateOrder(items); err != nil {
			return fmt.Errorf("list %q: %w", id, err)
		}
		fmt.Printf("  %s: %d items\n", id, len(items))
	}
	return nil
}
