package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier/internal/cli"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo [list]",
	Short: "Run the interactive drag-and-drop demo",
	Long: `Starts a terminal session where list items are rendered as cards and
reordered by dragging with the mouse. Completed drops are persisted to the
list store; cancelled drags leave the order untouched.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		listID, _ := cmd.Flags().GetString("list")
		if !cmd.Flags().Changed("list") && len(args) > 0 {
			listID = args[0]
		}
		debug, _ := cmd.Flags().GetBool("debug")
		disabled, _ := cmd.Flags().GetBool("disabled")

		opts := cli.DemoOptions{
			Dir:      dir,
			ListID:   listID,
			Debug:    debug,
			Disabled: disabled,
		}
		if err := cli.RunDemo(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().String("list", "demo", "List to open")
	demoCmd.Flags().Bool("debug", false, "Enable debug logging of drag lifecycle events")
	demoCmd.Flags().Bool("disabled", false, "Open the list read-only (drags are refused)")
}
