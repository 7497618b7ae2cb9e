package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all check-in data as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.CheckIns.Export(context.Background(), app.DeviceUserID)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Println(data)
				return nil
			}
			if err := os.WriteFile(out, []byte(data+"\n"), 0600); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}
			fmt.Printf("Exported check-in data to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import check-in data from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}
			n, err := app.CheckIns.Import(context.Background(), app.DeviceUserID, data)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d check-in(s)\n", n)
			return nil
		},
	}
}
