package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/alexanderramin/ember/internal/contract"
	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the weekly burnout report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = dateutil.Format(time.Now())
			}
			resp, err := app.Summary.GetSummary(context.Background(), app.DeviceUserID,
				contract.SummaryRequest{Date: date})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSummary(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD, defaults to today)")

	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the anonymous device user id",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(app.DeviceUserID)
			return nil
		},
	}
}
