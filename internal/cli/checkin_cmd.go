package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/alexanderramin/ember/internal/engine"
	"github.com/alexanderramin/ember/internal/service"
	"github.com/spf13/cobra"
)

func newCheckInCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Manage daily check-ins",
	}

	cmd.AddCommand(
		newCheckInLogCmd(app),
		newCheckInListCmd(app),
		newCheckInRemoveCmd(app),
		newCheckInClearCmd(app),
	)

	return cmd
}

func newCheckInLogCmd(app *App) *cobra.Command {
	var date, notes string
	var sleep float64
	var stress, workload, mood int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log today's check-in (updates in place if one exists)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			form := service.CheckInForm{
				Date:       date,
				SleepHours: sleep,
				Stress:     stress,
				Workload:   workload,
				Mood:       mood,
				Notes:      notes,
			}
			if form.Date == "" {
				form.Date = dateutil.Format(time.Now())
			}

			// With no metric flags on a terminal, collect values
			// interactively.
			if !cmd.Flags().Changed("sleep") && !cmd.Flags().Changed("stress") &&
				!cmd.Flags().Changed("workload") && !cmd.Flags().Changed("mood") {
				if !app.interactive() {
					return fmt.Errorf("metric flags are required in non-interactive mode (--sleep, --stress, --workload, --mood)")
				}
				v := checkInFormValues{Notes: notes}
				if err := checkInForm(&v).Run(); err != nil {
					return err
				}
				form.SleepHours = parseFloatOr(v.Sleep, 0)
				form.Stress = parseIntOr(v.Stress, 1)
				form.Workload = parseIntOr(v.Workload, 1)
				form.Mood = parseIntOr(v.Mood, 1)
				form.Notes = v.Notes
			}

			ci, err := app.CheckIns.Submit(ctx, app.DeviceUserID, form)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCheckInResult(ci))

			// Surface a red-flag alert right after logging; it never
			// blocks the submission itself.
			history, err := app.CheckIns.History(ctx, app.DeviceUserID, 0)
			if err == nil {
				if flag := engine.DetectRedFlags(history, ci.Date); flag.Triggered {
					fmt.Println()
					fmt.Printf("%s %s\n", formatter.StyleRed.Render("▲ RED FLAG"),
						engine.RedFlagMessage(flag.Reason))
					for _, s := range engine.SelfCareSuggestions() {
						fmt.Printf("  %s %s\n", formatter.Dim("·"), s)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&sleep, "sleep", 0, "Hours of sleep (0-12)")
	cmd.Flags().IntVar(&stress, "stress", 0, "Stress level (1-10)")
	cmd.Flags().IntVar(&workload, "workload", 0, "Workload level (1-10)")
	cmd.Flags().IntVar(&mood, "mood", 0, "Mood level (1-10)")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional note (max 280 characters)")
	cmd.Flags().StringVar(&date, "date", "", "Check-in date (YYYY-MM-DD, defaults to today)")

	return cmd
}

func newCheckInListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent check-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			checkIns, err := app.CheckIns.History(context.Background(), app.DeviceUserID, limit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCheckInList(checkIns))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", service.HistoryLimit, "Maximum number of check-ins to show")

	return cmd
}

func newCheckInRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a check-in by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.CheckIns.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed check-in %s\n", args[0])
			return nil
		},
	}
}

func newCheckInClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all check-ins for this device",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("confirmation required: pass --yes in non-interactive mode")
				}
				confirmed := false
				if err := confirmForm("Delete ALL check-in data for this device?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}
			if err := app.CheckIns.Clear(context.Background(), app.DeviceUserID); err != nil {
				return err
			}
			fmt.Println("All check-in data cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
