package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/app"
	"github.com/cmlabs-hris/hris-calendar-go/internal/config"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/spf13/cobra"
)

var (
	timezone    string
	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "hrisctl",
	Short: "Work calendar and payroll period tool",
	Long:  `hrisctl answers financial year, working day and LOP questions and administers the holiday calendar.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application != nil {
			application.Close()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "Asia/Kolkata", "time zone used for \"today\"")

	rootCmd.AddCommand(fyCmd)
	rootCmd.AddCommand(workingDaysCmd)
	rootCmd.AddCommand(weekendsCmd)
	rootCmd.AddCommand(lopCmd)
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(holidaysCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(lopReportCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// clock returns the system clock in the --tz zone.
func clock() (calendar.Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", timezone, err)
	}
	return calendar.NewSystemClock(loc), nil
}

// loadApp connects to the database for commands that need it.
func loadApp(cmd *cobra.Command) (*app.App, error) {
	if application != nil {
		return application, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	application, err = app.New(cmd.Context(), cfg)
	return application, err
}
