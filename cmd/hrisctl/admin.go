package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-calendar-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/hris-calendar-go/internal/service/payroll"
	"github.com/spf13/cobra"
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Manage the holiday calendar",
}

var holidaysListCmd = &cobra.Command{
	Use:   "list [year]",
	Short: "List declared holidays",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		year := a.Clock.Now().Year()
		if len(args) > 0 {
			if _, err := fmt.Sscanf(args[0], "%d", &year); err != nil {
				return fmt.Errorf("invalid year: %s", args[0])
			}
		}

		list, err := a.Holidays.List(cmd.Context(), year)
		if err != nil {
			return err
		}
		for _, h := range list.Holidays {
			optional := ""
			if h.IsOptional {
				optional = " (optional)"
			}
			fmt.Printf("%s  %-9s  %s%s\n", h.Date, h.Weekday, h.Name, optional)
		}
		fmt.Printf("%d holidays in %d\n", list.Total, list.Year)
		return nil
	},
}

var holidaysImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import holidays from a YAML file",
	Long: `Import holidays from a YAML file of the form:

  holidays:
    - date: 2024-01-26
      name: Republic Day
    - date: 2024-03-25
      name: Holi
      optional: true

The import runs in one transaction; dates already declared are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		var result holiday.ImportResult
		err = postgresql.WithTransaction(cmd.Context(), a.DB, func(ctx context.Context) error {
			result, err = a.Holidays.Import(ctx, f)
			return err
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created %d, skipped %d\n", result.Created, result.Skipped)
		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <YYYY-MM>",
	Short: "Export a month working calendar as xlsx or pdf",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		formatName, _ := cmd.Flags().GetString("format")
		saturday, _ := cmd.Flags().GetBool("saturday-working")
		out, _ := cmd.Flags().GetString("out")

		file, err := a.Reports.ExportMonthCalendar(cmd.Context(), report.MonthCalendarRequest{
			Month:           args[0],
			Format:          strings.ToLower(formatName),
			SaturdayWorking: saturday,
		})
		if err != nil {
			return err
		}
		if out == "" {
			out = file.FileName
		}
		if err := os.WriteFile(out, file.Data, 0o644); err != nil {
			return err
		}

		fmt.Printf("Wrote %s (%d bytes)\n", out, len(file.Data))
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		if err := postgresql.Migrate(cmd.Context(), a.DB); err != nil {
			return err
		}
		fmt.Println("Schema is up to date")
		return nil
	},
}

var lopReportCmd = &cobra.Command{
	Use:   "lop-report",
	Short: "Run the monthly LOP report job now",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		res, err := a.Payroll.GenerateLOPReport(cmd.Context())
		if err != nil {
			return err
		}
		if res.Skipped {
			fmt.Printf("Skipped: %s (cutoff %s)\n", res.Reason, lopReportDeadline(a.Clock.Now()))
			return nil
		}

		fmt.Printf("Run %s recorded %d pending LOP entries\n", res.RunID, res.PendingCount)
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Issue an access token for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		var employeeID *string
		if v, _ := cmd.Flags().GetString("employee-id"); v != "" {
			employeeID = &v
		}
		token, expiresAt, err := a.JWT.GenerateAccessToken(args[0], employeeID)
		if err != nil {
			return err
		}

		fmt.Println(token)
		fmt.Fprintf(os.Stderr, "expires at unix %d\n", expiresAt)
		return nil
	},
}

func init() {
	holidaysCmd.AddCommand(holidaysListCmd)
	holidaysCmd.AddCommand(holidaysImportCmd)

	exportCmd.Flags().String("format", report.FormatXLSX, "xlsx or pdf")
	exportCmd.Flags().Bool("saturday-working", false, "treat Saturday as a working day")
	exportCmd.Flags().StringP("out", "o", "", "output file, defaults to the generated name")

	tokenCmd.Flags().String("employee-id", "", "employee_id claim")
}

// lopReportDeadline formats the payslip cutoff of the month of now.
func lopReportDeadline(now time.Time) string {
	return payroll.PayslipCutoff(now).Format("2 Jan 2006 15:04 MST")
}
