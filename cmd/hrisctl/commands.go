package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/format"
	"github.com/cmlabs-hris/hris-calendar-go/internal/service/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var fyCmd = &cobra.Command{
	Use:   "fy [month-year]",
	Short: "Show the financial year for a month",
	Long: `Show the April to March financial year containing a month.
The month may be given as MM-YYYY, Mon-YYYY or MM/YYYY; it defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := clock()
		if err != nil {
			return err
		}

		day := calendar.Today(c)
		if len(args) > 0 {
			t, err := calendar.ParseDateTimeIn("01-"+args[0], c.Now().Location())
			if err != nil {
				return fmt.Errorf("invalid month-year %q: %w", args[0], err)
			}
			day = calendar.DateOf(t)
		}
		slug, _ := cmd.Flags().GetString("slug")

		fy := calendar.FinancialYearAt(day)
		start, end := fy.Format(calendar.DateLayout)

		fmt.Printf("Financial year: %s\n", fy.Label(slug))
		fmt.Printf("Period:         %s to %s\n", start, end)
		fmt.Printf("Display:        %s\n", fy.DisplayLabel())
		fmt.Printf("Months left:    %d\n", calendar.RemainingFinancialYearMonths(day))
		return nil
	},
}

var workingDaysCmd = &cobra.Command{
	Use:     "working-days [date]",
	Aliases: []string{"wd"},
	Short:   "Count working days in the month of a date",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := dateArg(args)
		if err != nil {
			return err
		}
		saturday, _ := cmd.Flags().GetBool("saturday-working")

		fmt.Printf("%s: %d working days\n", day.Format("January 2006"), calendar.NumberOfWorkingDays(day, saturday))
		return nil
	},
}

var weekendsCmd = &cobra.Command{
	Use:   "weekends [date]",
	Short: "List weekend days in the month of a date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := dateArg(args)
		if err != nil {
			return err
		}
		saturday, _ := cmd.Flags().GetBool("saturday-working")
		start, end := day.StartOfMonth(), day.EndOfMonth()

		fmt.Printf("Weekend days: %d\n", calendar.NumberOfWeekEndDays(start, end, saturday))
		fmt.Printf("Saturdays:    %d\n", calendar.NumberOfSaturdays(start, end))
		fmt.Printf("Dates:        %s\n", strings.Join(calendar.WeekendDates(start, end, saturday), ", "))
		return nil
	},
}

var lopCmd = &cobra.Command{
	Use:   "lop <amount>",
	Short: "Apply the loss-of-pay formula to a monthly amount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount: %s", args[0])
		}
		daysInMonth, _ := cmd.Flags().GetInt("days-in-month")
		workingDays, _ := cmd.Flags().GetInt("working-days")
		lopDays, _ := cmd.Flags().GetFloat64("lop")
		leaveDays, _ := cmd.Flags().GetFloat64("leave-days")

		result, err := payroll.CalculateForLOP(amount, daysInMonth, decimal.NewFromFloat(lopDays), decimal.NewFromFloat(leaveDays), workingDays)
		if err != nil {
			return err
		}

		fmt.Printf("Amount after LOP: %s\n", format.Currency(result, false))
		return nil
	},
}

var hoursCmd = &cobra.Command{
	Use:   "hours <fractional-hours>",
	Short: "Render fractional hours as hours and minutes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid hours: %s", args[0])
		}
		if err := attendance.ValidateHours(hours); err != nil {
			return err
		}
		fmt.Println(attendance.ActualHoursMinutes(hours))
		return nil
	},
}

func init() {
	fyCmd.Flags().String("slug", "-", "separator between the two years")

	workingDaysCmd.Flags().Bool("saturday-working", false, "treat Saturday as a working day")
	weekendsCmd.Flags().Bool("saturday-working", false, "treat Saturday as a working day")

	lopCmd.Flags().Int("days-in-month", 30, "days in the payroll month")
	lopCmd.Flags().Int("working-days", 22, "working days in the payroll month")
	lopCmd.Flags().Float64("lop", 0, "loss-of-pay days")
	lopCmd.Flags().Float64("leave-days", 0, "leave days taken")
}

// dateArg parses an optional YYYY-MM-DD argument, defaulting to today.
func dateArg(args []string) (calendar.Date, error) {
	if len(args) > 0 {
		return calendar.ParseDate(args[0])
	}
	c, err := clock()
	if err != nil {
		return calendar.Date{}, err
	}
	return calendar.Today(c), nil
}
