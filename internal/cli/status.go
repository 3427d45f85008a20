package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/areuok/areuok/internal/checkin"
	"github.com/areuok/areuok/internal/quote"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current check-in state",
	Long: `Show the current check-in state for this device.

Displays the recorded name, whether today's check-in has happened, the
current streak and the most recent check-in dates.

Examples:
  areuok status`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print the quote of the day",
	Args:  cobra.NoArgs,
	RunE:  runQuote,
}

const recentHistoryShown = 7

func runStatus(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("status", err)
	}
	defer func() { _ = database.Close() }()

	rec, err := database.LoadCheckin()
	if err != nil {
		return trackCLIError("status", fmt.Errorf("load check-in record: %w", err))
	}

	if rec == nil {
		fmt.Println("No check-in recorded yet. Run 'areuok signin' to start a streak.")
		return nil
	}

	today := checkin.Today()
	fmt.Println(titleStyle.Render(rec.Name))
	fmt.Printf("  Checked in today:  %s\n", checkMark(rec.SignedInOn(today)))
	fmt.Printf("  Streak:            %s\n", streakLabel(rec.Streak))
	fmt.Printf("  Last check-in:     %s\n", rec.LastSigninDate)

	if len(rec.SigninHistory) > 0 {
		recent := rec.SigninHistory
		if len(recent) > recentHistoryShown {
			recent = recent[len(recent)-recentHistoryShown:]
		}
		fmt.Println(dimStyle.Render("  Recent check-ins:"))
		for i := len(recent) - 1; i >= 0; i-- {
			fmt.Printf("    %s\n", dimStyle.Render(recent[i]))
		}
	}
	return nil
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, database, err := openDatabase()
	if err != nil {
		return trackCLIError("quote", err)
	}
	defer func() { _ = database.Close() }()

	q, err := quote.New(cfg.Quote).Fetch(cmd.Context())
	if err != nil {
		q = quote.Fallback()
	}

	fmt.Printf("%q\n", q.Text)
	if q.Author != "" {
		fmt.Printf("  %s\n", dimStyle.Render("-- "+q.Author))
	}
	return nil
}
