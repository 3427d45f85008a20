package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/areuok/areuok/internal/checkin"
	"github.com/areuok/areuok/internal/db"
	"github.com/areuok/areuok/internal/email"
	"github.com/areuok/areuok/internal/log"
	"github.com/areuok/areuok/internal/models"
	"github.com/areuok/areuok/internal/notify"
	"github.com/areuok/areuok/internal/quote"

	appconfig "github.com/areuok/areuok/internal/config"
)

var signinName string

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Record today's check-in",
	Long: `Record today's check-in and update the streak.

Checking in on consecutive days grows the streak; a missed day resets it
to 1. Checking in twice on the same day is a no-op.

After the check-in is saved, a desktop notification is shown and, when
configured, a summary email with the quote of the day is sent. Both are
best-effort and never fail the check-in.

Examples:
  # Check in with the name used last time (or the device name)
  areuok signin

  # Check in under an explicit name
  areuok signin --name alice`,
	Args: cobra.NoArgs,
	RunE: runSignin,
}

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Delete the local check-in record",
	Args:  cobra.NoArgs,
	RunE:  runSignout,
}

func init() {
	signinCmd.Flags().StringVarP(&signinName, "name", "n", "", "Name to record the check-in under")
}

func runSignin(cmd *cobra.Command, args []string) error {
	cfg, database, err := openDatabase()
	if err != nil {
		return trackCLIError("signin", err)
	}
	defer func() { _ = database.Close() }()

	prev, err := database.LoadCheckin()
	if err != nil {
		return trackCLIError("signin", fmt.Errorf("load check-in record: %w", err))
	}

	name := signinName
	if name == "" {
		name = defaultSigninName(prev, database)
	}

	today := checkin.Today()
	rec := checkin.Next(prev, name, today)

	if rec == prev {
		fmt.Printf("Already checked in today (%s). Streak: %s\n", today, streakLabel(rec.Streak))
		return nil
	}

	if err := database.SaveCheckin(rec); err != nil {
		return trackCLIError("signin", fmt.Errorf("save check-in record: %w", err))
	}

	continued := prev != nil && rec.Streak == prev.Streak+1
	reset := prev != nil && rec.Streak == 1
	telemetryClient.TrackCheckinCompleted(rec.Streak, continued, reset)

	fmt.Printf("%s Checked in for %s. Streak: %s\n", successStyle.Render("✓"), today, streakLabel(rec.Streak))
	if reset {
		fmt.Println(dimStyle.Render("(the previous streak was broken, starting over)"))
	}

	sendCheckinSideEffects(cmd.Context(), cfg, database, rec)
	return nil
}

// defaultSigninName picks the name for a check-in when none was given: the
// previous record's name, falling back to the device display name.
func defaultSigninName(prev *models.CheckinRecord, database *db.DB) string {
	if prev != nil && prev.Name != "" {
		return prev.Name
	}
	devcfg, err := database.LoadOrCreateDeviceConfig()
	if err != nil {
		return "me"
	}
	return devcfg.Device.DeviceName
}

// sendCheckinSideEffects runs the best-effort notification, quote and
// email steps. Failures are logged, never returned.
func sendCheckinSideEffects(ctx context.Context, cfg *appconfig.Config, database *db.DB, rec *models.CheckinRecord) {
	title := fmt.Sprintf("%s checked in", rec.Name)
	body := fmt.Sprintf("Streak: %d day(s)", rec.Streak)
	if err := notify.Show(title, body); err != nil {
		log.Errorf("desktop notification failed: %v", err)
	}

	emailCfg, err := database.LoadEmailConfig()
	if err != nil {
		log.Errorf("load email config: %v", err)
		return
	}
	if !emailCfg.Deliverable() {
		return
	}

	q, err := quote.New(cfg.Quote).Fetch(ctx)
	if err != nil {
		log.Errorf("quote fetch failed, using fallback: %v", err)
		q = quote.Fallback()
	}

	if err := email.Send(rec.Name, rec.Streak, q, emailCfg); err != nil {
		log.Errorf("check-in email failed: %v", err)
	}
}

func runSignout(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("signout", err)
	}
	defer func() { _ = database.Close() }()

	if err := database.DeleteCheckin(); err != nil {
		return trackCLIError("signout", fmt.Errorf("delete check-in record: %w", err))
	}

	telemetryClient.TrackSignout()
	fmt.Println("Check-in record deleted.")
	return nil
}
