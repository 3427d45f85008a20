package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/areuok/areuok/internal/cli/prompts"
	"github.com/areuok/areuok/internal/device"
	"github.com/areuok/areuok/internal/supervision"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Interactively accept or reject pending requests",
	Long: `Walk through the requests waiting for this device's answer and
accept or reject each one interactively.

Examples:
  areuok watch review`,
	Args: cobra.NoArgs,
	RunE: runWatchReview,
}

func runWatchReview(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("watch review", err)
	}
	defer func() { _ = database.Close() }()

	devcfg, err := device.Get(database)
	if err != nil {
		return trackCLIError("watch review", err)
	}

	ledger := supervision.NewLedger(database)
	pending, err := ledger.PendingFor(devcfg.Device.DeviceID)
	if err != nil {
		return trackCLIError("watch review", err)
	}
	if len(pending) == 0 {
		fmt.Println("No pending supervision requests.")
		return nil
	}

	decisions, err := prompts.RunRequestReview(pending)
	if err != nil {
		return trackCLIError("watch review", err)
	}
	if decisions == nil {
		fmt.Println("Review cancelled, nothing applied.")
		return nil
	}

	accepted, rejected := 0, 0
	for _, d := range decisions {
		switch d.Action {
		case prompts.ReviewAccept:
			if _, err := ledger.AcceptRequest(d.RequestID); err != nil {
				return trackCLIError("watch review", fmt.Errorf("accept %s: %w", d.RequestID, err))
			}
			telemetryClient.TrackRequestResolved("accepted")
			accepted++
		case prompts.ReviewReject:
			if err := ledger.RejectRequest(d.RequestID); err != nil {
				return trackCLIError("watch review", fmt.Errorf("reject %s: %w", d.RequestID, err))
			}
			telemetryClient.TrackRequestResolved("rejected")
			rejected++
		}
	}

	fmt.Printf("%s Applied: %d accepted, %d rejected\n", successStyle.Render("✓"), accepted, rejected)
	return nil
}
