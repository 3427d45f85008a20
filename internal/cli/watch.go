package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/areuok/areuok/internal/checkin"
	"github.com/areuok/areuok/internal/device"
	"github.com/areuok/areuok/internal/models"
	"github.com/areuok/areuok/internal/supervision"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Manage supervision of other devices",
	Long: `Manage supervision of other devices.

A supervisor device sends a request to a target device; the target
accepts or rejects it. Accepting creates a standing relationship, after
which 'watch status' shows the supervised device's check-in state.

Examples:
  # Ask to supervise another device
  areuok watch request <target-device-id>

  # See requests waiting on this device and answer one
  areuok watch pending
  areuok watch accept <request-id>
  areuok watch reject <request-id>

  # Dashboard over every supervised device
  areuok watch status`,
}

var watchRequestCmd = &cobra.Command{
	Use:   "request <target-device-id>",
	Short: "Send a supervision request to a device",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchRequest,
}

var watchCancelCmd = &cobra.Command{
	Use:   "cancel <request-id>",
	Short: "Cancel a supervision request this device sent",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchCancel,
}

var watchPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List requests waiting for this device's answer",
	Args:  cobra.NoArgs,
	RunE:  runWatchPending,
}

var watchAcceptCmd = &cobra.Command{
	Use:   "accept <request-id>",
	Short: "Accept a pending supervision request",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchAccept,
}

var watchRejectCmd = &cobra.Command{
	Use:   "reject <request-id>",
	Short: "Reject a pending supervision request",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchReject,
}

var watchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supervision relationships",
	Args:  cobra.NoArgs,
	RunE:  runWatchList,
}

var watchRemoveCmd = &cobra.Command{
	Use:   "remove <relationship-id>",
	Short: "Remove a supervision relationship",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchRemove,
}

var watchStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the supervisor dashboard",
	Args:  cobra.NoArgs,
	RunE:  runWatchStatus,
}

func init() {
	watchCmd.AddCommand(
		watchRequestCmd,
		watchCancelCmd,
		watchPendingCmd,
		watchAcceptCmd,
		watchRejectCmd,
		watchListCmd,
		watchRemoveCmd,
		watchStatusCmd,
		reviewCmd,
	)
}

func runWatchRequest(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("watch request", err)
	}
	defer func() { _ = database.Close() }()

	req, err := supervision.NewLedger(database).CreateRequest(args[0])
	if err != nil {
		return trackCLIError("watch request", err)
	}

	telemetryClient.TrackRequestSent()
	fmt.Printf("%s Supervision request sent to %s\n", successStyle.Render("✓"), req.TargetDeviceID)
	fmt.Printf("  Request ID: %s\n", req.RequestID)
	return nil
}

func runWatchCancel(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("watch cancel", err)
	}
	defer func() { _ = database.Close() }()

	if err := supervision.NewLedger(database).CancelRequest(args[0]); err != nil {
		return trackCLIError("watch cancel", err)
	}

	telemetryClient.TrackRequestResolved("cancelled")
	fmt.Printf("%s Request %s cancelled\n", successStyle.Render("✓"), args[0])
	return nil
}

func runWatchPending(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("watch pending", err)
	}
	defer func() { _ = database.Close() }()

	devcfg, err := device.Get(database)
	if err != nil {
		return trackCLIError("watch pending", err)
	}

	pending, err := supervision.NewLedger(database).PendingFor(devcfg.Device.DeviceID)
	if err != nil {
		return trackCLIError("watch pending", err)
	}

	if len(pending) == 0 {
		fmt.Println("No pending supervision requests.")
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%d pending request(s)", len(pending))))
	for _, req := range pending {
		printRequest(req)
	}
	fmt.Println(dimStyle.Render("Answer with 'areuok watch accept <id>' or 'areuok watch reject <id>'."))
	return nil
}

func printRequest(req models.SupervisionRequest) {
	fmt.Printf("  %s\n", req.RequestID)
	fmt.Printf("    From: %s (%s)\n", req.SupervisorDeviceName, req.SupervisorDeviceID)
	fmt.Printf("    Sent: %s\n", dimStyle.Render(req.CreatedAt.Format("2006-01-02 15:04")))
}

func runWatchAccept(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("watch accept", err)
	}
	defer func() { _ = database.Close() }()

	rel, err := supervision.NewLedger(database).AcceptRequest(args[0])
	if err != nil {
		return trackCLIError("watch accept", err)
	}

	telemetryClient.TrackRequestResolved("accepted")
	fmt.Printf("%s %s now supervises this device\n", successStyle.Render("✓"), rel.SupervisorDeviceName)
	fmt.Printf("  Relationship ID: %s\n", rel.RelationshipID)
	return nil
}

func runWatchReject(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("watch reject", err)
	}
	defer func() { _ = database.Close() }()

	if err := supervision.NewLedger(database).RejectRequest(args[0]); err != nil {
		return trackCLIError("watch reject", err)
	}

	telemetryClient.TrackRequestResolved("rejected")
	fmt.Printf("%s Request %s rejected\n", successStyle.Render("✓"), args[0])
	return nil
}

func runWatchList(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("watch list", err)
	}
	defer func() { _ = database.Close() }()

	devcfg, err := device.Get(database)
	if err != nil {
		return trackCLIError("watch list", err)
	}

	rels := devcfg.SupervisionRelationships
	if len(rels) == 0 {
		fmt.Println("No supervision relationships.")
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%d relationship(s)", len(rels))))
	for _, rel := range rels {
		fmt.Printf("  %s\n", rel.RelationshipID)
		fmt.Printf("    Supervisor: %s (%s)\n", rel.SupervisorDeviceName, rel.SupervisorDeviceID)
		fmt.Printf("    Supervised: %s (%s)\n", rel.SupervisedDeviceName, rel.SupervisedDeviceID)
		fmt.Printf("    Since:      %s\n", dimStyle.Render(rel.EstablishedAt.Format("2006-01-02")))
	}
	return nil
}

func runWatchRemove(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("watch remove", err)
	}
	defer func() { _ = database.Close() }()

	if err := supervision.NewLedger(database).RemoveRelationship(args[0]); err != nil {
		return trackCLIError("watch remove", err)
	}

	telemetryClient.TrackRelationshipRemoved()
	fmt.Printf("%s Relationship %s removed\n", successStyle.Render("✓"), args[0])
	return nil
}

func runWatchStatus(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("watch status", err)
	}
	defer func() { _ = database.Close() }()

	status, err := supervision.NewLedger(database).SupervisorStatus(checkin.Today())
	if err != nil {
		return trackCLIError("watch status", err)
	}

	fmt.Println(titleStyle.Render("Supervised devices"))
	if len(status.SupervisedDevices) == 0 {
		fmt.Println(dimStyle.Render("  (none)"))
	}
	for _, dev := range status.SupervisedDevices {
		fmt.Printf("  %s %s\n", checkMark(dev.IsSignedInToday), dev.DeviceName)
		fmt.Printf("    Streak:        %s\n", streakLabel(dev.Streak))
		last := dev.LastSigninDate
		if last == "" {
			last = dimStyle.Render("never")
		}
		fmt.Printf("    Last check-in: %s\n", last)
	}

	if len(status.PendingRequests) > 0 {
		fmt.Println(titleStyle.Render("Pending requests"))
		for _, req := range status.PendingRequests {
			printRequest(req)
		}
	}
	return nil
}
