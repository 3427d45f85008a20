package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/areuok/areuok/internal/device"
	"github.com/areuok/areuok/internal/models"
	"github.com/areuok/areuok/internal/remote"
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Talk to the mirror server",
	Long: `Talk to the mirror server.

The mirror server lets devices that never share a machine exchange
supervision requests. Commands here operate on the server's copy of the
data; the local ledger is untouched.

The server address comes from AREUOK_REMOTE_URL.

Examples:
  # Register this device with the server
  areuok remote register

  # Record today's check-in on the server
  areuok remote signin

  # Find another device and ask to supervise it
  areuok remote search mom
  areuok remote request <target-device-id>`,
}

var remoteRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register this device with the server",
	Args:  cobra.NoArgs,
	RunE:  runRemoteRegister,
}

var remoteInfoCmd = &cobra.Command{
	Use:   "info [device-id]",
	Short: "Show a device as the server sees it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRemoteInfo,
}

var remoteRenameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Rename this device on the server",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoteRename,
}

var remoteSigninCmd = &cobra.Command{
	Use:   "signin",
	Short: "Record today's check-in on the server",
	Args:  cobra.NoArgs,
	RunE:  runRemoteSignin,
}

var remoteStatusCmd = &cobra.Command{
	Use:   "status [device-id]",
	Short: "Show a device's check-in status from the server",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRemoteStatus,
}

var remoteSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search devices by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoteSearch,
}

var remoteRequestCmd = &cobra.Command{
	Use:   "request <target-device-id>",
	Short: "Send a supervision request via the server",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoteRequest,
}

var remotePendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List server-side requests waiting for this device",
	Args:  cobra.NoArgs,
	RunE:  runRemotePending,
}

var remoteAcceptCmd = &cobra.Command{
	Use:   "accept <supervisor-device-id>",
	Short: "Accept a server-side supervision request",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoteAccept,
}

var remoteRejectCmd = &cobra.Command{
	Use:   "reject <supervisor-device-id>",
	Short: "Reject a server-side supervision request",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoteReject,
}

var remoteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List server-side supervision relationships",
	Args:  cobra.NoArgs,
	RunE:  runRemoteList,
}

var remoteRemoveCmd = &cobra.Command{
	Use:   "remove <relationship-id>",
	Short: "Remove a server-side supervision relationship",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoteRemove,
}

func init() {
	remoteCmd.AddCommand(
		remoteRegisterCmd,
		remoteInfoCmd,
		remoteRenameCmd,
		remoteSigninCmd,
		remoteStatusCmd,
		remoteSearchCmd,
		remoteRequestCmd,
		remotePendingCmd,
		remoteAcceptCmd,
		remoteRejectCmd,
		remoteListCmd,
		remoteRemoveCmd,
	)
}

// openRemote opens the store and builds a server client plus the local
// device record most remote calls need.
func openRemote() (*remote.Client, *models.DeviceConfig, func(), error) {
	cfg, database, err := openDatabase()
	if err != nil {
		return nil, nil, nil, err
	}

	devcfg, err := device.Get(database)
	if err != nil {
		_ = database.Close()
		return nil, nil, nil, err
	}

	closer := func() { _ = database.Close() }
	return remote.New(cfg.Remote), devcfg, closer, nil
}

func runRemoteRegister(cmd *cobra.Command, args []string) error {
	client, devcfg, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote register", err)
	}
	defer closer()

	dev, err := client.RegisterDevice(cmd.Context(), devcfg.Device.DeviceName, devcfg.Device.EffectiveIMEI(), devcfg.Device.Mode)
	if err != nil {
		return trackCLIError("remote register", err)
	}

	fmt.Printf("%s Registered as %s\n", successStyle.Render("✓"), dev.DeviceName)
	fmt.Printf("  Server device ID: %s\n", dev.DeviceID)
	return nil
}

func runRemoteInfo(cmd *cobra.Command, args []string) error {
	client, devcfg, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote info", err)
	}
	defer closer()

	id := devcfg.Device.DeviceID
	if len(args) == 1 {
		id = args[0]
	}

	dev, err := client.GetDevice(cmd.Context(), id)
	if err != nil {
		return trackCLIError("remote info", err)
	}

	fmt.Println(titleStyle.Render(dev.DeviceName))
	fmt.Printf("  ID:        %s\n", dev.DeviceID)
	fmt.Printf("  Mode:      %s\n", dev.Mode)
	fmt.Printf("  Created:   %s\n", dev.CreatedAt)
	fmt.Printf("  Last seen: %s\n", dev.LastSeenAt)
	return nil
}

func runRemoteRename(cmd *cobra.Command, args []string) error {
	client, devcfg, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote rename", err)
	}
	defer closer()

	dev, err := client.UpdateDeviceName(cmd.Context(), devcfg.Device.DeviceID, args[0])
	if err != nil {
		return trackCLIError("remote rename", err)
	}

	telemetryClient.TrackDeviceRenamed()
	fmt.Printf("%s Server name set to %s\n", successStyle.Render("✓"), dev.DeviceName)
	return nil
}

func runRemoteSignin(cmd *cobra.Command, args []string) error {
	client, devcfg, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote signin", err)
	}
	defer closer()

	resp, err := client.DeviceSignin(cmd.Context(), devcfg.Device.DeviceID)
	if err != nil {
		return trackCLIError("remote signin", err)
	}

	fmt.Printf("%s Server check-in recorded. Streak: %s\n", successStyle.Render("✓"), streakLabel(resp.Streak))
	return nil
}

func runRemoteStatus(cmd *cobra.Command, args []string) error {
	client, devcfg, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote status", err)
	}
	defer closer()

	id := devcfg.Device.DeviceID
	if len(args) == 1 {
		id = args[0]
	}

	status, err := client.GetDeviceStatus(cmd.Context(), id)
	if err != nil {
		return trackCLIError("remote status", err)
	}

	fmt.Println(titleStyle.Render(status.DeviceName))
	fmt.Printf("  Streak:        %s\n", streakLabel(status.Streak))
	last := status.LastSignin
	if last == "" {
		last = dimStyle.Render("never")
	}
	fmt.Printf("  Last check-in: %s\n", last)
	return nil
}

func runRemoteSearch(cmd *cobra.Command, args []string) error {
	client, _, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote search", err)
	}
	defer closer()

	devices, err := client.SearchDevices(cmd.Context(), args[0])
	if err != nil {
		return trackCLIError("remote search", err)
	}

	if len(devices) == 0 {
		fmt.Println("No devices matched.")
		return nil
	}
	for _, dev := range devices {
		fmt.Printf("  %s  %s\n", dev.DeviceID, dev.DeviceName)
	}
	return nil
}

func runRemoteRequest(cmd *cobra.Command, args []string) error {
	client, devcfg, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote request", err)
	}
	defer closer()

	req, err := client.SendSupervisionRequest(cmd.Context(), devcfg.Device.DeviceID, args[0])
	if err != nil {
		return trackCLIError("remote request", err)
	}

	telemetryClient.TrackRequestSent()
	fmt.Printf("%s Request sent to %s\n", successStyle.Render("✓"), req.TargetDeviceID)
	fmt.Printf("  Request ID: %s\n", req.RequestID)
	return nil
}

func runRemotePending(cmd *cobra.Command, args []string) error {
	client, devcfg, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote pending", err)
	}
	defer closer()

	pending, err := client.PendingRequests(cmd.Context(), devcfg.Device.DeviceID)
	if err != nil {
		return trackCLIError("remote pending", err)
	}

	if len(pending) == 0 {
		fmt.Println("No pending supervision requests on the server.")
		return nil
	}
	for _, req := range pending {
		printRequest(req)
	}
	return nil
}

func runRemoteAccept(cmd *cobra.Command, args []string) error {
	client, devcfg, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote accept", err)
	}
	defer closer()

	if err := client.AcceptSupervisionRequest(cmd.Context(), args[0], devcfg.Device.DeviceID); err != nil {
		return trackCLIError("remote accept", err)
	}

	telemetryClient.TrackRequestResolved("accepted")
	fmt.Printf("%s Request from %s accepted\n", successStyle.Render("✓"), args[0])
	return nil
}

func runRemoteReject(cmd *cobra.Command, args []string) error {
	client, devcfg, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote reject", err)
	}
	defer closer()

	if err := client.RejectSupervisionRequest(cmd.Context(), args[0], devcfg.Device.DeviceID); err != nil {
		return trackCLIError("remote reject", err)
	}

	telemetryClient.TrackRequestResolved("rejected")
	fmt.Printf("%s Request from %s rejected\n", successStyle.Render("✓"), args[0])
	return nil
}

func runRemoteList(cmd *cobra.Command, args []string) error {
	client, devcfg, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote list", err)
	}
	defer closer()

	rels, err := client.ListRelations(cmd.Context(), devcfg.Device.DeviceID)
	if err != nil {
		return trackCLIError("remote list", err)
	}

	if len(rels) == 0 {
		fmt.Println("No supervision relationships on the server.")
		return nil
	}
	for _, rel := range rels {
		fmt.Printf("  %s\n", rel.RelationshipID)
		fmt.Printf("    Supervisor: %s (%s)\n", rel.SupervisorDeviceName, rel.SupervisorDeviceID)
		fmt.Printf("    Supervised: %s (%s)\n", rel.SupervisedDeviceName, rel.SupervisedDeviceID)
	}
	return nil
}

func runRemoteRemove(cmd *cobra.Command, args []string) error {
	client, _, closer, err := openRemote()
	if err != nil {
		return trackCLIError("remote remove", err)
	}
	defer closer()

	if err := client.RemoveRelation(cmd.Context(), args[0]); err != nil {
		return trackCLIError("remote remove", err)
	}

	telemetryClient.TrackRelationshipRemoved()
	fmt.Printf("%s Relationship %s removed\n", successStyle.Render("✓"), args[0])
	return nil
}
