package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/areuok/areuok/internal/device"
	"github.com/areuok/areuok/internal/models"
)

var deviceIDCopy bool

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Inspect and configure this device",
	Long: `Inspect and configure this device.

Every installation owns a stable device id. Other devices use it to send
supervision requests, so 'device id --copy' puts it on the clipboard for
easy sharing.

Examples:
  # Show the full device record
  areuok device show

  # Copy the device id to the clipboard
  areuok device id --copy

  # Switch this device into supervisor mode
  areuok device mode supervisor

  # Rename the device
  areuok device rename "Mom's laptop"`,
}

var deviceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the device record",
	Args:  cobra.NoArgs,
	RunE:  runDeviceShow,
}

var deviceIDCmd = &cobra.Command{
	Use:   "id",
	Short: "Print the device id",
	Args:  cobra.NoArgs,
	RunE:  runDeviceID,
}

var deviceModeCmd = &cobra.Command{
	Use:       "mode <signin|supervisor>",
	Short:     "Set the device mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(models.ModeSignin), string(models.ModeSupervisor)},
	RunE:      runDeviceMode,
}

var deviceRenameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Set the device display name",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeviceRename,
}

var deviceIMEICmd = &cobra.Command{
	Use:   "imei",
	Short: "Manage the device IMEI",
}

var deviceIMEISetCmd = &cobra.Command{
	Use:   "set <imei>",
	Short: "Set the device IMEI",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeviceIMEISet,
}

var deviceIMEIShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective IMEI",
	Args:  cobra.NoArgs,
	RunE:  runDeviceIMEIShow,
}

func init() {
	deviceIDCmd.Flags().BoolVarP(&deviceIDCopy, "copy", "c", false, "Copy the device id to the clipboard")
	deviceIMEICmd.AddCommand(deviceIMEISetCmd, deviceIMEIShowCmd)
	deviceCmd.AddCommand(deviceShowCmd, deviceIDCmd, deviceModeCmd, deviceRenameCmd, deviceIMEICmd)
}

func runDeviceShow(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("device show", err)
	}
	defer func() { _ = database.Close() }()

	cfg, err := device.Get(database)
	if err != nil {
		return trackCLIError("device show", err)
	}

	fmt.Println(titleStyle.Render(cfg.Device.DeviceName))
	fmt.Printf("  ID:      %s\n", cfg.Device.DeviceID)
	fmt.Printf("  Mode:    %s\n", cfg.Device.Mode)
	fmt.Printf("  IMEI:    %s\n", cfg.Device.EffectiveIMEI())
	fmt.Printf("  Created: %s\n", cfg.Device.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Requests on file:  %d\n", len(cfg.SupervisionRequests))
	fmt.Printf("  Relationships:     %d\n", len(cfg.SupervisionRelationships))
	return nil
}

func runDeviceID(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("device id", err)
	}
	defer func() { _ = database.Close() }()

	cfg, err := device.Get(database)
	if err != nil {
		return trackCLIError("device id", err)
	}

	fmt.Println(cfg.Device.DeviceID)
	if deviceIDCopy {
		if err := clipboard.WriteAll(cfg.Device.DeviceID); err != nil {
			return trackCLIError("device id", fmt.Errorf("copy to clipboard: %w", err))
		}
		fmt.Println(dimStyle.Render("(copied to clipboard)"))
	}
	return nil
}

func runDeviceMode(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("device mode", err)
	}
	defer func() { _ = database.Close() }()

	mode := models.DeviceMode(args[0])
	cfg, err := device.SetMode(database, mode)
	if err != nil {
		return trackCLIError("device mode", err)
	}

	telemetryClient.TrackDeviceModeChanged(string(mode))
	fmt.Printf("%s Device mode set to %s\n", successStyle.Render("✓"), cfg.Device.Mode)
	return nil
}

func runDeviceRename(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("device rename", err)
	}
	defer func() { _ = database.Close() }()

	cfg, err := device.Rename(database, args[0])
	if err != nil {
		return trackCLIError("device rename", err)
	}

	telemetryClient.TrackDeviceRenamed()
	fmt.Printf("%s Device renamed to %s\n", successStyle.Render("✓"), cfg.Device.DeviceName)
	return nil
}

func runDeviceIMEISet(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("device imei set", err)
	}
	defer func() { _ = database.Close() }()

	cfg, err := device.SetIMEI(database, args[0])
	if err != nil {
		return trackCLIError("device imei set", err)
	}

	fmt.Printf("%s IMEI set to %s\n", successStyle.Render("✓"), cfg.Device.IMEI)
	return nil
}

func runDeviceIMEIShow(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("device imei show", err)
	}
	defer func() { _ = database.Close() }()

	cfg, err := device.Get(database)
	if err != nil {
		return trackCLIError("device imei show", err)
	}

	fmt.Println(cfg.Device.EffectiveIMEI())
	return nil
}
