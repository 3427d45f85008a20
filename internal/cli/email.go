package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/areuok/areuok/internal/models"
)

var (
	emailSetTo       string
	emailSetFrom     string
	emailSetServer   string
	emailSetPort     int
	emailSetUsername string
	emailSetPassword string
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Configure the check-in summary email",
	Long: `Configure the optional email sent after each check-in.

The email carries the current streak and the quote of the day. It is
only sent when enabled and a recipient address is set.

Examples:
  # Point at a recipient and enable delivery
  areuok email set --to mom@example.com --username me@gmail.com --password app-pass
  areuok email enable

  # Inspect the current settings
  areuok email show`,
}

var emailShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the email settings",
	Args:  cobra.NoArgs,
	RunE:  runEmailShow,
}

var emailSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update email settings",
	Args:  cobra.NoArgs,
	RunE:  runEmailSet,
}

var emailEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable the check-in email",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return setEmailEnabled(true) },
}

var emailDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable the check-in email",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return setEmailEnabled(false) },
}

func init() {
	emailSetCmd.Flags().StringVar(&emailSetTo, "to", "", "Recipient address")
	emailSetCmd.Flags().StringVar(&emailSetFrom, "from", "", "Sender address (defaults to the SMTP username)")
	emailSetCmd.Flags().StringVar(&emailSetServer, "server", "", "SMTP server host")
	emailSetCmd.Flags().IntVar(&emailSetPort, "port", 0, "SMTP server port")
	emailSetCmd.Flags().StringVar(&emailSetUsername, "username", "", "SMTP username")
	emailSetCmd.Flags().StringVar(&emailSetPassword, "password", "", "SMTP password")
	emailCmd.AddCommand(emailShowCmd, emailSetCmd, emailEnableCmd, emailDisableCmd)
}

func runEmailShow(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("email show", err)
	}
	defer func() { _ = database.Close() }()

	cfg, err := database.LoadEmailConfig()
	if err != nil {
		return trackCLIError("email show", err)
	}
	if cfg == nil {
		cfg = models.DefaultEmailConfig()
	}

	fmt.Println(titleStyle.Render("Email settings"))
	fmt.Printf("  Enabled:  %s\n", checkMark(cfg.Enabled))
	fmt.Printf("  To:       %s\n", orUnset(cfg.ToEmail))
	fmt.Printf("  From:     %s\n", orUnset(cfg.FromEmail))
	fmt.Printf("  Server:   %s:%d\n", cfg.SMTPServer, cfg.SMTPPort)
	fmt.Printf("  Username: %s\n", orUnset(cfg.SMTPUsername))
	fmt.Printf("  Password: %s\n", maskSecret(cfg.SMTPPassword))
	if cfg.Enabled && !cfg.Deliverable() {
		fmt.Println(warnStyle.Render("  Enabled but no recipient set, emails will not be sent."))
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return dimStyle.Render("(not set)")
	}
	return s
}

func maskSecret(s string) string {
	if s == "" {
		return dimStyle.Render("(not set)")
	}
	return dimStyle.Render("(set)")
}

func runEmailSet(cmd *cobra.Command, args []string) error {
	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError("email set", err)
	}
	defer func() { _ = database.Close() }()

	cfg, err := database.LoadEmailConfig()
	if err != nil {
		return trackCLIError("email set", err)
	}
	if cfg == nil {
		cfg = models.DefaultEmailConfig()
	}

	if emailSetTo != "" {
		cfg.ToEmail = emailSetTo
	}
	if emailSetFrom != "" {
		cfg.FromEmail = emailSetFrom
	}
	if emailSetServer != "" {
		cfg.SMTPServer = emailSetServer
	}
	if emailSetPort != 0 {
		cfg.SMTPPort = emailSetPort
	}
	if emailSetUsername != "" {
		cfg.SMTPUsername = emailSetUsername
	}
	if emailSetPassword != "" {
		cfg.SMTPPassword = emailSetPassword
	}

	if err := database.SaveEmailConfig(cfg); err != nil {
		return trackCLIError("email set", err)
	}

	fmt.Printf("%s Email settings updated\n", successStyle.Render("✓"))
	return nil
}

func setEmailEnabled(enabled bool) error {
	name := "email disable"
	if enabled {
		name = "email enable"
	}

	_, database, err := openDatabase()
	if err != nil {
		return trackCLIError(name, err)
	}
	defer func() { _ = database.Close() }()

	cfg, err := database.LoadEmailConfig()
	if err != nil {
		return trackCLIError(name, err)
	}
	if cfg == nil {
		cfg = models.DefaultEmailConfig()
	}

	cfg.Enabled = enabled
	if err := database.SaveEmailConfig(cfg); err != nil {
		return trackCLIError(name, err)
	}

	if enabled {
		fmt.Printf("%s Check-in email enabled\n", successStyle.Render("✓"))
		if !cfg.Deliverable() {
			fmt.Println(warnStyle.Render("No recipient set yet, run 'areuok email set --to <address>'."))
		}
	} else {
		fmt.Printf("%s Check-in email disabled\n", successStyle.Render("✓"))
	}
	return nil
}
