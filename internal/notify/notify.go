// Package notify shows desktop notifications. Fire-and-forget: failures
// are for the caller to log, never to propagate.
package notify

import "github.com/gen2brain/beeep"

const appName = "areuok"

// Show displays a desktop notification with the given title and message.
func Show(title, message string) error {
	beeep.AppName = appName
	return beeep.Notify(title, message, "")
}
