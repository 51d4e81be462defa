package cli

import (
	"fmt"

	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/model"
	"github.com/spf13/cobra"
)

var camerasCmd = &cobra.Command{
	Use:   "cameras",
	Short: "Query and control cameras on a running server",
}

var camerasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cameras",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cameras, err := newClient().ListCameras(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch cameras: %w", err)
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), cameras)
		}
		fmt.Fprintln(cmd.OutOrStdout(), cameraTable(cameras))
		return nil
	},
}

var camerasGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one camera and its settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := newClient()
		camera, err := api.GetCamera(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetch camera %s: %w", args[0], err)
		}
		settings, err := api.GetSettings(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetch settings for %s: %w", args[0], err)
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), map[string]any{"camera": camera, "settings": settings})
		}
		fmt.Fprintln(cmd.OutOrStdout(), cameraTable([]model.Camera{camera}))
		fmt.Fprintln(cmd.OutOrStdout(), settingsTable(settings))
		return nil
	},
}

var camerasArmCmd = &cobra.Command{
	Use:   "arm <id>",
	Short: "Arm a camera",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SetArmed(cmd.Context(), args[0], true); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Camera %s armed\n", args[0])
		return nil
	},
}

var camerasDisarmCmd = &cobra.Command{
	Use:   "disarm <id>",
	Short: "Disarm a camera",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SetArmed(cmd.Context(), args[0], false); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Camera %s disarmed\n", args[0])
		return nil
	},
}

var toggleEnabled bool

var camerasMotionCmd = &cobra.Command{
	Use:   "motion <id>",
	Short: "Turn motion detection on or off (--enabled=false to turn off)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SetMotionDetection(cmd.Context(), args[0], toggleEnabled); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Motion detection for %s set to %t\n", args[0], toggleEnabled)
		return nil
	},
}

var camerasNotificationsCmd = &cobra.Command{
	Use:   "notifications <id>",
	Short: "Turn notifications on or off (--enabled=false to snooze)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SetNotifications(cmd.Context(), args[0], toggleEnabled); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Notifications for %s set to %t\n", args[0], toggleEnabled)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{camerasMotionCmd, camerasNotificationsCmd} {
		c.Flags().BoolVar(&toggleEnabled, "enabled", true, "enable (true) or disable (false)")
	}
	camerasCmd.AddCommand(camerasListCmd, camerasGetCmd, camerasArmCmd, camerasDisarmCmd,
		camerasMotionCmd, camerasNotificationsCmd)
}
