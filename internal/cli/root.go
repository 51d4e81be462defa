package cli

import (
	"fmt"
	"os"

	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/client"
	"github.com/gmossy/AI-Enabled-blink-camera-app/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	serverURL  string
	jsonOutput bool
)

// rootCmd 不带子命令时直接启动服务
var rootCmd = &cobra.Command{
	Use:   "blinkdash",
	Short: "Blink camera dashboard and API server",
	Long: `Serves the camera dashboard and the /api/cameras API.
Cameras come from built-in mock data until the Blink integration lands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := util.InitConfig(cfgFile); err != nil {
			return err
		}
		if f := cmd.Flag("server"); f == nil || !f.Changed {
			serverURL = defaultServerURL()
		}
		return nil
	},
	RunE: runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config/default.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "base URL of a running server (default http://localhost:<server.port>)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	rootCmd.AddCommand(serveCmd, camerasCmd, eventsCmd, logsCmd)
}

// defaultServerURL 未指定 --server 时跟随 server.port / PORT
func defaultServerURL() string {
	return "http://localhost:" + viper.GetString("server.port")
}

func newClient() *client.Client {
	return client.New(serverURL)
}
