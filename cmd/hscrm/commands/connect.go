package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/hublink-io/hubspot-client/internal/constants"
	"github.com/hublink-io/hubspot-client/pkg/hsclient"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewConnectCommand creates the connect command. Connecting verifies the
// token against the account details endpoint before persisting anything, so
// a bad token never ends up in the config file.
func NewConnectCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect to a HubSpot account",
		Long:  "Verify a private app token against the HubSpot API and store it for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				apiEndpoint = constants.DefaultBaseURL
			}

			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("Private app token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = string(byteToken)

				fmt.Println()
			}

			if token == "" {
				return constants.ErrTokenRequired
			}

			client, err := hsclient.New(&hubspot.Config{
				BaseURL:     apiEndpoint,
				AccessToken: token,
				HTTPTimeout: constants.ShortHTTPTimeout,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			details, err := client.Account().GetDetails(context.Background())
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			if err := persistConnection(apiEndpoint, token); err != nil {
				return err
			}

			fmt.Printf("Connected to portal %d (%s)\n", details.PortalID, details.UIDomain)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api", "", "API endpoint URL")
	cmd.Flags().StringVar(&token, "token", "", "private app access token")

	return cmd
}

// persistConnection writes the endpoint and token to the config file.
func persistConnection(apiEndpoint, token string) error {
	viper.Set("api", apiEndpoint)
	viper.Set("token", token)

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".hscrm")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// The file holds a credential; keep it owner-only.
	if err := os.Chmod(configFile, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("restricting config permissions: %w", err)
	}

	return nil
}
