package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"spendly/internal/localstore"
	"spendly/internal/logger"
	"spendly/internal/syncclient"
)

// cli carries the resolved configuration and lazily opened collaborators
// shared by every subcommand.
type cli struct {
	v          *viper.Viper
	configFile string
	verbose    bool

	store *localstore.Store
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:           "spendly",
		Short:         "Track expenses locally and sync them with a Spendly server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if c.verbose {
				logger.Init("development")
			} else {
				logger.Init("cli")
			}
			return c.loadConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default ~/.spendly/config.yaml)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.String("api-url", "", "sync server base URL")
	flags.String("data-file", "", "local data file")
	_ = c.v.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = c.v.BindPFlag("data_file", flags.Lookup("data-file"))

	root.AddCommand(
		newLoginCmd(c),
		newLogoutCmd(c),
		newTokenCmd(c),
		newExpenseCmd(c),
		newBudgetCmd(c),
		newGoalCmd(c),
		newProfileCmd(c),
		newThemeCmd(c),
		newPushCmd(c),
		newPullCmd(c),
		newStatusCmd(c),
		newChatCmd(c),
	)
	return root
}

func (c *cli) loadConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".spendly")

	c.v.SetDefault("api_url", "http://localhost:8080")
	c.v.SetDefault("data_file", filepath.Join(dir, "data.json"))
	c.v.SetDefault("timeout", 30*time.Second)
	c.v.SetDefault("retries", 2)

	c.v.SetEnvPrefix("SPENDLY")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	if c.configFile != "" {
		c.v.SetConfigFile(c.configFile)
	} else {
		c.v.AddConfigPath(dir)
		c.v.SetConfigName("config")
		c.v.SetConfigType("yaml")
	}
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	logger.Get().Debugw("Loaded CLI configuration",
		"config_file", c.v.ConfigFileUsed(),
		"api_url", c.v.GetString("api_url"),
		"data_file", c.v.GetString("data_file"),
	)
	return nil
}

// openStore opens the local data file once per invocation.
func (c *cli) openStore() (*localstore.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	store, err := localstore.Open(c.v.GetString("data_file"))
	if err != nil {
		return nil, err
	}
	c.store = store
	return store, nil
}

// signedInStore opens the store and requires a signed-in user.
func (c *cli) signedInStore() (*localstore.Store, error) {
	store, err := c.openStore()
	if err != nil {
		return nil, err
	}
	if store.UserID() == "" {
		return nil, localstore.ErrNotSignedIn
	}
	return store, nil
}

func (c *cli) client() *syncclient.Client {
	retries := c.v.GetInt("retries")
	if retries < 0 {
		retries = 0
	}
	return syncclient.New(c.v.GetString("api_url"), syncclient.Options{
		Token:   c.v.GetString("token"),
		Retries: uint64(retries),
		HTTPClient: &http.Client{
			Timeout: c.v.GetDuration("timeout"),
		},
	})
}
