package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gridnav/internal/config"
	"gridnav/internal/domain/services"
	"gridnav/internal/service"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	root := newRootCmd(config.Load(), logger)
	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error("urltool command failed", "error", err)
		os.Exit(1)
	}
}

// rootOptions are the org settings shared by every subcommand. They start
// from the environment and can be overridden by a YAML file and by flags.
type rootOptions struct {
	cfg        *config.Config
	configPath string
	logger     *slog.Logger
}

func newRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	opts := &rootOptions{cfg: cfg, logger: logger}

	root := &cobra.Command{
		Use:           "urltool",
		Short:         "Encode, decode and inspect document URLs",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.loadConfigFile(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML file with URL settings")
	flags.StringVar(&cfg.Org, "current-org", cfg.Org, "org of the page the URL is used from")
	flags.StringVar(&cfg.SingleOrg, "single-org", cfg.SingleOrg, "org the deployment is pinned to")
	flags.StringVar(&cfg.BaseDomain, "base-domain", cfg.BaseDomain, "domain suffix for org subdomains, e.g. .example.com")
	flags.BoolVar(&cfg.PathOnly, "path-only", cfg.PathOnly, "always put the org in the path")
	flags.StringVar(&cfg.PluginURL, "plugin-url", cfg.PluginURL, "URL plugin content is served from")

	root.AddCommand(newDecodeCmd(opts))
	root.AddCommand(newEncodeCmd(opts))
	root.AddCommand(newURLIDCmd(opts))
	root.AddCommand(newHostCmd(opts))
	root.AddCommand(newSlugCmd(opts))

	return root
}

// loadConfigFile applies --config. Flags given on the command line win
// over the file.
func (o *rootOptions) loadConfigFile(cmd *cobra.Command) error {
	if o.configPath == "" {
		return nil
	}
	fromFlags := *o.cfg
	if err := o.cfg.LoadFile(o.configPath); err != nil {
		return err
	}

	flags := cmd.Flags()
	keep := map[string]func(){
		"current-org": func() { o.cfg.Org = fromFlags.Org },
		"single-org":  func() { o.cfg.SingleOrg = fromFlags.SingleOrg },
		"base-domain": func() { o.cfg.BaseDomain = fromFlags.BaseDomain },
		"path-only":   func() { o.cfg.PathOnly = fromFlags.PathOnly },
		"plugin-url":  func() { o.cfg.PluginURL = fromFlags.PluginURL },
	}
	for name, restore := range keep {
		if flags.Changed(name) {
			restore()
		}
	}
	return nil
}

// navService builds the service from the settings in effect after flag parsing.
func (o *rootOptions) navService() services.NavigationService {
	return service.NewNavigationService(o.cfg.OrgConfig(), o.logger)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
