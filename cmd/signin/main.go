package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/signin"
	logAdapter "github.com/bft-labs/signin/internal/adapters/log"
	"github.com/bft-labs/signin/internal/adapters/terminal"
	"github.com/bft-labs/signin/internal/app"
	"github.com/bft-labs/signin/internal/cliconfig"
)

const longHelp = `Sign in to the authentication API and print the resulting account.

The password is read from SIGNIN_PASSWORD or asked for without echo.
Rejected credentials are asked for again, for at most --attempts attempts in
total; any other failure ends the command.

With --watch, edits to service_url, login_path and http_timeout in the config
file apply to the next attempt. Email, log level and output are read once at
startup.

Configuration is layered: flags > SIGNIN_* environment (and .env) > config file > defaults.`

var exampleUsage = strings.TrimSpace(`
  signin --email a@b.com
  signin --service-url https://auth.example.com/api --output json
  signin --config ./signin.yaml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	base := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "signin",
		Short:         "Sign in to the authentication API",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cliconfig.LoadDotEnv(".env"); err != nil {
				return fmt.Errorf("load .env: %w", err)
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			load := func() (cliconfig.Config, error) {
				return cliconfig.Resolve(base, cfgFile, changed)
			}
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log = log.Level(cfg.Level())
			logger := logAdapter.NewZerologAdapterWithLogger(log)

			logCfg := cfg
			if logCfg.Password != "" {
				logCfg.Password = "*****"
			}
			log.Debug().Interface("config", logCfg).Msg("configuration")

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			newAuth := func(c cliconfig.Config) signin.Authentication {
				return signin.New(c.LoginURL(),
					signin.WithTimeout(c.HTTPTimeout),
					signin.WithLogger(logger),
				)
			}
			provider := app.NewProvider(newAuth(cfg))

			if cfg.Watch {
				if !cliconfig.FileExists(cfgFile) {
					return fmt.Errorf("--watch needs an existing config file, %q not found", cfgFile)
				}
				watcher := cliconfig.NewWatcher(cfgFile, load, func(c cliconfig.Config) {
					provider.Swap(newAuth(c))
				}, log)
				go func() {
					if err := watcher.Run(ctx); err != nil {
						log.Error().Err(err).Msg("config watcher stopped")
					}
				}()
			}

			prompter := terminal.NewPrompter(os.Stdin, os.Stderr, cfg.Email, cfg.Password)
			flow := app.NewLoginFlow(provider, prompter, logger, cfg.MaxAttempts)

			account, err := flow.Run(ctx)
			if err != nil {
				return describe(err)
			}
			return printAccount(cmd.OutOrStdout(), cfg.Output, account)
		},
	}

	bindFlags(root.Flags(), &base, &cfgPath)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("signin")
		os.Exit(1)
	}
}

func bindFlags(fs *pflag.FlagSet, base *cliconfig.Config, cfgPath *string) {
	fs.StringVar(cfgPath, "config", "", "path to config file, .toml or .yaml (default: $HOME/.signin/config.toml)")
	fs.StringVar(&base.ServiceURL, "service-url", base.ServiceURL, "base URL of the authentication API")
	fs.StringVar(&base.LoginPath, "login-path", base.LoginPath, "login endpoint path under the service URL")
	fs.StringVar(&base.Email, "email", base.Email, "account email (asked for when empty)")
	fs.DurationVar(&base.HTTPTimeout, "timeout", base.HTTPTimeout, "HTTP timeout")
	fs.IntVar(&base.MaxAttempts, "attempts", base.MaxAttempts, "maximum sign-in attempts")
	fs.StringVar(&base.LogLevel, "log-level", base.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVarP(&base.Output, "output", "o", base.Output, "output format (text, json)")
	fs.BoolVar(&base.Watch, "watch", base.Watch, "reload the login endpoint and timeout from the config file when it changes")
}

// describe turns classified failures into user-facing messages.
func describe(err error) error {
	switch {
	case errors.Is(err, signin.ErrInvalidCredentials):
		return errors.New("invalid credentials")
	case errors.Is(err, signin.ErrUnexpected):
		return errors.New("something went wrong, try again soon")
	case errors.Is(err, context.Canceled):
		return errors.New("interrupted")
	default:
		return err
	}
}
