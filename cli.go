package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vit0-9/utm_builder/internal/config"
	"github.com/vit0-9/utm_builder/internal/logging"
	"github.com/vit0-9/utm_builder/pkg/utils"
	"github.com/vit0-9/utm_builder/pkg/utils/builder"
	"github.com/vit0-9/utm_builder/pkg/utils/settings"
)

const VERSION = "1.0.0"

// cli carries what every subcommand needs once the root has run.
type cli struct {
	debug  bool
	cfg    config.Config
	logger *slog.Logger
	// extra controller options, appended after the system defaults
	controllerOpts []builder.Option
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(opts ...builder.Option) *cobra.Command {
	c := &cli{controllerOpts: opts}

	root := &cobra.Command{
		Use:           "utm",
		Short:         "UTM link builder",
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVarP(&c.debug, "debug", "d", false, "Display debugging output")

	root.AddCommand(c.serveCmd(), c.buildCmd(), c.presetsCmd(), c.resetCmd())
	return root
}

func (c *cli) setup(logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level := logging.ParseLevel(cfg.LogLevel)
	if c.debug {
		level = slog.LevelDebug
	}
	c.cfg = cfg
	c.logger = logging.Setup(logOut, level, cfg.Production())
	c.logger.Debug(fmt.Sprintf("Version: %s", VERSION))
	return nil
}

// openController opens the settings database and restores the saved form.
// The returned func closes both.
func (c *cli) openController(ctx context.Context) (*builder.Controller, func(), error) {
	db, err := settings.OpenSQLite(ctx, settings.SQLiteConfig{Path: c.cfg.DatabasePath})
	if err != nil {
		return nil, nil, err
	}
	store := settings.NewSQLiteStore(db, c.cfg.SettingsKey)

	opts := []builder.Option{
		builder.WithRequiredTags(c.cfg.RequiredTags()),
		builder.WithStatusTTL(c.cfg.StatusTTL),
		builder.WithLogger(c.logger),
	}
	ctl := builder.NewController(ctx, store, append(opts, c.controllerOpts...)...)
	return ctl, func() {
		ctl.Close()
		db.Close()
	}, nil
}

func (c *cli) serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ctl, closeFn, err := c.openController(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			applyGinMode(c.cfg)
			app, err := NewApp(ctl, c.logger)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			if port == "" {
				port = c.cfg.Port
			}
			return app.Start(ctx, ":"+port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (defaults to $PORT or 8080)")
	return cmd
}

func (c *cli) buildCmd() *cobra.Command {
	var (
		edit                    builder.Edit
		baseURL, source, medium string
		campaign, term, content string
		keepQuery, lowercase    bool
		encode, spaceAsPlus     bool
		preset                  string
		copyURL, copyTags, open bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Edit the saved form and print the tagged link",
		Long: `Apply the given flags to the saved form, print the resulting link and
optionally copy it or open it in the browser.

A --preset is applied before any tag flags, so flags override preset values.
Changing a tag by hand switches the preset back to custom.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctl, closeFn, err := c.openController(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			if preset != "" {
				if _, err := ctl.ApplyPreset(ctx, preset); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			edit.BaseURL = changedString(flags.Changed("url"), baseURL)
			edit.Source = changedString(flags.Changed("source"), source)
			edit.Medium = changedString(flags.Changed("medium"), medium)
			edit.Campaign = changedString(flags.Changed("campaign"), campaign)
			edit.Term = changedString(flags.Changed("term"), term)
			edit.Content = changedString(flags.Changed("content"), content)
			edit.KeepQuery = changedBool(flags.Changed("keep-query"), keepQuery)
			edit.Lowercase = changedBool(flags.Changed("lowercase"), lowercase)
			edit.Encode = changedBool(flags.Changed("encode"), encode)
			edit.SpaceAsPlus = changedBool(flags.Changed("space-as-plus"), spaceAsPlus)
			snap := ctl.Edit(ctx, edit)

			out := cmd.OutOrStdout()
			printView(out, snap)

			var (
				res builder.ActionResult
				ran bool
			)
			switch {
			case copyURL:
				res, err = ctl.CopyURL(ctx)
				ran = true
			case copyTags:
				res, err = ctl.CopyTags(ctx)
				ran = true
			case open:
				res, err = ctl.Open(ctx)
				ran = true
			}
			if !ran {
				return nil
			}
			if errors.Is(err, builder.ErrNoTags) {
				return errors.New(builder.MsgNoTags)
			}
			if err != nil {
				return errors.New(builder.MsgNotReady)
			}
			if res.Status != "" {
				fmt.Fprintln(out, res.Status)
			}
			if !res.OK && res.Text != "" {
				return errors.New(res.Status)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&baseURL, "url", "", "Destination URL")
	f.StringVar(&source, "source", "", "utm_source value")
	f.StringVar(&medium, "medium", "", "utm_medium value")
	f.StringVar(&campaign, "campaign", "", "utm_campaign value")
	f.StringVar(&term, "term", "", "utm_term value")
	f.StringVar(&content, "content", "", "utm_content value")
	f.BoolVar(&keepQuery, "keep-query", true, "Keep the destination URL's existing query parameters")
	f.BoolVar(&lowercase, "lowercase", true, "Lowercase tag values")
	f.BoolVar(&encode, "encode", true, "Print the URL percent-encoded")
	f.BoolVar(&spaceAsPlus, "space-as-plus", true, "Encode spaces as '+' instead of %20")
	f.StringVar(&preset, "preset", "", "Apply a preset before the tag flags (see 'utm presets')")
	f.BoolVar(&copyURL, "copy", false, "Copy the full URL to the clipboard")
	f.BoolVar(&copyTags, "copy-tags", false, "Copy only '?' plus the UTM tags to the clipboard")
	f.BoolVar(&open, "open", false, "Open the URL in the default browser")
	cmd.MarkFlagsMutuallyExclusive("copy", "copy-tags", "open")
	return cmd
}

func (c *cli) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the UTM presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := utils.UTMPresets()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range presets {
				if p.IsCustom() {
					fmt.Fprintf(out, "%-10s %s\n", p.Key, p.Label)
					continue
				}
				v := p.Values
				fmt.Fprintf(out, "%-10s %-14s source=%s medium=%s campaign=%s term=%s content=%s\n",
					p.Key, p.Label, v.Source, v.Medium, v.Campaign, v.Term, v.Content)
			}
			return nil
		},
	}
}

func (c *cli) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore and save the default form values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, closeFn, err := c.openController(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()
			printView(cmd.OutOrStdout(), ctl.Reset(cmd.Context()))
			return nil
		},
	}
}

// applyGinMode puts gin in release mode for production. Otherwise gin keeps
// whatever GIN_MODE selected.
func applyGinMode(cfg config.Config) {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
}

func printView(w io.Writer, snap builder.Snapshot) {
	v := snap.View
	fmt.Fprintf(w, "Preset: %s\n", snap.Settings.Preset)
	if v.DisplayURL != "" {
		fmt.Fprintf(w, "URL:    %s\n", v.DisplayURL)
	}
	fmt.Fprintf(w, "Tags:   %s\n", v.DisplayQuery)
	if v.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:  %s\n", v.ErrorMessage)
	}
}

func changedString(changed bool, v string) *string {
	if !changed {
		return nil
	}
	return &v
}

func changedBool(changed bool, v bool) *bool {
	if !changed {
		return nil
	}
	return &v
}
