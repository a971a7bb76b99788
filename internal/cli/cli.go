// Package cli builds the sogou-translate command tree.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/pricofy/sogou-translate/internal/config"
	"github.com/pricofy/sogou-translate/internal/logger"
	"github.com/pricofy/sogou-translate/internal/metrics"
	"github.com/pricofy/sogou-translate/pkg/sogou"
)

type rootOptions struct {
	from       string
	to         string
	configFile string
	metrics    bool
}

// NewRootCommand returns the sogou-translate command with its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sogou-translate [text...]",
		Short: "Translate text with the Sogou translate API",
		Long: `Translate text with the Sogou translate API.

The text is taken from the arguments, joined by spaces, or from stdin when
no arguments are given. Credentials come from --pid/--secret-key, the
SOGOU_PID/SOGOU_SECRET_KEY environment variables, or a config file.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, opts, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.from, "from", "f", sogou.English.String(), "Source language code")
	fs.StringVarP(&opts.to, "to", "t", sogou.ChineseSimplified.String(), "Target language code")
	fs.StringVarP(&opts.configFile, "config", "c", "", "Path to config file")
	fs.BoolVar(&opts.metrics, "metrics", false, "Write Prometheus metrics for the run to stderr")
	config.AddFlags(fs)

	cmd.AddCommand(newLanguagesCommand(), newCodesCommand())
	return cmd
}

func runTranslate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	from, err := sogou.ParseLanguage(opts.from)
	if err != nil {
		return err
	}
	to, err := sogou.ParseLanguage(opts.to)
	if err != nil {
		return err
	}

	text, err := readText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cmd.Flags(), opts.configFile)
	if err != nil {
		return err
	}
	log := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Pretty)

	clientOpts := []sogou.Option{
		sogou.WithEndpoint(cfg.Sogou.Endpoint),
		sogou.WithTimeout(cfg.Sogou.Timeout),
		sogou.WithLogger(log),
	}
	var reg *prometheus.Registry
	if opts.metrics {
		reg = prometheus.NewRegistry()
		clientOpts = append(clientOpts, sogou.WithObserver(metrics.NewCollector(reg)))
	}

	client, err := sogou.New(cfg.Sogou.PID, cfg.Sogou.SecretKey, clientOpts...)
	if err != nil {
		return err
	}

	translation, err := client.Translate(cmd.Context(), text, from, to)
	if reg != nil {
		if werr := writeMetrics(cmd.ErrOrStderr(), reg); werr != nil {
			log.Warn().Err(werr).Msg("failed to write metrics")
		}
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), translation)
	return err
}

// readText joins args, or reads all of r when there are none.
func readText(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported language codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, l := range sogou.Languages() {
				fmt.Fprintf(tw, "%s\t%s\n", l, l.Name())
			}
			return tw.Flush()
		},
	}
}

func newCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List translate API error codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, d := range sogou.Codes() {
				fmt.Fprintf(tw, "%s\t%s\n", d.Code, d.Message)
			}
			return tw.Flush()
		},
	}
}
