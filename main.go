package main

import (
	"context"
	"os"

	"github.com/NickyBoy89/sigfind/config"
	"github.com/NickyBoy89/sigfind/criteria"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options are the flags shared by every subcommand
type options struct {
	configPath  string
	targets     []string
	returnTypes []string
	logLevel    string
	jobs        int
	skipInvalid bool
	metricsFile string
}

// load merges the config file with the flags, flags winning
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Targets = o.targets
	}
	if flags.Changed("return-type") {
		cfg.ReturnTypes = o.returnTypes
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("jobs") {
		cfg.Jobs = o.jobs
	}
	if flags.Changed("skip-invalid") {
		cfg.SkipInvalid = o.skipInvalid
	}
	return cfg, cfg.Validate()
}

// run scans files with load and prints what was found
func (o *options) run(cmd *cobra.Command, roots []string, ext string, load loader) error {
	cfg, err := o.load(cmd)
	if err != nil {
		return err
	}
	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(cfg.Level())

	registry := prometheus.NewRegistry()
	session := criteria.NewSession(criteria.WithRegisterer(registry), criteria.WithLogger(logger))

	scanner, err := NewScanner(session, cfg.Targets, cfg.ReturnTypes, cfg.Jobs, cfg.SkipInvalid)
	if err != nil {
		return err
	}

	files, err := collectFiles(roots, ext)
	if err != nil {
		return err
	}
	session.Logger.WithFields(log.Fields{
		"files": len(files),
		"jobs":  cfg.Jobs,
	}).Info("Scanning")

	findings, err := scanner.Scan(cmd.Context(), files, load)
	if err != nil {
		return err
	}
	if err := printFindings(cmd.OutOrStdout(), findings); err != nil {
		return err
	}

	session.Logger.WithFields(log.Fields{
		"findings": len(findings),
		"contexts": session.CachedContexts(),
	}).Info("Done")

	if o.metricsFile != "" {
		return prometheus.WriteToTextfile(o.metricsFile, registry)
	}
	return nil
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "sigfind",
		Short:         "Find Java method declarations by their JVM signature",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.StringArrayVarP(&opts.targets, "method", "m", nil, "JVM signature to find, e.g. foo(Ljava/util/List;I) (repeatable)")
	flags.StringArrayVarP(&opts.returnTypes, "return-type", "r", nil, "JVM signature of a method whose return type is wanted (repeatable)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "number of files scanned at once")
	flags.BoolVar(&opts.skipInvalid, "skip-invalid", false, "warn about malformed signatures instead of failing")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")

	findCmd := &cobra.Command{
		Use:   "find <path>...",
		Short: "Search Java source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, ".java", loadSource)
		},
	}

	classesCmd := &cobra.Command{
		Use:   "classes <path>...",
		Short: "Search compiled class files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, ".class", loadClass)
		},
	}

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(classesCmd)
	return rootCmd
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
