package command

import (
	"errors"

	"github.com/shini4i/file-churn/internal/churn"
	"github.com/shini4i/file-churn/internal/helpers"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Options describes the collaborators and defaults required to build the CLI.
type Options struct {
	Version     string
	Banner      string
	FS          afero.Fs
	RunChurn    func(churn.Config) error
	RunSweep    func(churn.Config) error
	InitLogging func(debug bool)
}

// Execute builds and runs the Cobra command tree using the supplied options.
func Execute(opts Options, args []string) error {
	root := newRootCommand(opts)

	if args != nil {
		root.SetArgs(args)
	}

	return root.Execute()
}

// newRootCommand builds the root command, which performs a full churn run.
func newRootCommand(opts Options) *cobra.Command {
	var (
		debug      bool
		configFile string
	)
	flags := churnFlags{}

	root := &cobra.Command{
		Use:          "churn",
		Short:        "Create, fill and delete a batch of files to generate disk activity",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.InitLogging != nil {
				opts.InitLogging(debug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.RunChurn == nil {
				return errors.New("no run handler provided")
			}

			cfg, err := buildConfig(cmd, opts, configFile, flags, debug)
			if err != nil {
				return err
			}
			return opts.RunChurn(cfg)
		},
	}

	root.Version = opts.Version
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")
	root.PersistentFlags().StringVarP(&configFile, "config", "c", helpers.GetEnv("CHURN_CONFIG", ""), "YAML config file")
	root.PersistentFlags().StringVarP(&flags.dir, "dir", "C", "", "Directory to create the files in (default current directory)")
	root.PersistentFlags().StringVar(&flags.prefix, "prefix", "", "File name prefix (default \"FILE\")")
	root.PersistentFlags().BoolVar(&flags.keepGoing, "keep-going", false, "Continue past failed files and report them at the end")

	root.Flags().IntVarP(&flags.count, "count", "n", churn.DefaultFileCount, "Number of files to create")
	root.Flags().IntVarP(&flags.length, "length", "l", churn.DefaultTextLength, "Number of random letters per file")
	root.Flags().BoolVar(&flags.verify, "verify", false, "Read every file back before cleanup")
	root.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for reproducible file contents")
	root.Flags().StringVar(&flags.report, "report", "", "Write a YAML run report to this path")

	root.AddCommand(newSweepCommand(opts, &flags, &configFile, &debug))

	return root
}

// newSweepCommand constructs the subcommand that removes files left by an interrupted run.
func newSweepCommand(opts Options, flags *churnFlags, configFile *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove churn files left behind by an interrupted run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.RunSweep == nil {
				return errors.New("no sweep handler provided")
			}

			cfg, err := buildConfig(cmd, opts, *configFile, *flags, *debug)
			if err != nil {
				return err
			}
			return opts.RunSweep(cfg)
		},
	}
}
