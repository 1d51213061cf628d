package command

import (
	"github.com/shini4i/file-churn/internal/churn"
	"github.com/shini4i/file-churn/internal/helpers"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type churnFlags struct {
	count     int
	length    int
	dir       string
	prefix    string
	keepGoing bool
	verify    bool
	seed      uint64
	report    string
}

// buildConfig layers the config file, CHURN_* environment variables and explicitly set
// flags over the defaults, later layers winning.
func buildConfig(cmd *cobra.Command, opts Options, configFile string, flags churnFlags, debug bool) (churn.Config, error) {
	var options []churn.ConfigOption

	if configFile != "" {
		fs := opts.FS
		if fs == nil {
			fs = afero.NewOsFs()
		}
		settings, err := churn.LoadFileSettings(fs, configFile)
		if err != nil {
			return churn.Config{}, err
		}
		options = append(options, settings.Options()...)
	}

	env, err := loadEnvSettings()
	if err != nil {
		return churn.Config{}, err
	}
	options = append(options, env.Options()...)
	options = append(options, flags.changedOptions(cmd)...)

	options = append(options,
		churn.WithBanner(opts.Banner),
		churn.WithVersion(opts.Version),
		churn.WithDebug(debug),
	)

	return churn.NewConfig(options...)
}

func loadEnvSettings() (churn.FileSettings, error) {
	var settings churn.FileSettings

	if count, ok, err := helpers.LookupEnvInt("CHURN_COUNT"); err != nil {
		return settings, err
	} else if ok {
		settings.Count = &count
	}

	if length, ok, err := helpers.LookupEnvInt("CHURN_LENGTH"); err != nil {
		return settings, err
	} else if ok {
		settings.Length = &length
	}

	if dir := helpers.GetEnv("CHURN_DIR", ""); dir != "" {
		settings.Dir = &dir
	}
	if prefix := helpers.GetEnv("CHURN_PREFIX", ""); prefix != "" {
		settings.Prefix = &prefix
	}

	if keepGoing, ok, err := helpers.LookupEnvBool("CHURN_KEEP_GOING"); err != nil {
		return settings, err
	} else if ok {
		settings.KeepGoing = &keepGoing
	}

	if verify, ok, err := helpers.LookupEnvBool("CHURN_VERIFY"); err != nil {
		return settings, err
	} else if ok {
		settings.Verify = &verify
	}

	return settings, nil
}

func (f churnFlags) changedOptions(cmd *cobra.Command) []churn.ConfigOption {
	changed := cmd.Flags().Changed
	var options []churn.ConfigOption

	if changed("count") {
		options = append(options, churn.WithFileCount(f.count))
	}
	if changed("length") {
		options = append(options, churn.WithTextLength(f.length))
	}
	if changed("dir") {
		options = append(options, churn.WithDir(f.dir))
	}
	if changed("prefix") {
		options = append(options, churn.WithPrefix(f.prefix))
	}
	if changed("keep-going") {
		options = append(options, churn.WithKeepGoing(f.keepGoing))
	}
	if changed("verify") {
		options = append(options, churn.WithVerify(f.verify))
	}
	if changed("seed") {
		options = append(options, churn.WithSeed(f.seed))
	}
	if changed("report") {
		options = append(options, churn.WithReportPath(f.report))
	}

	return options
}
