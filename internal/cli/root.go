package cli

import (
	"github.com/ralt/toml2index/internal/filter"
	"github.com/ralt/toml2index/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var config models.ConvertConfig

	rootCmd := &cobra.Command{
		Use:   "toml2index [flags] <input.toml>",
		Short: "Convert a TOML package description into a ReaPack index.xml",
		Long: `toml2index reads a TOML document describing ReaPack packages, their
versions and source files, and writes the index.xml consumed by the ReaPack
client.

File sources may use ${name} placeholders, expanded from the vars table of
their version (${$} is a literal $). Package descriptions are converted from
Markdown to RTF with pandoc unless --no-pandoc is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InputPath = args[0]

			if err := validateConfig(&config); err != nil {
				return err
			}

			logrus.Debugf("Configuration: %+v", redact(config))

			return runConversion(cmd.Context(), &config)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Output
	rootCmd.Flags().StringVarP(&config.OutputPath, "output", "o", "index.xml", "Output XML file")
	rootCmd.Flags().StringSliceVar(&config.Compress, "compress", nil, "Also write compressed copies (gzip, zstd, xz)")

	// Description rendering
	rootCmd.Flags().StringVar(&config.PandocCommand, "pandoc", filter.DefaultCommand, "Command converting Markdown descriptions to RTF")
	rootCmd.Flags().BoolVar(&config.NoPandoc, "no-pandoc", false, "Write descriptions without converting them")

	// GPG signing flags
	rootCmd.Flags().StringVarP(&config.GPGKeyPath, "gpg-key", "k", "", "Path to GPG private key used to sign the output")
	rootCmd.Flags().StringVarP(&config.GPGPassphrase, "gpg-passphrase", "p", "", "GPG key passphrase")
	rootCmd.Flags().StringVar(&config.PublicKeyPath, "export-key", "", "Write the armored public key to this path")

	return rootCmd
}

// redact hides secrets before the configuration is logged
func redact(config models.ConvertConfig) models.ConvertConfig {
	if config.GPGPassphrase != "" {
		config.GPGPassphrase = "***"
	}
	return config
}
