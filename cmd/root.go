package cmd

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shdw-drive/shdw-cli/internal/config"
	"github.com/shdw-drive/shdw-cli/internal/logger"
)

// Global flags
var (
	keypairPath  string
	rpcURL       string
	authToken    string
	configPath   string
	outputFormat string
	logLevel     string
	skipConfirm  bool
	hideHeader   bool
	noStyle      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shdw-drive",
	Short: "Manage Shadow Drive storage accounts and files from the command line.",
	Long: `shdw-drive creates and manages Shadow Drive storage accounts and the files
stored in them, signing every request with your Solana wallet.

Commands that change or delete data print what they are about to do and ask
for confirmation first. Pass --skip-confirm to answer yes up front.

Set --auth genesysgo to sign in to the GenesysGo portal with your wallet and
use premium RPC access, or pass a bearer token directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Configure(logLevel)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		Fatal(rootCmd, err, ExitError)
	}
}

func init() {
	loadDotEnv()

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&keypairPath, "keypair", "k", "",
		"Signer to use: keypair file, prompt:// (or ASK) for a seed phrase, or stdin:// (default from the Solana CLI config)")
	flags.StringVarP(&rpcURL, "url", "u", "", "Solana RPC URL (default from the Solana CLI config)")
	flags.StringVar(&authToken, "auth", "",
		"Bearer token for the RPC endpoint, or \""+config.AutoSignInKeyword+"\" to sign in with the wallet")
	flags.BoolVarP(&skipConfirm, "skip-confirm", "y", false, "Do not ask for confirmation before changing data")
	flags.StringVar(&configPath, "config", "", "Solana CLI config file (default "+config.DefaultCLIConfig+")")
	flags.StringVarP(&outputFormat, "output", "o", "json", "Output format: json, yaml or table")
	flags.BoolVar(&hideHeader, "hide-header", false, "do not print the column headers.")
	flags.BoolVar(&noStyle, "no-style", false, "remove all styling from table output. Implied when stdout is not a terminal.")
	flags.StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn or error (default $"+logger.LevelEnv+" or warn)")
}

// loadDotEnv loads .env from the working directory and from the config
// directory. Missing files are fine; existing environment wins.
func loadDotEnv() {
	paths := []string{".env"}
	if dir, err := config.GetConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, ".env"))
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			log.Debug().Str("path", p).Msg("loaded environment file")
		}
	}
}

func overrides() config.Overrides {
	return config.Overrides{
		ConfigPath:  configPath,
		KeypairPath: keypairPath,
		URL:         rpcURL,
		Auth:        authToken,
		SkipConfirm: skipConfirm,
	}
}
