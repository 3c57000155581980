package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	configs "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/env"
	customLogger "github.com/thirdweb-dev/blocklinks/internal/log"
)

var (
	// Used for flags.
	cfgFile  string
	envFiles []string

	rootCmd = &cobra.Command{
		Use:   "blocklinks",
		Short: "Ethereum block links service",
		Long:  "Serves sender to recipient links extracted from Ethereum blocks, caching every fetched block.",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load before the config (default is ./.env)")
	rootCmd.PersistentFlags().String("rpc-url", "", "Base URL of the JSON-RPC provider, the API key is appended to it")
	rootCmd.PersistentFlags().String("rpc-api-key", "", "API key for the JSON-RPC provider")
	rootCmd.PersistentFlags().Int("rpc-timeout", 0, "RPC request timeout in milliseconds")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("api-host", configs.DEFAULT_API_HOST, "Host the API listens on")
	rootCmd.PersistentFlags().Int("api-port", configs.DEFAULT_API_PORT, "Port the API listens on")
	rootCmd.PersistentFlags().String("api-static-dir", "", "Directory holding index.html, style.css and script.js")
	rootCmd.PersistentFlags().String("storage-file-dir", "", "Directory for the file block cache")
	viper.BindPFlag("rpc.url", rootCmd.PersistentFlags().Lookup("rpc-url"))
	viper.BindPFlag("rpc.apiKey", rootCmd.PersistentFlags().Lookup("rpc-api-key"))
	viper.BindPFlag("rpc.timeout", rootCmd.PersistentFlags().Lookup("rpc-timeout"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("api.host", rootCmd.PersistentFlags().Lookup("api-host"))
	viper.BindPFlag("api.port", rootCmd.PersistentFlags().Lookup("api-port"))
	viper.BindPFlag("api.staticDir", rootCmd.PersistentFlags().Lookup("api-static-dir"))
	viper.BindPFlag("storage.file.dir", rootCmd.PersistentFlags().Lookup("storage-file-dir"))

	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(linksCmd)
}

func initConfig() {
	if err := env.Load(envFiles...); err != nil {
		log.Fatal().Err(err).Msg("Failed to load env file")
	}
	if err := configs.LoadConfig(cfgFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	customLogger.InitLogger()
}
