package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "solores",
	Short: "Generate a Rust interface crate from an Anchor or Shank IDL",
	Long: `solores reads a Solana program's IDL (Anchor or Shank JSON) and
generates a self-contained Rust crate that off-chain clients and on-chain
callers can use to build, serialize, deserialize, and verify that program's
instructions and account data, without depending on the program's source.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.solores.yaml)")
	rootCmd.PersistentFlags().String("borsh-version", "", "override the generated crate's borsh version pin")
	rootCmd.PersistentFlags().String("solana-program-version", "", "override the generated crate's solana-program version pin")

	for _, flag := range []string{"borsh-version", "solana-program-version"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding flag: %v\n", err)
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".solores")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
