package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lugondev/solores-go/internal/diag"
	"github.com/lugondev/solores-go/internal/generator"
	"github.com/lugondev/solores-go/internal/manifest"
)

var (
	outputDir    string
	crateName    string
	crateVersion string
	programID    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <idl-path>",
	Short: "Generate a Rust interface crate from an IDL JSON file",
	Long: `Generate reads an Anchor or Shank IDL JSON file, detects its dialect,
and emits a Rust interface crate under the output directory.

Example:
  solores generate ./idl/my_program.json --out ./generated/my_program --crate-name my-program-interface`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputDir, "out", "o", "./generated", "output directory for the generated crate")
	generateCmd.Flags().StringVarP(&crateName, "crate-name", "n", "", "generated crate name (defaults to <program-name>-interface)")
	generateCmd.Flags().StringVar(&crateVersion, "crate-version", "0.1.0", "generated crate version")
	generateCmd.Flags().StringVar(&programID, "program-id", "", "override the program id declared in lib.rs (base58)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	idlPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve IDL path: %w", err)
	}
	if _, err := os.Stat(idlPath); err != nil {
		return fmt.Errorf("IDL file not found: %s", idlPath)
	}

	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}

	versions, err := manifest.LoadDefaultVersions()
	if err != nil {
		return fmt.Errorf("failed to load default dependency versions: %w", err)
	}
	if v := viper.GetString("borsh-version"); v != "" {
		versions.Borsh = v
	}
	if v := viper.GetString("solana-program-version"); v != "" {
		versions.SolanaProgram = v
	}

	logger := diag.NewLogger(nil)

	fmt.Printf("Generating interface crate from IDL: %s\n", idlPath)
	fmt.Printf("  Output: %s\n", absOut)

	res, err := generator.Generate(generator.Options{
		IDLPath:           idlPath,
		OutputDir:         absOut,
		CrateName:         crateName,
		CrateVersion:      crateVersion,
		ProgramIDOverride: programID,
		Versions:          &versions,
		Logger:            logger,
	})
	if err != nil {
		return fmt.Errorf("code generation failed: %w", err)
	}

	fmt.Printf("  Program: %s (v%s, %s dialect)\n", res.Program.Name, res.Program.Version, res.Program.Dialect)
	fmt.Printf("  Program id: %s\n", res.ProgramID)
	fmt.Println("Generated files:")
	for _, name := range res.EmittedFiles {
		fmt.Printf("  - %s\n", filepath.Join(absOut, name))
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}

	return nil
}
