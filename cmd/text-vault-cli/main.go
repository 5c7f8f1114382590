// Package main is the entry point for the text-vault-cli application.
// It loads the CLI settings, registers the text and genpass command groups
// and executes the command-line interface.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	commands "github.com/MGTheTrain/text-vault/cmd/text-vault-cli/internal/commands"
	"github.com/MGTheTrain/text-vault/internal/pkg/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	configPath, err := config.ConfigPathFromEnv()
	if err != nil {
		return err
	}

	settings, err := config.LoadCLISettings(configPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	rootCmd := &cobra.Command{
		Use:   "text-vault-cli",
		Short: "Text signing and encryption CLI tool",
		Long: `text-vault-cli signs and verifies text with BLAKE3 keyed hashes or Ed25519,
and encrypts or decrypts text with ChaCha20-Poly1305.

Inputs are read from a file, or from stdin when the input is "-".
Signatures and ciphertexts are printed as URL-safe base64 without padding.

Settings are read from the YAML file named by TEXT_VAULT_CONFIG and can be
overridden with TEXT_VAULT_LOG_LEVEL, TEXT_VAULT_LOG_TYPE, TEXT_VAULT_LOG_FILE
and TEXT_VAULT_KEY_DIR. A .env file in the working directory is loaded first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := initializeCommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command, settings *config.CLISettings) error {
	if err := commands.InitTextCommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize text commands: %w", err)
	}

	if err := commands.InitGenpassCommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize genpass commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}
