package commands

import (
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/pkg/config"
	"github.com/MGTheTrain/text-vault/internal/pkg/genpass"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// GenpassCommandHandler encapsulates logic for generating passwords via CLI.
type GenpassCommandHandler struct {
	logger logger.Logger
}

// NewGenpassCommandHandler initializes and returns a GenpassCommandHandler instance
func NewGenpassCommandHandler(settings *config.CLISettings) (*GenpassCommandHandler, error) {
	loggerInstance, err := setupLogger(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &GenpassCommandHandler{
		logger: loggerInstance,
	}, nil
}

// GenpassCmd prints a random password and logs its strength score
func (commandHandler *GenpassCommandHandler) GenpassCmd(cmd *cobra.Command, _ []string) error {
	opts := genpass.Options{}
	opts.Length, _ = cmd.Flags().GetInt("length")
	opts.Uppercase, _ = cmd.Flags().GetBool("uppercase")
	opts.Lowercase, _ = cmd.Flags().GetBool("lowercase")
	opts.Number, _ = cmd.Flags().GetBool("number")
	opts.Symbol, _ = cmd.Flags().GetBool("symbol")

	password, err := genpass.Generate(opts)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), password); err != nil {
		return err
	}

	commandHandler.logger.Info("Password strength: ", genpass.Strength(password), "/4")
	return nil
}

// InitGenpassCommands registers the genpass command
func InitGenpassCommands(rootCmd *cobra.Command, settings *config.CLISettings) error {
	handler, err := NewGenpassCommandHandler(settings)
	if err != nil {
		return fmt.Errorf("failed to create genpass command handler: %w", err)
	}

	var genpassCmd = &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		RunE:  handler.GenpassCmd,
	}
	genpassCmd.Flags().IntP("length", "l", 16, "Password length")
	genpassCmd.Flags().BoolP("uppercase", "", true, "Include uppercase letters")
	genpassCmd.Flags().BoolP("lowercase", "", true, "Include lowercase letters")
	genpassCmd.Flags().BoolP("number", "", true, "Include digits")
	genpassCmd.Flags().BoolP("symbol", "", true, "Include symbols")
	rootCmd.AddCommand(genpassCmd)

	return nil
}
