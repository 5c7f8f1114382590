package commands

import (
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/text-vault/internal/pkg/config"
	"github.com/MGTheTrain/text-vault/internal/pkg/fileutil"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// TextCommandHandler encapsulates logic for handling text signing and encryption via CLI.
type TextCommandHandler struct {
	textProcessor cryptoalg.TextProcessor
	logger        logger.Logger
	keyDir        string
}

// NewTextCommandHandler initializes and returns a TextCommandHandler instance with
// configured logger and text processor.
func NewTextCommandHandler(settings *config.CLISettings) (*TextCommandHandler, error) {
	loggerInstance, err := setupLogger(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	textProcessor, err := cryptography.NewTextProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create text processor: %w", err)
	}

	keyDir := "."
	if settings != nil && settings.KeyDir != "" {
		keyDir = settings.KeyDir
	}

	return &TextCommandHandler{
		textProcessor: textProcessor,
		logger:        loggerInstance,
		keyDir:        keyDir,
	}, nil
}

// SignCmd signs the input and prints the base64 signature
func (commandHandler *TextCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	opts := &crypto.SignOptions{}
	opts.Input, _ = cmd.Flags().GetString("input")
	opts.Key, _ = cmd.Flags().GetString("key")
	opts.Format, _ = cmd.Flags().GetString("format")

	if err := opts.Validate(); err != nil {
		return err
	}
	format, err := crypto.ParseSignFormat(opts.Format)
	if err != nil {
		return err
	}

	reader, err := fileutil.GetReader(opts.Input)
	if err != nil {
		return err
	}
	defer reader.Close()

	signature, err := commandHandler.textProcessor.Sign(reader, opts.Key, format)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), signature)
	return err
}

// VerifyCmd verifies the input against a base64 signature and prints true or false
func (commandHandler *TextCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	opts := &crypto.VerifyOptions{}
	opts.Input, _ = cmd.Flags().GetString("input")
	opts.Key, _ = cmd.Flags().GetString("key")
	opts.Signature, _ = cmd.Flags().GetString("sig")
	opts.Format, _ = cmd.Flags().GetString("format")

	if err := opts.Validate(); err != nil {
		return err
	}
	format, err := crypto.ParseSignFormat(opts.Format)
	if err != nil {
		return err
	}

	reader, err := fileutil.GetReader(opts.Input)
	if err != nil {
		return err
	}
	defer reader.Close()

	valid, err := commandHandler.textProcessor.Verify(reader, opts.Key, format, opts.Signature)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), valid)
	return err
}

// GenerateCmd generates signing keys and persists those in a selected directory
func (commandHandler *TextCommandHandler) GenerateCmd(cmd *cobra.Command, _ []string) error {
	opts := &crypto.GenerateKeyOptions{}
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.OutputDir, _ = cmd.Flags().GetString("output")
	opts.Unique, _ = cmd.Flags().GetBool("unique")
	if opts.OutputDir == "" {
		opts.OutputDir = commandHandler.keyDir
	}

	if err := opts.Validate(); err != nil {
		return err
	}
	format, err := crypto.ParseSignFormat(opts.Format)
	if err != nil {
		return err
	}

	paths, err := commandHandler.textProcessor.SaveKeys(format, opts.OutputDir, opts.Unique)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return err
		}
	}
	return nil
}

// EncryptCmd encrypts the input and prints the base64 ciphertext
func (commandHandler *TextCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	opts, err := cipherOptionsFromFlags(cmd)
	if err != nil {
		return err
	}
	format, err := crypto.ParseCipherFormat(opts.Format)
	if err != nil {
		return err
	}

	reader, err := fileutil.GetReader(opts.Input)
	if err != nil {
		return err
	}
	defer reader.Close()

	encrypted, err := commandHandler.textProcessor.Encrypt(reader, opts.Key, opts.Nonce, format)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), encrypted)
	return err
}

// DecryptCmd decrypts base64 input and prints the plaintext
func (commandHandler *TextCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	opts, err := cipherOptionsFromFlags(cmd)
	if err != nil {
		return err
	}
	format, err := crypto.ParseCipherFormat(opts.Format)
	if err != nil {
		return err
	}

	reader, err := fileutil.GetReader(opts.Input)
	if err != nil {
		return err
	}
	defer reader.Close()

	decrypted, err := commandHandler.textProcessor.Decrypt(reader, opts.Key, opts.Nonce, format)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), decrypted)
	return err
}

// GenerateCipherKeyCmd generates a ChaCha20-Poly1305 key, and optionally a nonce, in a selected directory
func (commandHandler *TextCommandHandler) GenerateCipherKeyCmd(cmd *cobra.Command, _ []string) error {
	opts := &crypto.GenerateCipherKeyOptions{}
	opts.OutputDir, _ = cmd.Flags().GetString("output")
	opts.WithNonce, _ = cmd.Flags().GetBool("with-nonce")
	opts.Unique, _ = cmd.Flags().GetBool("unique")
	if opts.OutputDir == "" {
		opts.OutputDir = commandHandler.keyDir
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	paths, err := commandHandler.textProcessor.SaveCipherKey(opts.OutputDir, opts.WithNonce, opts.Unique)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return err
		}
	}
	return nil
}

func cipherOptionsFromFlags(cmd *cobra.Command) (*crypto.CipherOptions, error) {
	opts := &crypto.CipherOptions{}
	opts.Input, _ = cmd.Flags().GetString("input")
	opts.Key, _ = cmd.Flags().GetString("key")
	opts.Nonce, _ = cmd.Flags().GetString("nonce")
	opts.Format, _ = cmd.Flags().GetString("format")

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// InitTextCommands registers the text command group
func InitTextCommands(rootCmd *cobra.Command, settings *config.CLISettings) error {
	handler, err := NewTextCommandHandler(settings)
	if err != nil {
		return fmt.Errorf("failed to create text command handler: %w", err)
	}

	var textCmd = &cobra.Command{
		Use:   "text",
		Short: "Sign, verify, encrypt and decrypt text",
	}
	rootCmd.AddCommand(textCmd)

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign text with a BLAKE3 key or an Ed25519 secret key",
		RunE:  handler.SignCmd,
	}
	signCmd.Flags().StringP("input", "i", crypto.StdinInput, "Input file, or - for stdin")
	signCmd.Flags().StringP("key", "k", "", "Path to the signing key")
	signCmd.Flags().StringP("format", "", crypto.AlgorithmBlake3, "Signature format: blake3 or ed25519")
	_ = signCmd.MarkFlagRequired("key")
	textCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature with a BLAKE3 key or an Ed25519 public key",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("input", "i", crypto.StdinInput, "Input file, or - for stdin")
	verifyCmd.Flags().StringP("key", "k", "", "Path to the verifying key")
	verifyCmd.Flags().StringP("sig", "s", "", "Base64 signature")
	verifyCmd.Flags().StringP("format", "", crypto.AlgorithmBlake3, "Signature format: blake3 or ed25519")
	_ = verifyCmd.MarkFlagRequired("key")
	_ = verifyCmd.MarkFlagRequired("sig")
	textCmd.AddCommand(verifyCmd)

	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate signing keys",
		RunE:  handler.GenerateCmd,
	}
	generateCmd.Flags().StringP("format", "", crypto.AlgorithmBlake3, "Key format: blake3 or ed25519")
	generateCmd.Flags().StringP("output", "o", "", "Directory to store the keys (defaults to the configured key directory)")
	generateCmd.Flags().BoolP("unique", "", false, "Prefix key file names with a random UUID")
	textCmd.AddCommand(generateCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with ChaCha20-Poly1305",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input", "i", crypto.StdinInput, "Input file, or - for stdin")
	encryptCmd.Flags().StringP("key", "k", "", "Path to the symmetric key")
	encryptCmd.Flags().StringP("nonce", "", "", "Path to a nonce file; a fresh nonce is generated and prepended when empty")
	encryptCmd.Flags().StringP("format", "", crypto.AlgorithmChacha20, "Cipher format: chacha20")
	_ = encryptCmd.MarkFlagRequired("key")
	textCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt base64 text with ChaCha20-Poly1305",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input", "i", crypto.StdinInput, "Input file, or - for stdin")
	decryptCmd.Flags().StringP("key", "k", "", "Path to the symmetric key")
	decryptCmd.Flags().StringP("nonce", "", "", "Path to the nonce file used for encryption; read from the input when empty")
	decryptCmd.Flags().StringP("format", "", crypto.AlgorithmChacha20, "Cipher format: chacha20")
	_ = decryptCmd.MarkFlagRequired("key")
	textCmd.AddCommand(decryptCmd)

	var generateCipherKeyCmd = &cobra.Command{
		Use:   "generate-cipher-key",
		Short: "Generate a ChaCha20-Poly1305 key",
		RunE:  handler.GenerateCipherKeyCmd,
	}
	generateCipherKeyCmd.Flags().StringP("output", "o", "", "Directory to store the key (defaults to the configured key directory)")
	generateCipherKeyCmd.Flags().BoolP("with-nonce", "", false, "Also write a nonce file for nonce-file mode")
	generateCipherKeyCmd.Flags().BoolP("unique", "", false, "Prefix file names with a random UUID")
	textCmd.AddCommand(generateCipherKeyCmd)

	return nil
}
