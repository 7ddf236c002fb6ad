// Command secp256k1-tool is a small demonstrator CLI around the
// secp256k1 and ecdsa packages: generate a key pair, sign a message, and
// verify a signature, each as its own subcommand.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	secp256k1 "github.com/itzmeanjan/secp256k1-go"
	"github.com/itzmeanjan/secp256k1-go/ecdsa"
	"github.com/itzmeanjan/secp256k1-go/internal/field"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "secp256k1-tool",
		Short: "Generate secp256k1 keys, sign messages, and verify signatures",
	}

	root.AddCommand(newKeygenCmd())
	root.AddCommand(newSignCmd())
	root.AddCommand(newVerifyCmd())

	return root
}

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new private/public key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := ecdsa.GenerateKey(ecdsa.SystemRNG{})
			if err != nil {
				return fmt.Errorf("generate key: %w", err)
			}

			x, y := k.PublicKey().Point().Affine()
			log.Info().Msg("generated key pair")
			fmt.Printf("private key: %s\n", hex.EncodeToString(k.Bytes()))
			fmt.Printf("public key x: %s\n", x.String())
			fmt.Printf("public key y: %s\n", y.String())

			return nil
		},
	}
}

func newSignCmd() *cobra.Command {
	var privHex, message string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a hex-encoded private key",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := privateKeyFromHex(privHex)
			if err != nil {
				return err
			}

			sig, err := k.Sign(ecdsa.SystemRNG{}, ecdsa.SHA3256, []byte(message))
			if err != nil {
				return fmt.Errorf("sign: %w", err)
			}

			log.Info().Str("message", message).Msg("signed message")
			fmt.Printf("r: %s\n", sig.R.String())
			fmt.Printf("s: %s\n", sig.S.String())

			return nil
		},
	}

	cmd.Flags().StringVar(&privHex, "key", "", "hex-encoded private key scalar")
	cmd.Flags().StringVar(&message, "message", "", "message to sign")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newVerifyCmd() *cobra.Command {
	var pubXHex, pubYHex, message, rHex, sHex string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature against a public key and message",
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := publicKeyFromHex(pubXHex, pubYHex)
			if err != nil {
				return err
			}

			r, err := scalarFromHex(rHex)
			if err != nil {
				return fmt.Errorf("parse r: %w", err)
			}
			s, err := scalarFromHex(sHex)
			if err != nil {
				return fmt.Errorf("parse s: %w", err)
			}

			ok := pk.Verify(ecdsa.SHA3256, []byte(message), &ecdsa.Signature{R: r, S: s})
			log.Info().Bool("valid", ok).Msg("verified signature")
			if !ok {
				os.Exit(1)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&pubXHex, "pub-x", "", "hex-encoded public key x-coordinate")
	cmd.Flags().StringVar(&pubYHex, "pub-y", "", "hex-encoded public key y-coordinate")
	cmd.Flags().StringVar(&message, "message", "", "message to verify")
	cmd.Flags().StringVar(&rHex, "r", "", "hex-encoded signature r component")
	cmd.Flags().StringVar(&sHex, "s", "", "hex-encoded signature s component")
	for _, name := range []string{"pub-x", "pub-y", "message", "r", "s"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func privateKeyFromHex(s string) (*ecdsa.PrivateKey, error) {
	sc, err := scalarFromHex(s)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	k, err := ecdsa.NewPrivateKeyFromScalar(sc)
	if err != nil {
		return nil, fmt.Errorf("build private key: %w", err)
	}
	return k, nil
}

func publicKeyFromHex(xHex, yHex string) (*ecdsa.PublicKey, error) {
	x, err := baseFieldFromHex(xHex)
	if err != nil {
		return nil, fmt.Errorf("parse public key x: %w", err)
	}
	y, err := baseFieldFromHex(yHex)
	if err != nil {
		return nil, fmt.Errorf("parse public key y: %w", err)
	}

	pt := secp256k1.NewIdentityPoint().SetAffine(x, y)
	if pt.IsIdentity() != 0 {
		return nil, fmt.Errorf("public key is the point at infinity")
	}

	return ecdsa.NewPublicKeyFromPoint(pt)
}

func scalarFromHex(s string) (*secp256k1.Scalar, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != secp256k1.ScalarSize {
		return nil, fmt.Errorf("expected %d bytes, got %d", secp256k1.ScalarSize, len(raw))
	}

	var b [secp256k1.ScalarSize]byte
	copy(b[:], raw)
	return secp256k1.NewScalarFromCanonicalBytes(&b)
}

func baseFieldFromHex(s string) (*field.BaseField, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != field.BaseFieldSize {
		return nil, fmt.Errorf("expected %d bytes, got %d", field.BaseFieldSize, len(raw))
	}

	var b [field.BaseFieldSize]byte
	copy(b[:], raw)
	return field.NewBaseFieldFromCanonicalBytes(&b)
}
