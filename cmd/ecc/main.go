package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	ecc "github.com/vaultsandbox/ecc-go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// errInvalidSignature makes verify exit non-zero without an error message.
var errInvalidSignature = errors.New("invalid signature")

func run(args []string, cfg Config) error {
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return err
	}
	return newApp(cfg).Run(args)
}

func newApp(cfg Config) *cli.App {
	var tk *ecc.Toolkit

	before := func(c *cli.Context) error {
		settings, err := readSettings(c.String("config"))
		if err != nil {
			return err
		}

		level, err := zerolog.ParseLevel(stringSetting(c, "loglevel", settings.LogLevel))
		if err != nil {
			return fmt.Errorf("loglevel: %w", err)
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: cfg.Stderr, NoColor: true}).
			Level(level).
			With().Timestamp().Logger()

		cacheSize := c.Int("cache-size")
		if !c.IsSet("cache-size") && settings.CacheSize != 0 {
			cacheSize = settings.CacheSize
		}
		reuse := !c.Bool("no-kem-reuse")
		if !c.IsSet("no-kem-reuse") && settings.KEMReuse != nil {
			reuse = *settings.KEMReuse
		}

		tk, err = ecc.New(
			ecc.WithDefaultCurve(stringSetting(c, "curve", settings.Curve)),
			ecc.WithCipher(stringSetting(c, "cipher", settings.Cipher)),
			ecc.WithHash(stringSetting(c, "hash", settings.Hash)),
			ecc.WithCacheSize(cacheSize),
			ecc.WithKEMReuse(reuse),
			ecc.WithLogger(&logger),
		)
		return err
	}

	keyFlag := &cli.StringFlag{
		Name:     "key",
		Aliases:  []string{"k"},
		Usage:    "encoded key string",
		EnvVars:  []string{"ECC_KEY"},
		Required: true,
	}
	noHashFlag := &cli.BoolFlag{
		Name:  "no-hash",
		Usage: "sign or verify the raw message instead of its digest",
	}

	return &cli.App{
		Name:           "ecc",
		Usage:          "curve-based encryption and signatures with string-encoded keys",
		Reader:         cfg.Stdin,
		Writer:         cfg.Stdout,
		ErrWriter:      cfg.Stderr,
		HideVersion:    true,
		ExitErrHandler: func(*cli.Context, error) {},
		Before:         before,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "curve",
				Usage:   "default curve id for generate",
				EnvVars: []string{"ECC_CURVE"},
				Value:   ecc.DefaultCurve,
			},
			&cli.StringFlag{
				Name:    "cipher",
				Usage:   "AEAD used by encrypt (" + strings.Join(ecc.Ciphers(), ", ") + ")",
				EnvVars: []string{"ECC_CIPHER"},
				Value:   ecc.DefaultCipher,
			},
			&cli.StringFlag{
				Name:    "hash",
				Usage:   "digest signed by sign and verify (" + strings.Join(ecc.Hashes(), ", ") + ")",
				EnvVars: []string{"ECC_HASH"},
				Value:   ecc.DefaultHash,
			},
			&cli.IntFlag{
				Name:  "cache-size",
				Usage: "bound on every key cache, 0 for unbounded",
			},
			&cli.BoolFlag{
				Name:  "no-kem-reuse",
				Usage: "encapsulate afresh for every message",
			},
			&cli.StringFlag{
				Name:    "loglevel",
				Usage:   "log level (debug, info, warn, error, disabled)",
				EnvVars: []string{"ECC_LOGLEVEL"},
				Value:   "warn",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "generate a key pair and print it as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "kind",
						Usage: "encdec or sigver",
						Value: ecc.EncDec.String(),
					},
					&cli.StringFlag{
						Name:  "curve",
						Usage: "curve id (default: the global --curve)",
					},
				},
				Action: func(c *cli.Context) error {
					kind, err := ecc.ParseKind(c.String("kind"))
					if err != nil {
						return err
					}
					pair, err := tk.Generate(kind, c.String("curve"))
					if err != nil {
						return err
					}
					return json.NewEncoder(c.App.Writer).Encode(pair)
				},
			},
			{
				Name:  "encrypt",
				Usage: "encrypt stdin to an encryption key",
				Flags: []cli.Flag{keyFlag},
				Action: func(c *cli.Context) error {
					plaintext, err := io.ReadAll(c.App.Reader)
					if err != nil {
						return fmt.Errorf("read stdin: %w", err)
					}
					envelope, err := tk.Encrypt(c.String("key"), plaintext)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, envelope)
					return err
				},
			},
			{
				Name:  "decrypt",
				Usage: "decrypt an envelope read from stdin",
				Flags: []cli.Flag{keyFlag},
				Action: func(c *cli.Context) error {
					envelope, err := io.ReadAll(c.App.Reader)
					if err != nil {
						return fmt.Errorf("read stdin: %w", err)
					}
					plaintext, err := tk.Decrypt(c.String("key"), string(bytes.TrimSpace(envelope)))
					if err != nil {
						return err
					}
					_, err = c.App.Writer.Write(plaintext)
					return err
				},
			},
			{
				Name:  "sign",
				Usage: "sign stdin and print the hex signature",
				Flags: []cli.Flag{keyFlag, noHashFlag},
				Action: func(c *cli.Context) error {
					msg, err := io.ReadAll(c.App.Reader)
					if err != nil {
						return fmt.Errorf("read stdin: %w", err)
					}
					sig, err := tk.Sign(c.String("key"), msg, signOptions(c)...)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, sig)
					return err
				},
			},
			{
				Name:  "verify",
				Usage: "verify a signature of stdin; exits 1 when invalid",
				Flags: []cli.Flag{
					keyFlag,
					noHashFlag,
					&cli.StringFlag{
						Name:     "signature",
						Aliases:  []string{"s"},
						Usage:    "hex signature",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					msg, err := io.ReadAll(c.App.Reader)
					if err != nil {
						return fmt.Errorf("read stdin: %w", err)
					}
					if !tk.Verify(c.String("key"), strings.TrimSpace(c.String("signature")), msg, signOptions(c)...) {
						fmt.Fprintln(c.App.Writer, "invalid")
						return errInvalidSignature
					}
					_, err = fmt.Fprintln(c.App.Writer, "valid")
					return err
				},
			},
			{
				Name:  "curves",
				Usage: "list the supported curve ids",
				Action: func(c *cli.Context) error {
					for _, id := range tk.Curves() {
						marker := ""
						if id == tk.DefaultCurve() {
							marker = " (default)"
						}
						if _, err := fmt.Fprintf(c.App.Writer, "%s%s\n", id, marker); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}

func signOptions(c *cli.Context) []ecc.SignOption {
	if c.Bool("no-hash") {
		return []ecc.SignOption{ecc.WithoutHash()}
	}
	return nil
}
