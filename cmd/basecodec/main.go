// basecodec renders bytes as Base36 or Base58 and parses them back.
//
// Usage:
//
//	basecodec encode [flags] [input]
//	basecodec decode [flags] [input]
//
// Without an input argument the input is read from stdin. Raw bytes are
// written and read as-is unless --hex is given.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/basecodec"
	bczap "github.com/unkn0wn-root/basecodec/log/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// usageError marks failures caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

type options struct {
	command  string
	encoding basecodec.Encoding
	hex      bool
	maxLen   int
	verbose  bool
	input    *string // nil => stdin
}

// run returns the process exit code: 0 on success, 2 on usage errors and 1
// when the input itself is rejected.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	logger := basecodec.Logger(basecodec.NopLogger{})
	if opts.verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "error: building logger: %v\n", err)
			return 1
		}
		defer zl.Sync() //nolint:errcheck
		logger = bczap.ZapLogger{L: zl}
	}
	c := basecodec.New(basecodec.Options{MaxInputLen: opts.maxLen, Logger: logger})

	in, err := readInput(opts, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	switch opts.command {
	case "encode":
		err = encode(c, opts, in, stdout)
	case "decode":
		err = decode(c, opts, in, stdout)
	}
	if err != nil {
		var ue usageError
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.As(err, &ue) {
			return 2
		}
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var (
		opts       options
		encName    string
		configPath string
	)

	flagSet := pflag.NewFlagSet("basecodec", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&encName, "encoding", "e", "base58", "output/input encoding: base36 or base58")
	flagSet.BoolVar(&opts.hex, "hex", false, "read (encode) or write (decode) bytes as hex")
	flagSet.IntVar(&opts.maxLen, "max-len", 0, "largest byte buffer accepted (0 = default, negative = unlimited)")
	flagSet.StringVar(&configPath, "config", "", "YAML config file (encoding, max_input_len, verbose)")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log rejections to stderr")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  basecodec encode|decode [flags] [input]\n\nFlags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return opts, err
		}
		return opts, usageError{err}
	}

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return opts, usageError{err}
		}
		if !flagSet.Changed("encoding") && cfg.Encoding != 0 {
			encName = cfg.Encoding.String()
		}
		if !flagSet.Changed("max-len") {
			opts.maxLen = cfg.MaxInputLen
		}
		if !flagSet.Changed("verbose") {
			opts.verbose = cfg.Verbose
		}
	}

	enc, err := basecodec.ParseEncoding(encName)
	if err != nil {
		return opts, usageError{err}
	}
	opts.encoding = enc

	rest := flagSet.Args()
	if len(rest) == 0 {
		return opts, usagef("missing command (encode or decode)")
	}
	opts.command = rest[0]
	if opts.command != "encode" && opts.command != "decode" {
		return opts, usagef("unknown command %q", opts.command)
	}
	switch len(rest) {
	case 1:
	case 2:
		opts.input = &rest[1]
	default:
		return opts, usagef("unexpected argument: %s", rest[2])
	}
	return opts, nil
}

func readInput(opts options, stdin io.Reader) ([]byte, error) {
	if opts.input != nil {
		return []byte(*opts.input), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return b, nil
}

func encode(c *basecodec.Codec, opts options, in []byte, out io.Writer) error {
	if opts.hex {
		b, err := hex.DecodeString(strings.TrimSpace(string(in)))
		if err != nil {
			return usagef("invalid hex input: %v", err)
		}
		in = b
	}
	es, err := c.Encode(opts.encoding, in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, es.String())
	return err
}

func decode(c *basecodec.Codec, opts options, in []byte, out io.Writer) error {
	b, err := c.DecodeString(opts.encoding, strings.TrimSpace(string(in)))
	if err != nil {
		return err
	}
	if opts.hex {
		_, err = fmt.Fprintln(out, hex.EncodeToString(b))
		return err
	}
	_, err = out.Write(b)
	return err
}
