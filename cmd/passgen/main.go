// Command passgen prints random passwords built from the selected character
// classes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/validator"
)

type options struct {
	Length  string `short:"l" long:"length" default:"12" description:"Password length"`
	Upper   bool   `short:"u" long:"upper" description:"Include uppercase letters"`
	NoLower bool   `long:"no-lower" description:"Exclude lowercase letters"`
	Digits  bool   `short:"d" long:"digits" description:"Include digits (0-9)"`
	Symbols bool   `short:"s" long:"symbols" description:"Include symbols"`
	Count   int    `short:"c" long:"count" default:"1" description:"Number of passwords to generate"`
	Seed    string `long:"seed" description:"Derive passwords deterministically from this seed"`
	Min     int    `long:"min" default:"4" description:"Minimum accepted length"`
	Max     int    `long:"max" default:"16" description:"Maximum accepted length"`
}

func (o options) classes() crypto.Classes {
	var s crypto.Classes
	if o.Upper {
		s = s.With(crypto.Uppercase)
	}
	if !o.NoLower {
		s = s.With(crypto.Lowercase)
	}
	if o.Digits {
		s = s.With(crypto.Digits)
	}
	if o.Symbols {
		s = s.With(crypto.Symbols)
	}
	return s
}

// run parses args, generates the passwords and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "passgen"

	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	passwords, err := generate(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	for _, pw := range passwords {
		fmt.Fprintln(stdout, pw)
	}
	return 0
}

func generate(opts options) ([]string, error) {
	v, err := validator.New(opts.Min, opts.Max)
	if err != nil {
		return nil, err
	}
	length, err := v.ValidateLength(opts.Length)
	if err != nil {
		return nil, err
	}

	var src crypto.Source = crypto.CryptoSource{}
	if opts.Seed != "" {
		if src, err = crypto.NewSeededSource(opts.Seed); err != nil {
			return nil, err
		}
	}
	gen := crypto.NewGenerator(src)

	count := max(opts.Count, 1)
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := gen.Generate(length, opts.classes())
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
