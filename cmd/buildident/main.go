// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/buildident/buildident/lib/binhash"
	"github.com/buildident/buildident/lib/buildid"
	"github.com/buildident/buildident/lib/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command-line flags.
type options struct {
	digestOnly      bool
	requireEmbedded bool
}

func run(arguments []string, stdout, stderr io.Writer) int {
	// Handle --version before flag parsing, wherever it appears.
	for _, argument := range arguments {
		if argument == "--version" {
			version.Print("buildident")
			return 0
		}
	}

	var opts options
	flagSet := pflag.NewFlagSet("buildident", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVar(&opts.digestOnly, "digest-only", false,
		"print only the BLAKE3 content digest")
	flagSet.BoolVar(&opts.requireEmbedded, "require-embedded", false,
		"fail when the inspected binary carries no embedded build id")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "usage: buildident [flags] [binary-path]\n\n")
		fmt.Fprintf(stderr, "Without a path, prints this binary's own build identifier.\n")
		fmt.Fprintf(stderr, "With a path, prints that binary's embedded build id and content digest.\n\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(arguments); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	switch flagSet.NArg() {
	case 0:
		return runSelf(opts, stdout, stderr)
	case 1:
		return inspect(flagSet.Arg(0), opts, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "error: at most one binary path expected\n")
		flagSet.Usage()
		return 2
	}
}

// runSelf reports on the running buildident binary itself.
func runSelf(opts options, stdout, stderr io.Writer) int {
	if opts.digestOnly {
		digest, _, err := binhash.HashSelf()
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		fmt.Fprintln(stdout, binhash.FormatDigest(digest))
		return 0
	}
	fmt.Fprintln(stdout, buildid.Get())
	return 0
}

// inspect reports on the binary at path without executing it.
func inspect(path string, opts options, stdout, stderr io.Writer) int {
	digest, err := binhash.HashFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if opts.digestOnly {
		fmt.Fprintln(stdout, binhash.FormatDigest(digest))
		return 0
	}

	embedded, err := buildid.ReadPlatformID(path)
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "embedded-id: %x\n", embedded)
	case opts.requireEmbedded:
		fmt.Fprintf(stderr, "error: %s carries no embedded build id: %v\n", path, err)
		return 1
	default:
		fmt.Fprintf(stdout, "embedded-id: (none)\n")
	}
	fmt.Fprintf(stdout, "digest: %s\n", binhash.FormatDigest(digest))
	return 0
}
