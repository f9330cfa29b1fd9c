package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tsatke/boolval"
)

var (
	// Version can be set with the Go linker.
	Version string = "master"
	// AppName is the name of this app, as displayed in the help
	// text of the root command.
	AppName = "boolval"
)

var (
	file         string
	capabilities bool

	rootCmd = &cobra.Command{
		Use:  AppName,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if capabilities {
				return printCapabilities(cmd)
			}

			tokens := args
			if file != "" {
				data, err := afero.ReadFile(afero.NewOsFs(), file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
				tokens = append(tokens, strings.Fields(string(data))...)
			}

			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), coerceToken(tok))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&file, "file", "", "also read whitespace-separated tokens from this file")
	rootCmd.Flags().BoolVar(&capabilities, "capabilities", false, "print the capability table instead of coercing tokens")
}

// coerceToken maps a command line token to the canonical boolean. Bool
// and numeric literals are coerced by their value, everything else by
// string truthiness.
func coerceToken(tok string) *boolval.Bool {
	if b, err := strconv.ParseBool(tok); err == nil {
		return boolval.Of(b)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return boolval.Coerce(f)
	}
	return boolval.Coerce(tok)
}

func printCapabilities(cmd *cobra.Command) error {
	reg := boolval.DefaultRegistry()
	for _, c := range reg.Capabilities() {
		entry, _ := reg.Lookup(c)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c, entry.Owner)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s", err)
		os.Exit(1)
	}
}
