package main

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "match PATTERN [file]",
		Short:   "Match a regular expression against a text using the host regexp engine",
		Example: `  cfgkit match '[a-z]+' input.txt`,
		Args:    cobra.RangeArgs(1, 2),
		RunE:    runMatch,
	}
	rootCmd.AddCommand(cmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	// Pattern errors from the host engine surface as a descriptive
	// failure, never as a crash.
	re, err := regexp.Compile(args[0])
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	_, src, err := readSource(args[1:])
	if err != nil {
		return err
	}
	defer src.Close()

	text, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	matches := re.FindAllString(string(text), -1)
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "no match")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintln(os.Stdout, m)
	}
	return nil
}
