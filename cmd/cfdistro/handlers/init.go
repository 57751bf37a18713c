package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/cfdistro/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// isInteractive reports whether stdin and stdout are terminals.
	isInteractive = func() bool {
		return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
	}

	// runWizard runs the configuration wizard.
	runWizard = config.RunWizard

	// saveConfig writes the config to a file.
	saveConfig = config.Save
)

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if !isInteractive() {
		return errors.New("init needs an interactive terminal; write the config file by hand instead")
	}

	if fileExists(outputPath) {
		fmt.Fprintf(stdout, "Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("failed to run wizard: %w", err)
	}

	desired := result.ToDesired()
	if err := desired.Validate(); err != nil {
		return err
	}

	if err := saveConfig(desired, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, desired)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "cfdistro - CloudFront in front of S3")
	fmt.Fprintln(stdout, "====================================")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "This wizard creates a distribution configuration with sensible defaults.")
	fmt.Fprintln(stdout)
}

// printInitSuccess prints the summary and next steps.
func printInitSuccess(outputPath string, d *config.Desired) {
	n := d.Normalize()

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Configuration saved!")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  File: %s\n", outputPath)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Distribution Summary")
	fmt.Fprintln(stdout, "--------------------")
	fmt.Fprintf(stdout, "  Name:        %s\n", n.Name)
	if len(n.Domains) > 0 {
		fmt.Fprintf(stdout, "  Domains:     %v\n", n.Domains)
	}
	fmt.Fprintf(stdout, "  Buckets:     %v\n", n.S3Buckets)
	fmt.Fprintf(stdout, "  Viewer:      %s\n", n.HTTPSBehavior.String())
	fmt.Fprintf(stdout, "  Price class: %s\n", n.PriceClass.String())
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Next Steps")
	fmt.Fprintln(stdout, "----------")
	fmt.Fprintln(stdout, "  1. Make sure AWS credentials are available (AWS_PROFILE or AWS_ACCESS_KEY_ID)")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "  2. Review the changes:")
	fmt.Fprintln(stdout, "     cfdistro plan")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "  3. Create the distribution:")
	fmt.Fprintln(stdout, "     cfdistro apply")
	fmt.Fprintln(stdout)
}
