package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// repoSlug is the GitHub repository releases are published to
const repoSlug = "s0up4200/koios"

var (
	checkOnly bool
	assumeYes bool
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update koios to the latest release",
	Long: `Check GitHub releases for a newer version and replace the running binary.

Examples:
  koios update           # Check and install the latest version
  koios update --check   # Only check for updates, don't install`,
	PersistentPreRunE: skipInit,
	RunE:              runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for updates, don't install")
	updateCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "install without asking for confirmation")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()

	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot update a development build (version %q)", version)
	}

	fmt.Fprintf(w, "Current version: %s\n", color.CyanString("v"+current.String()))

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", repoSlug)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(w, "You're running the latest version (%s)\n", color.GreenString("v"+current.String()))
		return nil
	}

	fmt.Fprintf(w, "New version available: %s\n", color.GreenString("v"+latest.Version()))
	if !latest.PublishedAt.IsZero() {
		fmt.Fprintf(w, "Released: %s\n", latest.PublishedAt.Format("January 2, 2006"))
	}
	if notes := strings.TrimSpace(latest.ReleaseNotes); notes != "" {
		fmt.Fprintf(w, "\nRelease notes:\n%s\n\n", notes)
	}

	if checkOnly {
		fmt.Fprintf(w, "Run '%s' to install the update\n", color.YellowString("koios update"))
		return nil
	}

	if !assumeYes && !confirm(cmd, fmt.Sprintf("Install v%s? [y/N]: ", latest.Version())) {
		fmt.Fprintln(w, "Update cancelled")
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(w, "Successfully updated to %s\n", color.GreenString("v"+latest.Version()))
	return nil
}

// confirm asks a yes/no question on the command's input
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	reader := bufio.NewReader(cmd.InOrStdin())
	response, _ := reader.ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
