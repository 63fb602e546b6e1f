package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/s0up4200/koios/koios"
)

// endpointsCmd represents the endpoints command
var endpointsCmd = &cobra.Command{
	Use:   "endpoints [search]",
	Short: "List the Koios endpoints this client knows",
	Long: `List every endpoint with its method, path and parameters. Required
parameters are marked with *. An optional search term matches names and paths.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: skipInit,
	RunE:              runEndpoints,
}

func runEndpoints(cmd *cobra.Command, args []string) error {
	var search string
	if len(args) == 1 {
		search = strings.ToLower(args[0])
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	count := 0
	for _, ep := range koios.Endpoints() {
		if search != "" &&
			!strings.Contains(strings.ToLower(ep.Name), search) &&
			!strings.Contains(ep.Path, search) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ep.Name, methodColor(ep.Method), ep.Path, formatParams(ep))
		count++
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No endpoints matching %q\n", search)
	}
	return nil
}

// formatParams renders declared parameters as name:type, required ones starred
func formatParams(ep koios.Endpoint) string {
	if len(ep.Params) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ep.Params))
	for _, p := range ep.Params {
		s := p.Name + ":" + p.Type.String()
		if p.Required {
			s += "*"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func methodColor(method string) string {
	if method == "POST" {
		return color.YellowString(method)
	}
	return color.GreenString(method)
}

// skipInit replaces initializeApp for commands that need no client
func skipInit(cmd *cobra.Command, args []string) error {
	return nil
}
