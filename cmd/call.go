package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/s0up4200/koios/koios"
)

var (
	callParams  []string
	callHeaders []string
	callQuery   string
	callWhere   string
	callRaw     bool
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call <endpoint>",
	Short: "Call a Koios endpoint by name",
	Long: `Call any Koios endpoint by its name (e.g. EpochInfo) or path (e.g. epoch_info).

Parameters are given as --param name=value and converted to the declared type:
lists are comma separated or repeated, asset pairs are written policy:name and
booleans accept true/false.

Examples:
  koios call Tip
  koios call EpochInfo -p _epoch_no=300 -p _include_next_epoch=false
  koios call TxInfo -p _tx_hashes=abc,def --query '&select=tx_hash,block_height'
  koios call Blocks --query '&limit=50' --where 'tx_count > 10'`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringArrayVarP(&callParams, "param", "p", nil, "endpoint parameter as name=value (repeatable)")
	callCmd.Flags().StringArrayVarP(&callHeaders, "header", "H", nil, "request header as name=value (repeatable)")
	callCmd.Flags().StringVarP(&callQuery, "query", "q", "", "raw query appended verbatim, e.g. '&limit=10'")
	callCmd.Flags().StringVarP(&callWhere, "where", "w", "", "filter rows by expression or named filter from config")
	callCmd.Flags().BoolVar(&callRaw, "raw", false, "print the response body as received")
}

func runCall(cmd *cobra.Command, args []string) error {
	ep, err := resolveEndpoint(args[0])
	if err != nil {
		return err
	}

	params, err := parseParams(ep, callParams)
	if err != nil {
		return err
	}

	headers, err := parseHeaders(callHeaders)
	if err != nil {
		return err
	}

	opts := []koios.CallOption{koios.WithExtraQuery(callQuery)}
	if len(headers) > 0 {
		opts = append(opts, koios.WithCallHeaders(headers))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := client.Call(ctx, ep.Name, params, opts...)
	if out.Error != nil {
		printCallError(cmd.ErrOrStderr(), out.Error)
		return fmt.Errorf("%s failed: %w", ep.Name, out.Error)
	}

	body := out.Success.Body
	if callWhere != "" {
		f, err := filters.Resolve(callWhere)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
		var n int
		body, n, err = filters.Apply(ctx, f, body)
		if err != nil {
			return err
		}
		logger.Debug().Str("filter", f.Expression()).Int("matches", n).Msg("Filtered response")
	}

	return writeBody(cmd.OutOrStdout(), body, callRaw)
}

// resolveEndpoint accepts an endpoint name in any case, or its path with or
// without the leading slash.
func resolveEndpoint(arg string) (koios.Endpoint, error) {
	if ep, ok := koios.LookupEndpoint(arg); ok {
		return ep, nil
	}

	path := "/" + strings.TrimPrefix(arg, "/")
	for _, ep := range koios.Endpoints() {
		if strings.EqualFold(ep.Name, arg) || ep.Path == path {
			return ep, nil
		}
	}

	return koios.Endpoint{}, fmt.Errorf("%w: %s (run 'koios endpoints' to list them)", koios.ErrUnknownEndpoint, arg)
}

// parseParams converts name=value flags to values of each parameter's declared
// type. Undeclared names are passed through as strings for the client to reject.
func parseParams(ep koios.Endpoint, raw []string) (koios.Params, error) {
	params := make(koios.Params, len(raw))
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected name=value", kv)
		}

		p, declared := ep.Param(name)
		if !declared {
			params[name] = koios.String(value)
			continue
		}

		switch p.Type {
		case koios.TypeString:
			params[name] = koios.String(value)
		case koios.TypeScalar:
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				params[name] = koios.Int(n)
			} else {
				params[name] = koios.String(value)
			}
		case koios.TypeBool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %q is not a boolean", name, value)
			}
			params[name] = koios.Bool(b)
		case koios.TypeStringList:
			items := append(params[name].Items(), splitList(value)...)
			params[name] = koios.Strings(items...)
		case koios.TypeStringPairs:
			pairs := params[name].PairItems()
			for _, item := range splitList(value) {
				policy, asset, ok := strings.Cut(item, ":")
				if !ok || policy == "" {
					return nil, fmt.Errorf("parameter %s: %q is not policy:name", name, item)
				}
				pairs = append(pairs, [2]string{policy, asset})
			}
			params[name] = koios.Pairs(pairs...)
		}
	}
	return params, nil
}

// splitList splits a comma separated list, dropping empty items
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseHeaders(raw []string) (map[string]string, error) {
	headers := make(map[string]string, len(raw))
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid header %q: expected name=value", kv)
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return headers, nil
}

// writeBody prints a JSON body, indented unless raw is set
func writeBody(w io.Writer, body []byte, raw bool) error {
	if !raw {
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err == nil {
			body = buf.Bytes()
		}
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func printCallError(w io.Writer, ce *koios.ClientError) {
	kind := color.New(color.FgRed, color.Bold).Sprint(string(ce.Kind))
	fmt.Fprintf(w, "%s %s: %s\n", kind, ce.Name, ce.Message)

	var perr *koios.ParamError
	if errors.As(ce, &perr) {
		if ep, ok := koios.LookupEndpoint(perr.Endpoint); ok && len(ep.Params) > 0 {
			fmt.Fprintf(w, "  parameters: %s\n", formatParams(ep))
		}
		return
	}

	if resp := ce.Response(); resp != nil && len(resp.Body) > 0 {
		fmt.Fprintf(w, "  %s\n", color.YellowString(resp.Status))
		fmt.Fprintf(w, "  %s\n", strings.TrimSpace(string(resp.Body)))
	}
}
