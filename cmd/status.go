package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/koios/koios"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show chain tip and supply totals",
	Long:  `Test the connection to Koios and display the current tip and the latest epoch's supply figures.`,
	RunE:  runStatus,
}

// chainStatus is what status fetches concurrently
type chainStatus struct {
	Tip    koios.Tip
	Totals *koios.Totals
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Testing connection to Koios at %s...\n", client.BaseURL())

	st, err := fetchStatus(ctx, client)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, color.GreenString("✓ Connection successful!"))

	blockTime := time.Unix(st.Tip.BlockTime, 0).UTC()
	fmt.Fprintf(w, "\nChain tip:\n")
	fmt.Fprintf(w, "- Epoch: %d (slot %d)\n", st.Tip.EpochNo, st.Tip.EpochSlot)
	fmt.Fprintf(w, "- Block: %d\n", st.Tip.BlockNo)
	fmt.Fprintf(w, "- Hash: %s\n", st.Tip.Hash)
	fmt.Fprintf(w, "- Time: %s (%s ago)\n", blockTime.Format(time.RFC3339), time.Since(blockTime).Round(time.Second))

	if st.Totals == nil {
		fmt.Fprintln(w, "\nSupply totals: unavailable")
		return nil
	}

	fmt.Fprintf(w, "\nSupply (epoch %d):\n", st.Totals.EpochNo)
	for _, row := range []struct {
		label    string
		lovelace string
	}{
		{"Supply", st.Totals.Supply},
		{"Circulation", st.Totals.Circulation},
		{"Treasury", st.Totals.Treasury},
		{"Reserves", st.Totals.Reserves},
		{"Rewards", st.Totals.Reward},
	} {
		fmt.Fprintf(w, "- %s: %s ADA\n", row.label, lovelaceToADA(row.lovelace))
	}

	return nil
}

// fetchStatus requests the tip and the latest totals in parallel
func fetchStatus(ctx context.Context, c *koios.Client) (*chainStatus, error) {
	var (
		tip    koios.TipResponse
		totals koios.TotalsResponse
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(2)

	g.Go(func() error {
		var err error
		tip, err = koios.Decode[koios.TipResponse](c.Tip(ctx))
		if err != nil {
			return fmt.Errorf("failed to get tip: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		out := c.Totals(ctx, nil, koios.WithExtraQuery("&order=epoch_no.desc&limit=1"))
		var err error
		totals, err = koios.Decode[koios.TotalsResponse](out)
		if err != nil {
			// Totals are informational; keep the tip
			logger.Warn().Err(err).Msg("Failed to get supply totals")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(tip) == 0 {
		return nil, fmt.Errorf("failed to get tip: empty response")
	}

	st := &chainStatus{Tip: tip[0]}
	if len(totals) > 0 {
		st.Totals = &totals[0]
	}
	return st, nil
}

// lovelaceToADA formats a lovelace amount as ADA with two decimals
func lovelaceToADA(lovelace string) string {
	d, err := decimal.NewFromString(lovelace)
	if err != nil {
		return lovelace
	}
	return d.Shift(-6).StringFixed(2)
}
