package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	pricingapp "github.com/flexo/backend/internal/application/pricing"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price clichés and die-cut blocks with the configured price table",
	}
	cmd.AddCommand(quoteClicheCmd(), quoteDieCutCmd())
	return cmd
}

func quoteClicheCmd() *cobra.Command {
	var pricePerCm2 string

	cmd := &cobra.Command{
		Use:   "cliche WIDTHxHEIGHT[xQTY][:COLOR]...",
		Short: "Quote cliché plates, measures in centimetres",
		Example: `  flexoctl quote cliche 30x20x2:Cyan 30x20x2:Magenta
  flexoctl quote cliche 12.5x40 --price-per-cm2 0.42`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := pricingapp.QuoteItemRequest{ProductType: string(pricing.ProductClicheCorrugated)}
			for _, arg := range args {
				m, err := parseMeasure(arg)
				if err != nil {
					return err
				}
				item.Measures = append(item.Measures, m)
			}
			if pricePerCm2 != "" {
				p, err := decimal.NewFromString(pricePerCm2)
				if err != nil {
					return fmt.Errorf("invalid --price-per-cm2 %q", pricePerCm2)
				}
				item.PricePerCm2 = &p
			}
			return runQuote(cmd, item)
		},
	}
	cmd.Flags().StringVar(&pricePerCm2, "price-per-cm2", "", "override the table price per cm²")
	return cmd
}

func quoteDieCutCmd() *cobra.Command {
	var (
		origin                string
		width, height, linear string
		quantity              int
	)

	cmd := &cobra.Command{
		Use:     "diecut",
		Short:   "Quote a die-cut block, sizes in millimetres",
		Example: `  flexoctl quote diecut --origin imported --width 400 --height 300 --linear 3.2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item := pricingapp.QuoteItemRequest{
				ProductType: string(pricing.ProductDieCutBlock),
				Origin:      origin,
				Quantity:    quantity,
			}
			var err error
			if item.WidthMM, err = decimalFlag("width", width); err != nil {
				return err
			}
			if item.HeightMM, err = decimalFlag("height", height); err != nil {
				return err
			}
			if item.LinearMeters, err = decimalFlag("linear", linear); err != nil {
				return err
			}
			return runQuote(cmd, item)
		},
	}
	cmd.Flags().StringVar(&origin, "origin", string(pricing.OriginNational), "national or imported")
	cmd.Flags().StringVar(&width, "width", "0", "block width in mm")
	cmd.Flags().StringVar(&height, "height", "0", "block height in mm")
	cmd.Flags().StringVar(&linear, "linear", "0", "knife length in linear metres")
	cmd.Flags().IntVar(&quantity, "qty", 1, "number of blocks")
	return cmd
}

func runQuote(cmd *cobra.Command, item pricingapp.QuoteItemRequest) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	prices, err := cfg.Pricing.PriceTable()
	if err != nil {
		return err
	}
	resp, err := pricingapp.NewQuoteService(prices).Quote(cmd.Context(), pricingapp.QuoteRequest{
		Items: []pricingapp.QuoteItemRequest{item},
	})
	if err != nil {
		return err
	}
	return printQuote(cmd.OutOrStdout(), resp)
}

func printQuote(out io.Writer, resp *pricingapp.QuoteResponse) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tMEASURE\tAREA m²\tAMOUNT")
	for _, l := range resp.Lines {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n",
			pricing.ProductType(l.ProductType).Label(), l.Measure.StringFixed(2), l.Unit,
			l.AreaM2.StringFixed(4), l.Amount.StringFixed(2))
	}
	fmt.Fprintf(w, "TOTAL\t\t\t%s\n", resp.Summary.Total.StringFixed(2))
	return w.Flush()
}

// parseMeasure reads WIDTHxHEIGHT[xQTY][:COLOR], e.g. "30x20x2:Cyan"
func parseMeasure(s string) (pricingapp.QuoteMeasureRequest, error) {
	var m pricingapp.QuoteMeasureRequest
	dims, color, _ := strings.Cut(s, ":")
	m.Color = color

	parts := strings.Split(strings.ToLower(dims), "x")
	if len(parts) < 2 || len(parts) > 3 {
		return m, fmt.Errorf("invalid measure %q, want WIDTHxHEIGHT[xQTY]", s)
	}
	var err error
	if m.Width, err = decimal.NewFromString(parts[0]); err != nil {
		return m, fmt.Errorf("invalid width in %q", s)
	}
	if m.Height, err = decimal.NewFromString(parts[1]); err != nil {
		return m, fmt.Errorf("invalid height in %q", s)
	}
	m.Quantity = 1
	if len(parts) == 3 {
		if m.Quantity, err = strconv.Atoi(parts[2]); err != nil || m.Quantity < 1 {
			return m, fmt.Errorf("invalid quantity in %q", s)
		}
	}
	return m, nil
}

func decimalFlag(name, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q", name, v)
	}
	return d, nil
}
