package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"print4me/internal/domain"
	"print4me/internal/pricing"
	"print4me/internal/validator"
)

var (
	quoteColorMode string
	quoteSides     string
	quotePaperSize string
	quoteCopies    int
	quotePages     int
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print the price of an order",
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quoteColorMode, "color-mode", "color", "color, monochrome or bw")
	quoteCmd.Flags().StringVar(&quoteSides, "sides", "single", "single or double")
	quoteCmd.Flags().StringVar(&quotePaperSize, "paper-size", "A4", "A4 or A3")
	quoteCmd.Flags().IntVar(&quoteCopies, "copies", 1, "number of copies")
	quoteCmd.Flags().IntVar(&quotePages, "pages", 0, "total pages to print")
	_ = quoteCmd.MarkFlagRequired("pages")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, _ []string) error {
	opts, pages, err := validator.ValidateQuote(domain.RawOrder{
		ColorMode: quoteColorMode,
		PaperSize: quotePaperSize,
		Sides:     quoteSides,
		Copies:    strconv.Itoa(quoteCopies),
		Pages:     strconv.Itoa(quotePages),
	})
	if err != nil {
		return err
	}

	q := pricing.Quote(opts, 0, pages)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, pricing.Breakdown(q))
	fmt.Fprintf(out, "Total: %s %s\n", q.Currency, pricing.FormatAmount(q.GrandTotal))
	return nil
}
