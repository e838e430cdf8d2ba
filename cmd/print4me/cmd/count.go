package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"print4me/internal/pagecount"
	"print4me/internal/port"
)

var countConcurrency int

var countCmd = &cobra.Command{
	Use:   "count <file>...",
	Short: "Print the detected page count of local files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCount,
}

func init() {
	countCmd.Flags().IntVar(&countConcurrency, "concurrency", 2, "files counted in parallel")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	inputs := make([]port.CountInput, len(args))
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		inputs[i] = port.CountInput{
			FileName:    filepath.Base(path),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Data:        data,
		}
	}

	counts := pagecount.NewCounter(countConcurrency, nil).CountAll(cmd.Context(), inputs)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	total := 0
	for i, in := range inputs {
		pages := fmt.Sprint(counts[i])
		if counts[i] == 0 {
			pages = "undetermined"
		}
		fmt.Fprintf(w, "%s\t%s\n", in.FileName, pages)
		total += counts[i]
	}
	fmt.Fprintf(w, "total\t%d\n", total)
	return w.Flush()
}
