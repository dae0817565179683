package convertcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bib2json/src/internal/bibtex"
	"bib2json/src/internal/store"
)

// New returns the command converting a BibTeX file into a publications document.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bib2json [source] [destination]",
		Short: "Convert a BibTeX file into a JSON list of publications",
		Long: `Convert a BibTeX file into a JSON list of publications.

source defaults to publication.bib and destination to publications.json.
A destination ending in .yaml or .yml is written as YAML instead.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := store.DefaultSource, store.DefaultDestination
			if len(args) > 0 {
				src = args[0]
			}
			if len(args) > 1 {
				dst = args[1]
			}
			text, err := store.ReadSource(src)
			if err != nil {
				return err
			}
			records := bibtex.Convert(text)
			if err := store.WriteRecords(dst, records); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d items)\n", dst, len(records))
			return err
		},
	}
	return cmd
}
