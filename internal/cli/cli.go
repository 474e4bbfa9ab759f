package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arboretum-go/arboretum/graph"
)

// printGraphSummary writes the "Vertices: N" / "Edges: M" diagnostic lines
// once a graph has been loaded, before solving begins.
func printGraphSummary(g *graph.Graph) {
	fmt.Printf("Vertices: %d\n", g.Order())
	fmt.Printf("Edges: %d\n", g.Size())
}

// AddFlags registers the shared -f/--file, -m/--mode, -l/--log flags on fs
// and binds them into flags.
func AddFlags(fs *pflag.FlagSet, flags *Flags) {
	fs.StringVarP(&flags.File, "file", "f", "", "path to a DIMACS-format graph file (required)")
	fs.StringVarP(&flags.Mode, "mode", "m", string(ModeRecursion),
		`search driver: "recursion" or "backtrack"`)
	fs.IntVarP(&flags.LogFrequency, "log", "l", 0,
		"backtrack driver: emit a progress line every N nodes (0 disables)")
}

// Validate checks flags for completeness and returns the parsed Mode.
func (f *Flags) Validate() (Mode, error) {
	if f.File == "" {
		return "", ErrMissingFile
	}

	return ParseMode(f.Mode)
}

// LoadGraph opens and parses f.File as a DIMACS graph file.
func (f *Flags) LoadGraph() (*graph.Graph, error) {
	file, err := os.Open(f.File)
	if err != nil {
		return nil, fmt.Errorf("cli: open %s: %w", f.File, err)
	}
	defer file.Close()

	return graph.ReadDIMACS(file)
}

// NewRootCommand builds a cobra.Command named name that loads a DIMACS
// graph per the shared flags and delegates solving to run.
func NewRootCommand(name, short string, run func(g *graph.Graph, mode Mode, flags Flags) error) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:   name + " -f graph.dimacs",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := flags.Validate()
			if err != nil {
				return err
			}

			g, err := flags.LoadGraph()
			if err != nil {
				return err
			}
			printGraphSummary(g)

			return run(g, mode, *flags)
		},
	}

	AddFlags(cmd.Flags(), flags)

	return cmd
}
