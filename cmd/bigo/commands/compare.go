package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/bigo/complexity"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <class> <class>",
		Short: "Compare two complexity classes",
		Long: `Compare two complexity classes by rank and print <, > or =.

Classes are given by notation ("O(n log n)") or name ("linearithmic").`,
		Example: `  bigo compare "O(n)" "O(n^2)"      # prints <
  bigo compare cubic "O(log n)"      # prints >`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := complexity.ParseName(args[0])
			if err != nil {
				return err
			}
			b, err := complexity.ParseName(args[1])
			if err != nil {
				return err
			}

			ea, _ := complexity.EntryOf(a)
			eb, _ := complexity.EntryOf(b)

			var sym string
			switch c := complexity.Compare(ea, eb); {
			case c < 0:
				sym = "<"
			case c > 0:
				sym = ">"
			default:
				sym = "="
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sym)

			return err
		},
	}
}
