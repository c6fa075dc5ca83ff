package system

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rd1855/portfolio_backend/internal/api/http/router"
)

func NewEndpointsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "Print the HTTP API route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tDESCRIPTION\tLISTED")
			for _, e := range router.Endpoints() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", e.Method, e.Path, e.Description, e.Listed)
			}
			return w.Flush()
		},
	}
}
