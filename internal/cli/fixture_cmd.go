package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ssamant/pathway/internal/fixture"
)

func newFixtureServerCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "fixture-server",
		Short: "Serve canned recommendation data for local development",
		Long: `Runs a local HTTP server implementing the recommendation API with
fixture data. Point PATHWAY_ADVISOR_ENDPOINT at it to exercise the
client without the real service.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "fixture server listening on %s\n", addr)
			return http.ListenAndServe(addr, fixture.NewHandler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8400", "listen address")
	return cmd
}
