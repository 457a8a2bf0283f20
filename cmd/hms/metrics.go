package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// newMetricsCmd dumps the process's prometheus registry in text
// exposition format. There is no HTTP listener; the tool is a
// single-shot console process, so metrics are printed on demand.
func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Dump store metrics after loading the data files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := openHospital(); err != nil {
				return err
			}

			families, err := prometheus.DefaultGatherer.Gather()
			if err != nil {
				return fmt.Errorf("failed to gather metrics: %w", err)
			}

			enc := expfmt.NewEncoder(os.Stdout, expfmt.NewFormat(expfmt.TypeTextPlain))
			for _, mf := range families {
				if err := enc.Encode(mf); err != nil {
					return fmt.Errorf("failed to encode metrics: %w", err)
				}
			}
			return nil
		},
	}
}
