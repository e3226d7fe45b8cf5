package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/afrihackbox/mssp/pkg/client"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			ready, readyErr := apiClient.Ready(ctx)
			overview, err := apiClient.Security().Overview(ctx)
			if err != nil {
				return fmt.Errorf("failed to get security overview: %w", err)
			}

			if getOutputFormat() != "table" {
				summary := map[string]interface{}{
					"server":          apiClient.BaseURL(),
					"complianceScore": overview.Metrics.ComplianceScore,
					"threatsBlocked":  overview.Metrics.TotalThreatsBlocked,
					"recentThreats":   len(overview.Threats),
					"openAlerts":      countOpen(overview.Alerts),
				}
				if ready != nil {
					summary["records"] = ready.Records
				}
				return printOutput(out, summary)
			}

			fmt.Fprintln(out, "MSSP Security Dashboard")
			fmt.Fprintln(out, strings.Repeat("=", 40))
			fmt.Fprintf(out, "  Server:          %s\n", apiClient.BaseURL())
			if readyErr != nil {
				fmt.Fprintf(out, "  Readiness:       %s\n", formatStatus(out, "error"))
			} else {
				fmt.Fprintf(out, "  Readiness:       %s\n", formatStatus(out, ready.Status))
			}
			fmt.Fprintf(out, "  Compliance:      %d%%\n", overview.Metrics.ComplianceScore)
			fmt.Fprintf(out, "  Threats blocked: %d (trend %s)\n", overview.Metrics.TotalThreatsBlocked, formatTrend(overview.Metrics.ThreatTrend))

			critical := 0
			for _, t := range overview.Threats {
				if t.Severity == "critical" {
					critical++
				}
			}
			fmt.Fprintf(out, "  Recent threats:  %d", len(overview.Threats))
			if critical > 0 {
				fmt.Fprintf(out, " (%d critical)", critical)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  Open alerts:     %d\n", countOpen(overview.Alerts))

			return nil
		},
	}
}

func countOpen(alerts []client.Alert) int {
	n := 0
	for _, a := range alerts {
		if !a.Resolved {
			n++
		}
	}
	return n
}
