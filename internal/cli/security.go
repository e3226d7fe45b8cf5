package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/afrihackbox/mssp/pkg/client"
	"github.com/spf13/cobra"
)

func newSecurityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "security",
		Short: "Read security data and send actions",
	}

	cmd.AddCommand(newSecurityMetricsCmd())
	cmd.AddCommand(newSecurityThreatsCmd())
	cmd.AddCommand(newSecurityAlertsCmd())
	cmd.AddCommand(newSecurityAllCmd())
	cmd.AddCommand(newSecurityModulesCmd())
	cmd.AddCommand(newSecurityScanCmd())
	cmd.AddCommand(newSecurityQuarantineCmd())
	cmd.AddCommand(newSecurityResolveCmd())

	return cmd
}

func newSecurityMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show aggregate security metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := apiClient.Security().Metrics(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get metrics: %w", err)
			}

			out := cmd.OutOrStdout()
			if getOutputFormat() != "table" {
				return printOutput(out, m)
			}

			renderMetrics(cmd, m)
			return nil
		},
	}
}

func newSecurityThreatsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "threats",
		Short: "List recent threats",
		RunE: func(cmd *cobra.Command, args []string) error {
			threats, err := apiClient.Security().Threats(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("failed to list threats: %w", err)
			}

			out := cmd.OutOrStdout()
			if getOutputFormat() != "table" {
				return printOutput(out, threats)
			}

			renderThreats(cmd, threats)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum threats to show (server default 10)")

	return cmd
}

func newSecurityAlertsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List recent alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			alerts, err := apiClient.Security().Alerts(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("failed to list alerts: %w", err)
			}

			out := cmd.OutOrStdout()
			if getOutputFormat() != "table" {
				return printOutput(out, alerts)
			}

			renderAlerts(cmd, alerts)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum alerts to show (server default 10)")

	return cmd
}

func newSecurityAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Show metrics with every threat and alert",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := apiClient.Security().All(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get security data: %w", err)
			}

			out := cmd.OutOrStdout()
			if getOutputFormat() != "table" {
				return printOutput(out, b)
			}

			renderMetrics(cmd, &b.Metrics)
			fmt.Fprintln(out)
			renderThreats(cmd, b.Threats)
			fmt.Fprintln(out)
			renderAlerts(cmd, b.Alerts)
			return nil
		},
	}
}

func newSecurityModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List security modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			modules, err := apiClient.Security().Modules(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list modules: %w", err)
			}

			out := cmd.OutOrStdout()
			if getOutputFormat() != "table" {
				return printOutput(out, modules)
			}

			now := time.Now()
			t := NewTable(out, "ID", "NAME", "STATUS", "THREAT LEVEL", "DEVICES", "BLOCKED", "LAST SCAN")
			for _, m := range modules {
				t.AddRow(
					m.ID,
					m.Name,
					formatStatus(out, m.Status),
					formatSeverity(out, m.ThreatLevel),
					strconv.Itoa(m.ProtectedDevices),
					strconv.Itoa(m.BlockedThreats),
					formatAge(m.LastScan, now),
				)
			}
			t.Render()
			return nil
		},
	}
}

func newSecurityScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Request a security scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient.Security().Scan(context.Background())
			if err != nil {
				return fmt.Errorf("failed to start scan: %w", err)
			}
			return printAction(cmd, resp)
		},
	}
}

func newSecurityQuarantineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quarantine <threat-id>",
		Short: "Quarantine a threat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient.Security().Quarantine(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to quarantine threat: %w", err)
			}
			return printAction(cmd, resp)
		},
	}
}

func newSecurityResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <alert-id>",
		Short: "Resolve an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient.Security().ResolveAlert(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve alert: %w", err)
			}
			return printAction(cmd, resp)
		},
	}
}

func printAction(cmd *cobra.Command, resp *client.ActionResponse) error {
	out := cmd.OutOrStdout()
	if getOutputFormat() != "table" {
		return printOutput(out, resp)
	}

	fmt.Fprintln(out, resp.Message)
	if resp.ScanID != "" {
		fmt.Fprintf(out, "Scan ID: %s\n", resp.ScanID)
	}
	return nil
}

func renderMetrics(cmd *cobra.Command, m *client.Metrics) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Security Metrics")
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintf(out, "  Threats blocked:     %d (trend %s)\n", m.TotalThreatsBlocked, formatTrend(m.ThreatTrend))
	fmt.Fprintf(out, "  Active protections:  %d\n", m.ActiveProtections)
	fmt.Fprintf(out, "  Devices protected:   %d\n", m.DevicesProtected)
	fmt.Fprintf(out, "  Compliance score:    %d%%\n", m.ComplianceScore)
	fmt.Fprintf(out, "  Last scan:           %s\n", formatAge(m.LastScanTime, time.Now()))
}

func renderThreats(cmd *cobra.Command, threats []client.Threat) {
	out := cmd.OutOrStdout()
	now := time.Now()
	t := NewTable(out, "ID", "TYPE", "SEVERITY", "STATUS", "SOURCE", "TARGET", "SEEN")
	for _, th := range threats {
		t.AddRow(
			th.ID,
			th.Type,
			formatSeverity(out, th.Severity),
			formatStatus(out, th.Status),
			truncate(th.Source, 30),
			truncate(th.Target, 30),
			formatAge(th.Timestamp, now),
		)
	}
	t.Render()
}

func renderAlerts(cmd *cobra.Command, alerts []client.Alert) {
	out := cmd.OutOrStdout()
	now := time.Now()
	t := NewTable(out, "ID", "SEVERITY", "STATUS", "MODULE", "TITLE", "SEEN")
	for _, a := range alerts {
		status := "open"
		if a.Resolved {
			status = "resolved"
		}
		if !a.Resolved && a.ActionRequired {
			status = "action required"
		}
		t.AddRow(
			a.ID,
			formatSeverity(out, a.Severity),
			formatStatus(out, status),
			a.Module,
			truncate(a.Title, 40),
			formatAge(a.Timestamp, now),
		)
	}
	t.Render()
}
