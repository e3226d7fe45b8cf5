package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/afrihackbox/mssp/internal/domain/setup"
	"github.com/afrihackbox/mssp/pkg/client"
	"github.com/spf13/cobra"
)

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Organization onboarding",
	}

	cmd.AddCommand(newSetupValidateCmd())

	return cmd
}

func newSetupValidateCmd() *cobra.Command {
	var (
		org     client.OrganizationSetup
		modules []string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate organization setup details",
		Example: `  mssp setup validate --name "Acme Ltd" --domain acme.co.za --industry finance \
    --employees 11-50 --compliance POPIA --modules endpointProtection,webSecurity`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("modules") {
				toggles, err := parseModules(modules)
				if err != nil {
					return err
				}
				org.SecurityModules = toggles
			}

			resp, err := apiClient.Setup().ValidateOrganization(context.Background(), &org)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && len(apiErr.FieldErrors()) > 0 {
					out := cmd.ErrOrStderr()
					fmt.Fprintln(out, apiErr.Message)
					for _, fe := range apiErr.FieldErrors() {
						fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
					}
				}
				return fmt.Errorf("setup validation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if getOutputFormat() != "table" {
				return printOutput(out, resp)
			}

			fmt.Fprintln(out, resp.Message)
			fmt.Fprintf(out, "Setup ID: %s\n", resp.SetupID)
			fmt.Fprintf(out, "Enabled modules: %s\n", strings.Join(resp.EnabledModules, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&org.OrganizationName, "name", "", "organization name")
	cmd.Flags().StringVar(&org.Domain, "domain", "", "organization domain, e.g. yourcompany.com")
	cmd.Flags().StringVar(&org.Industry, "industry", "", "industry: "+strings.Join(setup.Industries, ", "))
	cmd.Flags().StringVar(&org.EmployeeCount, "employees", "", "employee count range: "+strings.Join(setup.EmployeeRanges, ", "))
	cmd.Flags().StringSliceVar(&org.ComplianceRequirements, "compliance", nil, "compliance frameworks: "+strings.Join(setup.Frameworks, ", "))
	cmd.Flags().StringSliceVar(&modules, "modules", nil, "modules to enable (default all)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func parseModules(names []string) (*client.SecurityModules, error) {
	m := &client.SecurityModules{}
	for _, name := range names {
		switch strings.TrimSpace(name) {
		case setup.ModuleEndpointProtection:
			m.EndpointProtection = true
		case setup.ModuleEmailSecurity:
			m.EmailSecurity = true
		case setup.ModuleWebSecurity:
			m.WebSecurity = true
		case setup.ModuleBackupRecovery:
			m.BackupRecovery = true
		case "":
		default:
			return nil, fmt.Errorf("unknown module %q (want endpointProtection, emailSecurity, webSecurity or backupRecovery)", name)
		}
	}
	return m, nil
}
