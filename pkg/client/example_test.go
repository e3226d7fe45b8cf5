package client_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/afrihackbox/mssp/pkg/client"
)

// Example demonstrates basic usage of the MSSP client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	ctx := context.Background()

	metrics, err := c.Security().Metrics(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Compliance score: %d%%\n", metrics.ComplianceScore)

	threats, err := c.Security().Threats(ctx, 5)
	if err != nil {
		log.Fatal(err)
	}
	for _, t := range threats {
		fmt.Printf("%s %s %s\n", t.ID, t.Severity, t.Description)
	}
}

// ExampleSecurityService_Quarantine demonstrates acknowledging an action
func ExampleSecurityService_Quarantine() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	resp, err := c.Security().Quarantine(context.Background(), "42")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(resp.Message)
}

// ExampleSetupService_ValidateOrganization demonstrates handling validation errors
func ExampleSetupService_ValidateOrganization() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	_, err := c.Setup().ValidateOrganization(context.Background(), &client.OrganizationSetup{
		OrganizationName: "Acme",
		Domain:           "not a domain",
	})

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.IsInvalidRequest() {
		for _, fe := range apiErr.FieldErrors() {
			fmt.Printf("%s: %s\n", fe.Field, fe.Message)
		}
	}
}
