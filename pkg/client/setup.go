package client

import "context"

// SetupService handles organization setup API calls
type SetupService struct {
	client *Client
}

// ValidateOrganization submits the setup form for validation.
// Validation failures come back as an *APIError with FieldErrors.
func (s *SetupService) ValidateOrganization(ctx context.Context, org *OrganizationSetup) (*SetupResponse, error) {
	var resp SetupResponse
	if err := s.client.doRequest(ctx, "POST", "/api/setup/organization", org, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
