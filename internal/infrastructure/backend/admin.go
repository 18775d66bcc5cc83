package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/driveease/web-portal/internal/core/domain"
)

// AdminClient implements ports.AdminAPI against /admin.
type AdminClient struct {
	c *Client
}

func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{c: c}
}

func (a *AdminClient) Providers(ctx context.Context) ([]domain.Provider, error) {
	var providers []domain.Provider
	if err := a.c.Do(ctx, "GET", "/admin/providers", nil, nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (a *AdminClient) AddProvider(ctx context.Context, p domain.Provider) (string, error) {
	var status string
	if err := a.c.Do(ctx, "POST", "/admin/providers", nil, p, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AdminClient) UpdateProvider(ctx context.Context, id string, p domain.Provider) (string, error) {
	var status string
	if err := a.c.Do(ctx, "PUT", "/admin/providers/"+id, nil, p, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AdminClient) DeleteProvider(ctx context.Context, id string) (string, error) {
	var status string
	if err := a.c.Do(ctx, "DELETE", "/admin/providers/"+id, nil, nil, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AdminClient) Contracts(ctx context.Context) ([]domain.Contract, error) {
	var contracts []domain.Contract
	if err := a.c.Do(ctx, "GET", "/admin/contracts", nil, nil, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (a *AdminClient) ContractsByAgent(ctx context.Context, agentID string) ([]domain.Contract, error) {
	var contracts []domain.Contract
	if err := a.c.Do(ctx, "GET", "/admin/contracts/agent/"+agentID, nil, nil, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (a *AdminClient) AddContract(ctx context.Context, contract domain.Contract) (string, error) {
	var status string
	if err := a.c.Do(ctx, "POST", "/admin/contracts", nil, contract, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AdminClient) UpdateContract(ctx context.Context, id string, contract domain.Contract) (string, error) {
	var status string
	if err := a.c.Do(ctx, "PUT", "/admin/contracts/"+id, nil, contract, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AdminClient) ToggleContractStatus(ctx context.Context, id string, active bool) (string, error) {
	params := url.Values{}
	params.Set("status", strconv.FormatBool(active))

	var status string
	if err := a.c.Do(ctx, "PATCH", "/admin/contracts/"+id+"/status", params, nil, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AdminClient) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := a.c.Do(ctx, "GET", "/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *AdminClient) UpdateUser(ctx context.Context, id string, user domain.User) (string, error) {
	var status string
	if err := a.c.Do(ctx, "PUT", "/admin/users/"+id, nil, user, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AdminClient) DeleteUser(ctx context.Context, id string) (string, error) {
	var status string
	if err := a.c.Do(ctx, "DELETE", "/admin/users/"+id, nil, nil, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AdminClient) Admins(ctx context.Context) ([]domain.User, error) {
	var admins []domain.User
	if err := a.c.Do(ctx, "GET", "/admin/list-admins", nil, nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (a *AdminClient) RejectRequest(ctx context.Context, requestID string) (string, error) {
	var status string
	if err := a.c.Do(ctx, "DELETE", "/admin/bookings/requests/"+requestID, nil, nil, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AdminClient) ReportSummary(ctx context.Context) (*domain.ReportSummary, error) {
	var summary domain.ReportSummary
	if err := a.c.Do(ctx, "GET", "/admin/reports/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
