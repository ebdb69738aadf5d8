package lettr

import (
	"context"

	"github.com/lettr-com/lettr-go/internal/api"
)

// DomainsService provides the /domains operations.
type DomainsService struct {
	api *api.Client
}

// Domain is a sending domain registered with the account.
type Domain struct {
	// Domain is the domain name.
	Domain string
	// Status is the status identifier (e.g. "approved", "pending").
	Status string
	// StatusLabel is the human-readable status.
	StatusLabel string
	// CanSend reports whether the domain can currently send emails.
	CanSend bool
	// CnameStatus is the CNAME record verification status, if any.
	CnameStatus string
	// DkimStatus is the DKIM record verification status, if any.
	DkimStatus string
	// CreatedAt is the creation timestamp.
	CreatedAt string
	// UpdatedAt is the last update timestamp.
	UpdatedAt string
}

// List retrieves all sending domains registered with the account.
func (s *DomainsService) List(ctx context.Context) ([]Domain, error) {
	dtos, err := s.api.ListDomains(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	domains := make([]Domain, len(dtos))
	for i, d := range dtos {
		domains[i] = Domain{
			Domain:      d.Domain,
			Status:      d.Status,
			StatusLabel: d.StatusLabel,
			CanSend:     d.CanSend,
			CnameStatus: d.CnameStatus,
			DkimStatus:  d.DkimStatus,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		}
	}
	return domains, nil
}

// DkimInfo is the DKIM signing configuration returned when a domain is
// created.
type DkimInfo struct {
	// Public is the DKIM public key.
	Public string
	// Selector is the DKIM selector.
	Selector string
	// Headers is the DKIM headers configuration.
	Headers string
}

// CreateDomainResponse is the result of registering a new domain.
type CreateDomainResponse struct {
	// Domain is the domain name.
	Domain string
	// Status is the initial status, usually "pending".
	Status string
	// StatusLabel is the human-readable status.
	StatusLabel string
	// Dkim is the DKIM configuration, when provided.
	Dkim *DkimInfo
}

// Create registers a new sending domain. The domain stays pending until
// it is verified and approved.
func (s *DomainsService) Create(ctx context.Context, domain string) (*CreateDomainResponse, error) {
	if domain == "" {
		return nil, &ValidationError{
			Message: "domain validation failed",
			Errors:  map[string][]string{"domain": {"domain name is required"}},
		}
	}

	data, err := s.api.CreateDomain(ctx, domain)
	if err != nil {
		return nil, wrapError(err)
	}

	resp := &CreateDomainResponse{
		Domain:      data.Domain,
		Status:      data.Status,
		StatusLabel: data.StatusLabel,
	}
	if data.Dkim != nil {
		resp.Dkim = &DkimInfo{
			Public:   data.Dkim.Public,
			Selector: data.Dkim.Selector,
			Headers:  data.Dkim.Headers,
		}
	}
	return resp, nil
}

// DkimDNSRecord is the DKIM record to publish in DNS.
type DkimDNSRecord struct {
	Selector string
	Public   string
}

// DNSRecords holds the DNS records needed for domain verification.
type DNSRecords struct {
	Dkim *DkimDNSRecord
}

// DomainDetail is the detailed view of a sending domain, including DNS
// records and tracking domain configuration.
type DomainDetail struct {
	Domain         string
	Status         string
	StatusLabel    string
	CanSend        bool
	CnameStatus    string
	DkimStatus     string
	TrackingDomain string
	DNS            *DNSRecords
	CreatedAt      string
	UpdatedAt      string
}

// Get retrieves details of a single sending domain.
func (s *DomainsService) Get(ctx context.Context, domain string) (*DomainDetail, error) {
	data, err := s.api.GetDomain(ctx, domain)
	if err != nil {
		return nil, wrapError(err)
	}

	detail := &DomainDetail{
		Domain:         data.Domain,
		Status:         data.Status,
		StatusLabel:    data.StatusLabel,
		CanSend:        data.CanSend,
		CnameStatus:    data.CnameStatus,
		DkimStatus:     data.DkimStatus,
		TrackingDomain: data.TrackingDomain,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.DNS != nil {
		detail.DNS = &DNSRecords{}
		if data.DNS.Dkim != nil {
			detail.DNS.Dkim = &DkimDNSRecord{
				Selector: data.DNS.Dkim.Selector,
				Public:   data.DNS.Dkim.Public,
			}
		}
	}
	return detail, nil
}

// Delete removes a sending domain. The domain is no longer available for
// sending afterwards.
func (s *DomainsService) Delete(ctx context.Context, domain string) error {
	if err := s.api.DeleteDomain(ctx, domain); err != nil {
		return wrapError(err)
	}
	return nil
}
