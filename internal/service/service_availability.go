// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/likexian/whois"
)

// Phrases in a WHOIS response that mean the name is registered. They take
// precedence over availablePatterns.
var takenPatterns = []string{
	"registrar:",
	"registrant:",
	"creation date:",
	"created:",
	"registry expiry date:",
	"expiration date:",
	"name server:",
	"nameserver:",
	"nserver:",
	"domain status:",
	"registrar iana id:",
	"this name is reserved",
}

var availablePatterns = []string{
	"no match for",
	"not found",
	"no entries found",
	"no data found",
	"status: free",
	"status: available",
	"no object found",
	"object does not exist",
	"is available for registration",
	"the queried object does not exist",
	"no such domain",
	"domain name has not been registered",
	"no matching record",
}

// whoisLookup has the signature of [whois.Client.Whois].
type whoisLookup func(domain string, servers ...string) (string, error)

type availabilityService struct {
	domainRepository store.DomainRepository
	lookup           whoisLookup
	now              func() time.Time

	logger *logger.Logger
}

// NewAvailabilityService checks listings against WHOIS. Each lookup is
// bounded by cfg.WhoisTimeout.
func NewAvailabilityService(domainRepository store.DomainRepository, cfg config.Adapter, logger *logger.Logger) AvailabilityService {
	client := whois.NewClient()
	if cfg.WhoisTimeout > 0 {
		client.SetTimeout(cfg.WhoisTimeout)
	}

	return &availabilityService{
		domainRepository: domainRepository,
		lookup:           client.Whois,
		now:              time.Now,
		logger:           logger,
	}
}

// CheckAvailability looks the domain name up in WHOIS. A failed lookup or an
// unrecognised answer is reported as taken.
func (a *availabilityService) CheckAvailability(ctx context.Context, domainID int64) (models.DomainAvailability, error) {
	log := logger.FromContext(ctx)

	domain, err := a.domainRepository.GetDomainByID(ctx, domainID)
	if err != nil {
		return models.DomainAvailability{}, err
	}

	result := models.DomainAvailability{
		Domain:    domain.Name,
		Status:    models.StatusTaken,
		CheckedAt: a.now().UTC(),
	}

	raw, err := a.lookup(domain.Name)
	if err != nil {
		log.Warn().Err(err).Str("domain", domain.Name).Msg("whois lookup failed, reporting as taken")
		return result, nil
	}

	result.Status = classifyWhois(raw)
	log.Debug().Str("domain", domain.Name).Str("status", string(result.Status)).Msg("whois lookup done")

	return result, nil
}

func classifyWhois(raw string) models.DomainStatus {
	text := strings.ToLower(raw)

	for _, pattern := range takenPatterns {
		if strings.Contains(text, pattern) {
			return models.StatusTaken
		}
	}
	for _, pattern := range availablePatterns {
		if strings.Contains(text, pattern) {
			return models.StatusAvailable
		}
	}

	return models.StatusTaken
}
