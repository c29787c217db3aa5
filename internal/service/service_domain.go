// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/domain-marketplace/internal/events"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/MKhiriev/domain-marketplace/internal/validators"
	"github.com/MKhiriev/domain-marketplace/models"
)

const (
	searchLimit    = 50
	recommendLimit = 5

	defaultExtension = "com"
)

// statusTransitions lists, for every status, the statuses it may move to.
var statusTransitions = map[models.DomainStatus][]models.DomainStatus{
	models.StatusAvailable: {models.StatusReserved, models.StatusTaken, models.StatusPending},
	models.StatusReserved:  {models.StatusAvailable, models.StatusTaken},
	models.StatusPending:   {models.StatusAvailable, models.StatusTaken},
	models.StatusTaken:     {models.StatusAvailable},
}

// CanTransition reports whether a domain may move from one status to
// another.
func CanTransition(from, to models.DomainStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type domainService struct {
	domainRepository   store.DomainRepository
	categoryRepository store.CategoryRepository
	validator          validators.Validator
	publisher          events.Publisher

	logger *logger.Logger
}

func NewDomainService(
	domainRepository store.DomainRepository,
	categoryRepository store.CategoryRepository,
	publisher events.Publisher,
	logger *logger.Logger,
) DomainService {
	return &domainService{
		domainRepository:   domainRepository,
		categoryRepository: categoryRepository,
		validator:          validators.NewDomainValidator(),
		publisher:          publisher,
		logger:             logger,
	}
}

// CreateDomain fills in the derived fields of input, validates it and stores
// the domain together with its category counter in one transaction.
//
// Derived fields:
//   - a name without a dot gets ".com" appended.
//   - full_domain defaults to the name.
//   - extension defaults to the part after the last dot.
//   - slug defaults to the name with every non-alphanumeric replaced by "-".
func (d *domainService) CreateDomain(ctx context.Context, input models.DomainInput) (models.Domain, error) {
	log := logger.FromContext(ctx)

	input = withDomainDefaults(input)
	if err := d.validator.Validate(ctx, input); err != nil {
		return models.Domain{}, err
	}

	created, err := d.domainRepository.CreateDomainWithCategory(ctx, input)
	if err != nil {
		log.Err(err).Str("name", input.Name).Msg("domain creation ended with error")
		return models.Domain{}, fmt.Errorf("domain creation ended with error: %w", err)
	}

	publishEvent(ctx, d.publisher, models.EventDomainCreated, created.ID, created)

	return created, nil
}

func (d *domainService) GetDomain(ctx context.Context, id int64) (models.Domain, error) {
	return d.domainRepository.ViewDomain(ctx, id)
}

// ListDomains returns the filtered domains. A category title or slug is
// resolved to its id first; an unknown category leaves the list unfiltered.
// Only a paginated filter is cut into pages; its page and limit are clamped
// first.
func (d *domainService) ListDomains(ctx context.Context, filter models.DomainFilter) (models.DomainList, error) {
	if filter.Category != "" && filter.CategoryID == nil {
		category, err := d.categoryRepository.GetCategoryByTitleOrSlug(ctx, filter.Category)
		switch {
		case err == nil:
			filter.CategoryID = &category.ID
		case errors.Is(err, store.ErrCategoryNotFound):
			logger.FromContext(ctx).Debug().Str("category", filter.Category).Msg("unknown category filter ignored")
		default:
			return models.DomainList{}, fmt.Errorf("resolving category filter: %w", err)
		}
	}
	filter.Category = ""

	if filter.Paginated {
		filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	}

	domains, total, err := d.domainRepository.ListDomains(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*domainService.ListDomains").Msg("listing domains failed")
		return models.DomainList{}, fmt.Errorf("listing domains failed: %w", err)
	}
	if domains == nil {
		domains = []models.Domain{}
	}

	list := models.DomainList{Domains: domains, Total: total}
	if filter.Paginated {
		list.Page = filter.Page
		list.Limit = filter.Limit
		pages := totalPages(total, filter.Limit)
		list.TotalPages = &pages
	}

	return list, nil
}

func (d *domainService) ListCategoryDomains(ctx context.Context, categoryID int64, filter models.DomainFilter) (models.DomainList, error) {
	if _, err := d.categoryRepository.GetCategoryByID(ctx, categoryID); err != nil {
		return models.DomainList{}, err
	}

	filter.CategoryID = &categoryID
	filter.Category = ""

	return d.ListDomains(ctx, filter)
}

func (d *domainService) SearchDomains(ctx context.Context, query string) ([]models.Domain, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	domains, err := d.domainRepository.SearchDomains(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("domain search failed: %w", err)
	}
	if domains == nil {
		domains = []models.Domain{}
	}

	return domains, nil
}

// RecommendDomains returns available domains from the same category as the
// domain with the given id.
func (d *domainService) RecommendDomains(ctx context.Context, id int64) ([]models.Domain, error) {
	domain, err := d.domainRepository.GetDomainByID(ctx, id)
	if err != nil {
		return nil, err
	}

	domains, err := d.domainRepository.RecommendDomains(ctx, domain.CategoryID, domain.ID, recommendLimit)
	if err != nil {
		return nil, fmt.Errorf("domain recommendation failed: %w", err)
	}
	if domains == nil {
		domains = []models.Domain{}
	}

	return domains, nil
}

func (d *domainService) RecordInquiry(ctx context.Context, id int64) (models.Domain, error) {
	return d.domainRepository.RecordInquiry(ctx, id)
}

// UpdateDomain applies a partial update on behalf of actor.
//
// A status change must be allowed by the transition table and is applied
// only if the stored status is still the one read here; otherwise
// [ErrDomainStatusChanged] is returned. Setting the current status again is
// not a change.
func (d *domainService) UpdateDomain(ctx context.Context, actor models.Actor, id int64, upd models.DomainUpdate) (models.Domain, error) {
	log := logger.FromContext(ctx)

	upd.CategoryName = nil
	upd.ExpectedStatus = nil
	if upd.Name != nil {
		name := normalizeDomainName(*upd.Name)
		upd.Name = &name
	}
	if upd.Price != nil {
		price := roundPrice(*upd.Price)
		upd.Price = &price
	}

	if err := d.validator.Validate(ctx, upd); err != nil {
		return models.Domain{}, err
	}

	current, err := d.domainRepository.GetDomainByID(ctx, id)
	if err != nil {
		return models.Domain{}, err
	}
	if err = authorizeListing(actor, current); err != nil {
		return models.Domain{}, err
	}

	statusChanged := false
	if upd.Status != nil {
		switch {
		case *upd.Status == current.Status:
			upd.Status = nil
		case !CanTransition(current.Status, *upd.Status):
			return models.Domain{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, *upd.Status)
		default:
			expected := current.Status
			upd.ExpectedStatus = &expected
			statusChanged = true
		}
	}
	if upd.IsEmpty() {
		return current, nil
	}

	updated, err := d.domainRepository.UpdateDomain(ctx, id, upd)
	if errors.Is(err, store.ErrStatusConflict) {
		return models.Domain{}, ErrDomainStatusChanged
	}
	if err != nil {
		log.Err(err).Int64("id", id).Msg("domain update failed")
		return models.Domain{}, fmt.Errorf("domain update failed: %w", err)
	}

	if statusChanged {
		publishEvent(ctx, d.publisher, models.EventDomainStatusChanged, id, models.StatusChange{
			DomainID: id,
			From:     current.Status,
			To:       updated.Status,
		})
	}

	return updated, nil
}

func (d *domainService) DeleteDomain(ctx context.Context, actor models.Actor, id int64) error {
	current, err := d.domainRepository.GetDomainByID(ctx, id)
	if err != nil {
		return err
	}
	if err = authorizeListing(actor, current); err != nil {
		return err
	}

	if err = d.domainRepository.DeleteDomain(ctx, id); err != nil {
		return fmt.Errorf("domain deletion failed: %w", err)
	}

	publishEvent(ctx, d.publisher, models.EventDomainDeleted, id, current)

	return nil
}

// authorizeListing allows the listing owner and staff.
func authorizeListing(actor models.Actor, domain models.Domain) error {
	if actor.IsStaff() {
		return nil
	}
	if domain.OwnerID != nil && *domain.OwnerID == actor.UserID {
		return nil
	}
	return ErrForbidden
}

func withDomainDefaults(input models.DomainInput) models.DomainInput {
	input.Name = normalizeDomainName(input.Name)
	input.Price = roundPrice(input.Price)

	if input.FullDomain == "" {
		input.FullDomain = input.Name
	}
	if input.Extension == "" {
		input.Extension = defaultExtension
		if i := strings.LastIndex(input.Name, "."); i >= 0 && i < len(input.Name)-1 {
			input.Extension = input.Name[i+1:]
		}
	}
	if input.Slug == "" {
		input.Slug = domainSlug(input.Name)
	}
	if input.Status == "" {
		input.Status = models.StatusAvailable
	}
	if input.ListingType == "" {
		input.ListingType = models.ListingRegular
	}

	return input
}

func normalizeDomainName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name != "" && !strings.Contains(name, ".") {
		name += "." + defaultExtension
	}
	return name
}

func domainSlug(name string) string {
	return utils.Slugify(strings.ReplaceAll(name, ".", "-"))
}
