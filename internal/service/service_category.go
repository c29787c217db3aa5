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

type categoryService struct {
	categoryRepository store.CategoryRepository
	validator          validators.Validator
	publisher          events.Publisher

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, publisher events.Publisher, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		validator:          validators.NewCategoryValidator(),
		publisher:          publisher,
		logger:             logger,
	}
}

// CreateCategory stores a new category. The slug is the supplied one or the
// slug of the title; when it is taken the slug of the title gets a
// "-<unix millis>" suffix.
func (c *categoryService) CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error) {
	log := logger.FromContext(ctx)

	input.Title = strings.TrimSpace(input.Title)
	if err := c.validator.Validate(ctx, input); err != nil {
		return models.Category{}, err
	}

	generated := utils.Slugify(input.Title)
	slug := input.Slug
	if slug == "" {
		slug = generated
	}
	if slug == "" {
		return models.Category{}, fmt.Errorf("%w: title yields an empty slug", ErrInvalidInput)
	}

	taken, err := c.categoryRepository.CategorySlugExists(ctx, slug)
	if err != nil {
		return models.Category{}, fmt.Errorf("category slug lookup failed: %w", err)
	}
	if taken {
		slug = suffixedSlug(generated)
	}

	category := models.Category{
		Title:           input.Title,
		Slug:            slug,
		Description:     input.Description,
		IconURL:         input.IconURL,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		Keywords:        input.Keywords,
		IsActive:        true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if category.Keywords == nil {
		category.Keywords = models.StringList{}
	}

	created, err := c.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("title", input.Title).Msg("category creation ended with error")
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return created, nil
}

func (c *categoryService) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	return c.categoryRepository.GetCategoryByID(ctx, id)
}

func (c *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	return c.categoryRepository.GetCategoryBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
}

func (c *categoryService) ListCategories(ctx context.Context, filter models.CategoryFilter) (models.CategoryList, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	categories, total, err := c.categoryRepository.ListCategories(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryService.ListCategories").Msg("listing categories failed")
		return models.CategoryList{}, fmt.Errorf("listing categories failed: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}

	return models.CategoryList{
		Categories: categories,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// UpdateCategory applies upd. A changed title regenerates the slug unless
// upd carries one.
func (c *categoryService) UpdateCategory(ctx context.Context, id int64, upd models.CategoryUpdate) (models.Category, error) {
	upd.Title = trimmed(upd.Title)
	if err := c.validator.Validate(ctx, upd); err != nil {
		return models.Category{}, err
	}

	current, err := c.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		return models.Category{}, err
	}

	if upd.Title != nil && *upd.Title != current.Title && upd.Slug == nil {
		slug, err := c.freeSlug(ctx, utils.Slugify(*upd.Title), current.Slug)
		if err != nil {
			return models.Category{}, err
		}
		upd.Slug = &slug
	}

	updated, err := c.categoryRepository.UpdateCategory(ctx, id, upd)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("category update failed")
		return models.Category{}, fmt.Errorf("category update failed: %w", err)
	}

	return updated, nil
}

// DeleteCategory removes the category. Domains still in it are removed too
// when force is set; otherwise [ErrHasDependents] is returned.
func (c *categoryService) DeleteCategory(ctx context.Context, id int64, force bool) (models.CategoryDeletion, error) {
	deleted, domainCount, err := c.categoryRepository.DeleteCategory(ctx, id, force)
	if errors.Is(err, store.ErrCategoryHasDomains) {
		return models.CategoryDeletion{}, fmt.Errorf("%w: %w", ErrHasDependents, err)
	}
	if err != nil {
		return models.CategoryDeletion{}, fmt.Errorf("category deletion failed: %w", err)
	}

	deletion := models.CategoryDeletion{Category: deleted, DeletedDomainCount: domainCount}
	publishEvent(ctx, c.publisher, models.EventCategoryDeleted, id, deletion)

	return deletion, nil
}

// freeSlug returns slug if it is free or already owned by the category,
// else slug with a timestamp suffix.
func (c *categoryService) freeSlug(ctx context.Context, slug, own string) (string, error) {
	if slug == "" {
		return "", fmt.Errorf("%w: title yields an empty slug", ErrInvalidInput)
	}
	if slug == own {
		return slug, nil
	}

	taken, err := c.categoryRepository.CategorySlugExists(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("category slug lookup failed: %w", err)
	}
	if taken {
		return suffixedSlug(slug), nil
	}

	return slug, nil
}

func suffixedSlug(slug string) string {
	return fmt.Sprintf("%s-%d", slug, timeNow().UnixMilli())
}
