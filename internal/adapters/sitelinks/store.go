// Package sitelinks reads the homepage link grid from its JSON asset.
package sitelinks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/ports"
)

// checkerName identifies the asset in readiness results.
const checkerName = "site-links"

// ErrInvalidLinks indicates the asset was read but one or more entries are invalid.
var ErrInvalidLinks = errors.New("invalid site links")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func linkValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Load reads and validates the site links asset at path.
// Entry errors name the 1-based position of the entry in the file.
func Load(path string) ([]domain.SiteLink, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site links: %w", err)
	}

	return Parse(content)
}

// Parse decodes and validates a site links document.
func Parse(content []byte) ([]domain.SiteLink, error) {
	var links []domain.SiteLink

	err := json.Unmarshal(content, &links)
	if err != nil {
		return nil, fmt.Errorf("decoding site links: %w", err)
	}

	if links == nil {
		links = []domain.SiteLink{}
	}

	var errs []error

	for i, link := range links {
		err := linkValidator().Struct(link)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i+1, formatEntryError(err)))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLinks, errors.Join(errs...))
	}

	return links, nil
}

// formatEntryError names the failing fields by their JSON names.
func formatEntryError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]error, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := jsonFieldNames[fe.Field()]

		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Errorf("%s is required", field))
		case "url":
			msgs = append(msgs, fmt.Errorf("%s must be a valid URL", field))
		default:
			msgs = append(msgs, fmt.Errorf("%s failed %s validation", field, fe.Tag()))
		}
	}

	return errors.Join(msgs...)
}

var jsonFieldNames = map[string]string{
	"Name": "name",
	"Link": "link",
	"Icon": "icon",
}

// Store serves the site links asset, re-reading the file on every call so
// edits show up without a restart. It is safe for concurrent use.
type Store struct {
	path string
}

var (
	_ ports.SiteLinkSource = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

// NewStore creates a store for the asset at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the asset location.
func (s *Store) Path() string {
	return s.path
}

// Links returns the current content of the asset.
func (s *Store) Links(ctx context.Context) ([]domain.SiteLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Load(s.path)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return checkerName
}

// Check implements ports.HealthChecker. The service is not ready while the
// asset is missing or invalid.
func (s *Store) Check(ctx context.Context) error {
	_, err := s.Links(ctx)
	return err
}
