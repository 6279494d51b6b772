package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure.
var ErrInvalidCatalog = errors.New("catalog: invalid content")

// ValidationError lists the offending fields of a catalog, keyed by YAML path.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed: [%s]", strings.Join(e.fields, ", "))
}

// Unwrap exposes ErrInvalidCatalog for errors.Is.
func (e *ValidationError) Unwrap() error { return ErrInvalidCatalog }

// Fields returns a copy of the failing field descriptions.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func v() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		if err := validate.RegisterValidation("anchor", anchorValidator); err != nil {
			panic(fmt.Sprintf("catalog: register anchor validation: %v", err))
		}
	})
	return validate
}

// anchorValidator accepts "#<id>" where id is one of the section anchors.
func anchorValidator(fl validator.FieldLevel) bool {
	return IsSectionAnchor(fl.Field().String())
}

// IsSectionAnchor reports whether href targets one of the page's section ids.
func IsSectionAnchor(href string) bool {
	id, ok := strings.CutPrefix(href, "#")
	if !ok {
		return false
	}
	for _, a := range SectionAnchors {
		if a == id {
			return true
		}
	}
	return false
}

// Validate checks a catalog for authoring mistakes: duplicate product ids, empty
// required copy, malformed swatch colors or image URLs, and links that should
// target a section but do not.
func Validate(c Catalog) error {
	var fields []string
	if err := v().Struct(c); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		for _, e := range ve {
			fields = append(fields, describe(e))
		}
	}

	anchored := map[string]string{
		"hero.primary_cta.href":   c.Hero.PrimaryCTA.Href,
		"hero.secondary_cta.href": c.Hero.SecondaryCTA.Href,
	}
	if c.Featured.ViewAll != nil {
		anchored["featured.view_all.href"] = c.Featured.ViewAll.Href
	}
	for path, href := range anchored {
		if !IsSectionAnchor(href) {
			fields = append(fields, path+" (anchor)")
		}
	}

	if len(fields) == 0 {
		return nil
	}
	sort.Strings(fields)
	return &ValidationError{fields: fields}
}

func describe(e validator.FieldError) string {
	path := e.Namespace()
	// drop the root type name
	if i := strings.IndexByte(path, '.'); i != -1 {
		path = path[i+1:]
	}
	return fmt.Sprintf("%s (%s)", path, e.Tag())
}
