package court

import (
	"errors"
	"strings"
	"time"

	"court-booking/internal/pkg/ident"
)

var (
	ErrInvalidCategory = errors.New("court type must be padel or football")
	ErrNameRequired    = errors.New("court name is required in both languages")
)

type Category string

const (
	CategoryPadel    Category = "padel"
	CategoryFootball Category = "football"
)

func (c Category) String() string {
	return string(c)
}

func NewCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryPadel, CategoryFootball:
		return Category(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

// LocalizedText carries the Arabic and English variants of a label.
type LocalizedText struct {
	Ar string
	En string
}

type Court struct {
	id          string
	name        LocalizedText
	description LocalizedText
	category    Category
	imageURL    *string
	isActive    bool
	createdAt   time.Time
}

type Spec struct {
	Name        LocalizedText
	Description LocalizedText
	Category    string
	ImageURL    *string
}

func NewCourt(spec Spec, now time.Time) (*Court, error) {
	return newCourtWithID(ident.New(ident.PrefixCourt), spec, now)
}

func newCourtWithID(id string, spec Spec, now time.Time) (*Court, error) {
	name := LocalizedText{Ar: strings.TrimSpace(spec.Name.Ar), En: strings.TrimSpace(spec.Name.En)}
	if name.Ar == "" || name.En == "" {
		return nil, ErrNameRequired
	}
	category, err := NewCategory(spec.Category)
	if err != nil {
		return nil, err
	}
	var image *string
	if spec.ImageURL != nil && strings.TrimSpace(*spec.ImageURL) != "" {
		v := strings.TrimSpace(*spec.ImageURL)
		image = &v
	}
	return &Court{
		id:   id,
		name: name,
		description: LocalizedText{
			Ar: strings.TrimSpace(spec.Description.Ar),
			En: strings.TrimSpace(spec.Description.En),
		},
		category:  category,
		imageURL:  image,
		isActive:  true,
		createdAt: now,
	}, nil
}

func ReconstructCourt(id string, name, description LocalizedText, category Category, imageURL *string, isActive bool, createdAt time.Time) *Court {
	return &Court{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		imageURL:    imageURL,
		isActive:    isActive,
		createdAt:   createdAt,
	}
}

func (c *Court) ID() string                 { return c.id }
func (c *Court) Name() LocalizedText        { return c.name }
func (c *Court) Description() LocalizedText { return c.description }
func (c *Court) Category() Category         { return c.category }
func (c *Court) ImageURL() *string          { return c.imageURL }
func (c *Court) IsActive() bool             { return c.isActive }
func (c *Court) CreatedAt() time.Time       { return c.createdAt }
