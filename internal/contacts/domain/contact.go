package domain

import (
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrOwnerRequired = errors.New("owner is required")
)

type Contact struct {
	ID        shareddomain.ID
	OwnerID   shareddomain.ID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	JobTitle  string
	Notes     string
	Tags      []string
	Custom    shareddomain.CustomFields
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// FieldValue reads a built-in column by its list column id. Empty text
// columns count as missing so they sort last.
func (c Contact) FieldValue(id string) (shareddomain.FieldValue, bool) {
	var text string
	switch id {
	case "ownerId":
		text = c.OwnerID.String()
	case "name":
		text = c.FullName()
	case "firstName":
		text = c.FirstName
	case "lastName":
		text = c.LastName
	case "email":
		text = c.Email
	case "phone":
		text = c.Phone
	case "company":
		text = c.Company
	case "jobTitle":
		text = c.JobTitle
	case "notes":
		text = c.Notes
	case "tags":
		text = strings.Join(c.Tags, ", ")
	case "createdAt":
		return shareddomain.DateValue(c.CreatedAt), !c.CreatedAt.IsZero()
	case "updatedAt":
		return shareddomain.DateValue(c.UpdatedAt), !c.UpdatedAt.IsZero()
	default:
		return shareddomain.FieldValue{}, false
	}
	if text == "" {
		return shareddomain.FieldValue{}, false
	}
	return shareddomain.TextValue(text), true
}

func (c Contact) CustomFields() shareddomain.CustomFields {
	return c.Custom
}

// Changes carries a partial update. Nil leaves the field as is and an empty
// email clears it.
type Changes struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	Company      *string
	JobTitle     *string
	Notes        *string
	Tags         *[]string
	CustomFields shareddomain.CustomFields
}

func (c *Contact) Apply(changes Changes) error {
	if changes.Email != nil {
		email, err := normalizeEmail(*changes.Email)
		if err != nil {
			return err
		}
		c.Email = email
	}

	assign(&c.FirstName, changes.FirstName)
	assign(&c.LastName, changes.LastName)
	assign(&c.Phone, changes.Phone)
	assign(&c.Company, changes.Company)
	assign(&c.JobTitle, changes.JobTitle)
	assign(&c.Notes, changes.Notes)
	if changes.Tags != nil {
		c.Tags = normalizeTags(*changes.Tags)
	}
	if changes.CustomFields != nil {
		merged := c.Custom.Clone()
		for key, value := range changes.CustomFields {
			if value.IsZero() {
				delete(merged, key)
				continue
			}
			merged[key] = value
		}
		c.Custom = merged
	}

	c.UpdatedAt = time.Now().UTC()
	return nil
}

func assign(target *string, value *string) {
	if value != nil {
		*target = strings.TrimSpace(*value)
	}
}

func normalizeEmail(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if err := utils.ValidateEmail(value); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidEmail, value)
	}
	return value, nil
}

func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, found := seen[tag]; found {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}

func NewContactBuilder() *contactBuilder {
	return &contactBuilder{}
}

type contactBuilder struct {
	actions []contactHandler
}

type contactHandler func(v *Contact) error

func (b *contactBuilder) WithOwnerID(value shareddomain.ID) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		if strings.TrimSpace(value.String()) == "" {
			return ErrOwnerRequired
		}
		c.OwnerID = value
		return nil
	})
	return b
}

func (b *contactBuilder) WithFirstName(value string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.FirstName = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *contactBuilder) WithLastName(value string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.LastName = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *contactBuilder) WithEmail(value string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		email, err := normalizeEmail(value)
		if err != nil {
			return err
		}
		c.Email = email
		return nil
	})
	return b
}

func (b *contactBuilder) WithPhone(value string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.Phone = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *contactBuilder) WithCompany(value string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.Company = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *contactBuilder) WithJobTitle(value string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.JobTitle = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *contactBuilder) WithNotes(value string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.Notes = value
		return nil
	})
	return b
}

func (b *contactBuilder) WithTags(value []string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.Tags = normalizeTags(value)
		return nil
	})
	return b
}

func (b *contactBuilder) WithCustomFields(value shareddomain.CustomFields) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.Custom = value.Clone()
		return nil
	})
	return b
}

func (b *contactBuilder) WithCreatedAt(value time.Time) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.CreatedAt = value.UTC()
		c.UpdatedAt = value.UTC()
		return nil
	})
	return b
}

func (b *contactBuilder) Build() (Contact, error) {
	now := time.Now().UTC()
	result := Contact{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Tags:      []string{},
		Custom:    shareddomain.CustomFields{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Contact{}, err
		}
	}

	if result.OwnerID == "" {
		return Contact{}, ErrOwnerRequired
	}

	return result, nil
}
