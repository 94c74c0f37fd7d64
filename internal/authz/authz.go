// Package authz holds the single authorization contract applied by the
// property catalog and inquiry routing services. Ownership checks live
// here and nowhere else.
package authz

import (
	"github.com/spec-kit/estate-service/internal/domain"
	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

// Action classifies an operation for authorization purposes.
type Action int

const (
	ActionRead Action = iota
	ActionWrite
)

// Resource is anything the contract can decide on.
type Resource interface {
	authzResource()
}

// PropertyResource carries the fields the contract needs from a property.
type PropertyResource struct {
	OwnerID string
}

func (PropertyResource) authzResource() {}

// InquiryResource carries the fields the contract needs from an inquiry.
// PropertyOwnerID is the owner of the referenced property.
type InquiryResource struct {
	SenderID        string
	PropertyOwnerID string
}

func (InquiryResource) authzResource() {}

// Decide applies the contract. actor is nil when no bearer token could
// be resolved. A nil return means Allow; a Deny is returned as an
// Unauthorized error when the actor is unresolved and as Forbidden when
// the actor is known but not entitled.
func Decide(actor *string, action Action, res Resource) error {
	switch r := res.(type) {
	case PropertyResource:
		if action == ActionRead {
			return nil
		}
		if actor == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if *actor != r.OwnerID {
			return apperrors.NewForbidden("only the property owner may do this")
		}
		return nil
	case InquiryResource:
		if actor == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if *actor != r.SenderID && *actor != r.PropertyOwnerID {
			return apperrors.NewForbidden("only the sender or the property owner may do this")
		}
		return nil
	default:
		return apperrors.NewForbidden("unknown resource")
	}
}

// PropertyFor adapts a domain property to the contract's resource shape.
func PropertyFor(p *domain.Property) PropertyResource {
	return PropertyResource{OwnerID: p.OwnerID}
}

// InquiryFor adapts a domain inquiry to the contract's resource shape.
func InquiryFor(i *domain.Inquiry) InquiryResource {
	return InquiryResource{SenderID: i.SenderID, PropertyOwnerID: i.PropertyOwnerID}
}
