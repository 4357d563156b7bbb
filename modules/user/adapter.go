package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// OwnerPort defines the identity operations other modules consume. This is
// the seam where a real auth provider would be substituted without touching
// validation or storage logic.
type OwnerPort interface {
	ResolveOwner(ctx context.Context) (int64, error)
	ValidateOwner(ctx context.Context, ownerID int64) (bool, error)
}

// ownerAdapter wraps ServiceContainer for type-safe cross-module communication.
type ownerAdapter struct {
	container mono.ServiceContainer
}

// NewOwnerAdapter creates a new adapter for user services.
// container is the ServiceContainer from the user module received via
// SetDependencyServiceContainer.
func NewOwnerAdapter(container mono.ServiceContainer) OwnerPort {
	if container == nil {
		panic("owner adapter requires non-nil ServiceContainer")
	}
	return &ownerAdapter{container: container}
}

// ResolveOwner returns the acting owner's identifier via the resolve-owner
// service.
func (a *ownerAdapter) ResolveOwner(ctx context.Context) (int64, error) {
	req := ResolveOwnerRequest{}
	var resp ResolveOwnerResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "resolve-owner", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return 0, fmt.Errorf("resolve-owner service call failed: %w", err)
	}

	return resp.OwnerID, nil
}

// ValidateOwner checks an owner exists via the validate-owner service.
func (a *ownerAdapter) ValidateOwner(ctx context.Context, ownerID int64) (bool, error) {
	req := ValidateOwnerRequest{OwnerID: ownerID}
	var resp ValidateOwnerResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "validate-owner", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return false, fmt.Errorf("validate-owner service call failed: %w", err)
	}

	return resp.Valid, nil
}
