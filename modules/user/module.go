package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// UserModule supplies owner identity to the rest of the application. Until
// a real identity provider is plugged in it resolves every request to the
// placeholder account; nothing outside this module hardcodes that fact.
type UserModule struct {
	repo *AccountRepository
}

// Compile-time interface checks.
var _ mono.Module = (*UserModule)(nil)
var _ mono.ServiceProviderModule = (*UserModule)(nil)

// NewModule creates a new UserModule.
func NewModule() *UserModule {
	return &UserModule{
		repo: NewAccountRepository(),
	}
}

// Name returns the module name.
func (m *UserModule) Name() string {
	return "user"
}

// RegisterServices registers request-reply services in the service container.
func (m *UserModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "resolve-owner", json.Unmarshal, json.Marshal, m.resolveOwner,
	); err != nil {
		return fmt.Errorf("failed to register resolve-owner service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "validate-owner", json.Unmarshal, json.Marshal, m.validateOwner,
	); err != nil {
		return fmt.Errorf("failed to register validate-owner service: %w", err)
	}

	log.Printf("[user] Registered services: resolve-owner, validate-owner")
	return nil
}

// resolveOwner handles the resolve-owner service request.
func (m *UserModule) resolveOwner(_ context.Context, _ ResolveOwnerRequest, _ *mono.Msg) (ResolveOwnerResponse, error) {
	return ResolveOwnerResponse{OwnerID: PlaceholderOwnerID}, nil
}

// validateOwner handles the validate-owner service request.
func (m *UserModule) validateOwner(_ context.Context, req ValidateOwnerRequest, _ *mono.Msg) (ValidateOwnerResponse, error) {
	return ValidateOwnerResponse{Valid: m.repo.Exists(req.OwnerID)}, nil
}

// Start initializes the module.
func (m *UserModule) Start(_ context.Context) error {
	m.repo.SeedPlaceholderAccount()
	log.Println("[user] Module started with placeholder account")
	return nil
}

// Stop shuts down the module.
func (m *UserModule) Stop(_ context.Context) error {
	log.Println("[user] Module stopped")
	return nil
}
