package user

// PlaceholderOwnerID is the fixed identity every creation runs under while
// authentication lives outside this service.
const PlaceholderOwnerID int64 = 1

// Account represents a task owner known to the user module.
type Account struct {
	ID    int64  `json:"id_usuario"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// ResolveOwnerRequest is the request for resolving the acting owner.
type ResolveOwnerRequest struct{}

// ResolveOwnerResponse is the response for resolving the acting owner.
type ResolveOwnerResponse struct {
	OwnerID int64 `json:"id_usuario"`
}

// ValidateOwnerRequest is the request for checking an owner exists.
type ValidateOwnerRequest struct {
	OwnerID int64 `json:"id_usuario"`
}

// ValidateOwnerResponse is the response for checking an owner exists.
type ValidateOwnerResponse struct {
	Valid bool `json:"valid"`
}
