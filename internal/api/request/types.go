package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SetAdminRequest is the request body for setting a user's admin flag.
// IsAdmin is a pointer so a missing field is distinguishable from false;
// both a missing and a mistyped value are rejected.
type SetAdminRequest struct {
	IsAdmin *bool `json:"isAdmin"`
}

// SetGameActiveRequest is the request body for toggling game availability
type SetGameActiveRequest struct {
	IsActive *bool `json:"isActive"`
}
