package authz

// Identity is the authenticated caller as asserted by the verified ID token,
// including the flat custom claims. Admin and Moderator are independent
// booleans, not a privilege lattice.
type Identity struct {
	UID           string // Firebase Auth UID. Empty means anonymous.
	Email         string // Email address from the token.
	EmailVerified bool   // Whether the provider verified the email.
	Admin         bool   // Custom claim granting full access.
	Moderator     bool   // Custom claim granting content moderation.
}

// SignedIn reports whether the caller has an authenticated identity.
func (i *Identity) SignedIn() bool {
	return i != nil && i.UID != ""
}

// IsOwner reports whether the caller's identity equals the given UID.
func (i *Identity) IsOwner(uid string) bool {
	return i.SignedIn() && uid != "" && i.UID == uid
}

// IsAdmin reports whether the caller carries the admin claim.
func (i *Identity) IsAdmin() bool {
	return i.SignedIn() && i.Admin
}

// IsStaff reports whether the caller carries the admin or moderator claim.
func (i *Identity) IsStaff() bool {
	return i.SignedIn() && (i.Admin || i.Moderator)
}
