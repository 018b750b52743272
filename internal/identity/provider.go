// Package identity supplies the display-only "current user" capability.
package identity

// StaticProvider answers with a fixed email, standing in for a real
// identity service during the demo.
type StaticProvider struct {
	Email string
}

func (p StaticProvider) CurrentUser() string {
	if p.Email == "" {
		return "Not logged in"
	}

	return p.Email
}
