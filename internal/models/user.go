package models

// Session is the identity descriptor published by the identity provider.
// A nil *Session means nobody is signed in.
type Session struct {
	ID    string  `json:"user_id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// WithName returns a copy of s carrying the given display name.
func (s Session) WithName(name string) *Session {
	s.Name = &name
	return &s
}

// User is a provider-side account record.
type User struct {
	ID           string `json:"user_id"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Session converts the account into the descriptor handed to the application.
func (u User) Session() *Session {
	s := &Session{ID: u.ID}
	if u.Name != "" {
		name := u.Name
		s.Name = &name
	}
	if u.Email != "" {
		email := u.Email
		s.Email = &email
	}
	return s
}
