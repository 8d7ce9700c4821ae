package domain

// Identity is the resolved profile of the authenticated user. It exists only
// while the session holds a credential the backend has confirmed; it is
// re-derived from the backend on every application start.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// AuthSession is the payload returned by the backend's login and register
// endpoints: a bearer credential plus the profile it identifies.
type AuthSession struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// Registration carries the fields required to create an account.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// ProfileUpdate is a partial profile mutation. Zero-valued fields are omitted
// from the request; the backend's returned profile is canonical afterwards.
type ProfileUpdate struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}
