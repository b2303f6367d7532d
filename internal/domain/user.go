package domain

// User is the auth service's record; the client only ever holds a cached copy.
type User struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	PhoneNumber   string     `json:"phoneNumber,omitempty"`
	Address       string     `json:"address,omitempty"`
	EmailVerified bool       `json:"emailVerified"`
	Enabled       bool       `json:"enabled"`
	CreatedAt     string     `json:"createdAt,omitempty"`
	Roles         []UserRole `json:"roles,omitempty"`
}

type UserRole struct {
	ID         string `json:"id"`
	Role       string `json:"role"` // ADMIN|MANAGER|STAFF|CUSTOMER|GUEST
	Active     bool   `json:"active"`
	AssignedAt string `json:"assignedAt,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}

// TokenPair is the auth service's login/refresh payload.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
	User         User   `json:"user"`
}
