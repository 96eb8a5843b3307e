package auth

// Role is the access level resolved from a request's Basic credentials.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleUser      Role = "USER"
	RoleAnonymous Role = "ANONYMOUS"
)

// Authenticated reports whether the role belongs to a known credential pair.
func (r Role) Authenticated() bool {
	return r == RoleAdmin || r == RoleUser
}

// Credential is a cleartext username/password pair as decoded from the
// Authorization header. Comparison is exact and case-sensitive.
type Credential struct {
	Username string
	Password string
}

// Gate maps credentials to roles. The table is injected so tests and
// deployments can swap credentials without touching core logic.
type Gate struct {
	roles map[Credential]Role
}

func NewGate(roles map[Credential]Role) *Gate {
	table := make(map[Credential]Role, len(roles))
	for cred, role := range roles {
		table[cred] = role
	}
	return &Gate{roles: table}
}

// DefaultCredentials is the stock credential table: one admin and one
// regular user account.
func DefaultCredentials(adminUser, adminPass, userUser, userPass string) map[Credential]Role {
	return map[Credential]Role{
		{Username: adminUser, Password: adminPass}: RoleAdmin,
		{Username: userUser, Password: userPass}:   RoleUser,
	}
}

// Authenticate resolves a credential pair to a role. It never fails: unknown
// or empty credentials resolve to RoleAnonymous and the service layer decides
// the response code.
func (g *Gate) Authenticate(username, password string) Role {
	if role, ok := g.roles[Credential{Username: username, Password: password}]; ok {
		return role
	}
	return RoleAnonymous
}
