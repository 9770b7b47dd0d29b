package user

// Role is a granted authority, e.g. "ROLE_ADMIN".
type Role struct {
	ID        int64  `json:"id"`
	Authority string `json:"authority"`
}

// User aggregates a login identity with its granted roles. Roles form a set:
// unique by id, unordered.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Roles        []Role `json:"roles"`
}

// AddRole appends a role unless one with the same id is already present.
func (u *User) AddRole(r Role) {
	for _, existing := range u.Roles {
		if existing.ID == r.ID {
			return
		}
	}
	u.Roles = append(u.Roles, r)
}

// HasRole reports whether the user holds the given authority.
func (u User) HasRole(authority string) bool {
	for _, r := range u.Roles {
		if r.Authority == authority {
			return true
		}
	}
	return false
}

// Detail is one row of the login projection: a flattened (user, role) pair
// used for authentication. A user with two roles yields two rows sharing
// username and password hash.
type Detail struct {
	Username  string
	Password  string
	RoleID    int64
	Authority string
}
