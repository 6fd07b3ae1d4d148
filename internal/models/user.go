package models

// User is the public user shape returned by the API. No password field.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// UserRecord is the backend's user row including the password hash. It is
// decoded during login and uniqueness checks and never serialized out.
type UserRecord struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// Public strips the password hash.
func (r *UserRecord) Public() User {
	return User{ID: r.ID, Email: r.Email, FullName: r.FullName}
}
