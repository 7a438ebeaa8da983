package model

// User is the authoritative identity, owned by PostgreSQL.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
