package domain

import "time"

// Customer is a registered account. Hash is the bcrypt password hash and is
// never serialised.
type Customer struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"nome"`
	Email     string    `db:"email" json:"email"`
	Hash      string    `db:"password_hash" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"criadoEm"`
}

// CustomerSummary is the read model returned by listings and updates.
type CustomerSummary struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"nome"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"criadoEm"`
}

// Summary drops the credential fields.
func (c Customer) Summary() CustomerSummary {
	return CustomerSummary{ID: c.ID, Name: c.Name, Email: c.Email, CreatedAt: c.CreatedAt}
}

type RegisterInput struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// CustomerUpdate replaces name and email. A nil Password keeps the stored hash.
type CustomerUpdate struct {
	Name     string  `json:"nome"`
	Email    string  `json:"email"`
	Password *string `json:"senha"`
}
