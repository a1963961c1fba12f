package models

import "github.com/uptrace/bun"

// User is an API account. Password holds a bcrypt hash, never plain text;
// accounts are created with cmd/adduser.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       int    `bun:"id,pk,autoincrement" json:"id"`
	Username string `bun:"username,notnull,unique" json:"username"`
	Password string `bun:"password,notnull" json:"-"`
}
