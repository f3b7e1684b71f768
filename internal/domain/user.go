package domain

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// UserPatch carries a partial update. Zero-valued fields keep the stored
// value; Age follows the same rule, so a zero age cannot overwrite.
type UserPatch struct {
	Name  string
	Email string
	Age   int
}
