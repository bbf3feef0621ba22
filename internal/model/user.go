package model

// User is a row of the users table. Password holds the bcrypt hash, never the
// plaintext, and stays out of JSON output.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

func (User) TableName() string { return "users" }
