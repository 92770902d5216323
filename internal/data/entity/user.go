package entity

type User struct {
	Base
	Name         string `db:"name"`
	Username     string `db:"username"`
	PasswordHash string `db:"password"`
}
