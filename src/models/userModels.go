package models

// User roles. Partners fill inspection reports; admins also manage
// certificate types and users.
const (
	RoleAdmin   = "admin"
	RolePartner = "partner"
)

type UserModel struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:varchar(255);not null;uniqueIndex"`
	Password string `json:"password" gorm:"type:varchar(100);not null"`
	Role     string `json:"role" gorm:"type:varchar(20);not null;default:'partner'"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
