package model

import "time"

// User roles recognized by the authorization middleware.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents the user model stored in the database
type User struct {
	BaseModel
	Email       string     `json:"email" gorm:"type:varchar(100);index;not null"`
	Password    string     `json:"-" gorm:"type:varchar(255);not null"`
	FirstName   string     `json:"first_name" gorm:"type:varchar(100)"`
	LastName    string     `json:"last_name" gorm:"type:varchar(100)"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Role        string     `json:"role" gorm:"type:varchar(20);default:customer"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	Orders      []Order    `json:"orders,omitempty"`
}
