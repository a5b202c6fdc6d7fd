package user

import "github.com/georgemunganga/printa-pos/internal/resource"

// User is a login account tied to a staff member.
// Password holds a bcrypt hash once saved and is never serialized.
type User struct {
	resource.Model
	Username string `gorm:"size:255;not null" json:"username" form:"username"`
	Password string `gorm:"size:255;not null" json:"-" form:"password"`
	StaffID  int64  `gorm:"index;not null" json:"staff_id" form:"staff_id"`
}

func (User) TableName() string { return "users" }
