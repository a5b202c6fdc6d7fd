package staff

import "github.com/georgemunganga/printa-pos/internal/resource"

// Staff is an employee holding a position.
type Staff struct {
	resource.Model
	PositionID   int64         `gorm:"index;not null" json:"position_id" form:"position_id"`
	Name         string        `gorm:"size:255;not null" json:"name" form:"name"`
	Gender       string        `gorm:"size:10;not null" json:"gender" form:"gender"`
	DateOfBirth  resource.Date `json:"date_of_birth" form:"date_of_birth"`
	PlaceOfBirth string        `gorm:"size:255;not null" json:"place_of_birth" form:"place_of_birth"`
	Address      string        `gorm:"size:255;not null" json:"address" form:"address"`
	Phone        string        `gorm:"size:15;not null" json:"phone" form:"phone"`
	NationIDCard string        `gorm:"size:20;not null" json:"nation_id_card" form:"nation_id_card"`
}

func (Staff) TableName() string { return "staff" }
