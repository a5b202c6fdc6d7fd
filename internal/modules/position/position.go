package position

import "github.com/georgemunganga/printa-pos/internal/resource"

// Position is a job title within a branch.
type Position struct {
	resource.Model
	BranchID    int64   `gorm:"index;not null" json:"branch_id" form:"branch_id"`
	Name        string  `gorm:"size:255;not null" json:"name" form:"name"`
	Description *string `gorm:"size:500" json:"description" form:"description"`
}

func (Position) TableName() string { return "positions" }
