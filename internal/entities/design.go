package entities

import "time"

type Design struct {
	ID          string
	Name        string
	Category    string
	Price       float64
	Description *string
	ImageURL    *string
	IsNew       bool
	IsPopular   bool
	CreatedAt   time.Time
}

type DesignModify struct {
	Name        *string
	Category    *string
	Price       *float64
	Description *string
	ImageURL    *string
	IsNew       *bool
	IsPopular   *bool
}
