package domain

// Region is a market a product can be rented in, identified by a two-letter code.
type Region struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:text;not null"`
	Code string `json:"code" gorm:"type:varchar(2);not null;uniqueIndex:ux_regions_code"`
}

func (Region) TableName() string { return "regions" }

// RentalPeriod is a rental duration expressed in whole months.
type RentalPeriod struct {
	ID    int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Month int   `json:"month" gorm:"not null;uniqueIndex:ux_rentalperiods_month"`
}

func (RentalPeriod) TableName() string { return "rentalperiods" }
