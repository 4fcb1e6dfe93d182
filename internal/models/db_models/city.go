package db_models

import "github.com/lib/pq"

type City struct {
	BaseModel
	Name             string `gorm:"uniqueIndex"`
	DefaultFocus     string
	AverageDailyCost float64
	GeneralTips      pq.StringArray `gorm:"type:text[]"`
	LocalTips        pq.StringArray `gorm:"type:text[]"`
	Places           []Place        `gorm:"foreignKey:CityID"`
}
