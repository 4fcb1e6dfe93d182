package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Place struct {
	BaseModel
	CityID uuid.UUID `gorm:"type:uuid;index"`
	// Position keeps catalog order within a city; ties on cost are broken by it.
	Position      int
	Name          string
	Categories    pq.StringArray `gorm:"type:text[]"`
	BestFor       pq.StringArray `gorm:"type:text[]"`
	ApproxCost    float64
	DurationHours float64
	Why           string
	StudentTip    string
	MapLink       string
}
