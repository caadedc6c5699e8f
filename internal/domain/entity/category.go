package entity

import "time"

// Category agrupa activos (cómputo, mobiliario, vehículos...). El nombre es único.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
