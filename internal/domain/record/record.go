package record

import "time"

// Meta is the identity block every content entity embeds: integer id plus
// creation/update timestamps. Field names follow gorm conventions so the
// relational backend fills them automatically; the JSON backend fills them
// through the same json tags.
type Meta struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
