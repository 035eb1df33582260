package models

import (
	"time"
)

// Preference keys stored by the editor
const (
	PrefGradientType  = "gradient_type"
	PrefRepeatMode    = "repeat_mode"
	PrefPreviewWidth  = "preview_width"
	PrefPreviewHeight = "preview_height"
)

// Preference is a single key/value editor setting.
// Gradients themselves are never stored, only how the editor was last left.
type Preference struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Value string `json:"value"`
}
