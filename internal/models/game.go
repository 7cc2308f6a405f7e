package models

import "time"

// Game represents a catalog entry: a multiplayer game and the minimum
// party size required to play it.
//
// Games are hard-deleted, so gorm.Model is deliberately not embedded: its
// soft-delete column would keep "deleted" games and their ownership edges
// around.
type Game struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string `gorm:"size:255;not null"`
	Players   int    `gorm:"not null"`

	Owners []GameOwner `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}
