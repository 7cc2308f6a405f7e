package models

// GameOwner is one ownership edge: a named person owns a copy of a game.
// A gamer is not a first-class identity, just a name scoped to one game;
// the same name may appear under any number of different games, but only
// once per game.
type GameOwner struct {
	ID        uint   `gorm:"primaryKey"`
	GameID    uint   `gorm:"not null;index;uniqueIndex:idx_game_owner"`
	GamerName string `gorm:"size:255;not null;index;uniqueIndex:idx_game_owner"`
}
