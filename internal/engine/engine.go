package engine

import (
	"context"
	"errors"
	"strings"

	"gamenight/backend/internal/models"

	"gorm.io/gorm"
)

// Engine implements the game-ownership operations on top of an injected
// database handle. It is safe for concurrent use: every call runs on its
// own pooled connection, and no transaction state is shared between calls
// or held beyond a single call.
type Engine struct {
	db *gorm.DB
}

// New creates an Engine backed by the given database handle.
func New(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// GameSummary is a game together with its aggregated owner names.
// Owners and OwnersInGroup are comma-joined lists in edge insertion order.
// OwnersInGroup is only populated by ListPlayable.
type GameSummary struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Players       int    `json:"players"`
	Owners        string `json:"owners"`
	OwnersInGroup string `json:"owners_in_group,omitempty"`
}

// ListGames returns every game with its owners, sorted by game name
// ascending. A game with no owners is included with an empty owner list.
func (e *Engine) ListGames(ctx context.Context) ([]GameSummary, error) {
	games, err := e.fetchGames(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]GameSummary, 0, len(games))
	for _, game := range games {
		summaries = append(summaries, GameSummary{
			ID:      game.ID,
			Name:    game.Name,
			Players: game.Players,
			Owners:  joinNames(ownerNames(game)),
		})
	}
	return summaries, nil
}

// ListPlayable returns the games the candidate group can play together,
// sorted by game name ascending. A game qualifies when at least one of its
// owners is in the group and the full group is at least as large as the
// game's player minimum; the rest of the group need not own the game.
// Candidate names are trimmed and deduplicated; an empty group is a
// validation error.
func (e *Engine) ListPlayable(ctx context.Context, candidateNames []string) ([]GameSummary, error) {
	group := normalizeNames(candidateNames)
	if len(group) == 0 {
		return nil, ValidationError("candidate group must contain at least one name")
	}
	members := make(map[string]bool, len(group))
	for _, name := range group {
		members[name] = true
	}

	games, err := e.fetchGames(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]GameSummary, 0)
	for _, game := range games {
		// The size check uses the full group, not the owning subset.
		if game.Players > len(group) {
			continue
		}
		var inGroup []string
		for _, owner := range game.Owners {
			if members[owner.GamerName] {
				inGroup = append(inGroup, owner.GamerName)
			}
		}
		if len(inGroup) == 0 {
			continue
		}
		summaries = append(summaries, GameSummary{
			ID:            game.ID,
			Name:          game.Name,
			Players:       game.Players,
			Owners:        joinNames(ownerNames(game)),
			OwnersInGroup: joinNames(inGroup),
		})
	}
	return summaries, nil
}

// CreateGame inserts a game and its initial ownership edges in one
// transaction and returns the new game id. If any edge insert fails the
// game row is rolled back with it; a game never persists with a partial
// owner set.
func (e *Engine) CreateGame(ctx context.Context, name string, players int, ownerNames []string) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ValidationError("game name must not be empty")
	}
	if players < 1 {
		return 0, ValidationError("players must be a positive integer")
	}
	owners := normalizeNames(ownerNames)

	var gameID uint
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		game := models.Game{Name: name, Players: players}
		if err := tx.Create(&game).Error; err != nil {
			return err
		}
		for _, owner := range owners {
			edge := models.GameOwner{GameID: game.ID, GamerName: owner}
			if err := tx.Create(&edge).Error; err != nil {
				return err
			}
		}
		gameID = game.ID
		return nil
	})
	if err != nil {
		return 0, storeErr("create game", err)
	}
	return gameID, nil
}

// GetGame returns a single game with its owners, or ErrNotFound.
func (e *Engine) GetGame(ctx context.Context, id uint) (*GameSummary, error) {
	var game models.Game
	err := e.db.WithContext(ctx).
		Preload("Owners", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get game", err)
	}
	return &GameSummary{
		ID:      game.ID,
		Name:    game.Name,
		Players: game.Players,
		Owners:  joinNames(ownerNames(game)),
	}, nil
}

// DeleteGame removes a game and all its ownership edges in one
// transaction. Returns ErrNotFound, rolling back the edge deletes, when
// the game row does not exist.
func (e *Engine) DeleteGame(ctx context.Context, id uint) error {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The schema declares ON DELETE CASCADE as well, but the edges are
		// removed explicitly so correctness never depends on the store
		// enforcing the constraint.
		if err := tx.Where("game_id = ?", id).Delete(&models.GameOwner{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Game{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return storeErr("delete game", err)
	}
	return nil
}

// AddOwner records that the named gamer owns the game and returns the new
// edge id. Matching is exact, trimmed and case-sensitive; a duplicate pair
// yields ErrConflict.
func (e *Engine) AddOwner(ctx context.Context, gameID uint, gamerName string) (uint, error) {
	gamerName = strings.TrimSpace(gamerName)
	if gamerName == "" {
		return 0, ValidationError("gamer name must not be empty")
	}

	db := e.db.WithContext(ctx)
	var count int64
	err := db.Model(&models.GameOwner{}).
		Where("game_id = ? AND gamer_name = ?", gameID, gamerName).
		Count(&count).Error
	if err != nil {
		return 0, storeErr("add owner", err)
	}
	if count > 0 {
		return 0, ErrConflict
	}

	edge := models.GameOwner{GameID: gameID, GamerName: gamerName}
	if err := db.Create(&edge).Error; err != nil {
		// Two concurrent adds can both pass the pre-check; the unique
		// index turns the loser into the same conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrConflict
		}
		return 0, storeErr("add owner", err)
	}
	return edge.ID, nil
}

// RemoveOwner deletes the ownership edge for the exact (game, gamer name)
// pair. Returns ErrNotFound when no such edge exists.
func (e *Engine) RemoveOwner(ctx context.Context, gameID uint, gamerName string) error {
	gamerName = strings.TrimSpace(gamerName)
	if gamerName == "" {
		return ValidationError("gamer name must not be empty")
	}

	result := e.db.WithContext(ctx).
		Where("game_id = ? AND gamer_name = ?", gameID, gamerName).
		Delete(&models.GameOwner{})
	if result.Error != nil {
		return storeErr("remove owner", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (e *Engine) fetchGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := e.db.WithContext(ctx).
		Preload("Owners", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("name ASC").
		Find(&games).Error
	if err != nil {
		return nil, storeErr("list games", err)
	}
	return games, nil
}

func ownerNames(game models.Game) []string {
	names := make([]string, 0, len(game.Owners))
	for _, owner := range game.Owners {
		names = append(names, owner.GamerName)
	}
	return names
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

// normalizeNames trims each name, drops empties and deduplicates while
// preserving first-seen order.
func normalizeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		result = append(result, trimmed)
	}
	return result
}
