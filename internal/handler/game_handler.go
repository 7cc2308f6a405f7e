package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type GameInput struct {
	Name    string   `json:"name" binding:"required"`
	Players int      `json:"players" binding:"required,min=1"`
	Owners  []string `json:"owners"`
}

type CreatedResponse struct {
	ID uint `json:"id" example:"1"`
}

// endregion

// ListGames godoc
// @Summary      List all games
// @Description  Retrieves every game with its owners, sorted by name.
// @Tags         games
// @Produce      json
// @Success      200  {array}   engine.GameSummary
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	games, err := h.Engine.ListGames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// ListPlayableGames godoc
// @Summary      List games playable by a group
// @Description  Retrieves the games at least one member of the given group owns and that the whole group is large enough to play.
// @Tags         games
// @Produce      json
// @Param        players query string true "Comma-separated list of gamer names"
// @Success      200  {array}   engine.GameSummary
// @Failure      400  {object}  ErrorResponse "Empty group"
// @Failure      500  {object}  ErrorResponse
// @Router       /games/playable [get]
func (h *Handler) ListPlayableGames(c *gin.Context) {
	group := splitCommaSeparated(c.Query("players"))
	games, err := h.Engine.ListPlayable(c.Request.Context(), group)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves one game with its owners.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200  {object}  engine.GameSummary
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return
	}

	game, err := h.Engine.GetGame(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game together with its initial owners in one transaction; either the game and all owners are stored, or nothing is.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  CreatedResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.Engine.CreateGame(c.Request.Context(), input.Name, input.Players, input.Owners)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game and all its ownership edges.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted"}"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.Engine.DeleteGame(c.Request.Context(), uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}
