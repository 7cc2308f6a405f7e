package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type OwnerInput struct {
	Name string `json:"name" binding:"required"`
}

// AddOwner godoc
// @Summary      Add an owner to a game
// @Description  Records that the named gamer owns the game.
// @Tags         owners
// @Accept       json
// @Produce      json
// @Param        id    path int        true "Game ID"
// @Param        input body OwnerInput true "Owner Info"
// @Success      201  {object}  CreatedResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Gamer already owns this game"
// @Failure      500  {object}  ErrorResponse
// @Router       /games/{id}/owners [post]
func (h *Handler) AddOwner(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input OwnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.Engine.AddOwner(c.Request.Context(), uint(gameID), input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// RemoveOwner godoc
// @Summary      Remove an owner from a game
// @Description  Deletes the ownership edge for the exact game and gamer name pair.
// @Tags         owners
// @Produce      json
// @Param        id   path int    true "Game ID"
// @Param        name path string true "Gamer name"
// @Success      200 {object} map[string]string "{"message": "Owner removed"}"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Owner not found"
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id}/owners/{name} [delete]
func (h *Handler) RemoveOwner(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.Engine.RemoveOwner(c.Request.Context(), uint(gameID), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Owner removed"})
}
