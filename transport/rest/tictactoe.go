package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type moveRequest struct {
	Cell *int `json:"cell" binding:"required"`
}

func (that *Server) newGame(c *gin.Context) {
	log := that.logger.With("method", "newGame")

	game, err := that.ticTacToe.NewGame(c.Request.Context())
	if err != nil {
		log.Error("failed to create game", "error", err)
		errorResponse(c, statusFor(err), "failed to create game")
		return
	}

	successResponse(c, http.StatusCreated, game)
}

func (that *Server) getGame(c *gin.Context) {
	game, err := that.ticTacToe.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}

	successResponse(c, http.StatusOK, game)
}

func (that *Server) makeMove(c *gin.Context) {
	log := that.logger.With("method", "makeMove")

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	game, err := that.ticTacToe.MakeMove(c.Request.Context(), c.Param("id"), *req.Cell, nil)
	if err != nil {
		log.Error("failed to make move", "error", err)
		errorResponse(c, statusFor(err), err.Error())
		return
	}

	successResponse(c, http.StatusOK, game)
}

func (that *Server) resetGame(c *gin.Context) {
	game, err := that.ticTacToe.Reset(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}

	successResponse(c, http.StatusOK, game)
}

func (that *Server) endGame(c *gin.Context) {
	if err := that.ticTacToe.EndGame(c.Request.Context(), c.Param("id")); err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}

	successResponse(c, http.StatusOK, gin.H{"message": "game ended"})
}
