package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/mindgames-backend/internal/rps"
)

type playRequest struct {
	Move string `json:"move" binding:"required,rps_move"`
}

func (that *Server) newMatch(c *gin.Context) {
	log := that.logger.With("method", "newMatch")

	match, err := that.rps.NewMatch(c.Request.Context())
	if err != nil {
		log.Error("failed to create match", "error", err)
		errorResponse(c, statusFor(err), "failed to create match")
		return
	}

	successResponse(c, http.StatusCreated, match)
}

func (that *Server) getMatch(c *gin.Context) {
	match, err := that.rps.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}

	successResponse(c, http.StatusOK, match)
}

func (that *Server) play(c *gin.Context) {
	log := that.logger.With("method", "play")

	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	move, err := rps.ParseMove(req.Move)
	if err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}

	match, err := that.rps.Play(c.Request.Context(), c.Param("id"), move, nil)
	if err != nil {
		log.Error("failed to play round", "error", err)
		errorResponse(c, statusFor(err), err.Error())
		return
	}

	successResponse(c, http.StatusOK, match)
}

func (that *Server) restartMatch(c *gin.Context) {
	match, err := that.rps.Restart(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}

	successResponse(c, http.StatusOK, match)
}

func (that *Server) endMatch(c *gin.Context) {
	if err := that.rps.EndMatch(c.Request.Context(), c.Param("id")); err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}

	successResponse(c, http.StatusOK, gin.H{"message": "match ended"})
}
