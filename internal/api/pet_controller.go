package api

import (
	"net/http"

	"github.com/PennyPaws/petengine-go/internal/services/petstate"
	"github.com/PennyPaws/petengine-go/internal/services/progression"
	"github.com/gin-gonic/gin"
)

type PetController struct {
	states petstate.Service
}

func NewPetController(states petstate.Service) *PetController {
	return &PetController{states: states}
}

type grantXPRequest struct {
	Amount int `json:"amount"`
}

type progressResponse struct {
	Level          int `json:"level"`
	CurrentLevelXP int `json:"current_level_xp"`
	XPForNextLevel int `json:"xp_for_next_level"`
}

func toProgressResponse(p progression.Progress) progressResponse {
	return progressResponse{
		Level:          p.Level,
		CurrentLevelXP: p.CurrentLevelXP,
		XPForNextLevel: p.XPForNextLevel,
	}
}

// GetStatus returns the state record plus the derived level-curve position.
func (pc *PetController) GetStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	status, err := pc.states.GetStatus(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":    status.State,
		"progress": toProgressResponse(status.Progress),
	})
}

func (pc *PetController) GrantXP(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req grantXPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-negative"})
		return
	}

	out, err := pc.states.GrantXP(c.Request.Context(), userID, req.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":           out.State,
		"xp_gained":       out.XPGained,
		"leveled_up":      out.LeveledUp,
		"levels_gained":   out.LevelsGained,
		"blocked_by_mood": out.BlockedByMood,
	})
}

func (pc *PetController) Pet(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	out, err := pc.states.Pet(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":         out.State,
		"mood_gained":   out.MoodGained,
		"xp_gained":     out.XPGained,
		"leveled_up":    out.LeveledUp,
		"levels_gained": out.LevelsGained,
	})
}

func (pc *PetController) Hit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	out, err := pc.states.Hit(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":        out.State,
		"mood_lost":    out.MoodLost,
		"xp_lost":      out.XPLost,
		"leveled_down": out.LeveledDown,
		"levels_lost":  out.LevelsLost,
	})
}
