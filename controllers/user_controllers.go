package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elgato/elgato-app/services"
	"github.com/elgato/elgato-app/utils"
)

type UserController struct {
	Sessions *services.SessionService
}

func NewUserController(sessions *services.SessionService) *UserController {
	return &UserController{Sessions: sessions}
}

// Login -> authenticate and return the session plus an API token.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sess, token, err := uc.Sessions.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondError(c, http.StatusUnauthorized, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":   token,
		"session": sess,
	})
}

// Logout -> erase the session record and invalidate the caller's token.
func (uc *UserController) Logout(c *gin.Context) {
	if token := c.GetString("token"); token != "" {
		utils.BlacklistToken(token)
	}

	if err := uc.Sessions.Logout(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// GetSession -> the active session, if any.
func (uc *UserController) GetSession(c *gin.Context) {
	sess, ok := uc.Sessions.Current()
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("not logged in"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session data", sess)
}
