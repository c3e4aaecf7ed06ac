package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UsersController struct {
	accounts AccountService
	throttle LoginThrottle
}

// NewUsersController creates the account controller. throttle may be nil.
func NewUsersController(accounts AccountService, throttle LoginThrottle) *UsersController {
	return &UsersController{
		accounts: accounts,
		throttle: throttle,
	}
}

// Register creates an unverified account and sends the verification mail.
// POST /api/register
func (uc *UsersController) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.accounts.Register(c.Request.Context(), req.toInput())
	if err != nil {
		respondAppError(c, err, "register")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Регистрация успешна",
		"user_id": user.ID,
	})
}

// Login checks credentials. Repeated failures from one client for one username
// are locked out for a while.
// POST /api/login
func (uc *UsersController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	ip := c.ClientIP()
	if uc.throttle != nil {
		if err := uc.throttle.Check(ip, req.Username); err != nil {
			respondAppError(c, err, "login")
			return
		}
	}

	user, err := uc.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if uc.throttle != nil {
		uc.throttle.Observe(ip, req.Username, err)
	}
	if err != nil {
		respondAppError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Вход выполнен успешно",
		"user_id":   user.ID,
		"user_data": newProfileResponse(user),
		"role":      user.Role,
	})
}

// Confirm verifies the account holding the token. Both outcomes are plain text.
// GET /api/confirm?token=
func (uc *UsersController) Confirm(c *gin.Context) {
	if _, err := uc.accounts.Confirm(c.Request.Context(), c.Query("token")); err != nil {
		respondAppErrorText(c, err, "confirm email")
		return
	}
	c.String(http.StatusOK, "Email успешно подтвержден!")
}

// GET /api/profile/:userId
func (uc *UsersController) GetProfile(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	user, err := uc.accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondAppError(c, err, "get profile")
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(user))
}

// UpdateProfile overwrites every editable field; omitted fields are cleared.
// PUT /api/profile/:userId
func (uc *UsersController) UpdateProfile(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req updateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := uc.accounts.UpdateProfile(c.Request.Context(), userID, req.toInput()); err != nil {
		respondAppError(c, err, "update profile")
		return
	}
	respondSuccess(c, "Профиль успешно обновлен")
}
