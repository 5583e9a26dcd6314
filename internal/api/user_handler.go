package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artileaf-backend-go/internal/core"
	"artileaf-backend-go/internal/models"
)

// UserHandler handles user profile related API endpoints. Both endpoints are
// public: profile creation happens right after a client-side Firebase
// sign-in, before the client holds a token the backend has seen.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		log.Printf("ListUsers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /users. The submitted profile is stored as-is and
// the insert acknowledgment is returned.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.userService.Create(c.Request.Context(), &user)
	if err != nil {
		log.Printf("CreateUser: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, newInsertResult(result))
}
