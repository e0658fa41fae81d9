package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/harentsoaR/doctor-api/internal/models"
)

func (h *Handler) CreateUser(c *gin.Context) {
	h.insert(c, models.UsersCollection)
}

// GetUsers sits behind VerifyToken and VerifyAdmin.
func (h *Handler) GetUsers(c *gin.Context) {
	h.listAll(c, models.UsersCollection)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	h.deleteByID(c, models.UsersCollection)
}

// MakeAdmin promotes the user with the given id.
func (h *Handler) MakeAdmin(c *gin.Context) {
	filter, ok := idFilter(c)
	if !ok {
		return
	}

	res, err := h.Store.UpdateOne(c.Request.Context(), models.UsersCollection, filter, bson.M{"role": models.RoleAdmin})
	if err != nil {
		serverError(c, "Failed to update user role", err)
		return
	}
	c.JSON(http.StatusOK, updateAck(res))
}

// IsAdmin answers {"admin": bool} for an email. Unknown emails are not admins.
func (h *Handler) IsAdmin(c *gin.Context) {
	email := c.Param("email")

	user, err := h.Store.FindOne(c.Request.Context(), models.UsersCollection, bson.M{"email": email})
	if err != nil {
		serverError(c, "Failed to retrieve user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": models.IsAdmin(user)})
}
