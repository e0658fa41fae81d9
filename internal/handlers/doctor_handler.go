package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/harentsoaR/doctor-api/internal/models"
)

func (h *Handler) GetReviews(c *gin.Context) {
	h.listAll(c, models.ReviewsCollection)
}

func (h *Handler) GetDoctors(c *gin.Context) {
	h.listAll(c, models.DoctorsCollection)
}

// GetDoctor answers null when no doctor has the id.
func (h *Handler) GetDoctor(c *gin.Context) {
	filter, ok := idFilter(c)
	if !ok {
		return
	}

	doctor, err := h.Store.FindOne(c.Request.Context(), models.DoctorsCollection, filter)
	if err != nil {
		serverError(c, "Failed to retrieve doctor", err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *Handler) GetLocalDoctors(c *gin.Context) {
	h.listAll(c, models.LocalDoctorsCollection)
}

func (h *Handler) CreateLocalDoctor(c *gin.Context) {
	h.insert(c, models.LocalDoctorsCollection)
}

func (h *Handler) DeleteLocalDoctor(c *gin.Context) {
	h.deleteByID(c, models.LocalDoctorsCollection)
}

// GetSlot returns the slot document for a category, or null.
func (h *Handler) GetSlot(c *gin.Context) {
	category := c.Param("category")

	slot, err := h.Store.FindOne(c.Request.Context(), models.SlotsCollection, bson.M{"category": category})
	if err != nil {
		serverError(c, "Failed to retrieve slot", err)
		return
	}
	c.JSON(http.StatusOK, slot)
}
