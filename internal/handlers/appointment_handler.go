package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/harentsoaR/doctor-api/internal/middleware"
	"github.com/harentsoaR/doctor-api/internal/models"
)

// --- CREATE APPOINTMENT ---
// The (email, serviceName) lookup is only a pre-check. Two identical
// requests racing each other can both insert.
func (h *Handler) CreateAppointment(c *gin.Context) {
	apt, err := bindDocument(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, serviceName := models.BookingKey(apt)
	if email == "" || serviceName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and serviceName are required"})
		return
	}

	ctx := c.Request.Context()
	existing, err := h.Store.FindOne(ctx, models.AppointmentsCollection, bson.M{
		"email":       email,
		"serviceName": serviceName,
	})
	if err != nil {
		serverError(c, "Failed to check existing appointments", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "appointment already booked", "insertedId": nil})
		return
	}

	res, err := h.Store.InsertOne(ctx, models.AppointmentsCollection, apt)
	if err != nil {
		serverError(c, "Failed to create appointment", err)
		return
	}
	c.JSON(http.StatusOK, insertAck(res))
}

// --- GET MY APPOINTMENTS ---
// e.g. /myAppointments?email=pat@doc.io&date=2024-07-01T09:30:00Z
// Only the token's owner may list their appointments. The date, if given,
// is matched by calendar day.
func (h *Handler) GetMyAppointments(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}
	if email != middleware.ClaimsEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	filter := bson.M{"email": email}
	if raw := c.Query("date"); raw != "" {
		day, err := models.NormalizeDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		filter["date"] = day
	}

	appointments, err := h.Store.Find(c.Request.Context(), models.AppointmentsCollection, filter)
	if err != nil {
		serverError(c, "Failed to retrieve appointments", err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}
