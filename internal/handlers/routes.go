package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctor-api/internal/middleware"
)

// RegisterRoutes wires every endpoint onto r.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	verifyToken := middleware.VerifyToken(h.Tokens)
	verifyAdmin := middleware.VerifyAdmin(h.Store)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "doctor is not taking patients")
	})

	// Auth
	r.POST("/jwt", h.IssueToken)

	// Catalogue
	r.GET("/reviews", h.GetReviews)
	r.GET("/doctors", h.GetDoctors)
	r.GET("/doctors/:id", h.GetDoctor)
	r.GET("/localDoctors", h.GetLocalDoctors)
	r.POST("/localDoctors", h.CreateLocalDoctor)
	r.DELETE("/localDoctors/:id", h.DeleteLocalDoctor)
	r.GET("/slots/:category", h.GetSlot)

	// Appointments
	r.POST("/appointments", h.CreateAppointment)
	r.GET("/myAppointments", verifyToken, h.GetMyAppointments)

	// Users
	r.POST("/users", h.CreateUser)
	r.GET("/users", verifyToken, verifyAdmin, h.GetUsers)
	r.DELETE("/users/:id", h.DeleteUser)
	r.PATCH("/users/admin/:id", h.MakeAdmin)
	r.GET("/users/admin/:email", h.IsAdmin)
}
