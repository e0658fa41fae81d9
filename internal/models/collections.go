package models

// Collection names in the docDB database.
const (
	ReviewsCollection      = "reviews"
	DoctorsCollection      = "doctors"
	SlotsCollection        = "slots"
	AppointmentsCollection = "appointments"
	UsersCollection        = "users"
	LocalDoctorsCollection = "localDoctors"
)
