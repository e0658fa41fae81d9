package models

import "go.mongodb.org/mongo-driver/bson"

// RoleAdmin is the only role value the API looks at.
const RoleAdmin = "admin"

// Document is a schema-less record as submitted by the client.
type Document = bson.M

// IsAdmin reports whether a user document carries the admin role.
func IsAdmin(user Document) bool {
	if user == nil {
		return false
	}
	role, _ := user["role"].(string)
	return role == RoleAdmin
}
