package models

// RoleType is the console role carried in access tokens
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStaff   RoleType = "STAFF"
	RoleTeacher RoleType = "TEACHER"
)
