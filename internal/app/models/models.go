package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleTeacher RoleType = "TEACHER"
	RoleAdmin   RoleType = "ADMIN"
)

// ResourceStatus represents the moderation state of an uploaded resource
type ResourceStatus string

const (
	StatusPending  ResourceStatus = "PENDING"
	StatusApproved ResourceStatus = "APPROVED"
	StatusRejected ResourceStatus = "REJECTED"
)

// RequestStatus represents the state of a material request
type RequestStatus string

const (
	RequestOpen      RequestStatus = "OPEN"
	RequestFulfilled RequestStatus = "FULFILLED"
	RequestRejected  RequestStatus = "REJECTED"
)
