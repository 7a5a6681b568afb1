package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Size struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Sizeno   string             `json:"sizeno" bson:"sizeno"`
	Sizecode string             `json:"sizecode" bson:"sizecode"`
}

type SizeInput struct {
	Sizeno   any `json:"sizeno"`
	Sizecode any `json:"sizecode"`
}

type Attendance struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	EmployeeID string             `json:"employee_id" bson:"employee_id"`
	Month      int                `json:"month" bson:"month"`
	Day        int                `json:"day" bson:"day"`
	Year       int                `json:"year" bson:"year"`
	Status     string             `json:"status" bson:"status"`
}

type AttendanceInput struct {
	Month  any    `json:"month"`
	Day    any    `json:"day"`
	Year   any    `json:"year"`
	Status string `json:"status"`
}

// Progress is one day's output for an employee. Packed doubles as the
// packing state queried by the packing endpoints.
type Progress struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	EmpID    string             `json:"emp_id" bson:"emp_id"`
	Month    int                `json:"month" bson:"month"`
	Day      int                `json:"day" bson:"day"`
	Year     int                `json:"year" bson:"year"`
	Quantity float64            `json:"quantity" bson:"quantity"`
	Sizeno   string             `json:"sizeno" bson:"sizeno"`
	Value    float64            `json:"value" bson:"value"`
	Packed   string             `json:"packed" bson:"packed"`
}

type ProgressInput struct {
	Month    any `json:"month"`
	Day      any `json:"day"`
	Year     any `json:"year"`
	Quantity any `json:"quantity"`
	Sizeno   any `json:"sizeno"`
	Value    any `json:"value"`
	Packed   any `json:"packed"`
}
