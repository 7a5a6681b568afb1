package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Documents carry their id as "_id" on the wire too.

type Employee struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name"`
	Date   string             `json:"date" bson:"date"` // joining date
	Day    string             `json:"day" bson:"day"`   // weekday
	Salary float64            `json:"salary" bson:"salary"`
}

type EmployeeInput struct {
	Name        string `json:"name"`
	JoiningDate string `json:"joiningDate"`
	Weekday     string `json:"weekday"`
	Salary      any    `json:"salary"`
}

type User struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"password" bson:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
