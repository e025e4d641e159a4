package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	EmpCode    string
	Name       string
	Status     Status
	Email      string
	Department string
	Role       string
	Salary     decimal.Decimal
	DateJoined time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)
