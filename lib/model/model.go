package model

import "time"

// --------------------------------------------------------------------------
// Input Entity
// --------------------------------------------------------------------------

// Person is one synthetic input record. Instances are created by the
// generator and treated as read-only by every query operation.
type Person struct {
	ID         int
	Name       string
	Age        int
	Department string
	Salary     float64
	HireDate   time.Time
}

// --------------------------------------------------------------------------
// Derived Result Types (one per query operation)
// --------------------------------------------------------------------------

// DepartmentStats is the per-department result of the complex-operations
// query: size and salary/age statistics over a filtered department group.
type DepartmentStats struct {
	Department    string
	Count         int
	AverageSalary float64
	MaxSalary     float64
	MinAge        int
}

// AgeGroupStats aggregates a (department, decade age bucket) group.
// AverageTenure is the mean tenure of the group in whole days.
type AgeGroupStats struct {
	Department    string
	AgeGroup      int
	Count         int
	TotalSalary   float64
	AverageTenure float64
}

// PersonProjection is the string-operations view of a single person.
type PersonProjection struct {
	ID              int
	UpperName       string
	NameLength      int
	FormattedSalary string
	IsManager       bool
}

// DepartmentAnalysis summarizes one department for the nested-queries
// operation.
type DepartmentAnalysis struct {
	Department    string
	EmployeeCount int
	HighEarners   int
	AverageAge    float64
}

// YoungProfessional is the projection-with-filter result. YearsOfService is
// fractional (whole days since hire divided by 365.25).
type YoungProfessional struct {
	ID             int
	Name           string
	Age            int
	SalaryBracket  string
	YearsOfService float64
	Qualifies      bool
}
