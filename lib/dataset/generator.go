package dataset

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/colbench/colbench/lib/model"
)

// Default generation parameters used by the benchmark suite.
const (
	DefaultSize = 1_000_000
	DefaultSeed = 42
)

// Attribute ranges. Ages are inclusive on both ends, salaries are half-open,
// hire offsets are whole days in [1, maxHireOffsetDays].
const (
	minAge            = 22
	maxAge            = 64
	minSalary         = 30_000.0
	maxSalary         = 150_000.0
	maxHireOffsetDays = 3650
)

var (
	names       = []string{"John", "Jane", "Bob", "Alice", "Charlie", "Diana", "Eve", "Frank"}
	departments = []string{"Engineering", "Sales", "Marketing", "HR", "Finance"}
)

// Generate returns count synthetic persons with IDs 1..count, using the
// current time as the hire-date reference. count == 0 yields an empty slice.
func Generate(count int, seed int64) []model.Person {
	return GenerateAt(count, seed, time.Now())
}

// GenerateAt is Generate with an explicit "now" reference so tests can pin
// hire dates to a fixed point in time.
func GenerateAt(count int, seed int64, now time.Time) []model.Person {
	rng := rand.New(rand.NewSource(seed))

	people := make([]model.Person, 0, count)
	for i := 1; i <= count; i++ {
		people = append(people, model.Person{
			ID:         i,
			Name:       names[(i-1)%len(names)] + strconv.Itoa(i),
			Age:        minAge + rng.Intn(maxAge-minAge+1),
			Department: departments[(i-1)%len(departments)],
			Salary:     minSalary + rng.Float64()*(maxSalary-minSalary),
			HireDate:   now.AddDate(0, 0, -(1 + rng.Intn(maxHireOffsetDays))),
		})
	}

	return people
}
