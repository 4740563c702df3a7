package query

import (
	"sort"
	"strings"
	"time"

	"github.com/colbench/colbench/lib/model"
)

// Fixed query thresholds.
const (
	complexMinAge        = 25
	complexMinSalary     = 50_000.0
	complexMinGroupSize  = 10
	bucketMinGroupSize   = 5
	managerMinSalary     = 100_000.0
	projectionMinNameLen = 5
	nestedMinGroupSize   = 50
	highEarnerMinSalary  = 75_000.0
	serviceWindowDays    = 5 * 365
	youngMaxAge          = 30
	youngMinSalary       = 60_000.0
	maxYoungResults      = 1000
	daysPerYear          = 365.25
)

// --------------------------------------------------------------------------
// Complex Operations
// --------------------------------------------------------------------------

// ComplexOperations filters to persons older than 25 earning more than
// 50000, groups the remainder by department, keeps groups with more than 10
// members and reports per-group statistics sorted by average salary
// descending. Tied averages keep department encounter order.
func ComplexOperations(people []model.Person) []model.DepartmentStats {
	groups := make(map[string][]*model.Person)
	order := make([]string, 0, 8)

	for i := range people {
		p := &people[i]
		if p.Age <= complexMinAge || p.Salary <= complexMinSalary {
			continue
		}
		if _, ok := groups[p.Department]; !ok {
			order = append(order, p.Department)
		}
		groups[p.Department] = append(groups[p.Department], p)
	}

	stats := make([]model.DepartmentStats, 0, len(order))
	for _, dept := range order {
		members := groups[dept]
		if len(members) <= complexMinGroupSize {
			continue
		}

		var salarySum, salaryMax float64
		minAge := members[0].Age
		for _, p := range members {
			salarySum += p.Salary
			if p.Salary > salaryMax {
				salaryMax = p.Salary
			}
			if p.Age < minAge {
				minAge = p.Age
			}
		}

		stats = append(stats, model.DepartmentStats{
			Department:    dept,
			Count:         len(members),
			AverageSalary: salarySum / float64(len(members)),
			MaxSalary:     salaryMax,
			MinAge:        minAge,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AverageSalary > stats[j].AverageSalary
	})

	return stats
}

// --------------------------------------------------------------------------
// GroupBy with Aggregation
// --------------------------------------------------------------------------

// bucketKey is the composite grouping key: department plus decade age bucket.
type bucketKey struct {
	department string
	ageGroup   int
}

// GroupByAggregation groups all persons by (department, decade age bucket),
// keeps groups with more than 5 members and reports count, salary sum and
// average tenure in days, sorted ascending by department then age bucket.
func GroupByAggregation(people []model.Person) []model.AgeGroupStats {
	return GroupByAggregationAt(people, time.Now())
}

// GroupByAggregationAt is GroupByAggregation with an explicit tenure
// reference time.
func GroupByAggregationAt(people []model.Person, now time.Time) []model.AgeGroupStats {
	groups := make(map[bucketKey][]*model.Person)
	order := make([]bucketKey, 0, 64)

	for i := range people {
		p := &people[i]
		key := bucketKey{department: p.Department, ageGroup: p.Age / 10 * 10}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], p)
	}

	stats := make([]model.AgeGroupStats, 0, len(order))
	for _, key := range order {
		members := groups[key]
		if len(members) <= bucketMinGroupSize {
			continue
		}

		var salarySum float64
		var tenureSum int64
		for _, p := range members {
			salarySum += p.Salary
			tenureSum += daysBetween(p.HireDate, now)
		}

		stats = append(stats, model.AgeGroupStats{
			Department:    key.department,
			AgeGroup:      key.ageGroup,
			Count:         len(members),
			TotalSalary:   salarySum,
			AverageTenure: float64(tenureSum) / float64(len(members)),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Department != stats[j].Department {
			return stats[i].Department < stats[j].Department
		}
		return stats[i].AgeGroup < stats[j].AgeGroup
	})

	return stats
}

// --------------------------------------------------------------------------
// String Operations
// --------------------------------------------------------------------------

// StringOperations projects persons whose name contains an 'a' or 'e' into
// uppercase/length/currency form, keeps projections with a name longer than
// 5 characters and sorts them by uppercased name.
func StringOperations(people []model.Person) []model.PersonProjection {
	format := NewSalaryFormatter()

	projections := make([]model.PersonProjection, 0, len(people)/2)
	for i := range people {
		p := &people[i]
		if !strings.ContainsAny(p.Name, "ae") {
			continue
		}
		if len(p.Name) <= projectionMinNameLen {
			continue
		}
		projections = append(projections, model.PersonProjection{
			ID:              p.ID,
			UpperName:       strings.ToUpper(p.Name),
			NameLength:      len(p.Name),
			FormattedSalary: format(p.Salary),
			IsManager:       p.Salary > managerMinSalary,
		})
	}

	sort.Slice(projections, func(i, j int) bool {
		return projections[i].UpperName < projections[j].UpperName
	})

	return projections
}

// --------------------------------------------------------------------------
// Nested Queries
// --------------------------------------------------------------------------

// NestedQueries analyzes every department with more than 50 members:
// employee count, high earners (salary above 75000) and average age, sorted
// by high-earner count descending. Ties keep department encounter order.
func NestedQueries(people []model.Person) []model.DepartmentAnalysis {
	groups := make(map[string][]*model.Person)
	order := make([]string, 0, 8)

	for i := range people {
		p := &people[i]
		if _, ok := groups[p.Department]; !ok {
			order = append(order, p.Department)
		}
		groups[p.Department] = append(groups[p.Department], p)
	}

	analyses := make([]model.DepartmentAnalysis, 0, len(order))
	for _, dept := range order {
		members := groups[dept]
		if len(members) <= nestedMinGroupSize {
			continue
		}

		highEarners := 0
		ageSum := 0
		for _, p := range members {
			if p.Salary > highEarnerMinSalary {
				highEarners++
			}
			ageSum += p.Age
		}

		analyses = append(analyses, model.DepartmentAnalysis{
			Department:    dept,
			EmployeeCount: len(members),
			HighEarners:   highEarners,
			AverageAge:    float64(ageSum) / float64(len(members)),
		})
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].HighEarners > analyses[j].HighEarners
	})

	return analyses
}

// --------------------------------------------------------------------------
// Projection with Filter
// --------------------------------------------------------------------------

// ProjectionWithFilter keeps persons hired within the last five years who
// are younger than 30 and earn more than 60000, labels them with a salary
// bracket and sorts them by years of service descending, capped at 1000
// results.
func ProjectionWithFilter(people []model.Person) []model.YoungProfessional {
	return ProjectionWithFilterAt(people, time.Now())
}

// ProjectionWithFilterAt is ProjectionWithFilter with an explicit service
// reference time.
func ProjectionWithFilterAt(people []model.Person, now time.Time) []model.YoungProfessional {
	cutoff := now.AddDate(0, 0, -serviceWindowDays)

	results := make([]model.YoungProfessional, 0, maxYoungResults)
	for i := range people {
		p := &people[i]
		if !p.HireDate.After(cutoff) {
			continue
		}
		if p.Age >= youngMaxAge || p.Salary <= youngMinSalary {
			continue
		}
		results = append(results, model.YoungProfessional{
			ID:             p.ID,
			Name:           p.Name,
			Age:            p.Age,
			SalaryBracket:  SalaryBracket(p.Salary),
			YearsOfService: float64(daysBetween(p.HireDate, now)) / daysPerYear,
			Qualifies:      true,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].YearsOfService > results[j].YearsOfService
	})

	if len(results) > maxYoungResults {
		results = results[:maxYoungResults]
	}

	return results
}

// SalaryBracket maps a salary to its bracket label. Thresholds are exclusive
// upper bounds checked in ascending order, first match wins.
func SalaryBracket(salary float64) string {
	switch {
	case salary < 40_000:
		return "Entry Level"
	case salary < 60_000:
		return "Junior"
	case salary < 80_000:
		return "Mid Level"
	case salary < 100_000:
		return "Senior"
	default:
		return "Executive"
	}
}

// daysBetween returns the whole days elapsed from earlier to later.
func daysBetween(earlier, later time.Time) int64 {
	return int64(later.Sub(earlier).Hours() / 24)
}
