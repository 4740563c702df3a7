package dataset

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateCountAndIDs(t *testing.T) {
	for _, count := range []int{0, 1, 7, 100} {
		t.Run(strconv.Itoa(count), func(t *testing.T) {
			people := GenerateAt(count, DefaultSeed, testNow)

			if len(people) != count {
				t.Fatalf("expected %d persons, got %d", count, len(people))
			}

			for i, p := range people {
				if p.ID != i+1 {
					t.Errorf("person %d: expected ID %d, got %d", i, i+1, p.ID)
				}
			}
		})
	}
}

func TestGenerateCyclesFixedSets(t *testing.T) {
	people := GenerateAt(20, DefaultSeed, testNow)

	for i, p := range people {
		wantName := names[i%len(names)] + strconv.Itoa(i+1)
		if p.Name != wantName {
			t.Errorf("person %d: expected name %q, got %q", i, wantName, p.Name)
		}

		wantDept := departments[i%len(departments)]
		if p.Department != wantDept {
			t.Errorf("person %d: expected department %q, got %q", i, wantDept, p.Department)
		}
	}
}

func TestGenerateAttributeRanges(t *testing.T) {
	people := GenerateAt(5000, DefaultSeed, testNow)

	earliest := testNow.AddDate(0, 0, -maxHireOffsetDays)
	latest := testNow.AddDate(0, 0, -1)

	for _, p := range people {
		if p.Age < minAge || p.Age > maxAge {
			t.Errorf("person %d: age %d out of [%d,%d]", p.ID, p.Age, minAge, maxAge)
		}
		if p.Salary < minSalary || p.Salary >= maxSalary {
			t.Errorf("person %d: salary %.2f out of [%.0f,%.0f)", p.ID, p.Salary, minSalary, maxSalary)
		}
		if p.HireDate.Before(earliest) || p.HireDate.After(latest) {
			t.Errorf("person %d: hire date %v outside [%v,%v]", p.ID, p.HireDate, earliest, latest)
		}
		if !strings.HasSuffix(p.Name, strconv.Itoa(p.ID)) {
			t.Errorf("person %d: name %q lacks the ID suffix", p.ID, p.Name)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first := GenerateAt(1000, DefaultSeed, testNow)
	second := GenerateAt(1000, DefaultSeed, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed and count produced different datasets")
	}

	other := GenerateAt(1000, DefaultSeed+1, testNow)
	if reflect.DeepEqual(first, other) {
		t.Fatal("different seeds produced identical datasets")
	}
}
