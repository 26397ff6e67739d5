package model

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// SampleFields is the schema of the demo dataset: three repeated name/age/car/branch groups.
var SampleFields = []string{
	"name", "age", "car", "branch",
	"name2", "age2", "car2", "branch2",
	"name3", "age3", "car3", "branch3",
}

// SampleColumns are the display headers printed for SampleFields.
var SampleColumns = []string{
	"Name", "Age", "Car", "Branch",
	"Name 2", "Age 2", "Car 2", "Branch 2",
	"Name 3", "Age 3", "Car 3", "Branch 3",
}

// SampleDataset builds a wide demo dataset. The same rows and seed always produce the same records.
func SampleDataset(rows int, seed uint64) (Dataset, error) {
	if rows < 0 {
		return Dataset{}, fmt.Errorf("sample rows must be >= 0, got %d", rows)
	}
	faker := gofakeit.New(seed)
	records := make([]Record, rows)
	for i := range records {
		r := make(Record, len(SampleFields))
		for g, suffix := range []string{"", "2", "3"} {
			r["name"+suffix] = faker.Name()
			r["age"+suffix] = faker.Number(18, 80)
			r["car"+suffix] = faker.CarModel()
			// first group keeps the long branch names that exercise cell wrapping in the template
			if g == 0 {
				r["branch"+suffix] = faker.Company() + " " + faker.City()
			} else {
				r["branch"+suffix] = faker.CarMaker()
			}
		}
		records[i] = r
	}
	return NewDataset(SampleFields, records)
}
