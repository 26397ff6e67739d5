package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/report-export-service/internal/repository"
)

func TestPage_Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   repository.Page
		want repository.Page
	}{
		{"zero uses default", repository.Page{}, repository.Page{Limit: repository.DefaultPageLimit}},
		{"negatives", repository.Page{Limit: -1, Offset: -7}, repository.Page{Limit: repository.DefaultPageLimit}},
		{"capped", repository.Page{Limit: 10_000, Offset: 20}, repository.Page{Limit: repository.MaxPageLimit, Offset: 20}},
		{"untouched", repository.Page{Limit: 10, Offset: 5}, repository.Page{Limit: 10, Offset: 5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.in.Normalize())
		})
	}
}
