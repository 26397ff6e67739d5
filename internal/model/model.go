// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes; the only behavior is schema validation of datasets.
package model

import "time"

// Movie is the catalogue entry exported by the movies reports.
type Movie struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Genre     string    `json:"genre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MovieFields is the column order used when movies are turned into a Dataset.
var MovieFields = []string{"id", "name", "genre", "createdAt", "updatedAt"}

// Record converts the movie into a report record keyed by MovieFields.
func (m Movie) Record() Record {
	return Record{
		"id":        m.ID,
		"name":      m.Name,
		"genre":     m.Genre,
		"createdAt": m.CreatedAt,
		"updatedAt": m.UpdatedAt,
	}
}

// TemplateHTML is a named HTML report template stored in the database.
type TemplateHTML struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Business identifies the company printed in the report header.
type Business struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Town    string `json:"town"`
	City    string `json:"city"`
}

// User is the person the report is issued for.
type User struct {
	Name   string `json:"name"`
	Module string `json:"module"`
}

// ReportInfo carries the report title block.
type ReportInfo struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// ReportHeader groups everything printed above the table on each page.
type ReportHeader struct {
	Business Business   `json:"business"`
	User     User       `json:"user"`
	Report   ReportInfo `json:"report"`
}
