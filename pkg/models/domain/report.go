package domain

import "time"

// Report is the document shape shared by the terminal and export reporters.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Sections    []ReportSection
	TotalAmount float64
	Currency    string
}

type ReportSection struct {
	Title   string
	Summary map[string]any
	Details []ReportDetail
}

type ReportDetail struct {
	Name        string
	Value       any
	Unit        string
	Description string
}
