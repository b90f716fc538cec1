package models

type DashboardSummary struct {
	TotalEmployees   int64  `json:"totalEmployees"`
	TotalDepartments int64  `json:"totalDepartments"`
	Date             string `json:"date"`
	Present          int64  `json:"present"`
	Absent           int64  `json:"absent"`
	Leave            int64  `json:"leave"`
}
