package dto

type SchoolYearRequest struct {
	YearLabel string `json:"yearLabel"`
	StartYear int    `json:"startYear"`
	EndYear   int    `json:"endYear"`
}
