package dto

type ImportRowError struct {
	Row   int    `json:"row"` // 1-based, counting the header as row 1
	Error string `json:"error"`
}

type ImportResult struct {
	BatchID  string           `json:"batchId"`
	Total    int              `json:"total"`
	Created  int              `json:"created"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}
