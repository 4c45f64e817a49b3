package model

type BinRangeEntry struct {
	Location string `json:"location" example:"C0001"`
	Column   int    `json:"column" example:"1"`
	Status   string `json:"status" example:"active"`
}

type BinRangeResponse struct {
	Success bool            `json:"success"`
	Bins    []BinRangeEntry `json:"bins"`
}
