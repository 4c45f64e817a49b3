package types

type BinRangeQuery struct {
	Start string `query:"start" validate:"required,binlocation" required:"true" json:"start" example:"C0001"`
	End   string `query:"end" validate:"required,binlocation" required:"true" json:"end" example:"C0003"`
	// Column is the heatmap column the generated bins are tagged with. Defaults to 1.
	Column int `query:"column" validate:"omitempty,min=1" json:"column" example:"1"`
}
