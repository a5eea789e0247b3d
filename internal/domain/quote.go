package domain

// LineMetrics computed figures for a single task line
type LineMetrics struct {
	InitialQuantity int
	Excess          int
	AdditionalUnits int
	AdditionalCost  int64
	TotalCost       int64
	Duration        float64 // minutes
	DisplayQuantity float64 // human-facing count ("3 lần") or minutes for time units
	TotalUnit       int     // billed step-units sent to the backend
}

// LineQuote ties a task line to its computed metrics
type LineQuote struct {
	TaskID     string
	TaskName   string
	IsMustHave bool
	Adjustable bool
	Unit       TaskUnit
	Quantity   int
	Note       string
	Metrics    LineMetrics
}

// PackageQuote aggregate of all task lines for one package selection
type PackageQuote struct {
	Lines                   []LineQuote
	TotalDuration           float64 // minutes per day
	TotalPricePerDay        int64
	DiscountedPricePerDay   int64
	TotalPriceWithDays      int64
	DiscountedPriceWithDays int64
	NumberOfDays            int
	DiscountPercent         float64
	HasDiscount             bool
}

// TotalDurationMinutes returns the per-day duration rounded half-up to whole minutes
func (q *PackageQuote) TotalDurationMinutes() int {
	return int(q.TotalDuration + 0.5)
}
