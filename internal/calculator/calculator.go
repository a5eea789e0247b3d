// Package calculator computes task line costs, durations and package quotes.
//
// Every function here is pure: no I/O, no clock, no shared state.
package calculator

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/curanest/booking-gateway/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputeLineMetrics computes the incremental units, costs and effective duration of a task
// for the requested quantity. Quantities below the nominal one are not clamped here;
// callers go through AdjustQuantity or Selection.
func ComputeLineMetrics(task domain.ServiceTask, quantity int) domain.LineMetrics {
	initial := task.InitialQuantity()
	step := task.StepSize()
	fixed := task.Billing() == domain.BillingFixed

	excess := quantity - initial
	if excess < 0 {
		excess = 0
	}

	additionalUnits := 0
	if !fixed {
		additionalUnits = excess / step
	}

	additionalCost := saturatingMul(task.AdditionalCost, int64(additionalUnits))

	var duration, display float64
	if task.IsTimeUnit() {
		duration = float64(quantity)
		display = float64(quantity)
	} else {
		display = float64(quantity) / float64(step)
		duration = float64(task.EstDuration) * display
	}

	totalUnit := 1
	if !fixed && 1+additionalUnits > 1 {
		totalUnit = 1 + additionalUnits
	}

	return domain.LineMetrics{
		InitialQuantity: initial,
		Excess:          excess,
		AdditionalUnits: additionalUnits,
		AdditionalCost:  additionalCost,
		TotalCost:       saturatingAdd(task.Cost, additionalCost),
		Duration:        duration,
		DisplayQuantity: display,
		TotalUnit:       totalUnit,
	}
}

// AdjustQuantity applies delta to current without going below floor
func AdjustQuantity(current, delta, floor int) int {
	next := current + delta
	if next < floor {
		return floor
	}
	return next
}

// Aggregate sums the metrics of all lines and applies the multi-day discount.
// numberOfDays below 1 is treated as 1.
func Aggregate(lines []domain.TaskLine, numberOfDays int, discountPercent float64) domain.PackageQuote {
	if numberOfDays < 1 {
		numberOfDays = 1
	}

	quote := domain.PackageQuote{
		Lines:           make([]domain.LineQuote, 0, len(lines)),
		NumberOfDays:    numberOfDays,
		DiscountPercent: discountPercent,
		HasDiscount:     discountPercent > 0,
	}

	for _, line := range lines {
		m := ComputeLineMetrics(line.Task, line.Quantity)
		quote.TotalDuration += m.Duration
		quote.TotalPricePerDay += m.TotalCost
		quote.Lines = append(quote.Lines, domain.LineQuote{
			TaskID:     line.Task.ID,
			TaskName:   line.Task.Name,
			IsMustHave: line.Task.IsMustHave,
			Adjustable: line.Task.IsAdjustable(),
			Unit:       line.Task.Unit,
			Quantity:   line.Quantity,
			Note:       line.Note,
			Metrics:    m,
		})
	}

	quote.TotalPriceWithDays = quote.TotalPricePerDay * int64(numberOfDays)
	quote.DiscountedPricePerDay = ApplyDiscount(quote.TotalPricePerDay, discountPercent)
	quote.DiscountedPriceWithDays = ApplyDiscount(quote.TotalPriceWithDays, discountPercent)

	return quote
}

// ApplyDiscount returns amount reduced by percent, rounded half-up to a whole currency unit.
// A non-positive percent leaves the amount untouched.
func ApplyDiscount(amount int64, percent float64) int64 {
	if percent <= 0 {
		return amount
	}
	remaining := hundred.Sub(decimal.NewFromFloat(percent))
	return decimal.NewFromInt(amount).
		Mul(remaining).
		Div(hundred).
		Round(0).
		IntPart()
}

// saturatingMul multiplies non-negative factors, capping at math.MaxInt64
func saturatingMul(a, b int64) int64 {
	if a <= 0 || b <= 0 {
		return a * b
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
