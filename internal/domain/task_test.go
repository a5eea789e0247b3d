package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/curanest/booking-gateway/pkg/ptr"
)

func TestServiceTask_Billing(t *testing.T) {
	tests := []struct {
		name       string
		step       *int
		want       BillingMode
		stepSize   int
		adjustable bool
	}{
		{name: "absent step", step: nil, want: BillingUnspecified, stepSize: 1, adjustable: true},
		{name: "explicit zero", step: ptr.Ptr(0), want: BillingFixed, stepSize: 1, adjustable: false},
		{name: "stepped", step: ptr.Ptr(15), want: BillingStepped, stepSize: 15, adjustable: true},
		{name: "negative treated as absent", step: ptr.Ptr(-3), want: BillingUnspecified, stepSize: 1, adjustable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := ServiceTask{PriceOfStep: tt.step}
			assert.Equal(t, tt.want, task.Billing())
			assert.Equal(t, tt.stepSize, task.StepSize())
			assert.Equal(t, tt.adjustable, task.IsAdjustable())
		})
	}
}

func TestServiceTask_InitialQuantity(t *testing.T) {
	timed := ServiceTask{Unit: UnitTime, EstDuration: 30}
	counted := ServiceTask{Unit: "lần", EstDuration: 30}

	assert.Equal(t, 30, timed.InitialQuantity())
	assert.Equal(t, 1, counted.InitialQuantity())
	assert.Equal(t, 30, NewTaskLine(timed).Quantity)
	assert.Equal(t, 1, NewTaskLine(counted).Quantity)
}

func TestDaysBetween(t *testing.T) {
	a := DateOnly(mustDate(t, "2026-10-30"))
	b := DateOnly(mustDate(t, "2026-11-02"))

	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, b, AddDays(a, 3))
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}
