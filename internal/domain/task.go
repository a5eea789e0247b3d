package domain

// TaskUnit unit in which a task quantity is measured
type TaskUnit string

// UnitTime means quantity is measured in minutes; any other unit means discrete repetitions
const UnitTime TaskUnit = "time"

// BillingMode describes how a task quantity is billed
type BillingMode int

const (
	// BillingUnspecified the backend omitted price-of-step; billed like a step of 1
	BillingUnspecified BillingMode = iota
	// BillingFixed price-of-step is explicitly 0: fixed cost regardless of quantity
	BillingFixed
	// BillingStepped price-of-step > 0: each full step beyond the nominal quantity costs extra
	BillingStepped
)

// String returns the billing mode name
func (m BillingMode) String() string {
	switch m {
	case BillingFixed:
		return "fixed"
	case BillingStepped:
		return "stepped"
	default:
		return "unspecified"
	}
}

// ServiceTask represents a billable unit of care within a service package
type ServiceTask struct {
	ID                 string
	PackageID          string
	IsMustHave         bool
	TaskOrder          *int
	Name               string
	Description        string
	StaffAdvice        string
	EstDuration        int   // minutes
	Cost               int64 // base cost for the nominal quantity (VND)
	AdditionalCost     int64 // cost per extra step beyond the nominal quantity
	AdditionalCostDesc string
	Unit               TaskUnit
	PriceOfStep        *int // nil = not provided by the backend
	Status             string
}

// IsTimeUnit returns true if the quantity is measured in minutes
func (t *ServiceTask) IsTimeUnit() bool {
	return t.Unit == UnitTime
}

// Billing returns the explicit billing mode of the task
func (t *ServiceTask) Billing() BillingMode {
	switch {
	case t.PriceOfStep == nil || *t.PriceOfStep < 0:
		return BillingUnspecified
	case *t.PriceOfStep == 0:
		return BillingFixed
	default:
		return BillingStepped
	}
}

// StepSize returns the size of one billable increment used in arithmetic (never zero)
func (t *ServiceTask) StepSize() int {
	if t.Billing() == BillingStepped {
		return *t.PriceOfStep
	}
	return 1
}

// IsAdjustable returns true if the quantity controls should be shown for the task
func (t *ServiceTask) IsAdjustable() bool {
	return t.Billing() != BillingFixed
}

// InitialQuantity returns the nominal (and minimal) quantity for the task
func (t *ServiceTask) InitialQuantity() int {
	if t.IsTimeUnit() {
		return t.EstDuration
	}
	return 1
}

// Order returns the display order; tasks without an order go last
func (t *ServiceTask) Order() int {
	if t.TaskOrder == nil {
		return int(^uint(0) >> 1)
	}
	return *t.TaskOrder
}

// TaskLine is a task bound to a caller-chosen quantity and note
type TaskLine struct {
	Task     ServiceTask
	Quantity int
	Note     string
}

// NewTaskLine creates a line with the default quantity for the task
func NewTaskLine(task ServiceTask) TaskLine {
	return TaskLine{
		Task:     task,
		Quantity: task.InitialQuantity(),
	}
}
