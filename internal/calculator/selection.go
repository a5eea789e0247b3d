package calculator

import (
	"fmt"
	"sort"

	"github.com/curanest/booking-gateway/internal/domain"
)

// Selection is the working set of task lines for one package
type Selection struct {
	lines []domain.TaskLine
}

// NewSelection creates a selection from existing lines (copied, ordered by task order)
func NewSelection(lines []domain.TaskLine) *Selection {
	s := &Selection{lines: make([]domain.TaskLine, len(lines))}
	copy(s.lines, lines)
	s.sort()
	return s
}

// Lines returns a copy of the current lines
func (s *Selection) Lines() []domain.TaskLine {
	out := make([]domain.TaskLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Add inserts a task with its default quantity
func (s *Selection) Add(task domain.ServiceTask) error {
	if s.indexOf(task.ID) >= 0 {
		return fmt.Errorf("%w: id=%s", ErrTaskAlreadySelected, task.ID)
	}
	s.lines = append(s.lines, domain.NewTaskLine(task))
	s.sort()
	return nil
}

// Remove deletes a task line. Must-have lines are never removed.
func (s *Selection) Remove(taskID string) error {
	i := s.indexOf(taskID)
	if i < 0 {
		return fmt.Errorf("%w: id=%s", ErrTaskNotSelected, taskID)
	}
	if s.lines[i].Task.IsMustHave {
		return fmt.Errorf("%w: id=%s", ErrMustHaveTask, taskID)
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return nil
}

// Step moves the quantity one step up (+1) or down (-1), never below the nominal quantity
func (s *Selection) Step(taskID string, direction int) (domain.TaskLine, error) {
	if direction != 1 && direction != -1 {
		return domain.TaskLine{}, ErrInvalidStep
	}

	line, err := s.adjustable(taskID)
	if err != nil {
		return domain.TaskLine{}, err
	}

	next := AdjustQuantity(line.Quantity, direction*line.Task.StepSize(), line.Task.InitialQuantity())
	if next > domain.MaxQuantity && next > line.Quantity {
		return domain.TaskLine{}, fmt.Errorf("%w: id=%s, quantity=%d", ErrQuantityTooLarge, taskID, next)
	}
	line.Quantity = next
	return *line, nil
}

// SetQuantity sets an explicit quantity, clamped to the nominal quantity.
// Quantities above domain.MaxQuantity are rejected.
func (s *Selection) SetQuantity(taskID string, quantity int) (domain.TaskLine, error) {
	if quantity > domain.MaxQuantity {
		return domain.TaskLine{}, fmt.Errorf("%w: id=%s, quantity=%d", ErrQuantityTooLarge, taskID, quantity)
	}

	line, err := s.adjustable(taskID)
	if err != nil {
		return domain.TaskLine{}, err
	}

	line.Quantity = AdjustQuantity(quantity, 0, line.Task.InitialQuantity())
	return *line, nil
}

// SetNote replaces the free-text note of a line
func (s *Selection) SetNote(taskID, note string) error {
	i := s.indexOf(taskID)
	if i < 0 {
		return fmt.Errorf("%w: id=%s", ErrTaskNotSelected, taskID)
	}
	s.lines[i].Note = note
	return nil
}

// Quote aggregates the current lines
func (s *Selection) Quote(numberOfDays int, discountPercent float64) domain.PackageQuote {
	return Aggregate(s.lines, numberOfDays, discountPercent)
}

func (s *Selection) adjustable(taskID string) (*domain.TaskLine, error) {
	i := s.indexOf(taskID)
	if i < 0 {
		return nil, fmt.Errorf("%w: id=%s", ErrTaskNotSelected, taskID)
	}
	if !s.lines[i].Task.IsAdjustable() {
		return nil, fmt.Errorf("%w: id=%s", ErrNotAdjustable, taskID)
	}
	return &s.lines[i], nil
}

func (s *Selection) indexOf(taskID string) int {
	for i := range s.lines {
		if s.lines[i].Task.ID == taskID {
			return i
		}
	}
	return -1
}

func (s *Selection) sort() {
	sort.SliceStable(s.lines, func(i, j int) bool {
		return s.lines[i].Task.Order() < s.lines[j].Task.Order()
	})
}
