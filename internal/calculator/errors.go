package calculator

import "errors"

var (
	// ErrTaskAlreadySelected возвращается при повторном добавлении задачи
	ErrTaskAlreadySelected = errors.New("calculator: task already selected")

	// ErrTaskNotSelected возвращается, когда задачи нет в наборе
	ErrTaskNotSelected = errors.New("calculator: task not selected")

	// ErrMustHaveTask возвращается при попытке удалить обязательную задачу
	ErrMustHaveTask = errors.New("calculator: must-have task cannot be removed")

	// ErrNotAdjustable возвращается при попытке изменить количество задачи с фиксированной ценой
	ErrNotAdjustable = errors.New("calculator: task quantity is not adjustable")

	// ErrQuantityTooLarge возвращается, когда количество превышает domain.MaxQuantity
	ErrQuantityTooLarge = errors.New("calculator: quantity exceeds the maximum")

	// ErrInvalidStep возвращается, когда направление шага не равно +1 или -1
	ErrInvalidStep = errors.New("calculator: step direction must be +1 or -1")
)
