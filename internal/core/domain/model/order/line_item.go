package order

import (
	"fmt"
	"strings"

	"kitchen/internal/pkg/errs"
)

// LineItem is a single dish on an order: a name, a quantity, optional
// free-text notes and an optional list of modifiers ("no onions",
// "extra cheese"). Line items are immutable after the order is created.
type LineItem struct {
	name      string
	quantity  int
	notes     string
	modifiers []string
}

// NewLineItem creates a validated line item.
// The name must be non-empty and the quantity positive.
func NewLineItem(name string, quantity int, notes string, modifiers []string) (LineItem, error) {
	if strings.TrimSpace(name) == "" {
		return LineItem{}, errs.NewValueIsRequiredError("line item name")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	item := LineItem{
		name:     name,
		quantity: quantity,
		notes:    notes,
	}
	if len(modifiers) > 0 {
		item.modifiers = make([]string, len(modifiers))
		copy(item.modifiers, modifiers)
	}

	return item, nil
}

// Name returns the dish name.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns how many units were ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Notes returns the free-text preparation notes.
func (li LineItem) Notes() string {
	return li.notes
}

// Modifiers returns a copy of the modifier list.
func (li LineItem) Modifiers() []string {
	if len(li.modifiers) == 0 {
		return nil
	}
	out := make([]string, len(li.modifiers))
	copy(out, li.modifiers)
	return out
}

// String renders the item as "2x Pasta" for summaries and logs.
func (li LineItem) String() string {
	return fmt.Sprintf("%dx %s", li.quantity, li.name)
}
