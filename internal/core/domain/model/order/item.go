package order

import (
	"errors"
	"fmt"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/errs"
	"pathorder/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Option represents a menu option selected for a line item,
// e.g. an extra shot or a size upgrade. The price is added to the
// menu price once per ordered unit.
type Option struct {
	Name  string
	Price int
}

// Item is a value object representing a single line of an order:
// a menu reference with its selected options and quantity. Line items are
// fixed at checkout and never change afterwards.
type Item struct { //nolint:recvcheck //using for validation
	menuID   kernel.UUID
	name     string
	price    int
	quantity int
	options  []Option

	guard guard.ConstructorGuard
}

// NewItem creates a line item with validation.
// The menu ID must be valid, the name non-empty, the price non-negative,
// and the quantity positive. Option names must be non-empty.
func NewItem(menuID kernel.UUID, name string, price int, quantity int, options []Option) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuID(menuID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
		item.setOptions(options),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuID returns the identifier of the ordered menu.
func (i Item) MenuID() kernel.UUID {
	return i.menuID
}

// Name returns the menu name snapshot taken at checkout.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price of the menu at checkout, excluding options.
func (i Item) Price() int {
	return i.price
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Options returns a copy of the selected options.
func (i Item) Options() []Option {
	options := make([]Option, len(i.options))
	copy(options, i.options)
	return options
}

// Subtotal returns the line total: (unit price + option prices) * quantity.
func (i Item) Subtotal() int {
	unit := i.price
	for _, option := range i.options {
		unit += option.Price
	}
	return unit * i.quantity
}

func (i *Item) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	i.menuID = menuID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setOptions(options []Option) error {
	for _, option := range options {
		if option.Name == "" {
			return errs.NewValueIsRequiredError("option name")
		}
	}
	i.options = make([]Option, len(options))
	copy(i.options, options)
	return nil
}
