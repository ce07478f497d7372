// Package payment keeps the user's saved payment cards. There is no payment
// processing; the wallet only validates card input and stores a masked
// record (brand, last four digits, expiry) for the review screen to show.
package payment

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/example/trip-planner/internal/validation"
)

// ErrCardNotFound is returned when selecting a card ID the wallet does not
// hold.
var ErrCardNotFound = errors.New("payment: card not found")

// Brand names a card network.
type Brand string

const (
	Visa       Brand = "Visa"
	Mastercard Brand = "Mastercard"
)

// Card is a stored payment method. Only the last four digits of the number
// are retained.
type Card struct {
	ID     string
	Brand  Brand
	Holder string
	Last4  string
	Expiry string
}

// CardInput carries the add-card form fields.
type CardInput struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

// Wallet holds saved cards and tracks the selected one.
type Wallet struct {
	mu       sync.RWMutex
	cards    []Card
	selected string
	newID    func() string
	now      func() time.Time
}

// NewWallet constructs a wallet seeded with any existing cards; the first
// seeded card starts selected.
func NewWallet(seed []Card, newID func() string, now func() time.Time) *Wallet {
	if newID == nil {
		counter := 0
		newID = func() string {
			counter++
			return fmt.Sprintf("card-%d", counter)
		}
	}
	if now == nil {
		now = time.Now
	}

	w := &Wallet{
		cards: append([]Card(nil), seed...),
		newID: newID,
		now:   now,
	}
	if len(w.cards) > 0 {
		w.selected = w.cards[0].ID
	}
	return w
}

// Cards returns the stored cards in the order they were added.
func (w *Wallet) Cards() []Card {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Card(nil), w.cards...)
}

// Selected returns the currently selected card.
func (w *Wallet) Selected() (Card, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, card := range w.cards {
		if card.ID == w.selected {
			return card, true
		}
	}
	return Card{}, false
}

// Select makes the given card the active payment method.
func (w *Wallet) Select(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, card := range w.cards {
		if card.ID == id {
			w.selected = id
			return nil
		}
	}
	return ErrCardNotFound
}

// AddCard validates the input, stores a masked card record, and selects it.
func (w *Wallet) AddCard(input CardInput) (Card, error) {
	if verr := w.validate(input); verr.HasErrors() {
		return Card{}, verr
	}

	number := digitsOnly(input.Number)
	card := Card{
		ID:     w.newID(),
		Brand:  detectBrand(number),
		Holder: strings.TrimSpace(input.Holder),
		Last4:  number[len(number)-4:],
		Expiry: input.Expiry,
	}

	w.mu.Lock()
	w.cards = append(w.cards, card)
	w.selected = card.ID
	w.mu.Unlock()

	return card, nil
}

func (w *Wallet) validate(input CardInput) *validation.Error {
	v := &validation.Error{}

	if len(digitsOnly(input.Number)) != 16 {
		v.Add("number", "card number must be 16 digits")
	}
	if strings.TrimSpace(input.Holder) == "" {
		v.Add("holder", "card holder name is required")
	}
	if err := validateExpiry(input.Expiry, w.now()); err != nil {
		v.Add("expiry", "expiry must be MM/YY and not in the past")
	}
	if cvv := digitsOnly(input.CVV); len(cvv) != 3 || cvv != strings.TrimSpace(input.CVV) {
		v.Add("cvv", "cvv must be 3 digits")
	}

	return v
}

func validateExpiry(raw string, now time.Time) error {
	parsed, err := time.Parse("01/06", raw)
	if err != nil {
		return fmt.Errorf("payment: expiry %q is not MM/YY", raw)
	}

	// A card is valid through the end of its expiry month.
	endOfMonth := parsed.AddDate(0, 1, 0)
	if !now.Before(endOfMonth) {
		return fmt.Errorf("payment: card expired %s", raw)
	}
	return nil
}

func detectBrand(number string) Brand {
	if strings.HasPrefix(number, "4") {
		return Visa
	}
	return Mastercard
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
