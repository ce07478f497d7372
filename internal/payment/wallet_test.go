package payment

import (
	"errors"
	"testing"

	"github.com/example/trip-planner/internal/testfixtures"
	"github.com/example/trip-planner/internal/validation"
)

// fixedNow pins validation to the fixture reference date so the expiry cases
// stay deterministic.
var fixedNow = testfixtures.NewClock(testfixtures.ReferenceTime()).NowFunc()

func counterIDs() func() string {
	return testfixtures.NewIDGenerator("card").NextFunc()
}

func validInput() CardInput {
	return CardInput{
		Number: "4123456789012345",
		Holder: "Budi Santoso",
		Expiry: "12/27",
		CVV:    "123",
	}
}

func TestWallet_AddCard(t *testing.T) {
	t.Parallel()

	t.Run("stores masked record and selects it", func(t *testing.T) {
		t.Parallel()
		w := NewWallet(nil, counterIDs(), fixedNow)

		card, err := w.AddCard(validInput())
		if err != nil {
			t.Fatalf("AddCard() error = %v", err)
		}
		if card.Brand != Visa {
			t.Errorf("Brand = %q, want %q", card.Brand, Visa)
		}
		if card.Last4 != "2345" {
			t.Errorf("Last4 = %q, want %q", card.Last4, "2345")
		}
		selected, ok := w.Selected()
		if !ok || selected.ID != card.ID {
			t.Errorf("Selected() = %+v, %v, want new card selected", selected, ok)
		}
	})

	t.Run("non visa numbers default to mastercard", func(t *testing.T) {
		t.Parallel()
		w := NewWallet(nil, counterIDs(), fixedNow)

		input := validInput()
		input.Number = "5123456789012345"
		card, err := w.AddCard(input)
		if err != nil {
			t.Fatalf("AddCard() error = %v", err)
		}
		if card.Brand != Mastercard {
			t.Errorf("Brand = %q, want %q", card.Brand, Mastercard)
		}
	})

	t.Run("rejects malformed fields", func(t *testing.T) {
		t.Parallel()
		w := NewWallet(nil, counterIDs(), fixedNow)

		input := CardInput{
			Number: "4123",
			Holder: "  ",
			Expiry: "never",
			CVV:    "12",
		}
		_, err := w.AddCard(input)

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("AddCard() error = %v, want *validation.Error", err)
		}
		for _, field := range []string{"number", "holder", "expiry", "cvv"} {
			if _, ok := verr.FieldErrors[field]; !ok {
				t.Errorf("missing field error for %q, got %v", field, verr.FieldErrors)
			}
		}
		if len(w.Cards()) != 0 {
			t.Errorf("wallet stored %d cards after failed validation", len(w.Cards()))
		}
	})

	t.Run("rejects an expired card", func(t *testing.T) {
		t.Parallel()
		w := NewWallet(nil, counterIDs(), fixedNow)

		input := validInput()
		input.Expiry = "08/26"
		_, err := w.AddCard(input)

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("AddCard() error = %v, want *validation.Error", err)
		}
		if _, ok := verr.FieldErrors["expiry"]; !ok {
			t.Errorf("missing expiry field error, got %v", verr.FieldErrors)
		}
	})

	t.Run("accepts a card expiring this month", func(t *testing.T) {
		t.Parallel()
		w := NewWallet(nil, counterIDs(), fixedNow)

		input := validInput()
		input.Expiry = "09/26"
		if _, err := w.AddCard(input); err != nil {
			t.Fatalf("AddCard() error = %v, want card valid through its expiry month", err)
		}
	})
}

func TestWallet_Select(t *testing.T) {
	t.Parallel()

	seed := []Card{
		{ID: "seed-1", Brand: Visa, Last4: "4242", Expiry: "12/27"},
		{ID: "seed-2", Brand: Mastercard, Last4: "4444", Expiry: "05/28"},
	}
	w := NewWallet(seed, counterIDs(), fixedNow)

	if selected, ok := w.Selected(); !ok || selected.ID != "seed-1" {
		t.Fatalf("Selected() = %+v, %v, want first seeded card", selected, ok)
	}

	if err := w.Select("seed-2"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if selected, _ := w.Selected(); selected.ID != "seed-2" {
		t.Errorf("Selected().ID = %q, want %q", selected.ID, "seed-2")
	}

	if err := w.Select("nope"); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("Select(unknown) error = %v, want ErrCardNotFound", err)
	}
	if selected, _ := w.Selected(); selected.ID != "seed-2" {
		t.Errorf("failed Select changed selection to %q", selected.ID)
	}
}
