package booking

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/example/trip-planner/internal/session"
)

// BuildTicket renders a booking as a one-page PDF e-ticket and returns the
// document bytes together with a suggested filename.
func BuildTicket(b session.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP E-TICKET")
	pdf.Ln(12)

	origin, destination := b.Route.Origin(), b.Route.Destination()

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref   : %s", orDash(b.Reference)),
		fmt.Sprintf("Passenger     : %s", orDash(b.Contact.FullName)),
		fmt.Sprintf("E-mail        : %s", orDash(b.Contact.Email)),
		fmt.Sprintf("Service       : %s", orDash(string(b.Route.Type))),
		fmt.Sprintf("Route         : %s", orDash(b.Route.Name)),
		fmt.Sprintf("From / To     : %s -> %s", orDash(origin), orDash(destination)),
		fmt.Sprintf("Travel Date   : %s", orDash(b.TravelDate)),
		fmt.Sprintf("Passengers    : %d", b.Passengers),
		fmt.Sprintf("Duration      : %s", orDash(b.Route.Duration)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket covers all listed passengers. Please have it ready at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("booking: rendering e-ticket: %w", err)
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", filenamePart(b.Reference))
	return buf.Bytes(), filename, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func filenamePart(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
	if cleaned == "" {
		return "ticket"
	}
	return cleaned
}
