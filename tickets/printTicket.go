package tickets

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"monbillet/models"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GetTicketQR serves a freshly signed boarding code as a PNG. The code is
// short-lived; clients fetch it again at the gate.
func GetTicketQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	t, code := ownedTicket(r, ps.ByName("ticketid"))
	if t == nil {
		http.Error(w, http.StatusText(code), code)
		return
	}
	if t.Status == models.TicketCancelled {
		http.Error(w, "Ticket is cancelled", http.StatusConflict)
		return
	}

	payload := SignedPayload(t.TripID, t.TicketID, t.SeatNumber, time.Now())
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// PrintTicket renders the ticket as a PDF with the boarding QR embedded.
func PrintTicket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	t, code := ownedTicket(r, ps.ByName("ticketid"))
	if t == nil {
		http.Error(w, http.StatusText(code), code)
		return
	}

	payload := SignedPayload(t.TripID, t.TicketID, t.SeatNumber, time.Now())
	qrPNG, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Billet de voyage")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Billet: %s", t.TicketID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Passager: %s", t.PassengerName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Trajet: %s -> %s", t.OriginStation, t.DestinationStation))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s  Depart: %s", t.TravelDate, t.DepartureTime))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Siege: %s", t.SeatNumber))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Prix: %d FCFA", t.Price))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=billet-"+t.TicketID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
