package request

import (
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
)

type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Document string `json:"document" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

type EventRequest struct {
	PartnerID   string `json:"partnerId"`
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	TicketType  string `json:"ticketType"`
	Section     string `json:"section"`
	Row         string `json:"row"`
	Seat        string `json:"seat"`
	IsHalfPrice bool   `json:"isHalfPrice"`
}

// CreatePaymentRequest is the payload the storefront sends to open a PIX
// charge. Amount is in major currency units (reais) and converted to
// centavos internally.
type CreatePaymentRequest struct {
	Amount   float64         `json:"amount" binding:"required,gt=0"`
	Customer CustomerRequest `json:"customer" binding:"required"`
	Event    EventRequest    `json:"event" binding:"required"`
}

func (r CreatePaymentRequest) ToCustomer() entities.Customer {
	return entities.Customer{
		Name:     r.Customer.Name,
		Email:    r.Customer.Email,
		Document: r.Customer.Document,
		Phone:    r.Customer.Phone,
	}
}

func (r CreatePaymentRequest) ToEventInfo() entities.EventInfo {
	return entities.EventInfo{
		PartnerID:   r.Event.PartnerID,
		Name:        r.Event.Name,
		Date:        r.Event.Date,
		Location:    r.Event.Location,
		TicketType:  r.Event.TicketType,
		Section:     r.Event.Section,
		Row:         r.Event.Row,
		Seat:        r.Event.Seat,
		IsHalfPrice: r.Event.IsHalfPrice,
	}
}
