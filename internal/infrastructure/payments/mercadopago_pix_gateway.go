package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrPixGatewayNotConfigured       = errors.New("pix gateway not configured")
)

// phoneCountryCode is fixed: the storefront only sells to Brazilian numbers.
const phoneCountryCode = "55"

// GatewayError carries the provider's HTTP status and raw detail. The raw
// body goes to logs; handlers show callers a generic retry message.
type GatewayError struct {
	StatusCode int
	Message    string
	Raw        string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("pix gateway error status=%d message=%s", e.StatusCode, e.Message)
}

// MercadoPagoPixGateway creates and tracks PIX orders through the Mercado
// Pago SDK. It performs no retries; callers own retry policy.

type MercadoPagoPixGateway struct {
	client          payment.Client
	notificationURL string
	now             func() time.Time
}

var _ interfaces.IPixGateway = (*MercadoPagoPixGateway)(nil)

func NewMercadoPagoPixGateway(accessToken, notificationURL string) (*MercadoPagoPixGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoPixGateway{
		client:          payment.NewClient(cfg),
		notificationURL: notificationURL,
		now:             time.Now,
	}, nil
}

// CreateOrder asks the provider for a PIX order with a provider-side
// expiration matching req.ExpiresIn, so provider and registry agree on when
// the code stops being payable.
func (g *MercadoPagoPixGateway) CreateOrder(ctx context.Context, req interfaces.PixOrderRequest) (interfaces.PixOrder, error) {
	if g == nil || g.client == nil {
		return interfaces.PixOrder{}, ErrPixGatewayNotConfigured
	}

	firstName, lastName := splitName(req.Customer.Name)
	areaCode, number := splitPhone(req.Customer.Phone)
	expiresAt := g.now().UTC().Add(req.ExpiresIn)

	mpReq := payment.Request{
		TransactionAmount: amountFromCents(req.AmountCents),
		Description:       fmt.Sprintf("Ingresso %s - %s", req.Event.Name, req.Event.TicketType),
		PaymentMethodID:   "pix",
		ExternalReference: req.InternalID,
		DateOfExpiration:  &expiresAt,
		Metadata:          eventMetadata(req.Event),
		Payer: &payment.PayerRequest{
			Email:     req.Customer.Email,
			FirstName: firstName,
			LastName:  lastName,
			Identification: &payment.IdentificationRequest{
				Type:   "CPF",
				Number: onlyDigits(req.Customer.Document),
			},
			Phone: &payment.PhoneRequest{
				AreaCode: areaCode,
				Number:   number,
			},
		},
	}
	if g.notificationURL != "" {
		mpReq.NotificationURL = g.notificationURL
	}

	log.Printf("[payment][gateway] create start internal_id=%s amount_cents=%d", req.InternalID, req.AmountCents)
	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed internal_id=%s err=%v", req.InternalID, err)
		return interfaces.PixOrder{}, asGatewayError(err)
	}

	order := interfaces.PixOrder{
		ProviderTxID: fmt.Sprintf("%d", resp.ID),
		QRCode:       resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeURL:    resp.PointOfInteraction.TransactionData.TicketURL,
		ExpiresAt:    expiresAt,
		RawStatus:    resp.Status,
	}
	if !resp.DateOfExpiration.IsZero() {
		order.ExpiresAt = resp.DateOfExpiration.UTC()
	}

	log.Printf("[payment][gateway] create success provider_tx_id=%s provider_status=%s", order.ProviderTxID, resp.Status)
	return order, nil
}

func (g *MercadoPagoPixGateway) GetOrderStatus(ctx context.Context, providerTxID string) (interfaces.PixOrderStatus, error) {
	if g == nil || g.client == nil {
		return interfaces.PixOrderStatus{}, ErrPixGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerTxID))
	if err != nil {
		return interfaces.PixOrderStatus{}, &GatewayError{StatusCode: 400, Message: "invalid provider tx id", Raw: providerTxID}
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_tx_id=%s err=%v", providerTxID, err)
		return interfaces.PixOrderStatus{}, asGatewayError(err)
	}

	st := interfaces.PixOrderStatus{Status: g.TranslateStatus(resp.Status, resp.StatusDetail)}
	if !resp.DateApproved.IsZero() {
		approved := resp.DateApproved.UTC()
		st.PaidAt = &approved
	}
	return st, nil
}

func (g *MercadoPagoPixGateway) CancelOrder(ctx context.Context, providerTxID string) error {
	if g == nil || g.client == nil {
		return ErrPixGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerTxID))
	if err != nil {
		return &GatewayError{StatusCode: 400, Message: "invalid provider tx id", Raw: providerTxID}
	}

	if _, err := g.client.Cancel(ctx, id); err != nil {
		log.Printf("[payment][gateway] sdk cancel failed provider_tx_id=%s err=%v", providerTxID, err)
		return asGatewayError(err)
	}
	return nil
}

// TranslateStatus folds Mercado Pago status vocabulary into the internal
// closed enum. Unknown statuses stay pending: a later poll or webhook with a
// recognizable status settles the intent, and the sweeper bounds the wait.
func (g *MercadoPagoPixGateway) TranslateStatus(status, statusDetail string) entities.PaymentStatus {
	detail := strings.ToLower(strings.TrimSpace(statusDetail))
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "accredited":
		return entities.PaymentStatusPaid
	case "rejected", "refunded", "charged_back":
		return entities.PaymentStatusFailed
	case "cancelled", "canceled":
		if strings.Contains(detail, "expired") {
			return entities.PaymentStatusExpired
		}
		return entities.PaymentStatusFailed
	case "expired":
		return entities.PaymentStatusExpired
	default:
		return entities.PaymentStatusPending
	}
}

// amountFromCents converts minor units back to the major-unit float the SDK
// expects. Cents are the source of truth, so this division is exact enough
// for the provider's two-decimal amounts.
func amountFromCents(cents int64) float64 {
	return float64(cents) / 100
}

// eventMetadata attaches the business context as opaque metadata. Keys and
// values pass through unmodified and come back unchanged on status queries.
func eventMetadata(ev entities.EventInfo) map[string]any {
	return map[string]any{
		"partner_id":    ev.PartnerID,
		"event_name":    ev.Name,
		"event_date":    ev.Date,
		"location":      ev.Location,
		"ticket_type":   ev.TicketType,
		"section":       ev.Section,
		"row":           ev.Row,
		"seat":          ev.Seat,
		"is_half_price": ev.IsHalfPrice,
	}
}

var digitsPattern = regexp.MustCompile(`\D`)

func onlyDigits(s string) string {
	return digitsPattern.ReplaceAllString(s, "")
}

// splitPhone breaks a formatted Brazilian number into area code (first 2
// digits) and subscriber number. A leading country code is stripped first.
func splitPhone(phone string) (areaCode, number string) {
	d := onlyDigits(phone)
	if len(d) > 11 && strings.HasPrefix(d, phoneCountryCode) {
		d = d[len(phoneCountryCode):]
	}
	if len(d) < 3 {
		return "", d
	}
	return d[:2], d[2:]
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

var statusPattern = regexp.MustCompile(`"status"\s*:\s*(\d{3})`)

// asGatewayError shapes an SDK error into a GatewayError. The SDK surfaces
// provider rejections as errors whose text embeds the response body, so the
// HTTP status is recovered from there when present.
func asGatewayError(err error) error {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return err
	}

	raw := err.Error()
	statusCode := 502
	if m := statusPattern.FindStringSubmatch(raw); len(m) == 2 {
		if code, convErr := strconv.Atoi(m[1]); convErr == nil {
			statusCode = code
		}
	}
	return &GatewayError{StatusCode: statusCode, Message: "payment provider request failed", Raw: raw}
}
