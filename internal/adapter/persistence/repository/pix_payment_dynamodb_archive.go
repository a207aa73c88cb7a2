package repository

import (
	"context"
	"sort"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPixPaymentsTableName = "pix_payments"
	pixPaymentsPartnerIDIndex   = "partner_id-index"
)

type pixPaymentItem struct {
	ID           string `dynamodbav:"id"`
	PartnerID    string `dynamodbav:"partner_id"`
	TicketID     string `dynamodbav:"ticket_id,omitempty"`
	Value        int64  `dynamodbav:"value"`
	Status       string `dynamodbav:"status"`
	PixKey       string `dynamodbav:"pix_key"`
	ProviderTxID string `dynamodbav:"provider_tx_id"`

	QRCode    string `dynamodbav:"qr_code,omitempty"`
	QRCodeURL string `dynamodbav:"qr_code_url,omitempty"`
	Review    bool   `dynamodbav:"review"`

	CreatedAt   string `dynamodbav:"created_at"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	CancelledAt string `dynamodbav:"cancelled_at,omitempty"`
	ExpiresAt   string `dynamodbav:"expires_at"`

	CustomerName  string `dynamodbav:"customer_name"`
	CustomerEmail string `dynamodbav:"customer_email"`
	CustomerPhone string `dynamodbav:"customer_phone"`
}

// PixPaymentDynamoArchive is the durable copy of settled payment intents.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: partner_id-index (PK: partner_id)
//
// Writes are plain puts: a webhook replay archiving the same terminal record
// twice overwrites it with identical data, which keeps the archive idempotent.

type PixPaymentDynamoArchive struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentArchive = (*PixPaymentDynamoArchive)(nil)

func NewPixPaymentDynamoArchive(ddb *dynamodb.Client) *PixPaymentDynamoArchive {
	return &PixPaymentDynamoArchive{
		ddb:       ddb,
		tableName: getenvDefault("PIX_PAYMENTS_TABLE", defaultPixPaymentsTableName),
	}
}

func (r *PixPaymentDynamoArchive) Archive(ctx context.Context, intent entities.PaymentIntent) error {
	av, err := attributevalue.MarshalMap(toPixPaymentItem(intent))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// ListByPartnerID returns archived intents for a partner, newest-first.
func (r *PixPaymentDynamoArchive) ListByPartnerID(ctx context.Context, partnerID string) ([]entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pixPaymentsPartnerIDIndex),
		KeyConditionExpression: aws.String("partner_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: partnerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentIntent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pixPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPixPaymentItem(it))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func toPixPaymentItem(p entities.PaymentIntent) pixPaymentItem {
	it := pixPaymentItem{
		ID:            p.ID,
		PartnerID:     p.PartnerID,
		TicketID:      p.TicketID,
		Value:         p.Value,
		Status:        string(p.Status),
		PixKey:        p.PixKey,
		ProviderTxID:  p.ProviderTxID,
		QRCode:        p.QRCode,
		QRCodeURL:     p.QRCodeURL,
		Review:        p.Review,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:     p.ExpiresAt.UTC().Format(time.RFC3339Nano),
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		CustomerPhone: p.CustomerPhone,
	}
	if p.PaidAt != nil {
		it.PaidAt = p.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	if p.CancelledAt != nil {
		it.CancelledAt = p.CancelledAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPixPaymentItem(it pixPaymentItem) entities.PaymentIntent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	p := entities.PaymentIntent{
		ID:            it.ID,
		PartnerID:     it.PartnerID,
		TicketID:      it.TicketID,
		Value:         it.Value,
		Status:        entities.PaymentStatus(it.Status),
		PixKey:        it.PixKey,
		ProviderTxID:  it.ProviderTxID,
		QRCode:        it.QRCode,
		QRCodeURL:     it.QRCodeURL,
		Review:        it.Review,
		CreatedAt:     createdAt,
		ExpiresAt:     expiresAt,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		CustomerPhone: it.CustomerPhone,
	}
	if it.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			p.PaidAt = &t
		}
	}
	if it.CancelledAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CancelledAt); err == nil {
			p.CancelledAt = &t
		}
	}
	return p
}
