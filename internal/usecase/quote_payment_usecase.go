package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/trader2544/telvix-quote-service/internal/domain/entities"
	"github.com/trader2544/telvix-quote-service/internal/usecase/interfaces"
)

var (
	ErrQuotePaymentNotFound       = errors.New("quote payment not found")
	ErrInvalidPaymentQuoteID      = errors.New("invalid quote_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrQuoteNotConverted          = errors.New("quote not converted")
	ErrDepositAlreadyPaid         = errors.New("deposit already paid for this quote")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// DepositRate is the share of the quoted total collected up front before
// project kickoff.
const DepositRate = 0.30

// IQuotePaymentUseCase encapsulates the "collect the project deposit"
// behavior on a converted quote.

type IQuotePaymentUseCase interface {
	CreateDeposit(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.QuotePayment, error)
	GetLatestByQuoteID(ctx context.Context, quoteID string) (entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo      interfaces.IQuotePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(repo interfaces.IQuotePaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway}
}

func (u *QuotePaymentUseCase) CreateDeposit(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.QuotePayment, error) {
	log.Printf("[payment][usecase] create-deposit start raw_quote_id=%q payload_len=%d", quoteID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentQuoteID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload quote_id=%s", quoteID)
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.QuotePayment{}, errors.New("payment gateway not configured")
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading quote quote_id=%s err=%v", quoteID, err)
		return entities.QuotePayment{}, err
	}
	if quote.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if !mockMode && quote.Status != entities.QuoteStatusConverted {
		log.Printf("[payment][usecase] quote not converted quote_id=%s status=%s", quoteID, quote.Status)
		return entities.QuotePayment{}, ErrQuoteNotConverted
	}

	// One deposit per quote.
	existing, err := u.repo.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if len(existing) > 0 {
		log.Printf("[payment][usecase] deposit already paid quote_id=%s payment_id=%s", quoteID, existing[0].ID)
		return entities.QuotePayment{}, ErrDepositAlreadyPaid
	}

	deposit := math.Floor(quote.QuotedTotal*DepositRate + 0.5)
	log.Printf("[payment][usecase] quote loaded quote_id=%s status=%s total=%.2f deposit=%.2f", quoteID, quote.Status, quote.QuotedTotal, deposit)

	// The source of truth for the amount is the quote in DB; Mercado Pago
	// uses external_reference to reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = quoteID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Project deposit for quote %s", quoteID)
		}
		reqMap["transaction_amount"] = deposit
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping payment gateway quote_id=%s", quoteID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		mockResp := map[string]any{}
		if len(mpPayload) > 0 && json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.QuotePayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed quote_id=%s err=%v", quoteID, err)
			if isGatewayUnauthorized(err) {
				return entities.QuotePayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.QuotePayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.QuotePayment{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success quote_id=%s provider_payment_id=%s provider_status=%s", quoteID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	p := entities.QuotePayment{
		ID:           providerPaymentID,
		QuoteID:      quoteID,
		Amount:       deposit,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed quote_id=%s payment_id=%s err=%v", quoteID, p.ID, err)
		return entities.QuotePayment{}, err
	}
	log.Printf("[payment][usecase] create-deposit success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)
	return created, nil
}

func (u *QuotePaymentUseCase) GetLatestByQuoteID(ctx context.Context, quoteID string) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentQuoteID
	}

	payments, err := u.repo.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if len(payments) == 0 {
		return entities.QuotePayment{}, ErrQuotePaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(providerStatus) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
