package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	orderInfoPrefix      = "Thanh toan cho ma GD:"
	responseCodeSuccess  = "00"
	responseCodeBadCheck = "97"
)

var subscriptionMonths = map[string]int{
	"HV_1M":  1,
	"HV_3M":  3,
	"HV_6M":  6,
	"HV_12M": 12,
}

type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	URL        string
	ReturnURL  string
}

type PaymentRequest struct {
	UserID   string
	PlanName string
	Amount   int64
	BankCode string
	Locale   string
	ClientIP string
}

// PaymentResult is what the return page renders.
type PaymentResult struct {
	Code    string
	Invoice *models.Invoice
}

type PaymentService interface {
	CreatePaymentURL(req PaymentRequest, now time.Time) (string, error)
	HandleReturn(ctx context.Context, query url.Values) (*PaymentResult, error)
}

type paymentService struct {
	cfg      VNPayConfig
	invoices repository.InvoiceRepository
	users    repository.UserRepository
	logger   *logrus.Logger
	now      func() time.Time
}

func NewPaymentService(cfg VNPayConfig, invoices repository.InvoiceRepository, users repository.UserRepository, logger *logrus.Logger) PaymentService {
	return &paymentService{
		cfg:      cfg,
		invoices: invoices,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *paymentService) CreatePaymentURL(req PaymentRequest, now time.Time) (string, error) {
	if req.Amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if _, ok := subscriptionMonths[req.PlanName]; !ok {
		return "", fmt.Errorf("%w: unknown plan %q", ErrValidation, req.PlanName)
	}
	if err := parseUserID(req.UserID); err != nil {
		return "", err
	}

	locale := req.Locale
	if locale == "" {
		locale = "vn"
	}

	params := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    s.cfg.TmnCode,
		"vnp_Locale":     locale,
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     now.Format("02150405"),
		"vnp_OrderInfo":  orderInfoPrefix + req.PlanName + "_" + req.UserID,
		"vnp_OrderType":  "other",
		"vnp_Amount":     strconv.FormatInt(req.Amount*100, 10),
		"vnp_ReturnUrl":  s.cfg.ReturnURL,
		"vnp_IpAddr":     req.ClientIP,
		"vnp_CreateDate": now.Format("20060102150405"),
	}
	if req.BankCode != "" {
		params["vnp_BankCode"] = req.BankCode
	}

	signData := canonicalQuery(params)
	return s.cfg.URL + "?" + signData + "&vnp_SecureHash=" + sign(s.cfg.HashSecret, signData), nil
}

// HandleReturn verifies the gateway callback, records the invoice and grants
// the plan when the payment succeeded.
func (s *paymentService) HandleReturn(ctx context.Context, query url.Values) (*PaymentResult, error) {
	secureHash := query.Get("vnp_SecureHash")

	params := make(map[string]string, len(query))
	for k := range query {
		if k == "vnp_SecureHash" || k == "vnp_SecureHashType" {
			continue
		}
		params[k] = query.Get(k)
	}

	expected := sign(s.cfg.HashSecret, canonicalQuery(params))
	if !hmac.Equal([]byte(strings.ToLower(secureHash)), []byte(expected)) {
		s.logger.WithField("txn_ref", params["vnp_TxnRef"]).Warn("VNPay return with invalid signature")
		return &PaymentResult{Code: responseCodeBadCheck}, ErrInvalidSignature
	}

	plan, userID := splitOrderInfo(params["vnp_OrderInfo"])

	status := models.InvoiceFailed
	if params["vnp_ResponseCode"] == responseCodeSuccess {
		status = models.InvoicePaid
	}

	var amount float64
	if raw := params["vnp_Amount"]; raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			amount = v / 100
		}
	}

	invoice := &models.Invoice{
		ID:               uuid.New().String(),
		SubscriptionName: plan,
		UserID:           userID,
		Amount:           amount,
		BankCode:         params["vnp_BankCode"],
		TransactionID:    params["vnp_TxnRef"],
		OrderInfo:        params["vnp_OrderInfo"],
		Status:           status,
	}
	if err := s.invoices.CreateInvoice(ctx, invoice); err != nil {
		s.logger.WithError(err).Error("Failed to store invoice")
		return nil, err
	}

	if status == models.InvoicePaid {
		if err := s.grantPlan(ctx, userID, plan); err != nil {
			return nil, err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"invoice_id": invoice.ID,
		"user_id":    userID,
		"plan":       plan,
		"status":     status,
	}).Info("Payment processed")

	return &PaymentResult{Code: params["vnp_ResponseCode"], Invoice: invoice}, nil
}

func (s *paymentService) grantPlan(ctx context.Context, userID, plan string) error {
	months, ok := subscriptionMonths[plan]
	if !ok || parseUserID(userID) != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"plan":    plan,
		}).Warn("Paid invoice references unknown plan or user")
		return nil
	}

	now := s.now()
	expires := now.AddDate(0, months, 0)
	err := s.users.UpdatePremium(ctx, userID, models.PremiumStatus{
		Subscription: plan,
		RegisteredAt: &now,
		ExpiresAt:    &expires,
		IsAvailable:  true,
	})
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to update premium status")
		return err
	}

	return nil
}

// splitOrderInfo extracts "<plan>_<userID>" from the order description. The
// plan itself contains an underscore so the user id follows the last one.
func splitOrderInfo(info string) (plan, userID string) {
	rest := strings.TrimPrefix(info, orderInfoPrefix)
	i := strings.LastIndex(rest, "_")
	if i < 0 {
		return rest, ""
	}
	return rest[:i], rest[i+1:]
}

// canonicalQuery renders params sorted by key with values escaped the way
// the gateway expects: encodeURIComponent with spaces as '+'.
func canonicalQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(gatewayEscape(k))
		b.WriteByte('=')
		b.WriteString(gatewayEscape(params[k]))
	}
	return b.String()
}

var gatewayUnescaper = strings.NewReplacer(
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func gatewayEscape(s string) string {
	return gatewayUnescaper.Replace(url.QueryEscape(s))
}

func sign(secret, data string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
