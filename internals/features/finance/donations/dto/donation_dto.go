package dto

import (
	"math"
	"strconv"
	"strings"

	"darulfatheh_backend/internals/features/finance/donations/model"
)

// maksimum numeric(10,2)
const maxAmount = 99999999.99

type DonationRequest struct {
	DonorName     string `form:"donor_name" validate:"required,max=200"`
	Amount        string `form:"amount" validate:"omitempty,numeric"`
	PaymentMethod string `form:"payment_method" validate:"max=100"`
	TransactionID string `form:"transaction_id" validate:"max=200"`
	Email         string `form:"email" validate:"omitempty,email,max=254"`
	Phone         string `form:"phone" validate:"max=20"`
	Message       string `form:"message"`
	IsAnonymous   bool   `form:"-"`
}

// ParseAmount: "" → nil; dibulatkan 2 desimal, harus 0..maxAmount.
func (r *DonationRequest) ParseAmount() (*float64, bool) {
	s := strings.TrimSpace(r.Amount)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > maxAmount || math.IsNaN(v) {
		return nil, false
	}
	v = math.Round(v*100) / 100
	return &v, true
}

func (r *DonationRequest) ApplyTo(m *model.DonationModel, amount *float64) {
	m.DonationDonorName = strings.TrimSpace(r.DonorName)
	m.DonationAmount = amount
	m.DonationPaymentMethod = strings.TrimSpace(r.PaymentMethod)
	m.DonationTransactionID = strings.TrimSpace(r.TransactionID)
	m.DonationEmail = strings.TrimSpace(r.Email)
	m.DonationPhone = strings.TrimSpace(r.Phone)
	m.DonationMessage = strings.TrimSpace(r.Message)
	m.DonationIsAnonymous = r.IsAnonymous
}

// PublicDonationRequest form /donate/ (laporan donasi mandiri + bukti transfer).
type PublicDonationRequest struct {
	DonorName string `form:"donor_name" validate:"required,max=200"`
	Email     string `form:"email" validate:"omitempty,email,max=254"`
	Phone     string `form:"phone" validate:"max=20"`
}

func (r *PublicDonationRequest) ToModel() *model.DonationModel {
	return &model.DonationModel{
		DonationDonorName: strings.TrimSpace(r.DonorName),
		DonationEmail:     strings.TrimSpace(r.Email),
		DonationPhone:     strings.TrimSpace(r.Phone),
	}
}
