package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationModel struct {
	DonationID            uuid.UUID `gorm:"column:donation_id;type:uuid;primaryKey" json:"donation_id"`
	DonationDonorName     string    `gorm:"column:donation_donor_name;type:varchar(200);not null" json:"donation_donor_name"`
	DonationAmount        *float64  `gorm:"column:donation_amount;type:numeric(10,2)" json:"donation_amount"`
	DonationPaymentMethod string    `gorm:"column:donation_payment_method;type:varchar(100)" json:"donation_payment_method"`
	DonationTransactionID string    `gorm:"column:donation_transaction_id;type:varchar(200)" json:"donation_transaction_id"`
	DonationEmail         string    `gorm:"column:donation_email;type:varchar(254)" json:"donation_email"`
	DonationPhone         string    `gorm:"column:donation_phone;type:varchar(20)" json:"donation_phone"`
	DonationMessage       string    `gorm:"column:donation_message;type:text" json:"donation_message"`
	DonationIsAnonymous   bool      `gorm:"column:donation_is_anonymous;not null" json:"donation_is_anonymous"`
	DonationScreenshot    string    `gorm:"column:donation_screenshot;type:varchar(255)" json:"donation_screenshot"`
	DonationDonatedAt     time.Time `gorm:"column:donation_donated_at;autoCreateTime" json:"donation_donated_at"`
}

func (DonationModel) TableName() string {
	return "donation_details"
}

func (m *DonationModel) BeforeCreate(tx *gorm.DB) error {
	if m.DonationID == uuid.Nil {
		m.DonationID = uuid.New()
	}
	return nil
}

// DisplayName menyembunyikan nama donatur anonim di tampilan.
func (m *DonationModel) DisplayName() string {
	if m.DonationIsAnonymous {
		return "Anonymous"
	}
	return m.DonationDonorName
}
