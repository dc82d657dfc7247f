package models

import (
	"errors"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusVigente   = "VIGENTE"
	StatusNoVigente = "NO VIGENTE"

	// ISODate is the layout of FechaVigencia.
	ISODate = "2006-01-02"

	downloadIDPlaceholder = "{id}"
)

var ErrEmptyAccountKey = errors.New("account key is required")

// Account is a property tax account as stored in the cuentas table.
type Account struct {
	Cuenta        string          `gorm:"column:cuenta;type:text;primaryKey" json:"cuenta" validate:"cuenta_predial"`
	Propietario   string          `gorm:"column:propietario;not null" json:"propietario"`
	Direccion     string          `gorm:"column:direccion;not null" json:"direccion,omitempty"`
	Adeudo        decimal.Decimal `gorm:"column:adeudo;type:decimal(15,2);not null" json:"adeudo"`
	FechaVigencia string          `gorm:"column:fecha_vigencia;type:varchar(32);not null" json:"fecha_vigencia"`
	GDriveID      string          `gorm:"column:gdrive_id;not null" json:"gdrive_id"`
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "cuentas"
}

// BeforeCreate normalizes the key before it reaches the store
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	a.Cuenta = NormalizeKey(a.Cuenta)
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.Cuenta == "" {
		return ErrEmptyAccountKey
	}
	return nil
}

// Status derives the display status from the balance due.
func (a *Account) Status() string {
	return StatusFor(a.Adeudo)
}

// NormalizeKey trims surrounding whitespace and uppercases an account key.
func NormalizeKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// StatusFor returns VIGENTE for balances at or below zero and NO VIGENTE otherwise.
func StatusFor(balance decimal.Decimal) string {
	if balance.LessThanOrEqual(decimal.Zero) {
		return StatusVigente
	}
	return StatusNoVigente
}

// ParseBalance parses a balance field rounded to cents, matching the
// NUMERIC(15,2) column. Blank or unparseable input is zero.
func ParseBalance(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return balance.Round(2)
}

// BuildDownloadURL templates an external file id into urlTemplate.
// It returns an empty string when the id is blank.
func BuildDownloadURL(urlTemplate, fileID string) string {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" || urlTemplate == "" {
		return ""
	}
	return strings.ReplaceAll(urlTemplate, downloadIDPlaceholder, url.QueryEscape(fileID))
}
