package models

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "already normalized", raw: "CUENTA-1", want: "CUENTA-1"},
		{name: "lowercase", raw: "cuenta-1", want: "CUENTA-1"},
		{name: "padded", raw: "  cuenta-1\t", want: "CUENTA-1"},
		{name: "blank", raw: "   ", want: ""},
		{name: "inner spaces kept", raw: " 01 002 ", want: "01 002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.raw))
		})
	}
}

func TestNormalizeKey_Idempotent(t *testing.T) {
	for i := 0; i < 50; i++ {
		key := gofakeit.Numerify("CTA-###-") + gofakeit.LetterN(4)
		normalized := NormalizeKey(key)

		assert.Equal(t, normalized, NormalizeKey(normalized))
		assert.Equal(t, normalized, NormalizeKey(strings.ToLower(key)))
		assert.Equal(t, normalized, NormalizeKey(" "+key+" "))
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusVigente, StatusFor(decimal.Zero))
	assert.Equal(t, StatusVigente, StatusFor(decimal.RequireFromString("-0.01")))
	assert.Equal(t, StatusNoVigente, StatusFor(decimal.RequireFromString("0.01")))
	assert.Equal(t, StatusNoVigente, StatusFor(decimal.RequireFromString("150.50")))

	for i := 0; i < 50; i++ {
		negative := decimal.NewFromFloat(gofakeit.Float64Range(-100000, 0))
		positive := decimal.NewFromFloat(gofakeit.Float64Range(0.01, 100000))

		assert.Equal(t, StatusVigente, StatusFor(negative), negative.String())
		assert.Equal(t, StatusNoVigente, StatusFor(positive), positive.String())
	}
}

func TestParseBalance(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "150.50", want: "150.5"},
		{raw: " 0 ", want: "0"},
		{raw: "-20", want: "-20"},
		{raw: "", want: "0"},
		{raw: "n/a", want: "0"},
		{raw: "$1,200.00", want: "0"},
		{raw: "0.004", want: "0"},
		{raw: "1.006", want: "1.01"},
		{raw: "-0.004", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(ParseBalance(tt.raw)), "got %s", ParseBalance(tt.raw))
		})
	}
}

func TestBuildDownloadURL(t *testing.T) {
	template := "https://drive.google.com/uc?export=download&id={id}"

	assert.Equal(t, "https://drive.google.com/uc?export=download&id=abc_123-X", BuildDownloadURL(template, " abc_123-X "))
	assert.Equal(t, "https://drive.google.com/uc?export=download&id=a%26b", BuildDownloadURL(template, "a&b"))
	assert.Empty(t, BuildDownloadURL(template, ""))
	assert.Empty(t, BuildDownloadURL(template, "   "))
	assert.Empty(t, BuildDownloadURL("", "abc"))
}

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{name: "valid", account: Account{Cuenta: "CUENTA-1"}},
		{name: "empty key", account: Account{}, wantErr: ErrEmptyAccountKey},
		{name: "long key", account: Account{Cuenta: strings.Repeat("Ñ", 80)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewAccountView(t *testing.T) {
	owner := gofakeit.Name()
	account := Account{
		Cuenta:        "CUENTA-2",
		Propietario:   owner,
		Adeudo:        decimal.RequireFromString("150.50"),
		FechaVigencia: "2024-06-01",
		GDriveID:      "file-1",
	}

	view := NewAccountView(account, "https://files.example/{id}")

	assert.Equal(t, StatusNoVigente, view.Status)
	assert.False(t, view.IsVigente())
	assert.Equal(t, "https://files.example/file-1", view.DownloadURL)
	assert.Equal(t, owner, view.Propietario)

	account.GDriveID = ""
	account.Adeudo = decimal.Zero
	view = NewAccountView(account, "https://files.example/{id}")

	assert.True(t, view.IsVigente())
	assert.Empty(t, view.DownloadURL)
}
