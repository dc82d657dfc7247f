package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

func TestParse_GDriveLayout(t *testing.T) {
	input := "CUENTA PREDIAL,NOMBRE DEL TITULAR,ADEUDO,FECHA VIGENCIA,GDRIVE_ID\n" +
		" cuenta-1 ,Ana Pérez,0,2025-01-01,\n" +
		"CUENTA-2,\"Luis Gómez\",150.50,2024-06-01,1AbC_x\n"

	accounts, err := Parse(strings.NewReader(input), Options{Now: fixedNow})
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "CUENTA-1", accounts[0].Cuenta)
	assert.Equal(t, "Ana Pérez", accounts[0].Propietario)
	assert.True(t, accounts[0].Adeudo.IsZero())
	assert.Equal(t, "2025-01-01", accounts[0].FechaVigencia)
	assert.Empty(t, accounts[0].GDriveID)

	assert.Equal(t, "CUENTA-2", accounts[1].Cuenta)
	assert.True(t, decimal.RequireFromString("150.50").Equal(accounts[1].Adeudo))
	assert.Equal(t, "1AbC_x", accounts[1].GDriveID)
}

func TestParse_AddressLayoutWithSemicolons(t *testing.T) {
	input := "cuenta;propietario;direccion;saldo;fecha_actualizacion\n" +
		"a-10;María López;Av. Juárez 12;-5;\n"

	accounts, err := Parse(strings.NewReader(input), Options{Comma: ';', Now: fixedNow})
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	assert.Equal(t, "A-10", accounts[0].Cuenta)
	assert.Equal(t, "Av. Juárez 12", accounts[0].Direccion)
	assert.True(t, decimal.NewFromInt(-5).Equal(accounts[0].Adeudo))
	assert.Equal(t, "2026-03-15", accounts[0].FechaVigencia)
}

func TestParse_DefaultsForMissingColumnsAndBadBalance(t *testing.T) {
	input := "\xEF\xBB\xBFCUENTA,ADEUDO\nX1,abc\nX2,\n"

	accounts, err := Parse(strings.NewReader(input), Options{Now: fixedNow})
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	for _, account := range accounts {
		assert.True(t, account.Adeudo.IsZero())
		assert.Empty(t, account.Propietario)
		assert.Empty(t, account.Direccion)
		assert.Equal(t, "2026-03-15", account.FechaVigencia)
	}
}

func TestParse_ByteOrderMarks(t *testing.T) {
	input := "CUENTA PREDIAL,NOMBRE DEL TITULAR,ADEUDO\nPEÑA-1,José Núñez,10\n"
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(input)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{name: "utf-8 bom", input: "\xEF\xBB\xBF" + input},
		{name: "utf-16le bom", input: utf16},
		{name: "no bom", input: input},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts, err := Parse(strings.NewReader(tt.input), Options{Now: fixedNow})
			require.NoError(t, err)
			require.Len(t, accounts, 1)
			assert.Equal(t, "PEÑA-1", accounts[0].Cuenta)
			assert.Equal(t, "José Núñez", accounts[0].Propietario)
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	accounts, err := Parse(strings.NewReader(""), Options{})
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestParse_HeaderOnly(t *testing.T) {
	accounts, err := Parse(strings.NewReader("CUENTA PREDIAL,ADEUDO\n"), Options{})
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestParse_MissingKeyColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("NOMBRE,ADEUDO\nAna,0\n"), Options{})
	assert.ErrorIs(t, err, ErrMissingKeyColumn)
}

func TestParse_EmptyKeyIsMalformed(t *testing.T) {
	input := "CUENTA,ADEUDO\nX1,0\n   ,10\n"

	_, err := Parse(strings.NewReader(input), Options{})

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Line)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestParse_WrongFieldCount(t *testing.T) {
	input := "CUENTA,ADEUDO\nX1,0,extra\n"

	_, err := Parse(strings.NewReader(input), Options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("CUENTA PREDIAL,ADEUDO\nZ-1,1\n"), 0o600))

	accounts, err := ParseFile(path, Options{})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Z-1", accounts[0].Cuenta)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
