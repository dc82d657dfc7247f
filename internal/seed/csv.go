// Package seed reads the one-time import file that populates the cuentas table.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"predial-consulta/internal/models"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type field int

const (
	fieldKey field = iota
	fieldOwner
	fieldAddress
	fieldBalance
	fieldValidity
	fieldExternalID
)

// headerAliases lists the accepted header names per field, already normalized
// with normalizeHeader. Each deployment of the lookup used its own column names.
var headerAliases = map[field][]string{
	fieldKey:        {"CUENTA PREDIAL", "CUENTA", "CLAVE CATASTRAL", "ACCOUNT"},
	fieldOwner:      {"NOMBRE DEL TITULAR", "PROPIETARIO", "NOMBRE", "TITULAR"},
	fieldAddress:    {"DIRECCION", "DIRECCIÓN", "DOMICILIO"},
	fieldBalance:    {"ADEUDO", "SALDO"},
	fieldValidity:   {"FECHA VIGENCIA", "VIGENCIA", "FECHA ACTUALIZACION", "FECHA ACTUALIZACIÓN"},
	fieldExternalID: {"GDRIVE ID", "ARCHIVO ID"},
}

var (
	ErrMissingKeyColumn = errors.New("seed file has no account key column")
	ErrEmptyKey         = errors.New("empty account key")
)

// RowError reports a malformed seed row.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("seed line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

type Options struct {
	// Comma is the field delimiter, ',' when zero.
	Comma rune
	// Now supplies the date used for rows without a validity date.
	Now func() time.Time
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, opts Options) ([]models.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return Parse(f, opts)
}

// Parse reads a delimited file with a header row into accounts. Keys are
// normalized, balances coerced and blank validity dates replaced by today.
func Parse(r io.Reader, opts Options) ([]models.Account, error) {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	reader := csv.NewReader(decodeBOM(r))
	reader.Comma = opts.Comma

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read seed header: %w", err)
	}

	columns := mapColumns(header)
	if _, ok := columns[fieldKey]; !ok {
		return nil, ErrMissingKeyColumn
	}

	today := opts.Now().Format(models.ISODate)

	var accounts []models.Account
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}

		line, _ := reader.FieldPos(0)
		get := func(f field) string {
			idx, ok := columns[f]
			if !ok {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		account := models.Account{
			Cuenta:        models.NormalizeKey(get(fieldKey)),
			Propietario:   get(fieldOwner),
			Direccion:     get(fieldAddress),
			Adeudo:        models.ParseBalance(get(fieldBalance)),
			FechaVigencia: get(fieldValidity),
			GDriveID:      get(fieldExternalID),
		}
		if account.Cuenta == "" {
			return nil, &RowError{Line: line, Err: ErrEmptyKey}
		}
		if account.FechaVigencia == "" {
			account.FechaVigencia = today
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

func mapColumns(header []string) map[field]int {
	lookup := make(map[string]field)
	for f, aliases := range headerAliases {
		for _, alias := range aliases {
			lookup[alias] = f
		}
	}

	columns := make(map[field]int)
	for idx, name := range header {
		f, ok := lookup[normalizeHeader(name)]
		if !ok {
			continue
		}
		if _, seen := columns[f]; !seen {
			columns[f] = idx
		}
	}
	return columns
}

func normalizeHeader(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	return strings.Join(strings.Fields(strings.ToUpper(name)), " ")
}

// decodeBOM strips a leading UTF-8 BOM and decodes UTF-16 files that start
// with one. Input without a BOM passes through untouched.
func decodeBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))
}
