package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound ErrorCode = "ACCOUNT_001"
)

// Certificate error codes (CERTIFICATE_*)
const (
	CertificateInvalidToken     ErrorCode = "CERTIFICATE_001"
	CertificateExpired          ErrorCode = "CERTIFICATE_002"
	CertificateGenerationFailed ErrorCode = "CERTIFICATE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemNotFound           ErrorCode = "SYSTEM_004"
	SystemMethodNotAllowed   ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Parámetros inválidos",
	ValidationRequiredField: "Falta el parámetro 'cuenta'",

	AccountNotFound: "Cuenta no encontrada",

	CertificateInvalidToken:     "Folio de verificación inválido",
	CertificateExpired:          "El folio de verificación ha expirado",
	CertificateGenerationFailed: "No fue posible generar el certificado",

	SystemInternalError:      "Ocurrió un error inesperado. Contacte a soporte con el trace ID",
	SystemDatabaseError:      "Error de conexión a la base de datos",
	SystemServiceUnavailable: "Servicio no disponible temporalmente",
	SystemNotFound:           "Recurso no encontrado",
	SystemMethodNotAllowed:   "Método no permitido",
	SystemRateLimitExceeded:  "Demasiadas solicitudes. Intente más tarde",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "Ocurrió un error"
}
