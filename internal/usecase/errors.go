package usecase

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Códigos de erro do domínio de leads
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateRecent    = "DUPLICATE_RECENT"
	CodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
	CodeLeadNotFound       = "LEAD_NOT_FOUND"
	CodeDatabaseError      = "DATABASE_ERROR"
)
