package performance

import (
	"errors"
	"fmt"
)

// Categorias de falha, cada uma mapeada para um status HTTP
var (
	ErrValidation  = errors.New("validation failure")
	ErrDataAccess  = errors.New("data access failure")
	ErrComputation = errors.New("computation failure")
)

// Erros de validação
var (
	ErrInvalidCompareMode = errors.New("invalid compare mode")
	ErrInvalidAggregateBy = errors.New("invalid aggregate_by")
	ErrMissingDates       = errors.New("start_date and end_date are required")
)

// PerformanceError é o erro com contexto retornado pelas operações de performance
type PerformanceError struct {
	Kind      error  // ErrValidation, ErrDataAccess ou ErrComputation
	Code      string // Código de erro para API
	Operation string // Operação que falhou
	Details   string // Detalhes adicionais
	Err       error  // Erro base
}

// Error implementa a interface error
func (e *PerformanceError) Error() string {
	msg := e.Kind.Error()
	if e.Operation != "" {
		msg = fmt.Sprintf("%s: %s", e.Operation, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	return msg
}

// Unwrap permite errors.Is tanto com a categoria quanto com o erro base
func (e *PerformanceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewValidationError cria um erro de validação
func NewValidationError(operation string, code string, err error, details string) *PerformanceError {
	return &PerformanceError{
		Kind:      ErrValidation,
		Code:      code,
		Operation: operation,
		Details:   details,
		Err:       err,
	}
}

// NewDataAccessError cria um erro de acesso a dados
func NewDataAccessError(operation string, code string, err error) *PerformanceError {
	return &PerformanceError{
		Kind:      ErrDataAccess,
		Code:      code,
		Operation: operation,
		Err:       err,
	}
}
