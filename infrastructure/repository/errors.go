package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// wrapQueryError anota erros do driver com o código SQLSTATE quando disponível
func wrapQueryError(action string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados ao %s: %w (código: %s)", action, err, pqErr.Code)
	}
	return fmt.Errorf("erro ao %s: %w", action, err)
}
