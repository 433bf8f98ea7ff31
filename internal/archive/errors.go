package archive

import (
	"errors"
	"fmt"
)

var (
	ErrArchiveUnavailable = errors.New("serviço de arquivo indisponível")
	ErrInvalidResponse    = errors.New("resposta inválida do serviço de arquivo")
)

// TransportError indica que a chamada ao arquivo não pôde ser concluída:
// falha de rede, status não-2xx, corpo ilegível ou circuito aberto.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("arquivo %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("arquivo %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
