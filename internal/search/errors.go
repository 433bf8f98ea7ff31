package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prefeitura-rio/app-busca-boletins/internal/archive"
)

var (
	ErrNoSearchSignal   = errors.New("nenhum número de BO ou termo de pesquisa informado")
	ErrBulletinNotFound = errors.New("boletim de ocorrência não encontrado")
	ErrSuperseded       = errors.New("busca substituída por uma submissão mais recente")
)

// Regras de validação
const (
	RuleNoSearchSignal  = "no-search-signal"
	RuleInvalidDate     = "invalid-date"
	RuleInvalidOperator = "invalid-operator"
	RuleInvalidInput    = "invalid-input"
)

// ValidationError é uma falha local, detectada antes de qualquer chamada ao arquivo
type ValidationError struct {
	Field string
	Rule  string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validação falhou em %s (%s)", e.Field, e.Rule)
	}
	return fmt.Sprintf("validação falhou (%s)", e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ServiceError carrega a mensagem do campo error devolvido pelo arquivo
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return "arquivo retornou erro: " + e.Message
}

// Category é a categoria de erro exibida ao usuário
type Category string

const (
	CategoryNoSearchSignal       Category = "NoSearchSignal"
	CategoryInvalidInput         Category = "InvalidInput"
	CategoryTransportFailure     Category = "TransportFailure"
	CategoryServiceReportedError Category = "ServiceReportedError"
	CategoryNotFound             Category = "NotFound"
)

const genericFailureMessage = "Erro ao realizar a pesquisa. Por favor, tente novamente."

// Mensagens exibidas literalmente pela interface
var categoryMessages = map[Category]string{
	CategoryNoSearchSignal:       "Adicione pelo menos um termo de pesquisa ou um número de BO",
	CategoryInvalidInput:         "Verifique os campos de pesquisa: datas devem estar no formato AAAA-MM-DD",
	CategoryTransportFailure:     genericFailureMessage,
	CategoryServiceReportedError: genericFailureMessage,
	CategoryNotFound:             "Boletim de ocorrência não encontrado",
}

// Message retorna a mensagem fixa da categoria
func (c Category) Message() string {
	return categoryMessages[c]
}

// HTTPStatus retorna o status HTTP correspondente à categoria
func (c Category) HTTPStatus() int {
	switch c {
	case CategoryNoSearchSignal, CategoryInvalidInput:
		return http.StatusBadRequest
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryTransportFailure, CategoryServiceReportedError:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Error é um erro já classificado, pronto para ser exibido
type Error struct {
	Category Category
	Message  string
	Detail   string
	Err      error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Category, e.Detail)
	}
	return string(e.Category)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify mapeia uma falha para exatamente uma categoria.
// Retorna nil para err nil e para buscas substituídas, que nunca são exibidas.
func Classify(err error) *Error {
	if err == nil || errors.Is(err, ErrSuperseded) {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	category := CategoryTransportFailure
	detail := err.Error()

	var validationErr *ValidationError
	var serviceErr *ServiceError
	var transportErr *archive.TransportError

	switch {
	case errors.As(err, &validationErr):
		if validationErr.Rule == RuleNoSearchSignal {
			category = CategoryNoSearchSignal
		} else {
			category = CategoryInvalidInput
		}
	case errors.Is(err, ErrBulletinNotFound):
		category = CategoryNotFound
	case errors.As(err, &serviceErr):
		category = CategoryServiceReportedError
		detail = serviceErr.Message
	case errors.As(err, &transportErr):
		category = CategoryTransportFailure
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		category = CategoryTransportFailure
	}

	return &Error{
		Category: category,
		Message:  category.Message(),
		Detail:   detail,
		Err:      err,
	}
}
