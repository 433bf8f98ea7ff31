package search

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
	"github.com/prefeitura-rio/app-busca-boletins/internal/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reporta o nome JSON do campo nas falhas
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate transforma a entrada do usuário em critérios canônicos.
// Um número de BO não vazio dispensa os termos; sem BO, ao menos um termo
// não vazio é exigido. Datas não são comparadas entre si.
func Validate(input *models.SearchInput) (*models.SearchCriteria, error) {
	if input == nil {
		return nil, &ValidationError{Rule: RuleNoSearchSignal, Err: ErrNoSearchSignal}
	}

	normalized := normalizeInput(input)

	if normalized.BONumber == "" && !hasTerm(normalized.AdvancedTerms) {
		return nil, &ValidationError{Rule: RuleNoSearchSignal, Err: ErrNoSearchSignal}
	}

	if err := validate.Struct(normalized); err != nil {
		return nil, toValidationError(err)
	}

	operator := normalized.Operator
	if operator == "" {
		operator = models.OperatorAnd
	}

	terms := make([]models.AdvancedTerm, 0, len(normalized.AdvancedTerms))
	for _, t := range normalized.AdvancedTerms {
		if t.Term != "" {
			terms = append(terms, t)
		}
	}

	return &models.SearchCriteria{
		BONumber:      normalized.BONumber,
		PersonName:    normalized.PersonName,
		AdvancedTerms: terms,
		Operator:      operator,
		StartDate:     normalized.StartDate,
		EndDate:       normalized.EndDate,
	}, nil
}

func normalizeInput(input *models.SearchInput) *models.SearchInput {
	out := &models.SearchInput{
		BONumber:   utils.NormalizarTexto(input.BONumber),
		PersonName: utils.NormalizarTexto(input.PersonName),
		Operator:   models.Operator(strings.ToUpper(strings.TrimSpace(string(input.Operator)))),
		StartDate:  strings.TrimSpace(input.StartDate),
		EndDate:    strings.TrimSpace(input.EndDate),
	}
	if len(input.AdvancedTerms) > 0 {
		out.AdvancedTerms = make([]models.AdvancedTerm, len(input.AdvancedTerms))
		for i, t := range input.AdvancedTerms {
			out.AdvancedTerms[i] = models.AdvancedTerm{
				Term: utils.NormalizarTexto(t.Term),
				ID:   t.ID,
			}
		}
	}
	return out
}

func hasTerm(terms []models.AdvancedTerm) bool {
	for _, t := range terms {
		if !utils.IsBlank(t.Term) {
			return true
		}
	}
	return false
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Rule: RuleInvalidInput, Err: err}
	}

	fe := fieldErrs[0]
	rule := RuleInvalidInput
	switch fe.Tag() {
	case "datetime":
		rule = RuleInvalidDate
	case "oneof":
		rule = RuleInvalidOperator
	}
	return &ValidationError{Field: fe.Field(), Rule: rule, Err: err}
}
