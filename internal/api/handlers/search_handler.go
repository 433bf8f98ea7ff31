package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	middlewares "github.com/prefeitura-rio/app-busca-boletins/internal/middleware"
	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
	"github.com/prefeitura-rio/app-busca-boletins/internal/search"
)

// SearchHandler gerencia os endpoints de busca de boletins
type SearchHandler struct {
	service *search.Service
}

// NewSearchHandler cria um novo handler de busca
func NewSearchHandler(service *search.Service) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}

// ErrorResponse é o corpo de erro devolvido pela API
type ErrorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

// SupersededResponse indica que a resposta foi descartada por uma busca mais recente
type SupersededResponse struct {
	Status string `json:"status" example:"superseded"`
}

// Search godoc
// @Summary Busca boletins de ocorrência
// @Description Busca por número de BO ou por termos combinados com AND/OR, com filtro opcional de datas.
// @Description
// @Description - Se `boNumber` for informado, a busca é feita apenas pelo número e os termos são ignorados.
// @Description - Sem `boNumber`, ao menos um termo não vazio é obrigatório.
// @Description - `totalCount` é informativo: apenas a primeira página é retornada.
// @Description - Se a mesma sessão (`X-Session-ID`) submeter outra busca antes desta terminar, esta responde 409.
// @Tags busca
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Identificador da sessão de busca"
// @Param request body models.SearchInput true "Critérios de busca"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} ErrorResponse "Nenhum critério de busca ou campo inválido"
// @Failure 409 {object} SupersededResponse "Busca substituída por outra mais recente"
// @Failure 429 {object} map[string]string "Muitas requisições"
// @Failure 502 {object} ErrorResponse "Falha ao consultar o arquivo"
// @Router /api/v1/busca [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var input models.SearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:    "Parâmetros inválidos",
			Category: string(search.CategoryInvalidInput),
			Detail:   err.Error(),
		})
		return
	}

	result, err := h.service.Search(c.Request.Context(), middlewares.GetSessionID(c), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBulletin godoc
// @Summary Texto completo de um boletim
// @Description Retorna o texto completo do boletim de ocorrência pelo número.
// @Tags busca
// @Produce json
// @Param numero path string true "Número do boletim" example("123456")
// @Success 200 {object} models.BulletinDetail
// @Failure 400 {object} ErrorResponse "Número não informado"
// @Failure 404 {object} ErrorResponse "Boletim não encontrado"
// @Failure 502 {object} ErrorResponse "Falha ao consultar o arquivo"
// @Router /api/v1/boletins/{numero} [get]
func (h *SearchHandler) GetBulletin(c *gin.Context) {
	detail, err := h.service.LookupBulletin(c.Request.Context(), c.Param("numero"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ArchiveHealth godoc
// @Summary Status do serviço de arquivo
// @Description Consulta o endpoint /health do arquivo. Falhas são reportadas com status "error".
// @Tags busca
// @Produce json
// @Success 200 {object} models.ArchiveHealth
// @Router /api/v1/arquivo/health [get]
func (h *SearchHandler) ArchiveHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Health(c.Request.Context()))
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, search.ErrSuperseded) {
		c.JSON(http.StatusConflict, SupersededResponse{Status: "superseded"})
		return
	}

	classified := search.Classify(err)
	_ = c.Error(err)

	response := ErrorResponse{
		Error:    classified.Message,
		Category: string(classified.Category),
	}

	switch classified.Category {
	case search.CategoryServiceReportedError:
		response.Detail = classified.Detail
	case search.CategoryInvalidInput:
		var validationErr *search.ValidationError
		if errors.As(err, &validationErr) {
			response.Field = validationErr.Field
		}
	}

	c.JSON(classified.Category.HTTPStatus(), response)
}
