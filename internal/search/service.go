package search

import (
	"context"
	"time"

	"github.com/prefeitura-rio/app-busca-boletins/internal/archive"
	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
	"github.com/prefeitura-rio/app-busca-boletins/internal/observability"
	"github.com/prefeitura-rio/app-busca-boletins/internal/utils"
	"go.uber.org/zap"
)

// Archive é o transporte até o serviço de arquivo: envia JSON, recebe JSON ou falha
type Archive interface {
	Search(ctx context.Context, req *models.RemoteSearchRequest) (*models.RemoteSearchResponse, error)
	Health(ctx context.Context) *models.ArchiveHealth
}

// Service executa buscas de boletins: valida, monta a requisição, faz uma
// única chamada ao arquivo, normaliza e monta o resultado
type Service struct {
	archive    Archive
	sequencer  Sequencer
	normalizer *Normalizer
	metrics    *observability.SearchMetrics
	logger     *zap.Logger
}

// NewService cria o serviço de busca
func NewService(
	archiveClient Archive,
	sequencer Sequencer,
	normalizer *Normalizer,
	metrics *observability.SearchMetrics,
	logger *zap.Logger,
) *Service {
	if sequencer == nil {
		sequencer = NewMemorySequencer(0, 0)
	}
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		archive:    archiveClient,
		sequencer:  sequencer,
		normalizer: normalizer,
		metrics:    metrics,
		logger:     logger,
	}
}

// Search executa uma busca para a sessão. Se outra busca da mesma sessão for
// submetida enquanto esta aguarda o arquivo, o resultado desta é descartado
// com ErrSuperseded, seja sucesso ou falha.
func (s *Service) Search(ctx context.Context, session string, input *models.SearchInput) (*models.SearchResponse, error) {
	seq, seqErr := s.sequencer.Next(ctx, session)
	if seqErr != nil {
		s.logger.Warn("sequenciador indisponível, resposta será entregue sem descarte",
			zap.String("session", session), zap.Error(seqErr))
	}

	criteria, err := Validate(input)
	if err != nil {
		s.recordError(err)
		return nil, err
	}

	req := BuildRequest(criteria)
	mode := ResolveMode(criteria)

	start := time.Now()
	resp, err := s.archive.Search(ctx, req)
	s.metrics.RecordRequest(string(mode), time.Since(start))

	if seqErr == nil && !s.isLatest(ctx, session, seq) {
		s.metrics.RecordSuperseded()
		s.logger.Info("resposta descartada: busca mais recente submetida",
			zap.String("session", session), zap.Uint64("seq", seq))
		return nil, ErrSuperseded
	}

	if err != nil {
		s.logger.Error("erro ao consultar arquivo",
			zap.String("mode", string(mode)), zap.Error(err))
		s.recordError(err)
		return nil, err
	}

	result := archive.Decode(req, resp)
	reports, err := s.normalizer.Normalize(result, criteria.PersonName)
	if err != nil {
		s.logger.Warn("arquivo retornou erro",
			zap.String("mode", string(mode)), zap.Error(err))
		s.recordError(err)
		return nil, err
	}

	s.metrics.RecordResults(len(reports))
	return Assemble(reports, result), nil
}

// LookupBulletin busca o texto completo de um boletim pelo número
func (s *Service) LookupBulletin(ctx context.Context, boNumber string) (*models.BulletinDetail, error) {
	boNumber = utils.NormalizarTexto(boNumber)
	if boNumber == "" {
		err := &ValidationError{Field: "boNumber", Rule: RuleNoSearchSignal, Err: ErrNoSearchSignal}
		s.recordError(err)
		return nil, err
	}

	req := BuildBulletinRequest(boNumber)

	start := time.Now()
	resp, err := s.archive.Search(ctx, req)
	s.metrics.RecordRequest(string(ModeBulletin), time.Since(start))
	if err != nil {
		s.logger.Error("erro ao buscar boletim", zap.String("bo_number", boNumber), zap.Error(err))
		s.recordError(err)
		return nil, err
	}

	result := archive.Decode(req, resp)
	if result.Kind == archive.KindError {
		err := &ServiceError{Message: result.ErrorMessage}
		s.recordError(err)
		return nil, err
	}

	text := result.FullText
	if text == "" && len(result.Entries) > 0 && len(result.Entries[0].Details) > 0 {
		text = result.Entries[0].Details[0]
	}
	if text == "" {
		s.recordError(ErrBulletinNotFound)
		return nil, ErrBulletinNotFound
	}

	return &models.BulletinDetail{BONumber: boNumber, Texto: text}, nil
}

// Health retorna o status do serviço de arquivo
func (s *Service) Health(ctx context.Context) *models.ArchiveHealth {
	return s.archive.Health(ctx)
}

func (s *Service) isLatest(ctx context.Context, session string, seq uint64) bool {
	latest, err := s.sequencer.IsLatest(ctx, session, seq)
	if err != nil {
		s.logger.Warn("erro ao verificar sequência, entregando resposta",
			zap.String("session", session), zap.Error(err))
		return true
	}
	return latest
}

func (s *Service) recordError(err error) {
	if classified := Classify(err); classified != nil {
		s.metrics.RecordError(string(classified.Category))
	}
}
