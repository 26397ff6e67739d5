package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/repository"
)

type templateService struct {
	repo repository.TemplateRepository
	tx   repository.TxManager
	log  zerolog.Logger
}

func NewTemplateService(repo repository.TemplateRepository, tx repository.TxManager, logger zerolog.Logger) TemplateService {
	l := logger.With().Str("module", "service").Str("component", "template").Logger()
	return &templateService{repo: repo, tx: tx, log: l}
}

// SaveTemplate stores html under name, replacing any previous body. The html must parse as a report template.
func (s *templateService) SaveTemplate(ctx context.Context, name, html string) (model.TemplateHTML, error) {
	name = strings.TrimSpace(name)
	if err := ValidateTemplate(name, html); err != nil {
		s.log.Debug().Err(err).Str("name", name).Msg("template validation failed")
		return model.TemplateHTML{}, err
	}

	var out model.TemplateHTML
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		saved, err := s.repo.Upsert(ctx, model.TemplateHTML{Name: name, HTML: html})
		if err != nil {
			return err
		}
		out = saved
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("save template failed")
		return model.TemplateHTML{}, err
	}
	s.log.Info().Str("name", out.Name).Int64("template_id", out.ID).Int("bytes", len(out.HTML)).Msg("template saved")
	return out, nil
}

func (s *templateService) GetTemplate(ctx context.Context, name string) (model.TemplateHTML, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.TemplateHTML{}, newInvalidInput([]FieldError{{Field: "name", Message: "must not be empty"}})
	}
	return s.repo.GetByName(ctx, name)
}
