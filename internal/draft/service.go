package draft

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/kiku/internal/config"
	"github.com/sirupsen/logrus"
)

type Service interface {
	GenerateDraft(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	ExportText(ctx context.Context, req GenerateRequest) (string, error)
}

type service struct {
	generator *Generator
}

func NewService(generator *Generator) Service {
	return &service{generator: generator}
}

func (s *service) GenerateDraft(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	contexts, err := NormalizeContexts(req.UnheardContexts)
	if err != nil {
		log.WithError(err).Warn("rejected unheard contexts")
		return nil, err
	}

	mode := SelectMode(contexts)
	structure, err := s.generator.Generate(strings.TrimSpace(req.Theme), strings.TrimSpace(req.Background), mode)
	if err != nil {
		return nil, fmt.Errorf("generate structure: %w", err)
	}

	log.WithFields(logrus.Fields{
		"mode":      mode,
		"contexts":  len(contexts),
		"questions": len(structure.Questions),
	}).Info("draft generated")

	return &GenerateResponse{Mode: mode, Structure: structure}, nil
}

func (s *service) ExportText(ctx context.Context, req GenerateRequest) (string, error) {
	resp, err := s.GenerateDraft(ctx, req)
	if err != nil {
		return "", err
	}
	return Serialize(resp.Structure), nil
}

// NormalizeContexts rejects labels outside the vocabulary and drops repeats,
// keeping the first occurrence.
func NormalizeContexts(contexts []UnheardContext) ([]UnheardContext, error) {
	if len(contexts) == 0 {
		return nil, nil
	}
	seen := make(map[UnheardContext]bool, len(contexts))
	out := make([]UnheardContext, 0, len(contexts))
	for _, c := range contexts {
		if !c.IsValid() {
			return nil, fmt.Errorf("%q: %w", c, ErrUnknownContext)
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}
