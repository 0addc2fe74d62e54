package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"titkee.com/techradar/loader"
	"titkee.com/techradar/model"
	"titkee.com/techradar/prompt"
)

const (
	MsgNoData       = "No tech data available."
	MsgTechNotFound = "Tech not found."
)

// RadarService turns tech radar records into prompts and asks the Completer about them.
// It keeps no state between calls; the CSV is re-read by every Snapshot.
type RadarService struct {
	csvPath   string
	completer Completer
	logger    logrus.FieldLogger
}

func NewRadarService(csvPath string, completer Completer, logger logrus.FieldLogger) *RadarService {
	return &RadarService{
		csvPath:   csvPath,
		completer: completer,
		logger:    logger,
	}
}

// Snapshot loads the current radar from disk.
func (s *RadarService) Snapshot() ([]model.TechRecord, error) {
	records, err := loader.LoadRecords(s.csvPath)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"path": s.csvPath, "records": len(records)}).Debug("tech radar loaded")
	return records, nil
}

// DescribeAll asks for insights over every record.
func (s *RadarService) DescribeAll(ctx context.Context, records []model.TechRecord) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("encode tech radar: %w", err)
	}
	data := strings.TrimSuffix(buf.String(), "\n")

	text, err := prompt.RadarOverviewPrompt.Format(map[string]any{"data": data})
	if err != nil {
		return "", fmt.Errorf("render overview prompt: %w", err)
	}

	return s.complete(ctx, text)
}

// DescribeOne asks about the first record whose name matches selected,
// ignoring case and surrounding whitespace. An empty userPrompt falls back
// to prompt.DefaultInstruction.
func (s *RadarService) DescribeOne(ctx context.Context, records []model.TechRecord, selected, userPrompt string) (string, error) {
	if len(records) == 0 {
		return "", model.NewError(model.KindNotFound, MsgNoData, nil)
	}

	tech, ok := FindRecord(records, selected)
	if !ok {
		return "", model.NewError(model.KindNotFound, MsgTechNotFound, nil)
	}

	if userPrompt == "" {
		userPrompt = prompt.DefaultInstruction
	}

	text, err := prompt.TechDescriptionPrompt.Format(map[string]any{
		"name":        tech.Name,
		"status":      tech.Status,
		"category":    tech.Category,
		"dependency":  tech.Dependency,
		"mentor":      tech.Mentor,
		"instruction": userPrompt,
	})
	if err != nil {
		return "", fmt.Errorf("render description prompt: %w", err)
	}

	return s.complete(ctx, text)
}

// FindRecord returns the first record named name, compared case-insensitively after trimming.
func FindRecord(records []model.TechRecord, name string) (model.TechRecord, bool) {
	want := strings.TrimSpace(name)
	for _, r := range records {
		if strings.EqualFold(strings.TrimSpace(r.Name), want) {
			return r, true
		}
	}
	return model.TechRecord{}, false
}

func (s *RadarService) complete(ctx context.Context, text string) (string, error) {
	out, err := s.completer.Complete(ctx, text)
	if err != nil {
		return "", model.NewError(model.KindUpstream, "completion request failed", err)
	}
	return out, nil
}
