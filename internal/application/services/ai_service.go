package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/ai"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
)

// ErrAIUnavailable is returned when no generator is configured.
var ErrAIUnavailable = errors.New("ai generation is not configured")

var kindInstructions = map[content.Kind]string{
	content.KindNews:       "Tulis artikel berita sekolah yang informatif dan hangat.",
	content.KindProjects:   "Tulis deskripsi proyek siswa yang menonjolkan proses dan hasil belajar.",
	content.KindJournals:   "Tulis ringkasan jurnal ilmiah siswa dengan bahasa yang mudah dipahami.",
	content.KindFacilities: "Tulis deskripsi fasilitas sekolah yang menarik bagi orang tua calon siswa.",
}

// AIService drafts Indonesian-language content for the admin editor. The
// result is a draft for a human to edit, never published directly.
type AIService struct {
	generator ai.Generator
	logger    *logging.ChanneledLogger
}

func NewAIService(generator ai.Generator, logger *logging.ChanneledLogger) *AIService {
	return &AIService{generator: generator, logger: logger}
}

// Enabled reports whether a generator is configured.
func (s *AIService) Enabled() bool {
	return s.generator != nil
}

// GenerateDraft produces a body draft for the given kind and topic.
func (s *AIService) GenerateDraft(ctx context.Context, kind content.Kind, topic, notes string) (string, error) {
	if !s.Enabled() {
		return "", ErrAIUnavailable
	}

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", errors.New("topic is required")
	}

	system := "Kamu adalah penulis konten untuk situs web Yayasan Unggul Bangsa, " +
		"sebuah lembaga pendidikan Islam dengan jenjang TK, SD, SMP, dan SMA. " +
		kindInstructions[kind]

	prompt := fmt.Sprintf("Topik: %s", topic)
	if notes = strings.TrimSpace(notes); notes != "" {
		prompt += fmt.Sprintf("\nCatatan tambahan: %s", notes)
	}

	draft, err := s.generator.Generate(ctx, system, prompt)
	if err != nil {
		s.logger.LogError(logging.ChannelAI, "generate", err, "")
		return "", err
	}

	s.logger.AI().Info("Draft generated", "kind", string(kind), "chars", len(draft))
	return draft, nil
}
