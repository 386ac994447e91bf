package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/llm"
)

// DefaultAdvicePrompt is the built-in advice prompt template. A deployment
// can override it through the Langfuse prompt API (see internal/langfuse);
// the placeholders are shared between both sources.
const DefaultAdvicePrompt = `Проанализируй данные о здоровье пользователя за последнюю неделю и дай краткий, дельный совет.

ID пользователя: {{user_id}}

Сон:
{{sleep_data}}

Калории:
{{calories_data}}

Тренировки:
{{workouts_data}}

Твой совет:`

const noDataLine = "Нет данных."

// AdviceService turns the weekly digest into a natural-language advisory via
// the configured LLM. The advisor's output is opaque text; failures are
// reported upward unchanged, with no retries here.
type AdviceService interface {
	Advise(ctx context.Context, userID int64, today time.Time) (string, error)
}

type adviceService struct {
	reports ReportService
	advisor llm.AdvisorLLM
	prompt  string
}

func NewAdviceService(reports ReportService, advisor llm.AdvisorLLM, promptTemplate string) AdviceService {
	if promptTemplate == "" {
		promptTemplate = DefaultAdvicePrompt
	}
	return &adviceService{
		reports: reports,
		advisor: advisor,
		prompt:  promptTemplate,
	}
}

func (s *adviceService) Advise(ctx context.Context, userID int64, today time.Time) (string, error) {
	digest, err := s.reports.AdvisoryDigest(ctx, userID, today)
	if err != nil {
		return "", err
	}

	prompt := BuildAdvicePrompt(s.prompt, userID, digest)
	return s.advisor.Advise(ctx, prompt)
}

// BuildAdvicePrompt fills the template placeholders from a digest. Empty
// metric lists render as a "no data" line rather than an empty section.
func BuildAdvicePrompt(template string, userID int64, digest *domain.Digest) string {
	var sleep strings.Builder
	for i, e := range digest.Sleep {
		if i > 0 {
			sleep.WriteString("\n")
		}
		fmt.Fprintf(&sleep, "- %s: %.1f ч", e.Date, e.Hours)
	}

	var calories strings.Builder
	for i, e := range digest.Calories {
		if i > 0 {
			calories.WriteString("\n")
		}
		fmt.Fprintf(&calories, "- %s: %d ккал", e.Date, e.Amount)
	}

	var workouts strings.Builder
	for i, e := range digest.Workouts {
		if i > 0 {
			workouts.WriteString("\n")
		}
		fmt.Fprintf(&workouts, "- %s: %s (%.1f ч)", e.Date, e.ActivityType, e.DurationHours)
	}

	replacer := strings.NewReplacer(
		"{{user_id}}", fmt.Sprintf("%d", userID),
		"{{sleep_data}}", orNoData(sleep.String()),
		"{{calories_data}}", orNoData(calories.String()),
		"{{workouts_data}}", orNoData(workouts.String()),
	)
	return replacer.Replace(template)
}

func orNoData(section string) string {
	if section == "" {
		return noDataLine
	}
	return section
}
