// Package proposal собирает промпт для генерации предложения и разбирает
// ответ модели на именованные секции по маркерам вида ===NAME===.
package proposal

import (
	"fmt"
	"strings"

	"github.com/ignatzorin/proposal-backend/internal/domain/entity"
)

// Секции, которые промпт просит вернуть, в порядке вывода.
const (
	SectionExecutiveSummary       = "EXECUTIVE_SUMMARY"
	SectionProblemStatement       = "PROBLEM_STATEMENT"
	SectionProposedSolution       = "PROPOSED_SOLUTION"
	SectionMethodologyAndTimeline = "METHODOLOGY_AND_TIMELINE"
	SectionBudgetAndAssumptions   = "BUDGET_AND_ASSUMPTIONS"
	SectionRiskMitigation         = "RISK_MITIGATION"
	SectionClosing                = "CLOSING"
)

type sectionDef struct {
	name        string
	instruction string
}

var promptSections = []sectionDef{
	{SectionExecutiveSummary, "Give a 2-4 sentence value hook."},
	{SectionProblemStatement, "Restate client's problem in 2-4 sentences."},
	{SectionProposedSolution, "Describe the proposed technical/business solution (3-6 short paragraphs)."},
	{SectionMethodologyAndTimeline, "Give phases and approximate durations (Phase 1, Phase 2...)."},
	{SectionBudgetAndAssumptions, "High-level cost estimate and assumptions."},
	{SectionRiskMitigation, "Top 3 risks and mitigations."},
	{SectionClosing, "Short call to action and next step."},
}

// SectionOrder возвращает имена секций промпта в порядке вывода.
func SectionOrder() []string {
	names := make([]string, len(promptSections))
	for i, s := range promptSections {
		names[i] = s.name
	}
	return names
}

const promptPreamble = `You are an expert enterprise proposal writer. Produce a client proposal using the exact markers shown below.
Do NOT add any extra commentary outside the markers. Use concise professional language.
`

// BuildPrompt формирует текст промпта. Пустые поля заменяются значениями по умолчанию.
func BuildPrompt(req entity.ProposalRequest) string {
	req = req.WithDefaults()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(promptPreamble)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Client: %s\n", req.ClientName)
	fmt.Fprintf(&b, "Project Type: %s\n", req.ProjectType)
	fmt.Fprintf(&b, "Budget: %s\n", req.Budget)
	fmt.Fprintf(&b, "Timeline: %s\n", req.Timeline)
	fmt.Fprintf(&b, "Goals: %s\n", req.Goals)
	fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	b.WriteString("\nReturn these sections (use these exact markers):\n")

	for i, s := range promptSections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Marker(s.name))
		b.WriteString("\n")
		b.WriteString(s.instruction)
		b.WriteString("\n")
	}

	return b.String()
}

// Marker возвращает маркер секции в формате ===NAME===.
func Marker(name string) string {
	return "===" + name + "==="
}
