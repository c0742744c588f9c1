// Package render форматирует предложения для терминала.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ignatzorin/proposal-backend/internal/domain/entity"
	"github.com/ignatzorin/proposal-backend/internal/proposal"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorError   = lipgloss.Color("#EF4444")

	styleHeading = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleError = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

const rawHeading = "Raw output"

// Renderer рисует результаты. Width 0 отключает перенос строк.
type Renderer struct {
	Width int
}

func (r Renderer) card() lipgloss.Style {
	if r.Width > 0 {
		return styleCard.Width(r.Width)
	}
	return styleCard
}

// Result выводит разделы карточками, затем сырой текст. Неструктурированный ответ выводится как есть.
func (r Renderer) Result(res proposal.ParseResult, raw string) string {
	var b strings.Builder

	if sections, ok := res.Sections(); ok {
		for _, s := range sections.Sections() {
			b.WriteString(styleHeading.Render(proposal.SectionTitle(s.Name)))
			b.WriteString("\n")
			b.WriteString(r.card().Render(s.Body))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(styleHeading.Render(rawHeading))
	b.WriteString("\n")
	b.WriteString(r.card().Render(raw))
	b.WriteString("\n")
	return b.String()
}

// Saved выводит список сохранённых предложений, новые сверху.
func (r Renderer) Saved(items []entity.SavedProposal) string {
	if len(items) == 0 {
		return styleMuted.Render("No saved proposals yet.") + "\n"
	}

	var b strings.Builder
	for _, p := range items {
		title := fmt.Sprintf("%s · %s", p.ClientName, p.ProjectType)
		b.WriteString(styleHeading.Render(title))
		b.WriteString(" ")
		b.WriteString(styleMuted.Render(fmt.Sprintf("#%d %s", p.ID, p.CreatedAt.Format("2006-01-02 15:04"))))
		b.WriteString("\n")
		b.WriteString(r.card().Render(preview(p.Content, 240)))
		b.WriteString("\n\n")
	}
	return b.String()
}

// Error форматирует ошибку для stderr.
func (r Renderer) Error(err error) string {
	return styleError.Render(err.Error()) + "\n"
}

// Note короткое служебное сообщение.
func (r Renderer) Note(msg string) string {
	return styleMuted.Render(msg) + "\n"
}

func preview(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
