package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ignatzorin/proposal-backend/internal/domain/entity"
	"github.com/ignatzorin/proposal-backend/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-backend/internal/validation"
)

// requestFlags поля формы. Флаги перекрывают значения из --from.
type requestFlags struct {
	clientName  string
	projectType string
	budget      string
	timeline    string
	goals       string
	tone        string
	from        string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.clientName, "client", "", "Client name (e.g. Citibank)")
	cmd.Flags().StringVar(&f.projectType, "project", "", "Project type (e.g. Website redesign)")
	cmd.Flags().StringVar(&f.budget, "budget", "", "Budget")
	cmd.Flags().StringVar(&f.timeline, "timeline", "", "Timeline")
	cmd.Flags().StringVar(&f.goals, "goals", "", "Goals")
	cmd.Flags().StringVar(&f.tone, "tone", "", "Tone: professional, concise or persuasive")
	cmd.Flags().StringVar(&f.from, "from", "", "Read the request from a YAML file")
}

// resolve собирает запрос. Значения по умолчанию не подставляются: это делает сборщик промпта.
func (f *requestFlags) resolve(cmd *cobra.Command) (entity.ProposalRequest, error) {
	var req entity.ProposalRequest
	if f.from != "" {
		loaded, err := loadRequestFile(f.from)
		if err != nil {
			return req, err
		}
		req = loaded
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	override("client", &req.ClientName, f.clientName)
	override("project", &req.ProjectType, f.projectType)
	override("budget", &req.Budget, f.budget)
	override("timeline", &req.Timeline, f.timeline)
	override("goals", &req.Goals, f.goals)
	if flags.Changed("tone") {
		req.Tone = valueobject.Tone(f.tone)
	}

	if err := validation.ValidateProposalRequest(req); err != nil {
		return req, err
	}
	if req.Tone != "" {
		tone, _ := valueobject.ParseTone(string(req.Tone))
		req.Tone = tone
	}
	return req, nil
}

func loadRequestFile(path string) (entity.ProposalRequest, error) {
	var req entity.ProposalRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read request file: %w", err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse request file %s: %w", path, err)
	}
	return req, nil
}
