// Package narrator adds an optional one-line comment to a result screen,
// generated by Gemini.
package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tatianab/budget-survival/internal/models"
)

//go:embed prompts/narrate_choice.txt
var narrateChoicePrompt string

const modelName = "gemini-2.5-flash"

var promptTemplate = template.Must(template.New("narrate_choice").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(narrateChoicePrompt))

type Narrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func New(ctx context.Context, apiKey string) (*Narrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.9)
	model.SetMaxOutputTokens(80)
	return &Narrator{
		client: client,
		model:  model,
	}, nil
}

func (n *Narrator) Close() {
	n.client.Close()
}

// Narrate comments on a choice that has already been applied to p.
func (n *Narrator) Narrate(ctx context.Context, event models.Event, choice models.Choice, p *models.PlayerState) (string, error) {
	prompt, err := buildPrompt(event, choice, p)
	if err != nil {
		return "", err
	}

	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return cleanLine(string(text)), nil
}

func buildPrompt(event models.Event, choice models.Choice, p *models.PlayerState) (string, error) {
	data := struct {
		Day       int
		Budget    float64
		Happiness int
		Comfort   int
		Inventory []string
		Event     string
		Choice    string
	}{
		Day:       p.Day,
		Budget:    p.Budget,
		Happiness: p.Happiness,
		Comfort:   p.Comfort,
		Inventory: p.Inventory.Items(),
		Event:     event.Description,
		Choice:    choice.Label,
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// cleanLine keeps the first non-empty line and strips wrapping quotes.
func cleanLine(s string) string {
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.Trim(line, "\"„”")
	}
	return ""
}
