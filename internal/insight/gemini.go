package insight

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

const investmentsPrompt = "Suggest exactly 3 diverse, beginner-friendly investment options for a small amount " +
	"of money (around 100-500 rupees) saved from transaction round-ups. The target audience is new to investing."

const rewardsPrompt = "Based on these recent purchases from a user in India (%s), suggest exactly 3 personalized " +
	"rewards or cashback offers that would be appealing. For each suggestion, provide the vendor, a short offer " +
	"title, and a brief detail. The user is focused on saving money."

var investmentSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        genai.TypeString,
				Description: `The name of the investment asset, e.g., "Nifty 50 Index Fund" or "Reliance Industries Stock".`,
			},
			"type": {
				Type:        genai.TypeString,
				Enum:        []string{"Stock", "Mutual Fund", "ETF", "Crypto"},
				Description: "The type of the investment asset.",
			},
			"description": {
				Type:        genai.TypeString,
				Description: "A brief, one-sentence description of the investment suitable for a beginner.",
			},
			"riskLevel": {
				Type:        genai.TypeString,
				Enum:        []string{"Low", "Medium", "High"},
				Description: "The general risk level associated with this investment.",
			},
		},
		Required: []string{"name", "type", "description", "riskLevel"},
	},
}

var rewardsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"vendor": {
				Type:        genai.TypeString,
				Description: "The name of the vendor or store where the transaction was made.",
			},
			"offer": {
				Type:        genai.TypeString,
				Description: "A short, catchy headline for the offer, e.g., '10% Cashback' or 'Free Coffee'.",
			},
			"details": {
				Type:        genai.TypeString,
				Description: "A one-sentence description of the offer and why it's relevant to the user's spending.",
			},
		},
		Required: []string{"vendor", "offer", "details"},
	},
}

// Generator returns the raw JSON text produced for prompt under schema.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// Gemini implements Suggester on top of a Generator.
type Gemini struct {
	gen Generator
}

func NewGemini(gen Generator) *Gemini {
	return &Gemini{gen: gen}
}

func (g *Gemini) SuggestInvestments(ctx context.Context) ([]InvestmentSuggestion, error) {
	raw, err := g.gen.GenerateJSON(ctx, investmentsPrompt, investmentSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: generating investments: %v", ErrSuggestionUnavailable, err)
	}

	return decodeSuggestions[InvestmentSuggestion](raw)
}

func (g *Gemini) SuggestRewards(ctx context.Context, vendors []string) ([]RewardSuggestion, error) {
	prompt := fmt.Sprintf(rewardsPrompt, strings.Join(vendors, ", "))

	raw, err := g.gen.GenerateJSON(ctx, prompt, rewardsSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: generating rewards: %v", ErrSuggestionUnavailable, err)
	}

	return decodeSuggestions[RewardSuggestion](raw)
}

// GenAI is the Generator backed by the Gemini API.
type GenAI struct {
	client *genai.Client
	model  string
}

func NewGenAI(ctx context.Context, apiKey, model string) (*GenAI, error) {
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GenAI{client: client, model: model}, nil
}

func (g *GenAI) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
