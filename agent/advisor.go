package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/finchdev/finch"
	"github.com/finchdev/finch/period"
	"github.com/finchdev/finch/renderer"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Analyse sentiment of user request, he is here primarily to understand his monthly budget,
			where his money goes, and how to save more.
			If he is angry try to understand why, and seek for a clear user approval.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you already know his income, expenses and budget for the month,
			check with the Analyst first to understand them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded in Google Search, for questions
// that need fresh outside information such as prices or saving strategies.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		very well aware of prices, products and general money-saving strategies.
		Ask the Researcher whenever you need recent or grounding information
		from outside the user's own finances.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance research, you can search and find about anything
			related to prices, subscriptions, household budgets and saving strategies.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's finance data. Its
// tools read the live service through client and session.
func NewAnalyst(client *finch.Client, session *finch.Session) *Expert {

	lib := []Function{monthDashboard(client, session), categories(session)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has read access to the user's finance data:
		income, expenses, remaining budget, overspending alerts and savings
		recommendations, for any month.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's monthly finances.
				You know how to use the Tools to extract relevant information about the user's
				income, expenses and budget.
				You are part of a team of experts, yours is everything about the user's own money.
				They might ask you questions about it, pardon their approximative language and
				figure out what they meant.

				Use the available tools to get information about the user's finances
				  - the full picture of any month
				  - the list of expense categories and their budget allocations
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// monthDashboard exposes the full month view as a tool.
func monthDashboard(client *finch.Client, session *finch.Session) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "MonthDashboard",
			Description: `MonthDashboard returns the user's full picture for one month:
			total income, total expenses, remaining budget, per-category breakdown,
			overspending alerts, the individual income and expense entries, and the
			savings recommendations.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": {
						Type:        genai.TypeString,
						Description: "The month to report on, in YYYY-MM format. The current month is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the month.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			m, err := parseMonth(args)
			if err != nil {
				return errResponse(id, "MonthDashboard", err)
			}
			syncer := finch.NewSyncer(client, session)
			snap := syncer.Refresh(ctx, m, syncer.Begin())
			return &genai.FunctionResponse{
				ID:   id,
				Name: "MonthDashboard",
				Response: map[string]any{
					"output": renderer.DashboardMarkdown(session.Categories, snap),
				},
			}
		},
	}
}

// categories exposes the category reference data as a tool.
func categories(session *finch.Session) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Categories",
			Description: `Categories lists the expense categories with their icons and
			the share of the monthly budget allocated to each.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the expense categories.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Categories",
				Response: map[string]any{
					"output": renderer.CategoriesMarkdown(session.Categories),
				},
			}
		},
	}
}

func parseMonth(args map[string]any) (period.Month, error) {
	imonth, hasMonth := args["month"]
	if !hasMonth {
		return period.This(), nil
	}
	smonth, ok := imonth.(string)
	if !ok {
		return period.This(), fmt.Errorf("argument 'month' is not a string as expected but %T", imonth)
	}

	m, err := period.Parse(smonth)
	if err != nil {
		return period.This(), fmt.Errorf("argument 'month' must be a YYYY-MM month, got %q", smonth)
	}
	return m, nil
}
