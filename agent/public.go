package agent

import (
	"context"
	"fmt"

	"github.com/daMelody/budgeters"
	"github.com/daMelody/budgeters/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// BookLoader loads the book the experts answer about.
type BookLoader func() (*budgeters.Book, budgeters.Period, error)

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

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his monthly budget: what each account
			holds, which categories ran over their expected amount, and where the money went.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper returns the expert in charge of the user's budget book. The
// loader decides which period the expert reads; amounts are displayed in the
// given currency.
func NewBookkeeper(load BookLoader, currency string) *Expert {
	lib := []Function{
		bookFunc("list_accounts",
			"Lists every account of the current budget period with its computed value.",
			load, func(b *budgeters.Book, p budgeters.Period) string {
				return renderer.AccountsMarkdown(b.Accounts(), currency)
			}),
		bookFunc("list_categories",
			"Lists every budget category of the current period with its expected and actual totals.",
			load, func(b *budgeters.Book, p budgeters.Period) string {
				return renderer.CategoriesMarkdown(b.Categories(), currency)
			}),
		bookFunc("list_transactions",
			"Lists every transaction of the current budget period with its date, amount, account, category, and description.",
			load, func(b *budgeters.Book, p budgeters.Period) string {
				return renderer.TransactionsMarkdown(fmt.Sprintf("Transactions of %s", p), b.Transactions(), currency)
			}),
		searchFunc(load, currency),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's budget book:
		the accounts, the budget categories, and the transactions of the current month.
		Ask the Bookkeeper whenever you need a figure from the user's budget.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's monthly budget book.
				You know how to use the Tools to extract the accounts, the categories with
				their expected and actual totals, and the raw transactions.
				You are part of a team of experts, yours is everything about the user's
				budget. They might ask you questions in approximative language, figure out
				what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// bookFunc builds a no-argument tool that loads the book, recomputes its
// totals, and renders one markdown table.
func bookFunc(name, description string, load BookLoader, render func(*budgeters.Book, budgeters.Period) string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
			b, p, err := load()
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			b.Recompute()
			fresp.Response["output"] = render(b, p)
			return fresp
		},
	}
}

func searchFunc(load BookLoader, currency string) *Func {
	const name = "search_transactions"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Lists the transactions of the current budget period whose date, account,
			category, or description contains the query.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type:        genai.TypeString,
						Description: "The text to look for, matched against every field.",
					},
				},
				Required: []string{"query"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the matching transactions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
			query, ok := args["query"].(string)
			if !ok {
				fresp.Response["error"] = fmt.Sprintf("argument 'query' is not a string as expected but %T", args["query"])
				return fresp
			}
			b, _, err := load()
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			b.Recompute()
			title := fmt.Sprintf("Transactions matching %q", query)
			fresp.Response["output"] = renderer.TransactionsMarkdown(title, b.Search(query), currency)
			return fresp
		},
	}
}
