// ABOUTME: Mapper from assistant replies to the webhook response DTO
// ABOUTME: Keeps the Actions on Google payload shape out of the core packages

package mappers

import (
	"blog-search-api/api/dto/responses"
	"blog-search-api/core/domain"
)

// ToWebhookResponse converts a domain Reply to a WebhookResponse DTO
func ToWebhookResponse(reply *domain.Reply) *responses.WebhookResponse {
	if reply == nil {
		return nil
	}

	rich := responses.RichResponse{
		Items: []responses.RichItem{{
			SimpleResponse: &responses.SimpleResponse{
				TextToSpeech: reply.Speech,
				DisplayText:  reply.DisplayText,
			},
		}},
	}

	if reply.Card != nil {
		rich.Items = append(rich.Items, responses.RichItem{BasicCard: toBasicCard(reply.Card)})
	}

	for _, s := range reply.Suggestions {
		rich.Suggestions = append(rich.Suggestions, responses.Suggestion{Title: s})
	}

	google := responses.GooglePayload{
		ExpectUserResponse: true,
		RichResponse:       rich,
	}
	if reply.List != nil && len(reply.List.Items) > 0 {
		google.SystemIntent = toSystemIntent(reply.List)
	}

	return &responses.WebhookResponse{
		FulfillmentText: reply.Speech,
		Payload:         &responses.Payload{Google: google},
	}
}

func toBasicCard(card *domain.Card) *responses.BasicCard {
	out := &responses.BasicCard{
		Title:         card.Title,
		FormattedText: card.Text,
	}
	if card.Button != nil {
		out.Buttons = []responses.Button{{
			Title:         card.Button.Title,
			OpenURIAction: responses.OpenURIAction{URI: card.Button.URL},
		}}
	}
	return out
}

func toSystemIntent(list *domain.List) *responses.SystemIntent {
	items := make([]responses.ListSelectItem, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, responses.ListSelectItem{
			OptionInfo:  responses.OptionInfo{Key: item.Key},
			Title:       item.Title,
			Description: item.Description,
		})
	}

	return &responses.SystemIntent{
		Intent: responses.OptionIntent,
		Data: responses.OptionValueSpec{
			Type: responses.OptionValueSpecType,
			ListSelect: responses.ListSelect{
				Title: list.Title,
				Items: items,
			},
		},
	}
}
