// ABOUTME: Request DTOs for the Dialogflow fulfillment webhook
// ABOUTME: Maps the platform payload onto a routed intent

package requests

import (
	"strconv"
	"strings"

	"blog-search-api/core/domain"
)

// Dialogflow intent display names
const (
	IntentNameWelcome      = "Welcome Intent"
	IntentNameFallback     = "Fallback Intent"
	IntentNameFindPost     = "Find Post Intent"
	IntentNameFindMultiple = "Find Multiple Posts Intent"
	IntentNameFindByID     = "Find By ID Intent"
	IntentNameOptionSelect = "Option Intent"
)

// ScreenOutputCapability marks devices that can render cards and lists
const ScreenOutputCapability = "actions.capability.SCREEN_OUTPUT"

const (
	optionArgumentName = "OPTION"
	topicParameterName = "topic"
)

var intentKinds = map[string]domain.IntentKind{
	IntentNameWelcome:      domain.IntentWelcome,
	IntentNameFallback:     domain.IntentFallback,
	IntentNameFindPost:     domain.IntentFindSinglePost,
	IntentNameFindMultiple: domain.IntentFindMultiplePosts,
	IntentNameFindByID:     domain.IntentFindPostByID,
	IntentNameOptionSelect: domain.IntentOptionSelected,
}

// WebhookRequest is the Dialogflow v2 fulfillment request
type WebhookRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	// ResponseID identifies the detect intent response
	ResponseID string `json:"responseId,omitempty" doc:"Unique id of the detect intent response"`

	// Session is the conversation session name
	Session string `json:"session,omitempty" doc:"Conversation session name"`

	// QueryResult is the matched intent and its parameters
	QueryResult QueryResult `json:"queryResult" doc:"Result of the conversational query"`

	// OriginalDetectIntentRequest is the payload from the Assistant platform
	OriginalDetectIntentRequest *OriginalDetectIntentRequest `json:"originalDetectIntentRequest,omitempty" doc:"Platform request that triggered the intent"`
}

// QueryResult holds the matched intent
type QueryResult struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	QueryText      string                 `json:"queryText,omitempty" doc:"Original user utterance"`
	LanguageCode   string                 `json:"languageCode,omitempty"`
	Parameters     map[string]interface{} `json:"parameters,omitempty" doc:"Extracted intent parameters"`
	Intent         IntentRef              `json:"intent" doc:"Matched intent"`
	OutputContexts []OutputContext        `json:"outputContexts,omitempty"`
}

// IntentRef names the matched intent
type IntentRef struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName" doc:"Intent display name, e.g. Find Post Intent"`
}

// OutputContext is an active Dialogflow context
type OutputContext struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name       string                 `json:"name"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

// OriginalDetectIntentRequest wraps the Actions on Google payload
type OriginalDetectIntentRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Source  string           `json:"source,omitempty"`
	Version string           `json:"version,omitempty"`
	Payload AssistantPayload `json:"payload,omitempty"`
}

// AssistantPayload is the subset of the Actions on Google request we read
type AssistantPayload struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Surface *Surface         `json:"surface,omitempty"`
	Inputs  []AssistantInput `json:"inputs,omitempty"`
}

// Surface lists device capabilities
type Surface struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Capabilities []Capability `json:"capabilities,omitempty"`
}

// Capability is a single device capability
type Capability struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name string `json:"name"`
}

// AssistantInput is one user input with its arguments
type AssistantInput struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Intent    string     `json:"intent,omitempty"`
	Arguments []Argument `json:"arguments,omitempty"`
}

// Argument is a named input argument
type Argument struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name      string `json:"name"`
	TextValue string `json:"textValue,omitempty"`
}

// ToIntent maps the request onto a routed intent. Unknown intent names
// are treated as the fallback.
func (r *WebhookRequest) ToIntent() domain.Intent {
	kind, ok := intentKinds[strings.TrimSpace(r.QueryResult.Intent.DisplayName)]
	if !ok {
		kind = domain.IntentFallback
	}

	intent := domain.Intent{
		Kind:      kind,
		HasScreen: r.HasScreen(),
	}

	switch kind {
	case domain.IntentFindSinglePost, domain.IntentFindMultiplePosts:
		intent.Topic = r.parameter(topicParameterName)
	case domain.IntentFindPostByID:
		intent.PostID = r.parameter(topicParameterName)
	case domain.IntentOptionSelected:
		intent.PostID = r.selectedOption()
	}

	return intent
}

// HasScreen reports whether the device can show cards and lists
func (r *WebhookRequest) HasScreen() bool {
	if r.OriginalDetectIntentRequest == nil || r.OriginalDetectIntentRequest.Payload.Surface == nil {
		return false
	}
	for _, c := range r.OriginalDetectIntentRequest.Payload.Surface.Capabilities {
		if c.Name == ScreenOutputCapability {
			return true
		}
	}
	return false
}

// selectedOption returns the key of the list item the user picked
func (r *WebhookRequest) selectedOption() string {
	if r.OriginalDetectIntentRequest != nil {
		for _, input := range r.OriginalDetectIntentRequest.Payload.Inputs {
			for _, arg := range input.Arguments {
				if arg.Name == optionArgumentName && arg.TextValue != "" {
					return arg.TextValue
				}
			}
		}
	}

	for _, c := range r.QueryResult.OutputContexts {
		if v := paramString(c.Parameters[optionArgumentName]); v != "" {
			return v
		}
	}
	return ""
}

func (r *WebhookRequest) parameter(name string) string {
	return paramString(r.QueryResult.Parameters[name])
}

// paramString renders a Dialogflow parameter value as text. List values
// are joined with commas, so "docker,kubernetes" is both the query and the
// topic named back to the user.
func paramString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := paramString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}
