// ABOUTME: Response DTOs for the Dialogflow fulfillment webhook
// ABOUTME: Mirrors the Actions on Google rich response carried in payload.google

package responses

// Actions on Google constants used in list responses
const (
	OptionIntent        = "actions.intent.OPTION"
	OptionValueSpecType = "type.googleapis.com/google.actions.v2.OptionValueSpec"
)

// WebhookResponse is the Dialogflow v2 fulfillment response
type WebhookResponse struct {
	// FulfillmentText is the plain text reply for non-Google integrations
	FulfillmentText string `json:"fulfillmentText" doc:"Plain text reply"`

	// Payload carries the Actions on Google rich response
	Payload *Payload `json:"payload,omitempty" doc:"Platform specific payload"`
}

// Payload holds platform payloads keyed by platform
type Payload struct {
	Google GooglePayload `json:"google"`
}

// GooglePayload is the Actions on Google response
type GooglePayload struct {
	// ExpectUserResponse keeps the microphone open
	ExpectUserResponse bool `json:"expectUserResponse"`

	// RichResponse is the spoken and visual reply
	RichResponse RichResponse `json:"richResponse"`

	// SystemIntent asks the device to render a selectable list
	SystemIntent *SystemIntent `json:"systemIntent,omitempty"`
}

// RichResponse is a sequence of response items with optional chips
type RichResponse struct {
	Items       []RichItem   `json:"items"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// RichItem holds exactly one of its fields
type RichItem struct {
	SimpleResponse *SimpleResponse `json:"simpleResponse,omitempty"`
	BasicCard      *BasicCard      `json:"basicCard,omitempty"`
}

// SimpleResponse is spoken text with an optional different display text
type SimpleResponse struct {
	TextToSpeech string `json:"textToSpeech"`
	DisplayText  string `json:"displayText,omitempty"`
}

// BasicCard is a titled card with markdown text and link buttons
type BasicCard struct {
	Title         string   `json:"title,omitempty"`
	FormattedText string   `json:"formattedText,omitempty"`
	Buttons       []Button `json:"buttons,omitempty"`
}

// Button opens a URL
type Button struct {
	Title         string        `json:"title"`
	OpenURIAction OpenURIAction `json:"openUriAction"`
}

// OpenURIAction is the target of a button
type OpenURIAction struct {
	URI string `json:"uri"`
}

// Suggestion is a quick reply chip
type Suggestion struct {
	Title string `json:"title"`
}

// SystemIntent hands a selection list to the device
type SystemIntent struct {
	Intent string          `json:"intent"`
	Data   OptionValueSpec `json:"data"`
}

// OptionValueSpec describes the list to render
type OptionValueSpec struct {
	Type       string     `json:"@type"`
	ListSelect ListSelect `json:"listSelect"`
}

// ListSelect is a titled selection list
type ListSelect struct {
	Title string           `json:"title,omitempty"`
	Items []ListSelectItem `json:"items"`
}

// ListSelectItem is one selectable row; the key comes back with the Option intent
type ListSelectItem struct {
	OptionInfo  OptionInfo `json:"optionInfo"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
}

// OptionInfo identifies a list row
type OptionInfo struct {
	Key      string   `json:"key"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status string `json:"status" example:"ok" doc:"Service status"`
}
