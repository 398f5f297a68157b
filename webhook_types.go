package asaas

import "encoding/json"

// Webhook send types.
const (
	WebhookSendSequentially    = "SEQUENTIALLY"
	WebhookSendNonSequentially = "NON_SEQUENTIALLY"
)

// Webhook is a webhook configuration of the account.
type Webhook struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Email        string   `json:"email"`
	Enabled      bool     `json:"enabled"`
	Interrupted  bool     `json:"interrupted"`
	APIVersion   int      `json:"apiVersion"`
	HasAuthToken bool     `json:"hasAuthToken"`
	SendType     string   `json:"sendType"`
	Events       []string `json:"events"`

	Extra map[string]json.RawMessage `json:"-"`
}

type webhookAlias Webhook

func (w *Webhook) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*webhookAlias)(w), &w.Extra)
}

// WebhookRequest creates or updates a webhook. Nil fields are omitted.
type WebhookRequest struct {
	Name        *string  `json:"name,omitempty"`
	URL         *string  `json:"url,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Enabled     *bool    `json:"enabled,omitempty"`
	Interrupted *bool    `json:"interrupted,omitempty"`
	APIVersion  *int     `json:"apiVersion,omitempty"`
	AuthToken   *string  `json:"authToken,omitempty"`
	SendType    *string  `json:"sendType,omitempty"`
	Events      []string `json:"events,omitempty"`
}
