package config

// LLMProviderType defines supported LLM provider kinds
type LLMProviderType string

const (
	// LLMProviderTypeAnthropic is the Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	// LLMProviderTypeOpenAI is any OpenAI-compatible chat-completions API
	// (OpenAI itself, Groq, and self-hosted gateways via base_url)
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeRules is the deterministic keyword-rule provider used
	// as the last resort in the fallback chain
	LLMProviderTypeRules LLMProviderType = "rules"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeAnthropic, LLMProviderTypeOpenAI, LLMProviderTypeRules:
		return true
	default:
		return false
	}
}

// NotifierType defines supported notification transports
type NotifierType string

const (
	// NotifierTypeSlack posts advice to a Slack channel
	NotifierTypeSlack NotifierType = "slack"
	// NotifierTypeSMTP sends advice by email over SMTP
	NotifierTypeSMTP NotifierType = "smtp"
	// NotifierTypeLog writes advice to the process log (development)
	NotifierTypeLog NotifierType = "log"
)

// IsValid checks if the notifier type is valid
func (t NotifierType) IsValid() bool {
	return t == NotifierTypeSlack || t == NotifierTypeSMTP || t == NotifierTypeLog
}
