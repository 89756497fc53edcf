package content

// Message is one turn of a chat-driven generation conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries the business requirements for one generation run.
// Created once per call and never mutated.
type Request struct {
	Industry            string    `json:"industry"`
	Style               string    `json:"style"`
	WebsiteName         string    `json:"websiteName"`
	Description         string    `json:"description"`
	TargetAudience      string    `json:"targetAudience,omitempty"`
	UniqueSellingPoints string    `json:"uniqueSellingPoints,omitempty"`
	History             []Message `json:"history,omitempty"`
}

// Name returns the website name, or a placeholder if the request left it
// blank, so fallback content never renders an empty business name.
func (r Request) Name() string {
	if r.WebsiteName == "" {
		return "Your Business"
	}
	return r.WebsiteName
}
