package chatbot

// The consultant is a deterministic stand-in: the real AI backend has no
// contract yet, so replies are canned and depend only on the input.

type Message struct {
	Text   string `json:"text"`
	Sender string `json:"sender"` // "user" | "bot"
}

type IConsultant interface {
	Greeting() Message
	Reply(prompt string) Message
	QuickQuestions() []string
}

type stubConsultant struct{}

func NewStubConsultant() IConsultant {
	return &stubConsultant{}
}

func (c *stubConsultant) Greeting() Message {
	return Message{
		Text:   "Hi! I'm your AI skincare consultant. How can I help you today?",
		Sender: "bot",
	}
}

func (c *stubConsultant) Reply(prompt string) Message {
	if prompt == "" {
		return c.Greeting()
	}
	return Message{
		Text: "I'm here to help! Please note that the AI backend is currently being set up. " +
			"In the meantime, I can provide general skincare advice. What would you like to know?",
		Sender: "bot",
	}
}

func (c *stubConsultant) QuickQuestions() []string {
	return []string{
		"What products should I use for oily skin?",
		"How can I reduce acne?",
		"Best moisturizer for dry skin?",
		"How to create a skincare routine?",
		"What's the difference between serums and creams?",
	}
}
