package service

import (
	"time"

	"lumera-client/internal/dto"
	"lumera-client/pkg/chatbot"
)

// ConsultantTypingDelay simulates the bot composing a reply, as the stub UI
// always has.
const ConsultantTypingDelay = 1500 * time.Millisecond

type IChatbotService interface {
	Greeting() chatbot.Message
	QuickQuestions() []string
	Reply(req *dto.ChatMessageRequest) *dto.ChatMessageResponse
}

type chatbotService struct {
	consultant chatbot.IConsultant
	sleep      func(time.Duration)
}

func NewChatbotService(consultant chatbot.IConsultant) IChatbotService {
	return &chatbotService{
		consultant: consultant,
		sleep:      time.Sleep,
	}
}

func (s *chatbotService) Greeting() chatbot.Message {
	return s.consultant.Greeting()
}

func (s *chatbotService) QuickQuestions() []string {
	return s.consultant.QuickQuestions()
}

func (s *chatbotService) Reply(req *dto.ChatMessageRequest) *dto.ChatMessageResponse {
	s.sleep(ConsultantTypingDelay)
	msg := s.consultant.Reply(req.Message)
	return &dto.ChatMessageResponse{Reply: msg.Text, Sender: msg.Sender}
}
