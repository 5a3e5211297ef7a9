package entity

// Prompt ответ ядра на входящее событие: текст и кнопки быстрых ответов
type Prompt struct {
	Text         string
	QuickReplies []string
}

// NewPrompt создаёт простой текстовый ответ без кнопок.
func NewPrompt(text string) Prompt {
	return Prompt{Text: text}
}

// NewPromptWithReplies создаёт ответ с клавиатурой быстрых ответов.
func NewPromptWithReplies(text string, replies ...string) Prompt {
	return Prompt{Text: text, QuickReplies: replies}
}
