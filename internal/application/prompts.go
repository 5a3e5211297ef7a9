package app

// Тексты ответов ядра. Кнопки быстрых ответов совпадают с тем,
// что бот принимает на соответствующем шаге.
const (
	msgGender            = "👋 Hello! Please select your gender."
	msgAlreadyRegistered = "Welcome back! You are already registered."
	msgAskAge            = "How old are you?"
	msgInvalidAge        = "Please enter a valid age."
	msgAskHobby          = "What are your hobbies?"
	msgAskLocation       = "Where are you located? Please send your current location."
	msgInvalidLocation   = "Invalid location. Please send your location."
	msgAskPhoto          = "Thank you! Please upload your profile photo now."
	msgAwaitingPhoto     = "Please upload a photo to continue."
	msgAskDescription    = "Your profile photo has been uploaded. Please add your profile description now."
	msgProfileSaved      = "Your profile has been saved."
	msgStartMatching     = "Start looking for a partner?"
	msgMatchFound        = "I have found a potential match for you. Are you interested?"
	msgLiked             = "You like this match! Congratulations!"
	msgDisliked          = "You are not interested in this match. Try another one!"
	msgInvalidDecision   = "Invalid selection. Please select \"Like\" or \"Dislike\"."
	msgMatchAgain        = "Do you want to find a partner again?"
	msgMatchingDone      = "Alright, come back whenever you want!"
	msgCancelled         = "The process has been cancelled. See you later!"
	msgNotRegistered     = "Sorry, you are not registered yet. Please start with /start."
	msgUseStart          = "Send /start to begin registration."
	msgAskNewDescription = "Please send your new profile description."
	msgDescriptionSaved  = "Your profile description has been updated."
	msgProfileEmpty      = "Your profile is empty."
)

// Ответы кнопок подтверждения
const (
	answerYes = "Yes"
	answerNo  = "No"
)
