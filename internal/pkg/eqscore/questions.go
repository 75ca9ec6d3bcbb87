package eqscore

type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Category Category `json:"category"`
}

type ScaleOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type CategoryDescription struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

var standardQuestions = []Question{
	{ID: 1, Question: "I can easily recognize my own emotions as they occur.", Category: SelfAwareness},
	{ID: 2, Question: "I can stay calm under pressure.", Category: SelfRegulation},
	{ID: 3, Question: "I am motivated to achieve my goals even when facing obstacles.", Category: Motivation},
	{ID: 4, Question: "I can easily understand how others are feeling.", Category: Empathy},
	{ID: 5, Question: "I am good at managing relationships and building rapport.", Category: SocialSkills},
	{ID: 6, Question: "I understand what triggers my emotions.", Category: SelfAwareness},
	{ID: 7, Question: "I can control my impulses effectively.", Category: SelfRegulation},
	{ID: 8, Question: "I remain optimistic even during difficult times.", Category: Motivation},
	{ID: 9, Question: "I can sense when someone needs emotional support.", Category: Empathy},
	{ID: 10, Question: "I handle conflicts well and find win-win solutions.", Category: SocialSkills},
}

var scaleOptions = []ScaleOption{
	{Value: 1, Label: "Strongly Disagree"},
	{Value: 2, Label: "Disagree"},
	{Value: 3, Label: "Neutral"},
	{Value: 4, Label: "Agree"},
	{Value: 5, Label: "Strongly Agree"},
}

var categoryDescriptions = []CategoryDescription{
	{Category: SelfAwareness, Description: "Understanding your own emotions"},
	{Category: SelfRegulation, Description: "Managing your emotional responses"},
	{Category: Motivation, Description: "Using emotions to achieve goals"},
	{Category: Empathy, Description: "Understanding others' emotions"},
	{Category: SocialSkills, Description: "Managing relationships effectively"},
}

// StandardQuestions returns a copy of the ten-question bank.
func StandardQuestions() []Question {
	questions := make([]Question, len(standardQuestions))
	copy(questions, standardQuestions)
	return questions
}

func ScaleOptions() []ScaleOption {
	options := make([]ScaleOption, len(scaleOptions))
	copy(options, scaleOptions)
	return options
}

func CategoryDescriptions() []CategoryDescription {
	descriptions := make([]CategoryDescription, len(categoryDescriptions))
	copy(descriptions, categoryDescriptions)
	return descriptions
}

// QuestionByID looks up a question of the standard bank.
func QuestionByID(id int) (Question, bool) {
	for _, q := range standardQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
