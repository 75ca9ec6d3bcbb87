package constvars

const (
	DiagnosisSourceCache      = "cache"
	DiagnosisSourceGemini     = "gemini"
	DiagnosisSourceCompletion = "completion"
	DiagnosisSourceLocal      = "local"
)

const (
	AITestPrompt = "Hello, Gemini!"
)

const DiagnosisPromptFormat = `You are a medical assistant. A user reports: "%s".

Generate a professional HTML response with the following structure. Use <div> containers and <ol><li> for numbered bullet points. Each section must include exactly 6 points, and each point should begin with a <b>label</b> summarizing its meaning.

Use this reusable template:

---
<hr style='width: 100%%; border: none; border-top: 2px solid #f28b82; margin: 2rem 0;'>

<div>
  <h3 style='font-size:1.1rem; color:#003153; font-weight:bold;'>[Emoji + Title]</h3>
  <hr style='margin: 0.2rem 0 1rem 0; border: none; border-top: 1px solid #ccc;'>
  <ol style='list-style-type: decimal; padding-left: 20px;'>
    <li><b>[Label]:</b> [Point content]</li>
    ...
    <li><b>[Label]:</b> [Point content]</li>
  </ol>
</div>

---

Include these 5 sections:
1. 📋 Diagnosis Summary – (Condition, Cause, Symptom Relation, Body System, Severity, Uncertainty)
2. 💊 Recommended Medicines – (Primary Drug, Supplement, OTC, Usage, Duration, Consultation)
3. ⚠️ Possible Side Effects – (Common, Rare, Management, Critical Signs)
4. 🚫 Things to Avoid – (Food, Activities, Interactions, Triggers, Habits, Delay)
5. 📅 Follow-Up Suggestions – (Visit, Tests, Monitoring, Red Flags, Specialists, Tools)

Respond only with complete, valid HTML. No additional comments.`

const DiagnosisLanguageInstructionFormat = "\n\nWrite every label and point in %s."

var CommonSymptoms = []string{
	"Headache",
	"Fever",
	"Cough",
	"Fatigue",
	"Nausea",
	"Sore Throat",
	"Shortness of Breath",
	"Chest Pain",
	"Diarrhea",
	"Dizziness",
	"Loss of Smell",
	"Loss of Taste",
	"Runny Nose",
	"Sneezing",
	"Muscle Pain",
	"Back Pain",
}
