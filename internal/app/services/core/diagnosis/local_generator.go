package diagnosis

import (
	"bytes"
	"html/template"
)

type reportPoint struct {
	Label   string
	Content string
}

type reportSection struct {
	Title  string
	Points []reportPoint
}

const reportTemplate = `
<hr style='width: 100%; border: none; border-top: 2px solid #f28b82; margin: 2rem 0;'>
{{range .}}
<div>
  <h3 style='font-size:1.1rem; color:#003153; font-weight:bold;'>{{.Title}}</h3>
  <hr style='margin: 0.2rem 0 1rem 0; border: none; border-top: 1px solid #ccc;'>
  <ol style='list-style-type: decimal; padding-left: 20px;'>
{{- range .Points}}
    <li><b>{{.Label}}:</b> {{.Content}}</li>
{{- end}}
  </ol>
</div>
{{end}}`

var parsedReportTemplate = template.Must(template.New("local-diagnosis").Parse(reportTemplate))

// LocalGenerator renders the fixed five-section report without any remote call.
type LocalGenerator struct{}

func NewLocalGenerator() *LocalGenerator {
	return &LocalGenerator{}
}

// Generate embeds the escaped symptom text in the first point of the report.
func (g *LocalGenerator) Generate(symptoms string) (string, error) {
	var buf bytes.Buffer
	if err := parsedReportTemplate.Execute(&buf, localSections(symptoms)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func localSections(symptoms string) []reportSection {
	return []reportSection{
		{
			Title: "📋 Diagnosis Summary",
			Points: []reportPoint{
				{"Likely Condition", "Based on symptoms (" + symptoms + "), this appears to be a common viral infection"},
				{"Primary Cause", "Viral infection affecting respiratory system"},
				{"Symptom Relation", "Symptoms are consistent with upper respiratory tract infection"},
				{"Body System", "Respiratory and immune systems primarily affected"},
				{"Severity Level", "Mild to moderate - monitor symptoms closely"},
				{"Recommendation", "Rest, hydration, and symptom monitoring advised"},
			},
		},
		{
			Title: "💊 Recommended Medicines",
			Points: []reportPoint{
				{"Pain Relief", "Paracetamol 500mg every 6-8 hours as needed"},
				{"Cough Relief", "Honey and warm water or OTC cough syrup"},
				{"Hydration", "Increase fluid intake - water, herbal teas"},
				{"Usage", "Take medications with food to avoid stomach upset"},
				{"Duration", "Continue for 3-5 days or until symptoms improve"},
				{"Consultation", "See doctor if symptoms worsen or persist beyond 7 days"},
			},
		},
		{
			Title: "⚠️ Possible Side Effects",
			Points: []reportPoint{
				{"Mild", "Drowsiness from cough medications"},
				{"Stomach", "Nausea if medications taken on empty stomach"},
				{"Allergic", "Rare - rash, swelling, difficulty breathing"},
				{"Management", "Take with food, stay hydrated"},
				{"Stop If", "Severe allergic reaction, difficulty breathing"},
				{"Seek Help", "Emergency care for severe reactions"},
			},
		},
		{
			Title: "🚫 Things to Avoid",
			Points: []reportPoint{
				{"Foods", "Avoid dairy if experiencing congestion"},
				{"Activities", "Avoid strenuous exercise until recovered"},
				{"Substances", "Limit alcohol and caffeine intake"},
				{"Environment", "Avoid cold air and polluted areas"},
				{"Habits", "No smoking - worsens respiratory symptoms"},
				{"Delays", "Don't delay medical care if symptoms worsen"},
			},
		},
		{
			Title: "📅 Follow-Up Suggestions",
			Points: []reportPoint{
				{"Check-up", "See doctor if no improvement in 5-7 days"},
				{"Tests", "Blood test may be needed if fever persists"},
				{"Monitoring", "Track temperature and symptom severity daily"},
				{"Warning Signs", "High fever (>101.5°F), difficulty breathing"},
				{"Specialist", "ENT referral if symptoms become chronic"},
				{"Prevention", "Maintain good hygiene, adequate sleep"},
			},
		},
	}
}
