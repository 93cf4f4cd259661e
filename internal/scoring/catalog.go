package scoring

import (
	"fmt"

	"github.com/gutcheck/backend/internal/models"
)

// CategoryWeights is the share of the 100-point overall score carried by each
// category. Part of the locked scoring version; changing any value requires a
// new Version string.
var CategoryWeights = map[models.Category]float64{
	models.CategoryPersonalBackground:    20,
	models.CategoryEntrepreneurialSkills: 25,
	models.CategoryResources:             20,
	models.CategoryBehavioralMetrics:     15,
	models.CategoryGrowthVision:          20,
}

// questionsPerCategory is fixed by the questionnaire design.
const questionsPerCategory = 5

// Catalog is the full 25-question assessment in presentation order.
var Catalog = []models.Question{
	// ── Section 1: Personal and Professional Background ──────────────────

	{
		ID:       "q1",
		Text:     "What stage is your business currently in?",
		Category: models.CategoryPersonalBackground,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Idea/Concept stage", "Early operations with a few customers", "Established and generating consistent revenue"},
		Weight:   4,
		Section:  "Personal and Professional Background",
	},
	{
		ID:       "q2",
		Text:     "Do you currently have any team members or collaborators?",
		Category: models.CategoryPersonalBackground,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Solo entrepreneur", "Small team (2–5 people)", "Larger team (6+ people)"},
		Weight:   4,
		Section:  "Personal and Professional Background",
	},
	{
		ID:            "q3",
		Text:          "Tell me about your entrepreneurial journey so far.",
		SubHeading:    "What inspired you to start your business, and what progress have you made?",
		Category:      models.CategoryPersonalBackground,
		Type:          models.TypeOpenEnded,
		Weight:        4,
		Section:       "Personal and Professional Background",
		MinCharacters: 100,
		RubricKey:     "entrepreneurialJourney",
	},
	{
		ID:       "q4",
		Text:     "Have you previously tried to start a business?",
		Category: models.CategoryPersonalBackground,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Yes – it's still running", "Yes – it failed", "No – this is my first"},
		Weight:   4,
		Section:  "Personal and Professional Background",
	},
	{
		ID:       "q5",
		Text:     "What best describes your motivation for starting your business?",
		Category: models.CategoryPersonalBackground,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"I saw a market opportunity", "I needed income to support myself or my family", "I wanted independence or flexibility", "Other"},
		Weight:   4,
		Section:  "Personal and Professional Background",
	},

	// ── Section 2: Entrepreneurial Skills and Readiness ──────────────────

	{
		ID:       "q6",
		Text:     "How would you rate your financial literacy?",
		Category: models.CategoryEntrepreneurialSkills,
		Type:     models.TypeMultipleChoice,
		Options: []string{
			"Excellent: I can confidently manage budgets, forecasts, and financial analysis",
			"Good: I understand basic budgeting and cash flow management",
			"Fair: I need help understanding financial documents",
			"Poor: I avoid managing finances whenever possible",
		},
		Weight:  5,
		Section: "Entrepreneurial Skills and Readiness",
	},
	{
		ID:       "q7",
		Text:     "How frequently do you dedicate time to professional learning (e.g., reading business books, taking courses)?",
		Category: models.CategoryEntrepreneurialSkills,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Daily", "Weekly", "Monthly", "Rarely or never"},
		Weight:   5,
		Section:  "Entrepreneurial Skills and Readiness",
	},
	{
		ID:            "q8",
		Text:          "Describe a time when you faced a major business challenge and how you addressed it.",
		SubHeading:    "How did you approach the challenge, and what was the outcome?",
		Category:      models.CategoryEntrepreneurialSkills,
		Type:          models.TypeOpenEnded,
		Weight:        5,
		Section:       "Entrepreneurial Skills and Readiness",
		MinCharacters: 100,
		RubricKey:     "businessChallenge",
	},
	{
		ID:       "q9",
		Text:     "Which of the following milestones have you completed?",
		Category: models.CategoryEntrepreneurialSkills,
		Type:     models.TypeMultiSelect,
		Options: []string{
			"Business registration",
			"EIN or tax ID obtained",
			"Business bank account opened",
			"First paying customer",
			"Applied for a loan, grant, or accelerator",
		},
		Weight:  5,
		Section: "Entrepreneurial Skills and Readiness",
	},
	{
		ID:       "q10",
		Text:     "Do you feel you have the skills to build a successful business?",
		Category: models.CategoryEntrepreneurialSkills,
		Type:     models.TypeLikert,
		Weight:   5,
		Section:  "Entrepreneurial Skills and Readiness",
	},

	// ── Section 3: Resources and Challenges ──────────────────────────────

	{
		ID:       "q11",
		Text:     "What is the primary challenge you're facing in your entrepreneurial journey?",
		Category: models.CategoryResources,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Lack of funding", "Limited mentorship or guidance", "Access to customers/markets", "Difficulty scaling operations", "Other"},
		Weight:   4,
		Section:  "Resources and Challenges",
	},
	{
		ID:       "q12",
		Text:     "Do you have access to startup capital or funding?",
		Category: models.CategoryResources,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Yes, and it's sufficient for my current needs", "Yes, but it's not enough for my goals", "No, I am entirely self-funded"},
		Weight:   4,
		Section:  "Resources and Challenges",
	},
	{
		ID:       "q13",
		Text:     "How strong is your professional network in supporting your business growth?",
		Category: models.CategoryResources,
		Type:     models.TypeMultipleChoice,
		Options: []string{
			"Very strong: I can access mentors, investors, and industry contacts",
			"Moderate: I have a few key connections",
			"Weak: I need to build my network significantly",
		},
		Weight:  4,
		Section: "Resources and Challenges",
	},
	{
		ID:       "q14",
		Text:     "Do you believe there are good opportunities to start or grow a business in your area?",
		Category: models.CategoryResources,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Yes", "No"},
		Weight:   4,
		Section:  "Resources and Challenges",
	},
	{
		ID:       "q15",
		Text:     "How often do you track progress toward your business goals?",
		Category: models.CategoryResources,
		Type:     models.TypeMultipleChoice,
		Options: []string{
			"Weekly – I review goals and progress regularly",
			"Monthly – I check in on big milestones",
			"Occasionally – I track informally when I remember",
			"Rarely or never – I focus on daily tasks more than long-term plans",
		},
		Weight:  4,
		Section: "Resources and Challenges",
	},

	// ── Section 4: Behavioral and Commitment Metrics ─────────────────────

	{
		ID:       "q16",
		Text:     "How many hours per week do you dedicate to your business?",
		Category: models.CategoryBehavioralMetrics,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"1–10 hours", "11–20 hours", "21–40 hours", "More than 40 hours"},
		Weight:   3,
		Section:  "Behavioral and Commitment Metrics",
	},
	{
		ID:       "q17",
		Text:     "Do you have a regular health or fitness routine?",
		Category: models.CategoryBehavioralMetrics,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Yes, I prioritize physical well-being", "Somewhat, I exercise occasionally", "No, I do not have a fitness routine"},
		Weight:   3,
		Section:  "Behavioral and Commitment Metrics",
	},
	{
		ID:            "q18",
		Text:          "How do you typically handle setbacks?",
		SubHeading:    "Can you describe how you recover from setbacks and adapt your strategy?",
		Category:      models.CategoryBehavioralMetrics,
		Type:          models.TypeOpenEnded,
		Weight:        3,
		Section:       "Behavioral and Commitment Metrics",
		MinCharacters: 100,
		RubricKey:     "setbacksResilience",
	},
	{
		ID:       "q19",
		Text:     "Does fear of failure prevent you from taking bold steps in your business?",
		Category: models.CategoryBehavioralMetrics,
		Type:     models.TypeLikert,
		Weight:   3,
		Section:  "Behavioral and Commitment Metrics",
	},
	{
		ID:       "q20",
		Text:     "Have you ever shut down a business and tried again?",
		Category: models.CategoryBehavioralMetrics,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Yes – and restarted", "Yes – but haven't restarted yet", "No"},
		Weight:   3,
		Section:  "Behavioral and Commitment Metrics",
	},

	// ── Section 5: Growth and Vision ─────────────────────────────────────

	{
		ID:       "q21",
		Text:     "Where do you see your business in five years?",
		Category: models.CategoryGrowthVision,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"A stable, small-scale operation", "A growing business with regional impact", "A scalable business with national or global reach"},
		Weight:   4,
		Section:  "Growth and Vision",
	},
	{
		ID:       "q22",
		Text:     "How do you plan to fund your business growth?",
		Category: models.CategoryGrowthVision,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Bootstrapping with personal funds", "Seeking investments (e.g., angel, VC)", "Applying for loans or grants", "Unsure"},
		Weight:   4,
		Section:  "Growth and Vision",
	},
	{
		ID:            "q23",
		Text:          "What is your ultimate vision for your business?",
		SubHeading:    "Describe the impact you hope your business will have on your customers or industry.",
		Category:      models.CategoryGrowthVision,
		Type:          models.TypeOpenEnded,
		Weight:        4,
		Section:       "Growth and Vision",
		MinCharacters: 100,
		RubricKey:     "finalVision",
	},
	{
		ID:       "q24",
		Text:     "Do you expect your business to create jobs in the next 3 years?",
		Category: models.CategoryGrowthVision,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Yes – 1 to 5 jobs", "Yes – more than 6 jobs", "No", "Not sure"},
		Weight:   4,
		Section:  "Growth and Vision",
	},
	{
		ID:       "q25",
		Text:     "Is your product or service new or different from what's commonly available in your market?",
		Category: models.CategoryGrowthVision,
		Type:     models.TypeMultipleChoice,
		Options:  []string{"Yes", "No", "Not sure"},
		Weight:   4,
		Section:  "Growth and Vision",
	},
}

// scoringMaps assigns a raw 0–5 score to each answer option, indexed in
// parallel with the question's Options slice. Part of the locked scoring
// version.
var scoringMaps = map[string][]int{
	"q1":  {3, 4, 5},
	"q2":  {3, 4, 5},
	"q4":  {5, 4, 3},
	"q5":  {5, 4, 3, 2},
	"q6":  {5, 4, 3, 2},
	"q7":  {5, 4, 3, 2},
	"q11": {2, 3, 4, 5, 0},
	"q12": {5, 4, 3},
	"q13": {5, 4, 3},
	"q14": {5, 3},
	"q15": {5, 4, 3, 2},
	"q16": {2, 3, 4, 5},
	"q17": {5, 4, 3},
	"q20": {5, 4, 3},
	"q21": {3, 4, 5},
	"q22": {3, 5, 4, 2},
	"q24": {4, 5, 3, 2},
	"q25": {5, 3, 2},
}

// reverseScored marks likert questions where agreement indicates weakness,
// so the raw value v becomes 6-v before weighting.
var reverseScored = map[string]bool{
	"q19": true,
}

var questionsByID = func() map[string]*models.Question {
	m := make(map[string]*models.Question, len(Catalog))
	for i := range Catalog {
		m[Catalog[i].ID] = &Catalog[i]
	}
	return m
}()

// QuestionByID returns the catalog question for id, or nil if unknown.
func QuestionByID(id string) *models.Question {
	return questionsByID[id]
}

// QuestionsInCategory returns the category's questions in catalog order.
func QuestionsInCategory(c models.Category) []models.Question {
	out := make([]models.Question, 0, questionsPerCategory)
	for _, q := range Catalog {
		if q.Category == c {
			out = append(out, q)
		}
	}
	return out
}

// ValidateCatalog checks the internal consistency of the question catalog and
// its scoring tables. Called once at startup; a failure means the binary was
// built with a broken table and must not serve traffic.
func ValidateCatalog() error {
	if len(Catalog) != 25 {
		return fmt.Errorf("catalog has %d questions, want 25", len(Catalog))
	}

	var totalWeight float64
	for _, w := range CategoryWeights {
		totalWeight += w
	}
	if totalWeight != 100 {
		return fmt.Errorf("category weights sum to %v, want 100", totalWeight)
	}

	perCategory := make(map[models.Category]int)
	seen := make(map[string]bool)
	for _, q := range Catalog {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
		if !models.ValidCategories[q.Category] {
			return fmt.Errorf("question %s: unknown category %q", q.ID, q.Category)
		}
		perCategory[q.Category]++

		if q.Weight != CategoryWeights[q.Category]/questionsPerCategory {
			return fmt.Errorf("question %s: weight %v does not match category share %v",
				q.ID, q.Weight, CategoryWeights[q.Category]/questionsPerCategory)
		}

		switch q.Type {
		case models.TypeMultipleChoice:
			sm, ok := scoringMaps[q.ID]
			if !ok {
				return fmt.Errorf("question %s: no scoring map", q.ID)
			}
			if len(sm) != len(q.Options) {
				return fmt.Errorf("question %s: scoring map has %d entries for %d options", q.ID, len(sm), len(q.Options))
			}
			for i, v := range sm {
				if v < 0 || v > 5 {
					return fmt.Errorf("question %s: option %d scores %d, outside 0-5", q.ID, i, v)
				}
			}
		case models.TypeMultiSelect:
			if len(q.Options) == 0 {
				return fmt.Errorf("question %s: multi-select with no options", q.ID)
			}
		case models.TypeOpenEnded:
			if q.MinCharacters <= 0 {
				return fmt.Errorf("question %s: open-ended without a minimum length", q.ID)
			}
			if q.RubricKey == "" {
				return fmt.Errorf("question %s: open-ended without a rubric", q.ID)
			}
		case models.TypeLikert:
			// No options and no map; scored directly from the scale value.
		default:
			return fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
		}
	}

	for c, n := range perCategory {
		if n != questionsPerCategory {
			return fmt.Errorf("category %s has %d questions, want %d", c, n, questionsPerCategory)
		}
	}
	return nil
}
