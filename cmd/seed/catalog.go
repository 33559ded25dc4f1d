package main

// SeedModule is one learning module in the seed catalog.
type SeedModule struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	DifficultyLevel int    `json:"difficulty_level"`
	IsPremium       bool   `json:"is_premium"`
}

// SeedPhilosopher is one philosopher in the seed catalog, as served by SEED_URL.
type SeedPhilosopher struct {
	Name               string       `json:"name"`
	WorkTitle          string       `json:"work_title"`
	Description        string       `json:"description"`
	ReasoningFramework string       `json:"reasoning_framework"`
	Modules            []SeedModule `json:"modules"`
}

var defaultCatalog = []SeedPhilosopher{
	{
		Name:               "Carl Jung",
		WorkTitle:          "Analytical Psychology",
		Description:        "Explore the depths of the psyche through analytical psychology and discover the collective unconscious.",
		ReasoningFramework: "Introspective analysis using archetypes and the collective unconscious",
		Modules: []SeedModule{
			{
				Title:           "Archetypes and the Collective Unconscious",
				Content:         "Recognize recurring patterns such as the Shadow, the Persona and the Self, and trace how they shape the way an argument is framed.",
				DifficultyLevel: 1,
			},
			{
				Title:           "Projection and Self-Examination",
				Content:         "Examine whether a judgement about others reveals an unacknowledged trait in the one who judges before accepting its conclusion.",
				DifficultyLevel: 3,
				IsPremium:       true,
			},
		},
	},
	{
		Name:               "Plato",
		WorkTitle:          "Allegory of the Cave",
		Description:        "Journey from shadows to enlightenment through dialectical reasoning and discover eternal truths.",
		ReasoningFramework: "Dialectical questioning to discover eternal forms and truth",
		Modules: []SeedModule{
			{
				Title:           "Shadows on the Wall",
				Content:         "Distinguish appearance from reality by asking what each claim is a reflection of, and what would be seen outside the cave.",
				DifficultyLevel: 1,
			},
			{
				Title:           "The Dialectic Method",
				Content:         "Test a definition by question and answer, refining it each time a counterexample is found, until it holds for every case.",
				DifficultyLevel: 2,
			},
		},
	},
	{
		Name:               "Friedrich Nietzsche",
		WorkTitle:          "Genealogy of Morals",
		Description:        "Deconstruct moral values through genealogical analysis and question everything you believe.",
		ReasoningFramework: "Critical deconstruction of assumed values and perspectives",
		Modules: []SeedModule{
			{
				Title:           "Genealogy of Values",
				Content:         "Trace a moral value back to its historical origin and ask whose interests it first served.",
				DifficultyLevel: 2,
			},
			{
				Title:           "Perspectivism",
				Content:         "Identify the perspective from which a claim is made and restate it from an opposing one to expose hidden assumptions.",
				DifficultyLevel: 4,
				IsPremium:       true,
			},
		},
	},
	{
		Name:               "Immanuel Kant",
		WorkTitle:          "Moral Theory",
		Description:        "Develop systematic moral reasoning through categorical imperatives and practical reason.",
		ReasoningFramework: "Systematic deduction using practical reason and moral law",
		Modules: []SeedModule{
			{
				Title:           "The Categorical Imperative",
				Content:         "Formulate the maxim of an action and test whether it could become a universal law without contradiction.",
				DifficultyLevel: 2,
			},
			{
				Title:           "Persons as Ends",
				Content:         "Check whether an action treats any person merely as a means rather than always also as an end in themselves.",
				DifficultyLevel: 3,
			},
		},
	},
}
