package catalog

import "github.com/example/sunnahtracker/pkg/models"

// Both variants must keep the same ids in the same order, otherwise the daily
// pick for a date changes when the user switches language.
var sampleSunnahs = map[models.Language][]models.Sunnah{
	models.LanguageEnglish: {
		{
			ID:          "sunnah-001",
			Title:       "Saying Bismillah Before Eating",
			Description: "Before you begin your meal, say \"Bismillah\" (In the name of Allah) aloud or silently.",
			Category:    models.CategoryDaily,
			Difficulty:  models.DifficultyEasy,
			Source:      "Mentioning Allah's name before eating brings barakah to the food. - Sahih Bukhari, Sahih Muslim",
		},
		{
			ID:          "sunnah-002",
			Title:       "Smiling at Others",
			Description: "Meet the people around you today with a sincere smile.",
			Category:    models.CategoryCharacter,
			Difficulty:  models.DifficultyEasy,
			Source:      "Your smile in the face of your brother is charity. - Jami at-Tirmidhi",
		},
		{
			ID:          "sunnah-003",
			Title:       "Entering with the Right Foot",
			Description: "Enter the mosque and your home with the right foot and leave the washroom with the left.",
			Category:    models.CategoryDaily,
			Difficulty:  models.DifficultyEasy,
			Source:      "The Prophet (ﷺ) liked to start with the right in all his affairs. - Sahih Bukhari",
		},
		{
			ID:          "sunnah-004",
			Title:       "Spreading Salam",
			Description: "Greet everyone you meet with \"As-salamu alaykum\", whether you know them or not.",
			Category:    models.CategorySocial,
			Difficulty:  models.DifficultyEasy,
			Source:      "Spread the greeting of peace among you. - Sahih Muslim",
		},
		{
			ID:          "sunnah-005",
			Title:       "Using the Miswak",
			Description: "Clean your teeth with a miswak before each prayer today.",
			Category:    models.CategoryWorship,
			Difficulty:  models.DifficultyMedium,
			Source:      "Were it not a burden on my ummah, I would have ordered them to use the miswak before every prayer. - Sahih Bukhari",
		},
		{
			ID:          "sunnah-006",
			Title:       "Morning and Evening Adhkar",
			Description: "Recite the morning remembrances after Fajr and the evening remembrances after Asr.",
			Category:    models.CategoryWorship,
			Difficulty:  models.DifficultyMedium,
			Source:      "Remembrance of Allah in the morning and evening protects the believer. - Sunan Abi Dawud",
		},
		{
			ID:          "sunnah-007",
			Title:       "Visiting the Sick",
			Description: "Visit or call someone who is ill and make dua for their recovery.",
			Category:    models.CategorySocial,
			Difficulty:  models.DifficultyMedium,
			Source:      "Whoever visits a sick person is in the harvest of Paradise until he returns. - Sahih Muslim",
		},
		{
			ID:          "sunnah-008",
			Title:       "Holding Back Anger",
			Description: "When anger rises today, stay silent, sit down if standing, and make wudu.",
			Category:    models.CategoryCharacter,
			Difficulty:  models.DifficultyMedium,
			Source:      "The strong man is the one who controls himself when angry. - Sahih Bukhari",
		},
		{
			ID:          "sunnah-009",
			Title:       "Praying Tahajjud",
			Description: "Wake in the last third of the night and pray at least two rakahs.",
			Category:    models.CategoryWorship,
			Difficulty:  models.DifficultyHard,
			Source:      "The best prayer after the obligatory prayers is the night prayer. - Sahih Muslim",
		},
		{
			ID:          "sunnah-010",
			Title:       "Voluntary Fasting",
			Description: "Fast today if it is a Monday or Thursday, or one of the white days of the month.",
			Category:    models.CategoryWorship,
			Difficulty:  models.DifficultyHard,
			Source:      "Deeds are presented on Monday and Thursday, and I love that my deeds are presented while I am fasting. - Jami at-Tirmidhi",
		},
		{
			ID:          "sunnah-011",
			Title:       "Reconciling Between People",
			Description: "Reach out to mend a broken relationship, your own or between two others.",
			Category:    models.CategorySocial,
			Difficulty:  models.DifficultyHard,
			Source:      "Reconciling between people is better than voluntary fasting, prayer and charity. - Sunan Abi Dawud",
		},
		{
			ID:          "sunnah-012",
			Title:       "Avoiding Idle Talk",
			Description: "Spend the whole day without gossip, backbiting or speech that does not benefit.",
			Category:    models.CategoryCharacter,
			Difficulty:  models.DifficultyHard,
			Source:      "Part of the perfection of a person's Islam is leaving what does not concern him. - Jami at-Tirmidhi",
		},
	},
	models.LanguageGerman: {
		{
			ID:          "sunnah-001",
			Title:       "Bismillah vor dem Essen sagen",
			Description: "Bevor du mit deiner Mahlzeit beginnst, sage \"Bismillah\" (Im Namen Allahs) laut oder leise.",
			Category:    models.CategoryDaily,
			Difficulty:  models.DifficultyEasy,
			Source:      "Das Erwähnen von Allahs Namen vor dem Essen bringt Barakah in die Mahlzeit. - Sahih Bukhari, Sahih Muslim",
		},
		{
			ID:          "sunnah-002",
			Title:       "Andere anlächeln",
			Description: "Begegne den Menschen um dich herum heute mit einem aufrichtigen Lächeln.",
			Category:    models.CategoryCharacter,
			Difficulty:  models.DifficultyEasy,
			Source:      "Dein Lächeln im Gesicht deines Bruders ist eine Sadaqa. - Jami at-Tirmidhi",
		},
		{
			ID:          "sunnah-003",
			Title:       "Mit dem rechten Fuß eintreten",
			Description: "Betritt die Moschee und dein Zuhause mit dem rechten Fuß und verlasse das Bad mit dem linken.",
			Category:    models.CategoryDaily,
			Difficulty:  models.DifficultyEasy,
			Source:      "Der Prophet (ﷺ) liebte es, in all seinen Angelegenheiten mit der rechten Seite zu beginnen. - Sahih Bukhari",
		},
		{
			ID:          "sunnah-004",
			Title:       "Den Salam verbreiten",
			Description: "Grüße jeden, dem du begegnest, mit \"As-salamu alaykum\", ob du ihn kennst oder nicht.",
			Category:    models.CategorySocial,
			Difficulty:  models.DifficultyEasy,
			Source:      "Verbreitet den Friedensgruß unter euch. - Sahih Muslim",
		},
		{
			ID:          "sunnah-005",
			Title:       "Den Miswak benutzen",
			Description: "Reinige heute vor jedem Gebet deine Zähne mit einem Miswak.",
			Category:    models.CategoryWorship,
			Difficulty:  models.DifficultyMedium,
			Source:      "Wäre es für meine Ummah nicht zu schwer, hätte ich ihnen befohlen, vor jedem Gebet den Miswak zu benutzen. - Sahih Bukhari",
		},
		{
			ID:          "sunnah-006",
			Title:       "Morgen- und Abend-Adhkar",
			Description: "Sprich die Morgen-Dhikr nach Fajr und die Abend-Dhikr nach Asr.",
			Category:    models.CategoryWorship,
			Difficulty:  models.DifficultyMedium,
			Source:      "Das Gedenken Allahs am Morgen und Abend schützt den Gläubigen. - Sunan Abi Dawud",
		},
		{
			ID:          "sunnah-007",
			Title:       "Kranke besuchen",
			Description: "Besuche oder rufe jemanden an, der krank ist, und bitte um seine Genesung.",
			Category:    models.CategorySocial,
			Difficulty:  models.DifficultyMedium,
			Source:      "Wer einen Kranken besucht, befindet sich in den Früchten des Paradieses, bis er zurückkehrt. - Sahih Muslim",
		},
		{
			ID:          "sunnah-008",
			Title:       "Den Zorn zurückhalten",
			Description: "Wenn heute Zorn aufsteigt, schweige, setze dich hin und vollziehe die Gebetswaschung.",
			Category:    models.CategoryCharacter,
			Difficulty:  models.DifficultyMedium,
			Source:      "Der Starke ist derjenige, der sich im Zorn beherrscht. - Sahih Bukhari",
		},
		{
			ID:          "sunnah-009",
			Title:       "Tahajjud beten",
			Description: "Stehe im letzten Drittel der Nacht auf und bete mindestens zwei Rakaat.",
			Category:    models.CategoryWorship,
			Difficulty:  models.DifficultyHard,
			Source:      "Das beste Gebet nach den Pflichtgebeten ist das Nachtgebet. - Sahih Muslim",
		},
		{
			ID:          "sunnah-010",
			Title:       "Freiwilliges Fasten",
			Description: "Faste heute, wenn es Montag oder Donnerstag oder einer der weißen Tage des Monats ist.",
			Category:    models.CategoryWorship,
			Difficulty:  models.DifficultyHard,
			Source:      "Die Taten werden am Montag und Donnerstag vorgelegt, und ich liebe es, dabei zu fasten. - Jami at-Tirmidhi",
		},
		{
			ID:          "sunnah-011",
			Title:       "Zwischen Menschen versöhnen",
			Description: "Bemühe dich, eine zerbrochene Beziehung zu heilen, deine eigene oder die zweier anderer.",
			Category:    models.CategorySocial,
			Difficulty:  models.DifficultyHard,
			Source:      "Zwischen Menschen zu versöhnen ist besser als freiwilliges Fasten, Beten und Spenden. - Sunan Abi Dawud",
		},
		{
			ID:          "sunnah-012",
			Title:       "Unnützes Gerede meiden",
			Description: "Verbringe den ganzen Tag ohne Klatsch, üble Nachrede oder nutzlose Worte.",
			Category:    models.CategoryCharacter,
			Difficulty:  models.DifficultyHard,
			Source:      "Zur Vollkommenheit des Islam eines Menschen gehört, das zu lassen, was ihn nicht betrifft. - Jami at-Tirmidhi",
		},
	},
}

// SampleSunnahs returns a copy of the built-in catalog for language,
// falling back to English for unknown languages.
func SampleSunnahs(language models.Language) []models.Sunnah {
	items, ok := sampleSunnahs[language]
	if !ok {
		items = sampleSunnahs[models.LanguageEnglish]
	}
	out := make([]models.Sunnah, len(items))
	copy(out, items)
	return out
}
