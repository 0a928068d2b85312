package topics

// catalog is the K-12 English topic list, one entry per grade.
var catalog = []GradeTopics{
	{
		Grade: "K",
		Grammar: []Topic{
			{ID: "letters", Name: "Letter Recognition", Description: "Identifying uppercase and lowercase letters"},
			{ID: "phonics", Name: "Basic Phonics", Description: "Letter sounds and simple blending"},
			{ID: "sight-words", Name: "Sight Words", Description: "Common high-frequency words"},
			{ID: "sentence-structure", Name: "Simple Sentences", Description: "Understanding basic sentence structure"},
		},
		Vocabulary: []Topic{
			{ID: "colors", Name: "Colors", Description: "Basic color names"},
			{ID: "shapes", Name: "Shapes", Description: "Circle, square, triangle, rectangle"},
			{ID: "numbers", Name: "Numbers 1-20", Description: "Number words and recognition"},
			{ID: "family", Name: "Family Members", Description: "Mom, dad, sister, brother, etc."},
			{ID: "body-parts", Name: "Body Parts", Description: "Head, hands, feet, eyes, etc."},
		},
		Reading: []Topic{
			{ID: "picture-stories", Name: "Picture Stories", Description: "Understanding stories through pictures"},
			{ID: "sequence", Name: "Story Sequence", Description: "What happens first, next, last"},
			{ID: "characters", Name: "Story Characters", Description: "Identifying main characters"},
		},
	},
	{
		Grade: "1",
		Grammar: []Topic{
			{ID: "nouns", Name: "Nouns", Description: "People, places, and things"},
			{ID: "verbs", Name: "Action Verbs", Description: "Words that show action"},
			{ID: "adjectives", Name: "Describing Words", Description: "Words that describe nouns"},
			{ID: "capitalization", Name: "Capitalization", Description: "Beginning of sentences and names"},
			{ID: "punctuation", Name: "End Punctuation", Description: "Periods, question marks, exclamation points"},
		},
		Vocabulary: []Topic{
			{ID: "phonics-patterns", Name: "Phonics Patterns", Description: "CVC words, blends, digraphs"},
			{ID: "compound-words", Name: "Compound Words", Description: "Two words that make one"},
			{ID: "opposites", Name: "Opposites", Description: "Hot/cold, big/small, up/down"},
			{ID: "rhyming", Name: "Rhyming Words", Description: "Words that sound alike"},
		},
		Reading: []Topic{
			{ID: "main-idea", Name: "Main Idea", Description: "What the story is mostly about"},
			{ID: "details", Name: "Story Details", Description: "Important information in the story"},
			{ID: "predictions", Name: "Making Predictions", Description: "What will happen next"},
			{ID: "connections", Name: "Text Connections", Description: "Relating to personal experiences"},
		},
	},
	{
		Grade: "2",
		Grammar: []Topic{
			{ID: "noun-types", Name: "Common/Proper Nouns", Description: "Regular nouns vs. specific names"},
			{ID: "pronouns", Name: "Pronouns", Description: "He, she, it, they, we"},
			{ID: "verb-tenses", Name: "Past/Present Verbs", Description: "Yesterday, today actions"},
			{ID: "articles", Name: "Articles", Description: "A, an, the"},
			{ID: "contractions", Name: "Contractions", Description: "Can't, don't, won't"},
		},
		Vocabulary: []Topic{
			{ID: "prefixes", Name: "Simple Prefixes", Description: "Un-, re-, pre-"},
			{ID: "suffixes", Name: "Simple Suffixes", Description: "-ed, -ing, -er, -est"},
			{ID: "synonyms", Name: "Synonyms", Description: "Words with similar meanings"},
			{ID: "multiple-meaning", Name: "Multiple Meaning Words", Description: "Words with more than one meaning"},
		},
		Reading: []Topic{
			{ID: "cause-effect", Name: "Cause and Effect", Description: "Why things happen and what happens"},
			{ID: "compare-contrast", Name: "Compare and Contrast", Description: "How things are alike and different"},
			{ID: "story-elements", Name: "Story Elements", Description: "Characters, setting, problem, solution"},
			{ID: "fact-opinion", Name: "Fact vs. Opinion", Description: "What can be proven vs. what someone thinks"},
		},
	},
	{
		Grade: "3",
		Grammar: []Topic{
			{ID: "subject-predicate", Name: "Subject and Predicate", Description: "Who/what and what they do"},
			{ID: "plural-nouns", Name: "Plural Nouns", Description: "Regular and irregular plurals"},
			{ID: "possessive-nouns", Name: "Possessive Nouns", Description: "Showing ownership with apostrophes"},
			{ID: "adverbs", Name: "Adverbs", Description: "Words that describe verbs"},
			{ID: "conjunctions", Name: "Conjunctions", Description: "And, but, or connecting words"},
		},
		Vocabulary: []Topic{
			{ID: "root-words", Name: "Root Words", Description: "Base words before adding prefixes/suffixes"},
			{ID: "antonyms", Name: "Antonyms", Description: "Words with opposite meanings"},
			{ID: "homophones", Name: "Homophones", Description: "Words that sound the same but different meanings"},
			{ID: "context-clues", Name: "Context Clues", Description: "Using surrounding words to understand meaning"},
		},
		Reading: []Topic{
			{ID: "theme", Name: "Theme", Description: "The message or lesson of a story"},
			{ID: "inference", Name: "Making Inferences", Description: "Reading between the lines"},
			{ID: "summarizing", Name: "Summarizing", Description: "Retelling the most important parts"},
			{ID: "text-features", Name: "Text Features", Description: "Headings, captions, bold words"},
		},
	},
	{
		Grade: "4",
		Grammar: []Topic{
			{ID: "sentence-types", Name: "Types of Sentences", Description: "Declarative, interrogative, imperative, exclamatory"},
			{ID: "compound-sentences", Name: "Compound Sentences", Description: "Joining sentences with conjunctions"},
			{ID: "quotation-marks", Name: "Quotation Marks", Description: "Direct speech and dialogue"},
			{ID: "relative-pronouns", Name: "Relative Pronouns", Description: "Who, which, that"},
			{ID: "progressive-verbs", Name: "Progressive Verb Tenses", Description: "Present and past progressive"},
		},
		Vocabulary: []Topic{
			{ID: "greek-latin-roots", Name: "Greek and Latin Roots", Description: "Common word roots and their meanings"},
			{ID: "figurative-language", Name: "Figurative Language", Description: "Similes, metaphors, idioms"},
			{ID: "academic-vocabulary", Name: "Academic Vocabulary", Description: "Words used in school subjects"},
			{ID: "word-relationships", Name: "Word Relationships", Description: "Categories, analogies"},
		},
		Reading: []Topic{
			{ID: "point-of-view", Name: "Point of View", Description: "First person, third person"},
			{ID: "text-structure", Name: "Text Structure", Description: "Sequence, problem/solution, compare/contrast"},
			{ID: "author-purpose", Name: "Author's Purpose", Description: "Inform, persuade, entertain"},
			{ID: "drawing-conclusions", Name: "Drawing Conclusions", Description: "Using evidence to make judgments"},
		},
	},
	{
		Grade: "5",
		Grammar: []Topic{
			{ID: "complex-sentences", Name: "Complex Sentences", Description: "Independent and dependent clauses"},
			{ID: "verb-moods", Name: "Verb Moods", Description: "Indicative, imperative, interrogative"},
			{ID: "perfect-tenses", Name: "Perfect Verb Tenses", Description: "Present, past, and future perfect"},
			{ID: "prepositions", Name: "Prepositions", Description: "Words showing position or direction"},
			{ID: "interjections", Name: "Interjections", Description: "Words expressing emotion"},
		},
		Vocabulary: []Topic{
			{ID: "etymology", Name: "Etymology", Description: "Word origins and history"},
			{ID: "connotation", Name: "Connotation and Denotation", Description: "Emotional vs. literal meanings"},
			{ID: "technical-terms", Name: "Technical Terms", Description: "Subject-specific vocabulary"},
			{ID: "word-analysis", Name: "Word Analysis", Description: "Breaking down unfamiliar words"},
		},
		Reading: []Topic{
			{ID: "character-analysis", Name: "Character Analysis", Description: "Understanding character traits and motivations"},
			{ID: "plot-analysis", Name: "Plot Analysis", Description: "Exposition, rising action, climax, resolution"},
			{ID: "compare-texts", Name: "Comparing Texts", Description: "Similarities and differences between texts"},
			{ID: "author-craft", Name: "Author's Craft", Description: "How authors use language and literary devices"},
		},
	},
	{
		Grade: "6",
		Grammar: []Topic{
			{ID: "phrases-clauses", Name: "Phrases and Clauses", Description: "Independent and dependent clauses"},
			{ID: "active-passive", Name: "Active and Passive Voice", Description: "Subject performing vs. receiving action"},
			{ID: "parallel-structure", Name: "Parallel Structure", Description: "Consistent grammatical patterns"},
			{ID: "modifier-placement", Name: "Modifier Placement", Description: "Avoiding misplaced and dangling modifiers"},
			{ID: "comma-rules", Name: "Comma Rules", Description: "Complex comma usage in sentences"},
		},
		Vocabulary: []Topic{
			{ID: "morphology", Name: "Morphology", Description: "Word formation and structure"},
			{ID: "semantic-relationships", Name: "Semantic Relationships", Description: "How words relate in meaning"},
			{ID: "register", Name: "Language Register", Description: "Formal vs. informal language"},
			{ID: "domain-specific", Name: "Domain-Specific Vocabulary", Description: "Subject area terminology"},
		},
		Reading: []Topic{
			{ID: "literary-devices", Name: "Literary Devices", Description: "Symbolism, foreshadowing, irony"},
			{ID: "text-analysis", Name: "Text Analysis", Description: "Deep reading and interpretation"},
			{ID: "argument-analysis", Name: "Argument Analysis", Description: "Claims, evidence, reasoning"},
			{ID: "media-literacy", Name: "Media Literacy", Description: "Analyzing different types of media"},
		},
	},
	{
		Grade: "7",
		Grammar: []Topic{
			{ID: "sentence-variety", Name: "Sentence Variety", Description: "Combining simple, compound, and complex sentences"},
			{ID: "subjunctive-mood", Name: "Subjunctive Mood", Description: "Expressing wishes, hypotheticals, demands"},
			{ID: "gerunds-infinitives", Name: "Gerunds and Infinitives", Description: "Verbal forms functioning as nouns"},
			{ID: "appositives", Name: "Appositives", Description: "Noun phrases that rename or explain"},
			{ID: "semicolon-usage", Name: "Semicolon Usage", Description: "Connecting related independent clauses"},
		},
		Vocabulary: []Topic{
			{ID: "etymology-advanced", Name: "Advanced Etymology", Description: "Complex word origins and development"},
			{ID: "nuance", Name: "Nuance in Meaning", Description: "Subtle differences in word meaning"},
			{ID: "rhetoric", Name: "Rhetorical Language", Description: "Language used for persuasion"},
			{ID: "archaic-language", Name: "Archaic Language", Description: "Old or outdated language forms"},
		},
		Reading: []Topic{
			{ID: "theme-analysis", Name: "Theme Analysis", Description: "Complex themes and their development"},
			{ID: "perspective", Name: "Multiple Perspectives", Description: "Different viewpoints in texts"},
			{ID: "critical-reading", Name: "Critical Reading", Description: "Evaluating arguments and evidence"},
			{ID: "intertextuality", Name: "Intertextuality", Description: "Connections between different texts"},
		},
	},
	{
		Grade: "8",
		Grammar: []Topic{
			{ID: "advanced-punctuation", Name: "Advanced Punctuation", Description: "Colons, dashes, parentheses"},
			{ID: "conditional-sentences", Name: "Conditional Sentences", Description: "If-then constructions and their variations"},
			{ID: "ellipsis", Name: "Ellipsis and Omission", Description: "When and how to omit words"},
			{ID: "style-consistency", Name: "Style Consistency", Description: "Maintaining consistent voice and tone"},
			{ID: "error-analysis", Name: "Error Analysis", Description: "Identifying and correcting common mistakes"},
		},
		Vocabulary: []Topic{
			{ID: "academic-discourse", Name: "Academic Discourse", Description: "Language of academic writing"},
			{ID: "precision", Name: "Precision in Language", Description: "Choosing the most accurate words"},
			{ID: "wordplay", Name: "Wordplay and Puns", Description: "Creative uses of language"},
			{ID: "borrowed-words", Name: "Borrowed Words", Description: "Words adopted from other languages"},
		},
		Reading: []Topic{
			{ID: "rhetorical-analysis", Name: "Rhetorical Analysis", Description: "How authors persuade readers"},
			{ID: "synthesis", Name: "Synthesis", Description: "Combining information from multiple sources"},
			{ID: "evaluation", Name: "Evaluation", Description: "Judging the quality and validity of texts"},
			{ID: "implicit-meaning", Name: "Implicit Meaning", Description: "Understanding what's not directly stated"},
		},
	},
	{
		Grade: "9",
		Grammar: []Topic{
			{ID: "advanced-clauses", Name: "Advanced Clause Types", Description: "Noun, adjective, and adverb clauses"},
			{ID: "coordination-subordination", Name: "Coordination and Subordination", Description: "Balancing sentence elements"},
			{ID: "nominalization", Name: "Nominalization", Description: "Converting verbs and adjectives to nouns"},
			{ID: "stylistic-devices", Name: "Stylistic Devices", Description: "Grammar for effect and emphasis"},
			{ID: "formal-register", Name: "Formal Register", Description: "Academic and professional writing conventions"},
		},
		Vocabulary: []Topic{
			{ID: "sophisticated-vocabulary", Name: "Sophisticated Vocabulary", Description: "College-level word choices"},
			{ID: "specialized-terminology", Name: "Specialized Terminology", Description: "Field-specific language"},
			{ID: "language-evolution", Name: "Language Evolution", Description: "How language changes over time"},
			{ID: "contextual-meaning", Name: "Contextual Meaning", Description: "How context affects word meaning"},
		},
		Reading: []Topic{
			{ID: "literary-criticism", Name: "Literary Criticism", Description: "Analyzing literature through different lenses"},
			{ID: "philosophical-texts", Name: "Philosophical Texts", Description: "Understanding complex abstract ideas"},
			{ID: "historical-context", Name: "Historical Context", Description: "How time period affects meaning"},
			{ID: "cultural-analysis", Name: "Cultural Analysis", Description: "Understanding cultural influences in texts"},
		},
	},
	{
		Grade: "10",
		Grammar: []Topic{
			{ID: "advanced-syntax", Name: "Advanced Syntax", Description: "Complex sentence structures and patterns"},
			{ID: "rhetorical-grammar", Name: "Rhetorical Grammar", Description: "Using grammar for persuasive effect"},
			{ID: "dialect-variations", Name: "Dialect Variations", Description: "Understanding different English varieties"},
			{ID: "register-switching", Name: "Register Switching", Description: "Adapting language for different audiences"},
			{ID: "grammar-style", Name: "Grammar and Style", Description: "How grammar choices affect meaning"},
		},
		Vocabulary: []Topic{
			{ID: "etymology-analysis", Name: "Etymology Analysis", Description: "Deep word history investigation"},
			{ID: "semantic-fields", Name: "Semantic Fields", Description: "Groups of related word meanings"},
			{ID: "pragmatics", Name: "Pragmatics", Description: "How context affects language use"},
			{ID: "lexical-analysis", Name: "Lexical Analysis", Description: "Systematic study of word choice"},
		},
		Reading: []Topic{
			{ID: "discourse-analysis", Name: "Discourse Analysis", Description: "How language creates meaning in texts"},
			{ID: "ideological-critique", Name: "Ideological Critique", Description: "Examining underlying beliefs and values"},
			{ID: "comparative-literature", Name: "Comparative Literature", Description: "Analyzing texts across cultures"},
			{ID: "reader-response", Name: "Reader-Response Theory", Description: "How readers create meaning"},
		},
	},
	{
		Grade: "11",
		Grammar: []Topic{
			{ID: "advanced-mechanics", Name: "Advanced Mechanics", Description: "Complex punctuation and formatting"},
			{ID: "stylistic-analysis", Name: "Stylistic Analysis", Description: "Analyzing authors' grammatical choices"},
			{ID: "language-variation", Name: "Language Variation", Description: "Regional, social, and historical differences"},
			{ID: "prescriptive-descriptive", Name: "Prescriptive vs. Descriptive", Description: "Grammar rules vs. actual usage"},
			{ID: "error-correction", Name: "Advanced Error Correction", Description: "Complex editing and proofreading"},
		},
		Vocabulary: []Topic{
			{ID: "graduate-vocabulary", Name: "Graduate-Level Vocabulary", Description: "Advanced academic and professional terms"},
			{ID: "linguistic-terminology", Name: "Linguistic Terminology", Description: "Terms for analyzing language"},
			{ID: "cross-linguistic", Name: "Cross-Linguistic Comparison", Description: "Comparing English with other languages"},
			{ID: "vocabulary-instruction", Name: "Vocabulary Instruction", Description: "How to learn and teach vocabulary"},
		},
		Reading: []Topic{
			{ID: "metacognitive-reading", Name: "Metacognitive Reading", Description: "Thinking about thinking while reading"},
			{ID: "research-synthesis", Name: "Research Synthesis", Description: "Combining scholarly sources"},
			{ID: "argument-construction", Name: "Argument Construction", Description: "Building complex arguments from texts"},
			{ID: "disciplinary-reading", Name: "Disciplinary Reading", Description: "Reading in specific academic fields"},
		},
	},
	{
		Grade: "12",
		Grammar: []Topic{
			{ID: "linguistic-analysis", Name: "Linguistic Analysis", Description: "Systematic study of language structures"},
			{ID: "historical-grammar", Name: "Historical Grammar", Description: "How English grammar has evolved"},
			{ID: "professional-writing", Name: "Professional Writing", Description: "Grammar for workplace communication"},
			{ID: "editing-mastery", Name: "Editing Mastery", Description: "Advanced editing and revision skills"},
			{ID: "style-guides", Name: "Style Guides", Description: "MLA, APA, Chicago, and other formatting systems"},
		},
		Vocabulary: []Topic{
			{ID: "professional-vocabulary", Name: "Professional Vocabulary", Description: "Workplace and career-specific terms"},
			{ID: "research-vocabulary", Name: "Research Vocabulary", Description: "Terms for academic research"},
			{ID: "critical-vocabulary", Name: "Critical Vocabulary", Description: "Terms for analysis and critique"},
			{ID: "vocabulary-pedagogy", Name: "Vocabulary Pedagogy", Description: "How vocabulary is taught and learned"},
		},
		Reading: []Topic{
			{ID: "advanced-research", Name: "Advanced Research Skills", Description: "Sophisticated information literacy"},
			{ID: "scholarly-discourse", Name: "Scholarly Discourse", Description: "Understanding academic conversations"},
			{ID: "independent-analysis", Name: "Independent Analysis", Description: "Original interpretation and critique"},
			{ID: "preparation-college", Name: "College Preparation", Description: "Reading skills for higher education"},
		},
	},
}
