package styles

// Style categories, mirroring how the styles are grouped in the UI.
const (
	CategoryNews              = "style-news"
	CategorySocial            = "style-social"
	CategoryCreative          = "style-creative"
	CategoryStructureNews     = "structure-news"
	CategoryStructureList     = "structure-list"
	CategoryStructureAcademic = "structure-academic"
	CategoryStrategy          = "strategy"
)

// Default temperature bounds. Individual profiles may narrow them.
const (
	defaultMinTemperature = 0.5
	defaultMaxTemperature = 0.8
)

// defaultLengthAdjustments lowers the temperature slightly when the caller
// asks for a much shorter text (condensation wants precision) and raises it
// when asking for a much longer one (expansion wants invention).
var defaultLengthAdjustments = []LengthAdjustment{
	{RatioBelow: 0.7, Delta: -0.05},
	{RatioAbove: 1.3, Delta: 0.05},
}

// builtinProfiles is the full style table. Base temperatures are tuned per
// style: rigor-first styles sit low, platform-culture styles sit high.
var builtinProfiles = []StyleProfile{
	// Journalism / academic / textbook
	{
		ID:                "ap-style",
		Category:          CategoryNews,
		Prompt:            "Rewrite into AP Style journalism with concise, objective sentences and an inverted-pyramid lead.",
		BaseTemperature:   0.57,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.7,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "apa-style",
		Category:          CategoryNews,
		Prompt:            "Rewrite into APA style academic prose with in-text citations, formal tone, and structured paragraphs.",
		BaseTemperature:   0.56,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.68,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "ieee-style",
		Category:          CategoryNews,
		Prompt:            "Rewrite into IEEE style technical writing with numbered references, passive voice, and precise terminology.",
		BaseTemperature:   0.5,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.65,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "textbook-style",
		Category:          CategoryNews,
		Prompt:            "Rewrite into textbook style exposition with neutral voice, clear definitions, and stepwise explanations.",
		BaseTemperature:   0.55,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.68,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "investigative",
		Category:          CategoryNews,
		Prompt:            "Rewrite into investigative journalism style that foregrounds evidence, sourcing, and analytical depth.",
		BaseTemperature:   0.6,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.72,
		LengthAdjustments: defaultLengthAdjustments,
	},

	// Community / platform culture
	{
		ID:                "4chan-style",
		Category:          CategorySocial,
		Prompt:            "Rewrite into 4chan style commentary with blunt tone, internet slang, and irreverent humor.",
		BaseTemperature:   0.7,
		MinTemperature:    0.55,
		MaxTemperature:    defaultMaxTemperature,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "reddit-style",
		Category:          CategorySocial,
		Prompt:            "Rewrite into Reddit style discussion with conversational tone, quoted replies, and community references.",
		BaseTemperature:   0.65,
		MinTemperature:    0.55,
		MaxTemperature:    defaultMaxTemperature,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "buzzfeed-style",
		Category:          CategorySocial,
		Prompt:            "Rewrite into BuzzFeed style storytelling with catchy hooks, pop-culture riffs, and upbeat pacing.",
		BaseTemperature:   0.72,
		MinTemperature:    0.55,
		MaxTemperature:    defaultMaxTemperature,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "twitter-style",
		Category:          CategorySocial,
		Prompt:            "Rewrite into Twitter style posts with punchy sentences, relevant hashtags, and emoji for emphasis.",
		BaseTemperature:   0.68,
		MinTemperature:    0.55,
		MaxTemperature:    defaultMaxTemperature,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "instagram-caption",
		Category:          CategorySocial,
		Prompt:            "Rewrite into Instagram caption style with evocative imagery, emoji, and engagement prompts.",
		BaseTemperature:   0.7,
		MinTemperature:    0.55,
		MaxTemperature:    defaultMaxTemperature,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:              "meme-style",
		Category:        CategorySocial,
		Prompt:          "Rewrite into meme style banter with witty punchlines, pop-culture references, and playful formatting.",
		BaseTemperature: 0.78,
		MinTemperature:  0.6,
		MaxTemperature:  defaultMaxTemperature,
		// Memes tolerate more expansion before the temperature bump.
		LengthAdjustments: []LengthAdjustment{
			{RatioBelow: 0.7, Delta: -0.05},
			{RatioAbove: 1.4, Delta: 0.05},
		},
	},

	// Fiction / creative writing
	{
		ID:                "hemingway-style",
		Category:          CategoryCreative,
		Prompt:            "Rewrite into Hemingway style narrative with short declarative sentences and vivid verbs.",
		BaseTemperature:   0.62,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.75,
		LengthAdjustments: defaultLengthAdjustments,
	},

	// News / information structure
	{
		ID:                "inverted-pyramid",
		Category:          CategoryStructureNews,
		Prompt:            "Rewrite into inverted-pyramid structure that leads with core facts before supporting detail.",
		BaseTemperature:   0.58,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.7,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "headline-driven",
		Category:          CategoryStructureNews,
		Prompt:            "Rewrite into headline-driven structure with striking titles supported by concise blurbs.",
		BaseTemperature:   0.63,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.75,
		LengthAdjustments: defaultLengthAdjustments,
	},

	// List / thread / tutorial structure
	{
		ID:                "listicle",
		Category:          CategoryStructureList,
		Prompt:            "Rewrite into listicle structure using numbered or bulleted entries with strong subheadings.",
		BaseTemperature:   0.63,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.75,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "threaded",
		Category:          CategoryStructureList,
		Prompt:            "Rewrite into threaded structure with numbered segments (1/n) that build a connected narrative.",
		BaseTemperature:   0.66,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.78,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "how-to",
		Category:          CategoryStructureList,
		Prompt:            "Rewrite into how-to structure with a clear goal followed by step-by-step instructions.",
		BaseTemperature:   0.58,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.7,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "bullet-pointed",
		Category:          CategoryStructureList,
		Prompt:            "Rewrite into bullet-pointed structure that surfaces key insights per bullet.",
		BaseTemperature:   0.57,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.7,
		LengthAdjustments: defaultLengthAdjustments,
	},

	// Academic / narrative structure
	{
		ID:                "imrd-style",
		Category:          CategoryStructureAcademic,
		Prompt:            "Rewrite into IMRaD structure with distinct Introduction, Methods, Results, and Discussion sections.",
		BaseTemperature:   0.55,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.68,
		LengthAdjustments: defaultLengthAdjustments,
	},

	// Strategy and controls
	{
		ID:                "clickbait",
		Category:          CategoryStrategy,
		Prompt:            "Adjust the text with clickbait techniques that create curiosity gaps and bold promises.",
		BaseTemperature:   0.75,
		MinTemperature:    0.55,
		MaxTemperature:    defaultMaxTemperature,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "call-to-action",
		Category:          CategoryStrategy,
		Prompt:            "Adjust the text with strong calls to action that use imperative verbs and outcome-oriented phrasing.",
		BaseTemperature:   0.66,
		MinTemperature:    0.55,
		MaxTemperature:    0.78,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "seo-optimized",
		Category:          CategoryStrategy,
		Prompt:            "Adjust the text for SEO with strategic keyword placement, descriptive subheadings, and meta-friendly flow.",
		BaseTemperature:   0.6,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.72,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "fomo-driven",
		Category:          CategoryStrategy,
		Prompt:            "Adjust the text to trigger FOMO with urgency cues, scarcity language, and social proof.",
		BaseTemperature:   0.74,
		MinTemperature:    0.6,
		MaxTemperature:    defaultMaxTemperature,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "hashtag-heavy",
		Category:          CategoryStrategy,
		Prompt:            "Adjust the text to include dense hashtag usage aligned with trending topics and niche communities.",
		BaseTemperature:   0.7,
		MinTemperature:    0.55,
		MaxTemperature:    defaultMaxTemperature,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "emoji-laden",
		Category:          CategoryStrategy,
		Prompt:            "Adjust the text to incorporate abundant emoji that reinforce tone and emotion while staying readable.",
		BaseTemperature:   0.72,
		MinTemperature:    0.55,
		MaxTemperature:    defaultMaxTemperature,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "flesch-kincaid",
		Category:          CategoryStrategy,
		Prompt:            "Adjust the text to an accessible Flesch-Kincaid reading level with shorter sentences and simpler vocabulary.",
		BaseTemperature:   0.58,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.72,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "citation-heavy",
		Category:          CategoryStrategy,
		Prompt:            "Adjust the text to be citation-heavy with explicit references to authoritative sources and data.",
		BaseTemperature:   0.52,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.66,
		LengthAdjustments: defaultLengthAdjustments,
	},
	{
		ID:                "technical-jargon",
		Category:          CategoryStrategy,
		Prompt:            "Adjust the text to use dense technical jargon appropriate for specialist audiences and expert readers.",
		BaseTemperature:   0.5,
		MinTemperature:    defaultMinTemperature,
		MaxTemperature:    0.65,
		LengthAdjustments: defaultLengthAdjustments,
	},
}
