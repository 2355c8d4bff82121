package types

const (
	FREQ_MODE_CHAR = "char"
	FREQ_MODE_WORD = "word"

	DUP_BY_LINE = "line"
	DUP_BY_WORD = "word"
	DUP_BY_CHAR = "char"
)

type FreqEntry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

type FreqReport struct {
	Mode     string      `json:"mode"`
	Total    int         `json:"total"`
	Distinct int         `json:"distinct"`
	Entries  []FreqEntry `json:"entries"`
}

type DuplicateEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type DuplicateReport struct {
	By         string           `json:"by"`
	Total      int              `json:"total"`
	Distinct   int              `json:"distinct"`
	Duplicates []DuplicateEntry `json:"duplicates"`
}

type LangReport struct {
	Language   string  `json:"language"`
	Code       string  `json:"code"`
	Confidence float64 `json:"confidence"`
	Reliable   bool    `json:"reliable"`
}

type AnalysisReport struct {
	Runes          int              `json:"runes"`
	Words          int              `json:"words"`
	Lines          int              `json:"lines"`
	TopChars       []FreqEntry      `json:"top_chars"`
	TopWords       []FreqEntry      `json:"top_words"`
	DuplicateWords []DuplicateEntry `json:"duplicate_words,omitempty"`
	Language       *LangReport      `json:"language,omitempty"`
}
