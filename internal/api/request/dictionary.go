package request

type CreateDictionaryEntryRequest struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
}

type UpdateDictionaryEntryRequest struct {
	Term       *string `json:"term,omitempty"`
	Definition *string `json:"definition,omitempty"`
	Category   *string `json:"category,omitempty"`
}
