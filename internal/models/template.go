package models

// PromptTemplate holds the rendered prompt and the assistant placeholder
// exactly as downstream inference runtimes expect them.
type PromptTemplate struct {
	Assistant string `json:"assistant"`
	Prompt    string `json:"prompt"`
}

// InferenceModel is the record written to inference_model.json.
// Field casing matches the file format consumed by the local inference
// runtime, so the JSON tags are deliberate.
type InferenceModel struct {
	Name           string         `json:"Name"`
	PromptTemplate PromptTemplate `json:"PromptTemplate"`
}
