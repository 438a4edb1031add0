package dtos

// SaveViewDto creates a shareable saved view from a filter.
type SaveViewDto struct {
	Name   string    `json:"name"`
	Filter FilterDto `json:"filter"`
}

func (dto *SaveViewDto) Validate() (bool, map[string]string) {
	_, errors := dto.Filter.Validate()

	if dto.Name == "" {
		errors["name"] = "must be provided"
	}

	return len(errors) == 0, errors
}
