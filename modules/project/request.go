package project

import "github.com/dmitrymomot/reqcheck/pkg/validator"

const (
	NameMinLength        = 3
	NameMaxLength        = 24
	DescriptionMaxLength = 4000
	PriorityMin          = 1
	PriorityMax          = 10
)

// CreateProjectRequest is the body of POST /v1/projects.
// Pointer, slice and map fields stay nil when the client omits them or sends null.
type CreateProjectRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Options     *ProjectOptions `json:"options"`
}

type ProjectOptions struct {
	Fields   []string          `json:"fields"`
	Priority *int32            `json:"priority"`
	Tags     map[string]string `json:"tags"`
}

// Validate checks the whole document and records every failure:
//
//	name         required, 3..24 characters
//	description  optional, at most 4000 bytes
//	options      required
//	options.fields[i]  present entries must not be blank
//	options.priority   optional, 1..10
func (r *CreateProjectRequest) Validate(e *validator.Errors, loc validator.Path) {
	validator.ReqLength(e, loc.Key("name"), r.Name, NameMinLength, NameMaxLength)
	validator.OptMaxLength(e, loc.Key("description"), r.Description, DescriptionMaxLength)
	validator.RequireValid(e, loc.Key("options"), r.Options)
}

func (o *ProjectOptions) Validate(e *validator.Errors, loc validator.Path) {
	validator.Each(loc.Key("fields"), o.Fields, func(at validator.Path, field string) {
		validator.CheckNotBlankString(e, at, field)
	})
	validator.OptInRange(e, loc.Key("priority"), o.Priority, PriorityMin, PriorityMax)
}
